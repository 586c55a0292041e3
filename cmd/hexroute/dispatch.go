package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/kestrelmap/hexroute/engine"
)

// dispatcher turns whitespace-delimited command lines into calls
// against an *engine.Engine and a single response line. It holds no
// state of its own beyond the engine, logger and dimension cap it was
// built with.
type dispatcher struct {
	eng    *engine.Engine
	log    *slog.Logger
	maxDim int
}

func newDispatcher(eng *engine.Engine, log *slog.Logger, maxDim int) *dispatcher {
	return &dispatcher{eng: eng, log: log, maxDim: maxDim}
}

// handle parses and executes one command line, returning the single
// response line to emit ("OK", "KO", or a decimal integer).
func (d *dispatcher) handle(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "init":
		return d.init(args)
	case "change_cost":
		return d.changeCost(args)
	case "toggle_air_route":
		return d.toggleAirRoute(args)
	case "travel_cost":
		return d.travelCost(args)
	default:
		d.log.Warn("unknown command", "cmd", cmd)
		return "KO"
	}
}

func (d *dispatcher) init(args []string) string {
	v, ok := parseInts(args, 2)
	if !ok {
		return "KO"
	}
	if d.maxDim > 0 && (v[0] > d.maxDim || v[1] > d.maxDim) {
		d.log.Warn("init rejected: exceeds max_dimension", "cols", v[0], "rows", v[1], "max", d.maxDim)
		return "KO"
	}
	if err := d.eng.Init(v[0], v[1]); err != nil {
		d.log.Warn("init failed", "error", err)
		return "KO"
	}
	d.log.Debug("init", "cols", v[0], "rows", v[1])

	return "OK"
}

func (d *dispatcher) changeCost(args []string) string {
	v, ok := parseInts(args, 4)
	if !ok {
		return "KO"
	}
	x, y, delta, radius := v[0], v[1], v[2], v[3]
	if err := d.eng.ChangeCost(x, y, delta, radius); err != nil {
		d.log.Warn("change_cost failed", "error", err, "x", x, "y", y, "v", delta, "r", radius)
		return "KO"
	}
	d.log.Debug("change_cost", "x", x, "y", y, "v", delta, "r", radius)

	return "OK"
}

func (d *dispatcher) toggleAirRoute(args []string) string {
	v, ok := parseInts(args, 4)
	if !ok {
		return "KO"
	}
	x1, y1, x2, y2 := v[0], v[1], v[2], v[3]
	if err := d.eng.ToggleAirRoute(x1, y1, x2, y2); err != nil {
		d.log.Warn("toggle_air_route failed", "error", err, "x1", x1, "y1", y1, "x2", x2, "y2", y2)
		return "KO"
	}
	d.log.Debug("toggle_air_route", "x1", x1, "y1", y1, "x2", x2, "y2", y2)

	return "OK"
}

func (d *dispatcher) travelCost(args []string) string {
	v, ok := parseInts(args, 4)
	if !ok {
		return "-1"
	}
	xs, ys, xd, yd := v[0], v[1], v[2], v[3]
	cost := d.eng.TravelCost(xs, ys, xd, yd)
	d.log.Debug("travel_cost", "xs", xs, "ys", ys, "xd", xd, "yd", yd, "cost", cost)

	return strconv.FormatInt(cost, 10)
}

// parseInts parses exactly want decimal integers from args. ok is
// false if the count or any token is malformed.
func parseInts(args []string, want int) (vals []int, ok bool) {
	if len(args) != want {
		return nil, false
	}
	vals = make([]int, want)
	for i, tok := range args {
		x, err := strconv.Atoi(tok)
		if err != nil {
			return nil, false
		}
		vals[i] = x
	}

	return vals, true
}
