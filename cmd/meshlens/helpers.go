package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/meshlens/algoconf"
	"github.com/katalvlaran/meshlens/articulation"
	"github.com/katalvlaran/meshlens/diffusion"
	"github.com/katalvlaran/meshlens/dispatch"
	"github.com/katalvlaran/meshlens/mincut"
	"github.com/katalvlaran/meshlens/predict"
	"github.com/katalvlaran/meshlens/timeline"
)

// parseMask accepts decimal, hex (0x) and binary (0b) activation masks.
func parseMask(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("algorithms %q: %w", s, err)
	}
	if v > uint64(algoconf.MaxMask) {
		return 0, fmt.Errorf("algorithms %q: mask above 0b%05b", s, algoconf.MaxMask)
	}

	return uint8(v), nil
}

// parseValue types a --set value: int, float, bool, duration, otherwise string.
func parseValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}

// applySet handles one "kind.key=value" override.
func applySet(reg *algoconf.Registry, assignment string) error {
	lhs, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("set %q: want kind.key=value", assignment)
	}
	name, key, ok := strings.Cut(lhs, ".")
	if !ok || key == "" {
		return fmt.Errorf("set %q: want kind.key=value", assignment)
	}
	k, err := algoconf.ParseKind(name)
	if err != nil {
		return fmt.Errorf("set %q: %w", assignment, err)
	}
	reg.Params(k).Add(key, parseValue(value))

	return nil
}

// buildRegistry layers the config file, the mask flag and the --set overrides.
// Without a config file or mask every kind is enabled.
func buildRegistry(configPath, mask string, sets []string) (*algoconf.Registry, error) {
	reg := algoconf.New()
	if configPath != "" {
		f, err := algoconf.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		if reg, err = f.Registry(); err != nil {
			return nil, err
		}
	} else if mask == "" {
		reg.SetAlgorithms(algoconf.MaxMask)
	}
	if mask != "" {
		m, err := parseMask(mask)
		if err != nil {
			return nil, err
		}
		reg.SetAlgorithms(m)
	}
	for _, s := range sets {
		if err := applySet(reg, s); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func writeReport(w io.Writer, rep *dispatch.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "text":
		writeText(w, rep)
		return nil
	}

	return fmt.Errorf("unknown output format %q (want text or json)", format)
}

func writeText(w io.Writer, rep *dispatch.Report) {
	fmt.Fprintf(w, "Report:  %s\n", rep.ID)
	fmt.Fprintf(w, "Graph:   %d nodes, %d edges\n", rep.Nodes, rep.Edges)
	if rep.Len() == 0 {
		fmt.Fprintf(w, "No algorithms enabled.\n")
		return
	}
	for _, o := range rep.Outcomes {
		status := "ok"
		detail := summarize(o.Result)
		if !o.OK() {
			status = "FAIL"
			detail = o.Err.Error()
		}
		fmt.Fprintf(w, "  %-22s %-4s %8.2fms  %s\n", o.Kind, status,
			float64(o.Elapsed)/float64(time.Millisecond), detail)
	}
}

func summarize(result any) string {
	switch r := result.(type) {
	case *articulation.Result:
		return fmt.Sprintf("points=%v bridges=%d", r.Points, len(r.Bridges))
	case *mincut.Result:
		return fmt.Sprintf("weight=%g sides=%d/%d", r.Weight, len(r.Partition[0]), len(r.Partition[1]))
	case *diffusion.Result:
		if len(r.Ranking) == 0 {
			return "no nodes"
		}
		top := r.Ranking[0]
		return fmt.Sprintf("top=%s (%.3f) T=%d q=%g", top.ID, top.Score, r.Steps, r.Q)
	case *timeline.Result:
		return fmt.Sprintf("best=%s~%s (%.3f) metric=%s", r.Best.A, r.Best.B, r.Best.Distance, r.Metric)
	case *predict.Result:
		return fmt.Sprintf("predictions=%d excluded=%d method=%s", len(r.Predictions), len(r.Excluded), r.Method)
	case nil:
		return ""
	}

	return fmt.Sprintf("%v", result)
}
