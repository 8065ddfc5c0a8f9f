// Command mezura runs measure scenarios: it reads a YAML file of symbolic
// sets with expected Lebesgue measures, evaluates each one, and reports
// mismatches. Exit status 0 means every expectation held.
//
// Usage:
//
//	mezura --scenario testdata/basic.yaml [--eps 1e-9] [--max-terms 4096] [-v]
//
// Scenario format:
//
//	cases:
//	  - name: unit-example
//	    set: { kind: ico, lo: 2, hi: 5 }
//	    expect: "3"
//	    measurable: true
//	  - name: lower-ray
//	    set: { kind: iio, hi: 0 }
//	    expect: inf
//
// Kinds: empty, ico (lo/hi), ioo (lo/hi), point (x), iio (hi), ici (lo),
// union (parts: list of set specs).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mezura/lebesgue"
	"github.com/katalvlaran/mezura/xreal"
)

var errUnknownKind = errors.New("mezura: unknown set kind")

type scenarioFile struct {
	Cases []scenarioCase `yaml:"cases"`
}

type scenarioCase struct {
	Name       string  `yaml:"name"`
	Set        setSpec `yaml:"set"`
	Expect     string  `yaml:"expect"`
	Measurable *bool   `yaml:"measurable,omitempty"`
}

type setSpec struct {
	Kind  string    `yaml:"kind"`
	Lo    float64   `yaml:"lo"`
	Hi    float64   `yaml:"hi"`
	X     float64   `yaml:"x"`
	Parts []setSpec `yaml:"parts"`
}

// build converts a YAML case entry into a symbolic set.
func (sp setSpec) build() (lebesgue.Set, error) {
	switch strings.ToLower(sp.Kind) {
	case "empty":
		return lebesgue.Empty{}, nil
	case "ico":
		return lebesgue.Ico{Lo: sp.Lo, Hi: sp.Hi}, nil
	case "ioo":
		return lebesgue.Ioo{Lo: sp.Lo, Hi: sp.Hi}, nil
	case "point":
		return lebesgue.Pt{X: sp.X}, nil
	case "iio":
		return lebesgue.Iio{Hi: sp.Hi}, nil
	case "ici":
		return lebesgue.Ici{Lo: sp.Lo}, nil
	case "union":
		u := make(lebesgue.Union, 0, len(sp.Parts))
		for _, p := range sp.Parts {
			s, err := p.build()
			if err != nil {
				return nil, err
			}
			u = append(u, s)
		}

		return u, nil
	default:
		return nil, fmt.Errorf("%q: %w", sp.Kind, errUnknownKind)
	}
}

// parseExpect reads an expected measure: a number, or "inf" for +∞.
func parseExpect(s string) (xreal.Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", "∞", "+∞":
		return xreal.Inf(), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return xreal.Zero(), fmt.Errorf("mezura: bad expected measure %q: %w", s, err)
	}

	return xreal.New(f)
}

// runCase evaluates one scenario case and returns nil when every
// expectation held.
func runCase(c scenarioCase, opts *lebesgue.Options) error {
	s, err := c.Set.build()
	if err != nil {
		return err
	}
	want, err := parseExpect(c.Expect)
	if err != nil {
		return err
	}

	got, err := lebesgue.Measure(s, opts)
	if err != nil {
		return err
	}
	slog.Debug("evaluated", "case", c.Name, "set", s.String(), "measure", got.String())

	if !got.ApproxEqual(want, opts.Eps) {
		return fmt.Errorf("mezura: case %q: measure %v, expected %v", c.Name, got, want)
	}

	if c.Measurable != nil {
		ok, merr := lebesgue.IsMeasurable(s, opts)
		if merr != nil {
			return merr
		}
		if ok != *c.Measurable {
			return fmt.Errorf("mezura: case %q: measurable=%v, expected %v", c.Name, ok, *c.Measurable)
		}
	}

	return nil
}

func main() {
	var (
		scenarioPath string
		eps          float64
		maxTerms     int
		verbose      bool
	)
	pflag.StringVar(&scenarioPath, "scenario", "", "path to a YAML scenario file (required)")
	pflag.Float64Var(&eps, "eps", lebesgue.DefaultEps, "equality tolerance")
	pflag.IntVar(&maxTerms, "max-terms", lebesgue.DefaultMaxTerms, "lazy enumeration budget")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log each evaluated case")
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))

	if scenarioPath == "" {
		slog.Error("missing required --scenario flag")
		pflag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		slog.Error("cannot read scenario", "path", scenarioPath, "err", err)
		os.Exit(2)
	}
	var sf scenarioFile
	if err = yaml.Unmarshal(data, &sf); err != nil {
		slog.Error("cannot parse scenario", "path", scenarioPath, "err", err)
		os.Exit(2)
	}

	opts := lebesgue.DefaultOptions()
	opts.Eps = eps
	opts.MaxTerms = maxTerms

	failures := 0
	for _, c := range sf.Cases {
		if err = runCase(c, &opts); err != nil {
			slog.Error("case failed", "case", c.Name, "err", err)
			failures++

			continue
		}
		slog.Info("case ok", "case", c.Name, "expect", c.Expect)
	}

	if failures > 0 {
		slog.Error("scenario failed", "path", scenarioPath, "failures", failures, "cases", len(sf.Cases))
		os.Exit(1)
	}
	slog.Info("scenario passed", "path", scenarioPath, "cases", len(sf.Cases))
}
