package mix

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// DefaultPG is the neutral PG percentage used when none is given.
	DefaultPG = 50.0
	// DefaultNicotine is the nicotine concentration of a NicBase in mg/ml.
	DefaultNicotine = 6.0
	// DefaultAromaName labels an Aroma constructed without a name.
	DefaultAromaName = "Unnamed"
)

// Defaults holds the values constructors fall back to when an option is omitted.
type Defaults struct {
	PG        float64
	Nicotine  float64
	AromaName string
}

var (
	defaultsMu sync.RWMutex
	defaults   = Defaults{
		PG:        DefaultPG,
		Nicotine:  DefaultNicotine,
		AromaName: DefaultAromaName,
	}
)

// SetDefaults replaces the process-wide constructor defaults. The values are
// validated with the constructor rules; PG is clamped into [0,100].
func SetDefaults(d Defaults) error {
	if err := checkFinite("default pg", d.PG); err != nil {
		return err
	}
	if err := checkNonNegative("default nicotine", d.Nicotine); err != nil {
		return err
	}
	name, err := normalizeName(d.AromaName)
	if err != nil {
		return err
	}

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = Defaults{PG: clampPercent(d.PG), Nicotine: d.Nicotine, AromaName: name}
	return nil
}

// CurrentDefaults returns the constructor defaults in effect.
func CurrentDefaults() Defaults {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

type optionKind uint8

const (
	optPG optionKind = 1 << iota
	optNicotine
	optName
)

func (k optionKind) String() string {
	switch k {
	case optPG:
		return "pg"
	case optNicotine:
		return "nicotine"
	case optName:
		return "name"
	default:
		return "unknown"
	}
}

type params struct {
	pg       float64
	nicotine float64
	name     string
	set      optionKind
}

// Option customises a constructor. Options that do not apply to the kind of
// liquid being built are rejected.
type Option func(*params)

// WithPG sets the PG percentage. Values outside [0,100] are clamped.
func WithPG(pg float64) Option {
	return func(p *params) {
		p.pg = pg
		p.set |= optPG
	}
}

// WithNicotine sets the nicotine concentration of a NicBase in mg/ml.
func WithNicotine(mg float64) Option {
	return func(p *params) {
		p.nicotine = mg
		p.set |= optNicotine
	}
}

// WithName sets the name of an Aroma.
func WithName(name string) Option {
	return func(p *params) {
		p.name = name
		p.set |= optName
	}
}

func buildParams(kind string, allowed optionKind, opts []Option) (params, error) {
	d := CurrentDefaults()
	p := params{pg: d.PG, nicotine: d.Nicotine, name: d.AromaName}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&p)
	}

	if extra := p.set &^ allowed; extra != 0 {
		for _, k := range []optionKind{optPG, optNicotine, optName} {
			if extra&k != 0 {
				return params{}, fmt.Errorf("mix: option %s does not apply to %s: %w", k, kind, ErrInvalidArgument)
			}
		}
	}
	return p, nil
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("mix: aroma name must not be empty: %w", ErrInvalidArgument)
	}
	return trimmed, nil
}
