package mix

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Component is one of the liquids a Recipe can fold: Liquid, NicBase, Aroma
// or *Recipe. The set is closed; Combine rejects anything else.
type Component interface {
	Volume() float64
	PG() float64
	VG() float64
	PGVolume() float64
	VGVolume() float64
	String() string
	component()
}

// Liquid is a volume of PG/VG base. It is immutable once constructed.
type Liquid struct {
	volume   float64
	pg       float64
	vg       float64
	pgVolume float64
	vgVolume float64
}

// NewLiquid builds a base liquid of volume ml. Accepts WithPG.
func NewLiquid(volume float64, opts ...Option) (Liquid, error) {
	p, err := buildParams("liquid", optPG, opts)
	if err != nil {
		return Liquid{}, err
	}
	return newLiquid(volume, p.pg)
}

func newLiquid(volume, pg float64) (Liquid, error) {
	if err := checkFinite("volume", volume); err != nil {
		return Liquid{}, err
	}
	if err := checkFinite("pg", pg); err != nil {
		return Liquid{}, err
	}
	if volume < 0 {
		return Liquid{}, fmt.Errorf("mix: volume can not be smaller than 0, got %v: %w", volume, ErrDomain)
	}

	l := Liquid{volume: volume, pg: clampPercent(pg)}
	l.vg = 100 - l.pg
	l.pgVolume = l.volume * (l.pg / 100)
	l.vgVolume = l.volume - l.pgVolume
	return l, nil
}

// Volume returns the volume in ml.
func (l Liquid) Volume() float64 { return l.volume }

// PG returns the propylene glycol percentage.
func (l Liquid) PG() float64 { return l.pg }

// VG returns the vegetable glycerin percentage.
func (l Liquid) VG() float64 { return l.vg }

// PGVolume returns the PG share of the volume in ml.
func (l Liquid) PGVolume() float64 { return l.pgVolume }

// VGVolume returns the VG share of the volume in ml.
func (l Liquid) VGVolume() float64 { return l.vgVolume }

func (l Liquid) String() string {
	return fmt.Sprintf("%sml Base %s", formatQuantity(l.volume), formatRatio(l.pg, l.vg))
}

func (Liquid) component() {}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

func formatQuantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).Round(2).String()
}

func formatRatio(pg, vg float64) string {
	return fmt.Sprintf("%sPG/%sVG", formatQuantity(pg), formatQuantity(vg))
}
