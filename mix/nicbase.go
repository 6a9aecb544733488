package mix

import "fmt"

// NicBase is a base liquid carrying nicotine.
type NicBase struct {
	Liquid
	nicotine float64
	nicMass  float64
}

// NewNicBase builds a nicotine base of volume ml. Accepts WithPG and
// WithNicotine; a negative concentration is rejected with ErrDomain.
func NewNicBase(volume float64, opts ...Option) (NicBase, error) {
	p, err := buildParams("nicotine base", optPG|optNicotine, opts)
	if err != nil {
		return NicBase{}, err
	}
	if err := checkFinite("nicotine concentration", p.nicotine); err != nil {
		return NicBase{}, err
	}

	base, err := newLiquid(volume, p.pg)
	if err != nil {
		return NicBase{}, err
	}
	if err := checkNonNegative("nicotine concentration", p.nicotine); err != nil {
		return NicBase{}, err
	}

	return NicBase{
		Liquid:   base,
		nicotine: p.nicotine,
		nicMass:  p.nicotine * base.volume,
	}, nil
}

// Nicotine returns the concentration in mg/ml.
func (n NicBase) Nicotine() float64 { return n.nicotine }

// NicMass returns the total nicotine in mg.
func (n NicBase) NicMass() float64 { return n.nicMass }

func (n NicBase) String() string {
	return fmt.Sprintf("%sml NicBase %s %smg/ml",
		formatQuantity(n.volume), formatRatio(n.pg, n.vg), formatQuantity(n.nicotine))
}
