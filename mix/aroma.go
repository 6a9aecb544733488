package mix

import "fmt"

// Aroma is a named flavoring. Recipes track aromas by name.
type Aroma struct {
	Liquid
	name string
}

// NewAroma builds a flavoring of volume ml. Accepts WithPG and WithName.
func NewAroma(volume float64, opts ...Option) (Aroma, error) {
	p, err := buildParams("aroma", optPG|optName, opts)
	if err != nil {
		return Aroma{}, err
	}
	name, err := normalizeName(p.name)
	if err != nil {
		return Aroma{}, err
	}

	base, err := newLiquid(volume, p.pg)
	if err != nil {
		return Aroma{}, err
	}
	return Aroma{Liquid: base, name: name}, nil
}

// Name returns the aroma's grouping key.
func (a Aroma) Name() string { return a.name }

func (a Aroma) String() string {
	return fmt.Sprintf("%sml Aroma %s %s", formatQuantity(a.volume), a.name, formatRatio(a.pg, a.vg))
}
