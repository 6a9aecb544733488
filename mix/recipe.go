package mix

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	applog "fludo/internal/log"
)

// Recipe accumulates liquids into one mixture. It is safe for concurrent use;
// every operation runs under the recipe's own lock. Recipes never keep
// references to the components folded into them.
type Recipe struct {
	mu sync.Mutex

	id       uuid.UUID
	volume   float64
	pg       float64
	vg       float64
	pgVolume float64
	vgVolume float64
	nicotine float64
	nicMass  float64

	aromaVolumes  map[string]float64
	aromaPercents map[string]float64
}

// Snapshot is a consistent copy of a recipe's state.
type Snapshot struct {
	ID            string             `json:"id"`
	Volume        float64            `json:"volume_ml"`
	PG            float64            `json:"pg"`
	VG            float64            `json:"vg"`
	PGVolume      float64            `json:"pg_ml"`
	VGVolume      float64            `json:"vg_ml"`
	Nicotine      float64            `json:"nicotine_mg_ml"`
	NicMass       float64            `json:"nicotine_mg"`
	AromaVolumes  map[string]float64 `json:"aroma_volumes_ml"`
	AromaPercents map[string]float64 `json:"aroma_percents"`
}

// contribution is what a single component adds to a recipe.
type contribution struct {
	volume   float64
	pgVolume float64
	vgVolume float64
	nicMass  float64
	aromas   map[string]float64
}

func newEmptyRecipe() *Recipe {
	return &Recipe{
		id:            uuid.New(),
		pg:            DefaultPG,
		vg:            100 - DefaultPG,
		aromaVolumes:  make(map[string]float64),
		aromaPercents: make(map[string]float64),
	}
}

// NewRecipe returns an empty 50/50 recipe with the given components combined
// into it.
func NewRecipe(components ...Component) (*Recipe, error) {
	r := newEmptyRecipe()
	applog.Debug(context.Background(), "recipe created", "recipe", r.id)

	if len(components) == 0 {
		return r, nil
	}
	if _, err := r.Combine(components...); err != nil {
		return nil, err
	}
	return r, nil
}

// Combine folds the components into the recipe in order and returns the
// recipe for chaining. Every component is checked before any is folded, so on
// error the recipe is returned unchanged.
func (r *Recipe) Combine(components ...Component) (*Recipe, error) {
	parts := make([]contribution, 0, len(components))
	for i, c := range components {
		part, err := contributionOf(c)
		if err != nil {
			return r, fmt.Errorf("mix: combine component %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	r.mu.Lock()
	for _, part := range parts {
		r.fold(part)
	}
	r.recompute()
	volume, nicotine := r.volume, r.nicotine
	r.mu.Unlock()

	applog.Debug(context.Background(), "recipe combined",
		"recipe", r.id,
		"components", len(parts),
		"volume_ml", volume,
		"nicotine_mg_ml", nicotine,
	)
	return r, nil
}

func contributionOf(c Component) (contribution, error) {
	switch v := c.(type) {
	case Liquid:
		return contribution{volume: v.volume, pgVolume: v.pgVolume, vgVolume: v.vgVolume}, nil
	case NicBase:
		return contribution{
			volume:   v.volume,
			pgVolume: v.pgVolume,
			vgVolume: v.vgVolume,
			nicMass:  v.nicMass,
		}, nil
	case Aroma:
		return contribution{
			volume:   v.volume,
			pgVolume: v.pgVolume,
			vgVolume: v.vgVolume,
			aromas:   map[string]float64{v.name: v.volume},
		}, nil
	case *Recipe:
		if v == nil {
			return contribution{}, fmt.Errorf("nil recipe: %w", ErrUnsupportedType)
		}
		// Taken under the component's lock only, so a recipe may be
		// combined into itself.
		s := v.Snapshot()
		return contribution{
			volume:   s.Volume,
			pgVolume: s.PGVolume,
			vgVolume: s.VGVolume,
			nicMass:  s.NicMass,
			aromas:   s.AromaVolumes,
		}, nil
	default:
		return contribution{}, fmt.Errorf("can only combine Liquid, NicBase, Aroma and Recipe, got %T: %w", c, ErrUnsupportedType)
	}
}

// fold must be called with r.mu held.
func (r *Recipe) fold(part contribution) {
	r.volume += part.volume
	r.pgVolume += part.pgVolume
	r.vgVolume += part.vgVolume
	r.updateRatio()

	r.nicMass += part.nicMass
	for name, volume := range part.aromas {
		r.aromaVolumes[name] += volume
	}
}

func (r *Recipe) updateRatio() {
	if r.volume > 0 {
		r.pg = (r.pgVolume / r.volume) * 100
		r.vg = 100 - r.pg
		return
	}
	r.pg, r.vg = DefaultPG, 100-DefaultPG
}

// recompute refreshes the quantities derived from the running totals.
func (r *Recipe) recompute() {
	r.updateRatio()

	r.nicotine = 0
	if r.volume > 0 {
		r.nicotine = r.nicMass / r.volume
	}

	for name, volume := range r.aromaVolumes {
		if r.volume > 0 {
			r.aromaPercents[name] = (volume / r.volume) * 100
		} else {
			r.aromaPercents[name] = 0
		}
	}
}

// ID identifies the recipe in logs.
func (r *Recipe) ID() uuid.UUID { return r.id }

// Volume returns the total volume in ml.
func (r *Recipe) Volume() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.volume
}

// PG returns the PG percentage of the mixture.
func (r *Recipe) PG() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pg
}

// VG returns the VG percentage of the mixture.
func (r *Recipe) VG() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vg
}

// PGVolume returns the accumulated PG in ml.
func (r *Recipe) PGVolume() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pgVolume
}

// VGVolume returns the accumulated VG in ml.
func (r *Recipe) VGVolume() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vgVolume
}

// Nicotine returns the nicotine concentration in mg/ml, 0 for an empty recipe.
func (r *Recipe) Nicotine() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nicotine
}

// NicMass returns the accumulated nicotine in mg.
func (r *Recipe) NicMass() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nicMass
}

// AromaVolumes returns a copy of the per-name aroma volumes in ml.
func (r *Recipe) AromaVolumes() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.aromaVolumes)
}

// AromaPercents returns a copy of the per-name aroma share of the volume.
func (r *Recipe) AromaPercents() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.aromaPercents)
}

// AromaNames returns the tracked aroma names in sorted order.
func (r *Recipe) AromaNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for name := range r.aromaVolumes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Snapshot returns the recipe state as read under a single lock.
func (r *Recipe) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ID:            r.id.String(),
		Volume:        r.volume,
		PG:            r.pg,
		VG:            r.vg,
		PGVolume:      r.pgVolume,
		VGVolume:      r.vgVolume,
		Nicotine:      r.nicotine,
		NicMass:       r.nicMass,
		AromaVolumes:  maps.Clone(r.aromaVolumes),
		AromaPercents: maps.Clone(r.aromaPercents),
	}
}

// Clone returns an independent recipe with the same contents and a new ID.
func (r *Recipe) Clone() *Recipe {
	s := r.Snapshot()
	c := newEmptyRecipe()
	c.volume = s.Volume
	c.pg = s.PG
	c.vg = s.VG
	c.pgVolume = s.PGVolume
	c.vgVolume = s.VGVolume
	c.nicotine = s.Nicotine
	c.nicMass = s.NicMass
	c.aromaVolumes = s.AromaVolumes
	c.aromaPercents = s.AromaPercents
	return c
}

func (r *Recipe) String() string {
	s := r.Snapshot()
	return fmt.Sprintf("%sml Recipe %s %smg/ml",
		formatQuantity(s.Volume), formatRatio(s.PG, s.VG), formatQuantity(s.Nicotine))
}

func (*Recipe) component() {}
