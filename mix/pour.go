package mix

import (
	"context"
	"fmt"

	applog "fludo/internal/log"
)

// Pour removes amount ml from the recipe and returns it as a new recipe with
// the same PG ratio, nicotine concentration and aroma percentages. The
// source recipe keeps the remainder.
func (r *Recipe) Pour(amount float64) (*Recipe, error) {
	if err := checkFinite("pour amount", amount); err != nil {
		return nil, err
	}

	sample := newEmptyRecipe()

	r.mu.Lock()
	if amount < 0 || amount > r.volume {
		volume := r.volume
		r.mu.Unlock()
		return nil, fmt.Errorf("mix: pour amount must be between 0 and %v ml, got %v: %w", volume, amount, ErrInvalidArgument)
	}

	if amount > 0 {
		share := amount / r.volume
		sample.volume = amount
		sample.pgVolume = r.pgVolume * share
		sample.vgVolume = r.vgVolume * share
		sample.nicMass = r.nicMass * share
		for name, volume := range r.aromaVolumes {
			sample.aromaVolumes[name] = volume * share
		}

		r.volume -= amount
		r.pgVolume -= sample.pgVolume
		r.vgVolume -= sample.vgVolume
		r.nicMass -= sample.nicMass
		for name, volume := range sample.aromaVolumes {
			r.aromaVolumes[name] -= volume
		}
		r.recompute()
		sample.recompute()
	}
	remaining := r.volume
	r.mu.Unlock()

	applog.Debug(context.Background(), "recipe poured",
		"recipe", r.id,
		"sample", sample.id,
		"amount_ml", amount,
		"remaining_ml", remaining,
	)
	return sample, nil
}
