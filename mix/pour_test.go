package mix

import (
	"errors"
	"math"
	"testing"
)

func pourFixture(t *testing.T) *Recipe {
	t.Helper()
	return mustRecipe(t,
		mustLiquid(t, 80, WithPG(30)),
		mustNicBase(t, 10, WithPG(100), WithNicotine(20)),
		mustAroma(t, 10, WithPG(0), WithName("Mango")),
	)
}

func TestPourPreservesComposition(t *testing.T) {
	t.Parallel()

	amounts := []float64{0.5, 25, 33.3, 99.99}
	for _, amount := range amounts {
		r := pourFixture(t)
		before := r.Snapshot()

		sample, err := r.Pour(amount)
		if err != nil {
			t.Fatalf("Pour(%v) error = %v", amount, err)
		}
		s := sample.Snapshot()
		rest := r.Snapshot()

		if !approxEqual(s.Volume, amount) {
			t.Fatalf("Pour(%v) sample volume = %v", amount, s.Volume)
		}
		if !approxEqual(s.Volume+rest.Volume, before.Volume) {
			t.Fatalf("Pour(%v) volumes %v + %v, want %v", amount, s.Volume, rest.Volume, before.Volume)
		}
		if !approxEqual(s.NicMass+rest.NicMass, before.NicMass) {
			t.Fatalf("Pour(%v) nicotine %v + %v, want %v", amount, s.NicMass, rest.NicMass, before.NicMass)
		}

		for _, got := range []Snapshot{s, rest} {
			if !approxEqual(got.PG, 34) {
				t.Fatalf("Pour(%v) PG = %v, want 34", amount, got.PG)
			}
			if !approxEqual(got.Nicotine, 2) {
				t.Fatalf("Pour(%v) nicotine = %v, want 2", amount, got.Nicotine)
			}
			if !approxEqual(got.AromaPercents["Mango"], 10) {
				t.Fatalf("Pour(%v) Mango = %v%%, want 10%%", amount, got.AromaPercents["Mango"])
			}
		}
		if !approxEqual(s.AromaVolumes["Mango"]+rest.AromaVolumes["Mango"], 10) {
			t.Fatalf("Pour(%v) Mango volumes %v + %v, want 10", amount, s.AromaVolumes["Mango"], rest.AromaVolumes["Mango"])
		}
	}
}

func TestPourEverything(t *testing.T) {
	t.Parallel()

	r := pourFixture(t)
	sample, err := r.Pour(100)
	if err != nil {
		t.Fatalf("Pour(100) error = %v", err)
	}
	if sample.Volume() != 100 || !approxEqual(sample.PG(), 34) {
		t.Fatalf("sample = %s, want 100ml at 34PG", sample)
	}

	s := r.Snapshot()
	if s.Volume != 0 || s.NicMass != 0 || s.Nicotine != 0 {
		t.Fatalf("remainder = %+v, want empty", s)
	}
	if s.PG != 50 || s.VG != 50 {
		t.Fatalf("remainder ratio = %v/%v, want 50/50", s.PG, s.VG)
	}
	if s.AromaVolumes["Mango"] != 0 || s.AromaPercents["Mango"] != 0 {
		t.Fatalf("remainder Mango = %v ml / %v%%, want 0", s.AromaVolumes["Mango"], s.AromaPercents["Mango"])
	}
}

func TestPourNothing(t *testing.T) {
	t.Parallel()

	r := pourFixture(t)
	sample, err := r.Pour(0)
	if err != nil {
		t.Fatalf("Pour(0) error = %v", err)
	}
	if sample.Volume() != 0 {
		t.Fatalf("sample volume = %v, want 0", sample.Volume())
	}
	if r.Volume() != 100 {
		t.Fatalf("Volume() = %v, want 100", r.Volume())
	}

	empty := mustRecipe(t)
	if _, err := empty.Pour(0); err != nil {
		t.Fatalf("Pour(0) on empty recipe error = %v", err)
	}
}

func TestPourRejectsInvalidAmounts(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{-1, 100.0001, math.NaN(), math.Inf(1)} {
		r := pourFixture(t)
		sample, err := r.Pour(amount)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Pour(%v) error = %v, want %v", amount, err, ErrInvalidArgument)
		}
		if sample != nil {
			t.Fatalf("Pour(%v) returned sample on error", amount)
		}
		if r.Volume() != 100 {
			t.Fatalf("Pour(%v) changed volume to %v", amount, r.Volume())
		}
	}
}

func TestPourSampleCanBeRecombined(t *testing.T) {
	t.Parallel()

	r := pourFixture(t)
	sample, err := r.Pour(40)
	if err != nil {
		t.Fatalf("Pour(40) error = %v", err)
	}

	mustCombine(t, r, sample)
	if !approxEqual(r.Volume(), 100) || !approxEqual(r.Nicotine(), 2) {
		t.Fatalf("recombined = %s, want 100ml at 2mg/ml", r)
	}
	if !approxEqual(r.AromaVolumes()["Mango"], 10) {
		t.Fatalf("recombined Mango = %v, want 10", r.AromaVolumes()["Mango"])
	}
}
