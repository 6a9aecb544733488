package mix

import (
	"errors"
	"math"
	"testing"
)

func mustNicBase(t *testing.T, volume float64, opts ...Option) NicBase {
	t.Helper()
	n, err := NewNicBase(volume, opts...)
	if err != nil {
		t.Fatalf("NewNicBase(%v) error = %v", volume, err)
	}
	return n
}

func TestNicBaseNicMass(t *testing.T) {
	t.Parallel()

	n := mustNicBase(t, 10, WithPG(100), WithNicotine(20))
	if n.NicMass() != 200 {
		t.Fatalf("NicMass() = %v, want 200", n.NicMass())
	}
	if n.Nicotine() != 20 {
		t.Fatalf("Nicotine() = %v, want 20", n.Nicotine())
	}
	if n.PGVolume() != 10 || n.VGVolume() != 0 {
		t.Fatalf("sub-volumes = %v/%v, want 10/0", n.PGVolume(), n.VGVolume())
	}
	if got, want := n.String(), "10ml NicBase 100PG/0VG 20mg/ml"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestNicBaseDefaultConcentration(t *testing.T) {
	t.Parallel()

	n := mustNicBase(t, 100)
	if n.Nicotine() != DefaultNicotine {
		t.Fatalf("Nicotine() = %v, want %v", n.Nicotine(), DefaultNicotine)
	}
	if n.NicMass() != 600 {
		t.Fatalf("NicMass() = %v, want 600", n.NicMass())
	}
}

func TestNewNicBaseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		volume float64
		opts   []Option
		want   error
	}{
		{"negative concentration", 100, []Option{WithPG(50), WithNicotine(-1)}, ErrDomain},
		{"nan concentration", 100, []Option{WithNicotine(math.NaN())}, ErrInvalidArgument},
		{"type error wins over range error", -5, []Option{WithNicotine(math.Inf(1))}, ErrInvalidArgument},
		{"invalid volume wins over negative concentration", math.NaN(), []Option{WithNicotine(-1)}, ErrInvalidArgument},
		{"name option", 100, []Option{WithName("x")}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewNicBase(tt.volume, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewNicBase() error = %v, want %v", err, tt.want)
			}
		})
	}
}
