package layout

import (
	"math"

	"github.com/DasLixou/taffy/internal/core/opt"
)

// availableSpaceKind tags AvailableSpace's three variants.
type availableSpaceKind uint8

const (
	spaceDefinite availableSpaceKind = iota
	spaceMinContent
	spaceMaxContent
)

// AvailableSpace is {MinContent, MaxContent, Definite(f32)} from spec §3.
// It is axis-independent: a node is sized under one AvailableSpace value
// per axis.
type AvailableSpace struct {
	kind availableSpaceKind
	val  float64
}

// Definite constructs a concrete available-space bound. A non-finite
// value (±Inf) behaves like MaxContent for constraint purposes per
// spec §4.7.
func Definite(v float64) AvailableSpace {
	if math.IsNaN(v) {
		v = 0
	}
	if math.IsInf(v, 0) {
		return MaxContent
	}
	return AvailableSpace{kind: spaceDefinite, val: v}
}

// MinContent requests the smallest size that avoids overflow.
var MinContent = AvailableSpace{kind: spaceMinContent}

// MaxContent requests the size the content would take with no wrapping.
var MaxContent = AvailableSpace{kind: spaceMaxContent}

// IsDefinite reports whether the space is a concrete length.
func (a AvailableSpace) IsDefinite() bool { return a.kind == spaceDefinite }

// IsMinContent reports the MinContent variant.
func (a AvailableSpace) IsMinContent() bool { return a.kind == spaceMinContent }

// IsMaxContent reports the MaxContent variant.
func (a AvailableSpace) IsMaxContent() bool { return a.kind == spaceMaxContent }

// Unwrap returns the definite value, or 0 if not definite. Callers
// should check IsDefinite first; this mirrors Option.Unwrap's contract.
func (a AvailableSpace) Unwrap() float64 { return a.val }

// IntoOption converts a definite AvailableSpace into a known dimension,
// and a Min/MaxContent one into None — this is the "parent_size =
// available_space.into_options()" step of spec §4.1.
func (a AvailableSpace) IntoOption() opt.Option[float64] {
	if a.kind == spaceDefinite {
		return opt.Some(a.val)
	}
	return opt.None[float64]()
}

// epsilon is the "roughly equal" tolerance documented as an Open
// Question in spec §9, pinned to the value used by the Taffy source
// this spec was distilled from.
const epsilon = 1e-4

// IsRoughlyEqual implements the cache hit-predicate's AvailableSpace
// comparison (spec §4.3): Min/MaxContent only match themselves, and two
// Definite values match within epsilon.
func (a AvailableSpace) IsRoughlyEqual(b AvailableSpace) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind != spaceDefinite {
		return true
	}
	return math.Abs(a.val-b.val) < epsilon
}

// OrElse returns the definite value, or the result of calling f when
// this AvailableSpace is Min/MaxContent.
func (a AvailableSpace) OrElse(f func() float64) float64 {
	if a.kind == spaceDefinite {
		return a.val
	}
	return f()
}
