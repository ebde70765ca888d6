package style

import (
	"math"

	"github.com/DasLixou/taffy/internal/core/opt"
)

// lengthKind tags which variant a Dimension/LengthPercentage/
// LengthPercentageAuto value currently holds. All three share this single
// backing representation (a kind tag plus one float64 payload) because in
// Go a hand-rolled tagged union is cheaper and clearer than an interface
// with three empty implementations.
type lengthKind uint8

const (
	kindPoints lengthKind = iota
	kindPercent
	kindAuto
)

// Dimension is {Auto, Points(f32), Percent(f32)} from spec §3.
type Dimension struct {
	kind lengthKind
	val  float64
}

// Points constructs a Dimension holding an absolute length.
func Points(v float64) Dimension { return Dimension{kind: kindPoints, val: v} }

// Percent constructs a Dimension holding a percentage of the containing
// block, expressed as a fraction (1.0 == 100%).
func Percent(v float64) Dimension { return Dimension{kind: kindPercent, val: v} }

// Auto is the "resolve from content" variant. It is not the zero value:
// a zero Dimension is Points(0).
var Auto = Dimension{kind: kindAuto}

// IsAuto reports whether d is the Auto variant.
func (d Dimension) IsAuto() bool { return d.kind == kindAuto }

// Resolve turns d into a concrete length given the size of the containing
// block along the same axis (None if the containing block's size along
// that axis is itself indefinite). Percent against an indefinite
// containing block resolves to None, matching CSS percentage resolution.
func (d Dimension) Resolve(containingBlock opt.Option[float64]) opt.Option[float64] {
	switch d.kind {
	case kindPoints:
		return opt.Some(sanitize(d.val))
	case kindPercent:
		cb, ok := containingBlock.Get()
		if !ok {
			return opt.None[float64]()
		}
		return opt.Some(sanitize(cb * d.val))
	default:
		return opt.None[float64]()
	}
}

// LengthPercentage is {Points(f32), Percent(f32)} — like Dimension but
// without an Auto variant. Used for padding, border and gap, none of
// which are ever "auto" in this spec.
type LengthPercentage struct {
	kind lengthKind
	val  float64
}

// LPPoints constructs a LengthPercentage holding an absolute length.
func LPPoints(v float64) LengthPercentage { return LengthPercentage{kind: kindPoints, val: v} }

// LPPercent constructs a LengthPercentage holding a percentage.
func LPPercent(v float64) LengthPercentage { return LengthPercentage{kind: kindPercent, val: v} }

// Resolve resolves against a containing-block size, treating an
// indefinite containing block as zero (padding/border/gap always
// contribute a definite contribution to box sizing, unlike Dimension).
func (l LengthPercentage) Resolve(containingBlock opt.Option[float64]) float64 {
	switch l.kind {
	case kindPercent:
		return sanitize(containingBlock.UnwrapOr(0) * l.val)
	default:
		return sanitize(l.val)
	}
}

// AsDimension upgrades a LengthPercentage to a Dimension (never Auto).
func (l LengthPercentage) AsDimension() Dimension { return Dimension{kind: l.kind, val: l.val} }

// LengthPercentageAuto is {Auto, Points(f32), Percent(f32)} — used for
// margin and inset, both of which may be "auto".
type LengthPercentageAuto struct {
	kind lengthKind
	val  float64
}

// LPAPoints constructs an absolute-length LengthPercentageAuto.
func LPAPoints(v float64) LengthPercentageAuto { return LengthPercentageAuto{kind: kindPoints, val: v} }

// LPAPercent constructs a percentage LengthPercentageAuto.
func LPAPercent(v float64) LengthPercentageAuto {
	return LengthPercentageAuto{kind: kindPercent, val: v}
}

// LPAAuto is the Auto variant.
var LPAAuto = LengthPercentageAuto{kind: kindAuto}

// IsAuto reports whether l is the Auto variant.
func (l LengthPercentageAuto) IsAuto() bool { return l.kind == kindAuto }

// Resolve resolves against a containing-block size; Auto resolves to
// None so callers can tell "explicitly zero" from "defer to auto-margin
// distribution" apart (§4.6 step 9: auto margins absorb free space).
func (l LengthPercentageAuto) Resolve(containingBlock opt.Option[float64]) opt.Option[float64] {
	switch l.kind {
	case kindAuto:
		return opt.None[float64]()
	case kindPercent:
		cb, ok := containingBlock.Get()
		if !ok {
			return opt.Some(0.0)
		}
		return opt.Some(sanitize(cb * l.val))
	default:
		return opt.Some(sanitize(l.val))
	}
}

// ResolveOrZero is Resolve with Auto (or an unresolved percentage)
// collapsed to zero, for code paths that have already handled auto
// margins separately (e.g. once auto-margin distribution has run).
func (l LengthPercentageAuto) ResolveOrZero(containingBlock opt.Option[float64]) float64 {
	return l.Resolve(containingBlock).UnwrapOr(0)
}

// sanitize coerces NaN to 0 per spec §4.7 ("NaN inputs are treated as
// 0.0") and leaves everything else, including infinities, untouched —
// infinities are handled by the AvailableSpace layer, not here.
func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
