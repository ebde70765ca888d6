package geom

// Numeric is the set of coordinate types the layout geometry primitives
// can be instantiated over. The solver itself only ever uses float64, but
// keeping these generic mirrors how the rest of this package already
// separates "shape" (Size) from "arithmetic" (math.go) and lets a host
// reuse them for integer pixel grids if it wants to.
type Numeric interface {
	~float64 | ~float32 | ~int
}

// AbsoluteAxis selects one of the two layout axes independent of flex
// direction. Inline (X) is always horizontal, Block (Y) always vertical.
type AbsoluteAxis int

const (
	AxisHorizontal AbsoluteAxis = iota
	AxisVertical
)

// Point2 is a parametric 2D coordinate pair.
type Point2[T Numeric] struct {
	X, Y T
}

// ZeroPoint2 returns the origin.
func ZeroPoint2[T Numeric]() Point2[T] { return Point2[T]{} }

// Add returns the componentwise sum of two points.
func (p Point2[T]) Add(o Point2[T]) Point2[T] { return Point2[T]{p.X + o.X, p.Y + o.Y} }

// Size2 is a parametric width/height pair. It is used throughout the
// layout engine so it can hold float64 extents, Option[float64] known
// dimensions, AvailableSpace constraints, or Dimension style values via
// the same shape.
type Size2[T any] struct {
	Width, Height T
}

// Get returns the component for the given absolute axis.
func (s Size2[T]) Get(axis AbsoluteAxis) T {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the given axis replaced.
func (s Size2[T]) Set(axis AbsoluteAxis, v T) Size2[T] {
	if axis == AxisHorizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// SizeF64Zero is the zero-valued float64 size, spelled out for clarity at
// call sites that build up a Size2[float64] from scratch.
func SizeF64Zero() Size2[float64] { return Size2[float64]{} }

// MapSize applies f to both components, producing a Size2 of a possibly
// different element type. Used to turn a Size2[Option[float64]] into a
// Size2[AvailableSpace] and similar conversions.
func MapSize[A, B any](s Size2[A], f func(A) B) Size2[B] {
	return Size2[B]{Width: f(s.Width), Height: f(s.Height)}
}

// Rect4 is a parametric four-edge box (top/right/bottom/left), used for
// margin, padding, border and inset.
type Rect4[T any] struct {
	Top, Right, Bottom, Left T
}

// MainStart returns the edge that precedes the main-axis content box for
// the given (row-ness, reverse-ness) flex direction.
func (r Rect4[T]) MainStart(isRow, reverse bool) T {
	switch {
	case isRow && !reverse:
		return r.Left
	case isRow && reverse:
		return r.Right
	case !isRow && !reverse:
		return r.Top
	default:
		return r.Bottom
	}
}

// MainEnd is the mirror of MainStart.
func (r Rect4[T]) MainEnd(isRow, reverse bool) T {
	switch {
	case isRow && !reverse:
		return r.Right
	case isRow && reverse:
		return r.Left
	case !isRow && !reverse:
		return r.Bottom
	default:
		return r.Top
	}
}

// CrossStart returns the edge preceding the cross-axis content box.
// The cross axis never reverses on its own (only wrap-reverse flips
// line order, which is handled separately).
func (r Rect4[T]) CrossStart(isRow bool) T {
	if isRow {
		return r.Top
	}
	return r.Left
}

// CrossEnd is the mirror of CrossStart.
func (r Rect4[T]) CrossEnd(isRow bool) T {
	if isRow {
		return r.Bottom
	}
	return r.Right
}
