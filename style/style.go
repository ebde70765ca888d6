// Package style defines the recognized style vocabulary a node's layout
// is computed from (spec §3, §6): the tagged-union length types, the
// alignment/direction enumerations, and the Style struct itself. It has
// no dependency on the tree or the solver — a Style is a plain value.
//
// Adapted from instructions/auto_layout_styles.go's ContainerStyle and
// ItemStyle, merged into the single Style struct spec §3 calls for and
// generalized from bare pixel ints to the Dimension/LengthPercentage(Auto)
// tagged unions so percentages and auto are representable.
package style

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
)

// Style aggregates every property a node's style may declare. A node
// that is not itself a flex/grid container (i.e. has no children) still
// carries a Style: position_type, size/min/max/margin and aspect_ratio
// all apply to leaves too.
type Style struct {
	Display      Display
	PositionType PositionType

	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align // only meaningful when set on a child; zero value (AlignStart) means "inherit from container's AlignItems" — use SetAlignSelf to set an explicit value
	AlignContent   Align

	hasAlignSelf bool

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension

	Size    geom.Size2[Dimension]
	MinSize geom.Size2[Dimension]
	MaxSize geom.Size2[Dimension]

	Margin  geom.Rect4[LengthPercentageAuto]
	Padding geom.Rect4[LengthPercentage]
	Border  geom.Rect4[LengthPercentage]
	Inset   geom.Rect4[LengthPercentageAuto]

	Gap geom.Size2[LengthPercentage]

	AspectRatio    float64 // 0 means "not set"; must be > 0 when set
	hasAspectRatio bool
}

// Default returns the style all fields resolve to when left unset:
// Display Flex, Relative positioning, Row direction, NoWrap,
// justify-content flex-start, but align-items/align-content both stretch
// — matching CSS's initial "normal" value, which resolves to stretching
// behavior for both properties in a flex formatting context. flex-grow
// is 0 and flex-shrink is 1, matching CSS.
func Default() Style {
	return Style{
		Display:        DisplayFlex,
		PositionType:   Relative,
		FlexDirection:  Row,
		FlexWrap:       NoWrap,
		JustifyContent: JustifyStart,
		AlignItems:     AlignStretch,
		AlignContent:   AlignStretch,
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto,
		Size:           geom.Size2[Dimension]{Width: Auto, Height: Auto},
		MinSize:        geom.Size2[Dimension]{Width: Auto, Height: Auto},
		MaxSize:        geom.Size2[Dimension]{Width: Auto, Height: Auto},
		Margin:         geom.Rect4[LengthPercentageAuto]{},
		Padding:        geom.Rect4[LengthPercentage]{},
		Border:         geom.Rect4[LengthPercentage]{},
		Inset:          geom.Rect4[LengthPercentageAuto]{Top: LPAAuto, Right: LPAAuto, Bottom: LPAAuto, Left: LPAAuto},
		Gap:            geom.Size2[LengthPercentage]{},
	}
}

// SetAlignSelf sets an explicit align-self, distinguishing it from the
// zero value (which means "fall back to the container's align-items").
func (s *Style) SetAlignSelf(a Align) {
	s.AlignSelf = a
	s.hasAlignSelf = true
}

// AlignSelfOrItems resolves align-self against the container's
// align-items, implementing the fallback in spec §4.6 step 10.
func (s Style) AlignSelfOrItems(containerAlignItems Align) Align {
	if s.hasAlignSelf {
		return s.AlignSelf.Normalized()
	}
	return containerAlignItems.Normalized()
}

// SetAspectRatio sets an explicit aspect ratio (width / height). Ratios
// must be strictly positive per spec §6; a non-positive value clears it.
func (s *Style) SetAspectRatio(ratio float64) {
	if ratio > 0 {
		s.AspectRatio = ratio
		s.hasAspectRatio = true
	} else {
		s.AspectRatio = 0
		s.hasAspectRatio = false
	}
}

// HasAspectRatio reports whether an aspect ratio was set.
func (s Style) HasAspectRatio() bool { return s.hasAspectRatio }

// BorderPaddingSum returns the fixed border+padding contribution for one
// axis, resolved against the containing-block size on that axis.
func BorderPaddingSum(border, padding geom.Rect4[LengthPercentage], axis geom.AbsoluteAxis, containingBlock float64) float64 {
	cb := opt.Some(containingBlock)
	if axis == geom.AxisHorizontal {
		return border.Left.Resolve(cb) + border.Right.Resolve(cb) +
			padding.Left.Resolve(cb) + padding.Right.Resolve(cb)
	}
	return border.Top.Resolve(cb) + border.Bottom.Resolve(cb) +
		padding.Top.Resolve(cb) + padding.Bottom.Resolve(cb)
}
