package style

// Display selects which sizing/positioning algorithm a node with children
// is laid out with. A childless node always uses the leaf algorithm
// regardless of Display.
type Display int

const (
	// DisplayFlex enables Flexbox-style layout behavior.
	DisplayFlex Display = iota
	// DisplayGrid enables grid layout (see layout.GridAlgorithm).
	DisplayGrid
	// DisplayNone removes the node and its entire subtree from layout;
	// every descendant resolves to a zero Layout.
	DisplayNone
)

// PositionType indicates whether a node participates in normal layout flow.
type PositionType int

const (
	// Relative participates in normal flow (default).
	Relative PositionType = iota
	// Absolute is removed from flow and positioned via Inset against the
	// containing flex container's content box (its outer size minus
	// border and padding), not its padding box.
	Absolute
)

// FlexDirection defines the orientation of the main axis and whether
// items are laid out in reverse source order along it.
type FlexDirection int

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether items are placed in reverse source order.
func (d FlexDirection) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// FlexWrap controls whether a flex container lays out all children on a
// single line or wraps them onto several.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify controls how free space is distributed among items along the
// main axis of a line (justify-content) or main-axis auto margins.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
	JustifyFlexStart
	JustifyFlexEnd
)

// Align controls cross-axis alignment, either of a single item
// (align-items/align-self) or of whole lines (align-content).
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignFlexStart
	AlignFlexEnd
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

// normalize collapses the CSS2-era Flex{Start,End} aliases onto their
// Start/End equivalents so the layout algorithm only has to switch on one
// spelling. justify-content and align-* both recognize the alias forms
// per the style vocabulary in spec §6.
func (j Justify) normalize() Justify {
	switch j {
	case JustifyFlexStart:
		return JustifyStart
	case JustifyFlexEnd:
		return JustifyEnd
	default:
		return j
	}
}

func (a Align) normalize() Align {
	switch a {
	case AlignFlexStart:
		return AlignStart
	case AlignFlexEnd:
		return AlignEnd
	default:
		return a
	}
}

// Normalized returns j with Flex{Start,End} aliases collapsed.
func (j Justify) Normalized() Justify { return j.normalize() }

// Normalized returns a with Flex{Start,End} aliases collapsed.
func (a Align) Normalized() Align { return a.normalize() }
