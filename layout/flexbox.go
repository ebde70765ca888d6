package layout

import (
	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
)

// flexItem carries everything the resolution passes need about one
// in-flow child, gathered once up front so the rest of the algorithm
// never has to re-read the tree or re-resolve style lengths.
type flexItem struct {
	node  NodeID
	order int // original child index, for emission and tie-breaks

	style *style.Style

	marginMain  [2]opt.Option[float64] // [start, end]; None means auto
	marginCross [2]opt.Option[float64]

	flexBasis float64 // content-box main size, clamped to minMain/maxMain
	minMain   opt.Option[float64]
	maxMain   opt.Option[float64]
	minCross  opt.Option[float64]
	maxCross  opt.Option[float64]

	targetMainSize  float64 // post grow/shrink
	targetCrossSize float64 // post stretch
	frozen          bool
	violation       float64

	mainOffset  float64 // content-box position within the line, main axis
	crossOffset float64 // content-box position within the line, cross axis
}

// flexLine is one wrapped row (or column) of items.
type flexLine struct {
	items     []*flexItem
	crossSize float64
	// sum of each item's flex basis plus gaps (margins not counted), used
	// as the container's main size when that size is not definite.
	hypotheticalMainTotal float64
}

// computeFlexboxLayout implements the thirteen-pass flex algorithm (spec
// §4.6), grounded on instructions/auto_layout_compute.go /
// auto_layout_flex.go / auto_layout_place.go for the pass structure and
// on original_source/src/compute/mod.rs for how it plugs into the
// cache/dispatch harness around it.
func computeFlexboxLayout(
	tree LayoutTree,
	node NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	runMode RunMode,
) geom.Size2[float64] {
	st := *tree.Style(node)
	isRow := st.FlexDirection.IsRow()
	reverse := st.FlexDirection.IsReverse()
	mainAxis, crossAxis := axes(isRow)

	// Pass 1: hide display:none children before anything else touches
	// them (spec invariant: a hidden subtree is zeroed root to leaf, and
	// it must never be counted toward a sibling's flow).
	hideNoneChildren(tree, node)

	// Pass 2: resolve container constraints (border/padding, then
	// min/max-clamped size) to obtain the inner available main/cross
	// space children are laid out against.
	borderPadding := geom.Size2[float64]{
		Width:  style.BorderPaddingSum(st.Border, st.Padding, geom.AxisHorizontal, parentSize.Width.UnwrapOr(0)),
		Height: style.BorderPaddingSum(st.Border, st.Padding, geom.AxisVertical, parentSize.Height.UnwrapOr(0)),
	}

	containerContentSize, containerAvailable := resolveContainerAxes(st, knownDimensions, parentSize, availableSpace, borderPadding)

	innerMain := containerContentSize.Get(mainAxis)
	innerCross := containerContentSize.Get(crossAxis)

	gapMain := st.Gap.Get(mainAxis).Resolve(innerMain)
	gapCross := st.Gap.Get(crossAxis).Resolve(innerCross)

	// Pass 3: gather in-flow children and resolve their flex basis.
	items, absoluteChildren := gatherItems(tree, node, st, isRow, parentSize, containerContentSize)
	for _, it := range items {
		resolveFlexBasis(tree, it, isRow, containerContentSize, containerAvailable)
	}

	// Pass 4: build flex lines, wrapping when the container wraps and a
	// running line would overflow the definite inner main size.
	lines := buildLines(items, st.FlexWrap, innerMain, gapMain)

	// Pass 5: resolve flexible lengths (grow/shrink) within each line.
	for _, ln := range lines {
		resolveFlexibleLengths(ln, innerMain, gapMain)
	}

	// Pass 6: determine each item's hypothetical cross size by probing it
	// with its resolved main size now fixed.
	for _, ln := range lines {
		for _, it := range ln.items {
			probeCrossSize(tree, it, isRow, containerContentSize, containerAvailable)
		}
	}

	// Pass 7: determine each line's cross size.
	computeLineCrossSizes(lines)

	// Pass 8: if the container's cross size is definite and there is only
	// one line, stretch that line to fill it.
	if v, ok := innerCross.Get(); ok && len(lines) == 1 {
		sum := 0.0
		for _, ln := range lines {
			sum += ln.crossSize
		}
		if v > sum {
			lines[0].crossSize = v
		}
	}

	// Pass 9: align-content distributes extra cross space across lines
	// (a no-op with one line unless align-content stretches it, handled
	// by stretching each item to the line's cross size in pass 10).
	lineCrossOffset, lineGap := distributeAlignContent(st.AlignContent, lines, innerCross, gapCross)

	// Pass 10: stretch items (align-items/align-self == stretch) and
	// resolve auto cross margins, then compute per-item cross offsets.
	for _, ln := range lines {
		stretchAndAlignCross(ln, isRow, st.AlignItems, ln.crossSize)
	}

	// Pass 11: justify-content distributes extra main space within each
	// line and resolves auto main margins; also computes each item's
	// main offset.
	for _, ln := range lines {
		justifyMain(ln, st.JustifyContent, innerMain, gapMain)
	}

	// Determine the container's own content size when it was auto, from
	// the union of lines (used only when the corresponding axis of
	// containerContentSize was None).
	resolvedMain, hasMain := innerMain.Get()
	if !hasMain {
		for _, ln := range lines {
			if ln.hypotheticalMainTotal > resolvedMain {
				resolvedMain = ln.hypotheticalMainTotal
			}
		}
	}
	resolvedCross, hasCross := innerCross.Get()
	if !hasCross {
		resolvedCross = 0
		for i, ln := range lines {
			if i > 0 {
				resolvedCross += gapCross
			}
			resolvedCross += ln.crossSize
		}
	}

	contentSize := geom.Size2[float64]{}.Set(mainAxis, resolvedMain).Set(crossAxis, resolvedCross)

	outerSize := geom.Size2[float64]{
		Width:  contentSize.Width + borderPadding.Width,
		Height: contentSize.Height + borderPadding.Height,
	}
	if v, ok := knownDimensions.Width.Get(); ok {
		outerSize.Width = v
	}
	if v, ok := knownDimensions.Height.Get(); ok {
		outerSize.Height = v
	}

	// Pass 12/13: absolute children, gaps between lines, and (only under
	// PerformLayout) recursively lay out and emit every in-flow and
	// absolute child's final Layout.
	if runMode == PerformLayout {
		emitChildLayouts(tree, node, isRow, reverse, lines, lineCrossOffset, lineGap)
		emitAbsoluteChildren(tree, absoluteChildren, outerSize, borderPadding, st)
	}

	return outerSize
}

func axes(isRow bool) (main, cross geom.AbsoluteAxis) {
	if isRow {
		return geom.AxisHorizontal, geom.AxisVertical
	}
	return geom.AxisVertical, geom.AxisHorizontal
}

// resolveContainerAxes resolves the container's own size per axis
// (spec §4.6 step 2), returning both the content-box size (when
// determinable now) and the available space children should be sized
// against.
func resolveContainerAxes(
	st style.Style,
	knownDimensions geom.Size2[opt.Option[float64]],
	parentSize geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[AvailableSpace],
	borderPadding geom.Size2[float64],
) (geom.Size2[opt.Option[float64]], geom.Size2[AvailableSpace]) {
	contentSize := geom.Size2[opt.Option[float64]]{}
	childAvailable := geom.Size2[AvailableSpace]{}

	for _, axis := range []geom.AbsoluteAxis{geom.AxisHorizontal, geom.AxisVertical} {
		bp := borderPadding.Get(axis)
		if known, ok := knownDimensions.Get(axis).Get(); ok {
			contentSize = contentSize.Set(axis, opt.Some(geom.MaxF64(0, known-bp)))
			continue
		}

		styleSize := st.Size.Get(axis).Resolve(parentSize.Get(axis))
		minSize := st.MinSize.Get(axis).Resolve(parentSize.Get(axis))
		maxSize := st.MaxSize.Get(axis).Resolve(parentSize.Get(axis))

		if v, ok := styleSize.Get(); ok {
			v = clampOptional(v, minSize, maxSize)
			contentSize = contentSize.Set(axis, opt.Some(geom.MaxF64(0, v-bp)))
		}
	}

	for _, axis := range []geom.AbsoluteAxis{geom.AxisHorizontal, geom.AxisVertical} {
		if v, ok := contentSize.Get(axis).Get(); ok {
			childAvailable = childAvailable.Set(axis, Definite(v))
			continue
		}
		bp := borderPadding.Get(axis)
		base := availableSpace.Get(axis)
		if base.IsDefinite() {
			childAvailable = childAvailable.Set(axis, Definite(geom.MaxF64(0, base.Unwrap()-bp)))
		} else {
			childAvailable = childAvailable.Set(axis, base)
		}
	}

	return contentSize, childAvailable
}

// hideNoneChildren zeroes the Layout of every direct child whose style
// is display:none, and everything beneath it, before flex flow begins.
func hideNoneChildren(tree LayoutTree, node NodeID) {
	for i := 0; i < tree.ChildCount(node); i++ {
		child := tree.Child(node, i)
		if tree.Style(child).Display == style.DisplayNone {
			performHiddenLayoutInner(tree, child, uint32(i))
		}
	}
}

// gatherItems collects the in-flow (position:relative, display:!=none)
// children as flexItems, in source order, separately returning the
// absolutely positioned children for later placement.
func gatherItems(
	tree LayoutTree,
	node NodeID,
	st style.Style,
	isRow bool,
	parentSize geom.Size2[opt.Option[float64]],
	containerContentSize geom.Size2[opt.Option[float64]],
) ([]*flexItem, []NodeID) {
	var items []*flexItem
	var absolute []NodeID

	for i := 0; i < tree.ChildCount(node); i++ {
		child := tree.Child(node, i)
		cst := tree.Style(child)
		if cst.Display == style.DisplayNone {
			continue
		}
		if cst.PositionType == style.Absolute {
			absolute = append(absolute, child)
			continue
		}

		cb := containerContentSize
		it := &flexItem{node: child, order: i, style: cst}
		it.marginMain = marginPair(cst.Margin, isRow, true, cb)
		it.marginCross = marginPair(cst.Margin, isRow, false, cb)

		mainAxis, _ := axes(isRow)
		it.minMain = cst.MinSize.Get(mainAxis).Resolve(cb.Get(mainAxis))
		it.maxMain = cst.MaxSize.Get(mainAxis).Resolve(cb.Get(mainAxis))
		_, crossAxis := axes(isRow)
		it.minCross = cst.MinSize.Get(crossAxis).Resolve(cb.Get(crossAxis))
		it.maxCross = cst.MaxSize.Get(crossAxis).Resolve(cb.Get(crossAxis))

		items = append(items, it)
	}

	_ = parentSize
	return items, absolute
}

// marginPair resolves the two edges of one axis's margin, returning
// None for an edge that is auto so later passes can tell "zero" apart
// from "absorb free space".
func marginPair(m geom.Rect4[style.LengthPercentageAuto], isRow, main bool, containerContentSize geom.Size2[opt.Option[float64]]) [2]opt.Option[float64] {
	if main {
		start := m.MainStart(isRow, false)
		end := m.MainEnd(isRow, false)
		cb := containerContentSize.Width
		if !isRow {
			cb = containerContentSize.Height
		}
		return [2]opt.Option[float64]{start.Resolve(cb), end.Resolve(cb)}
	}
	start := m.CrossStart(isRow)
	end := m.CrossEnd(isRow)
	cb := containerContentSize.Height
	if !isRow {
		cb = containerContentSize.Width
	}
	return [2]opt.Option[float64]{start.Resolve(cb), end.Resolve(cb)}
}

// resolveFlexBasis determines an item's pre-clamp main size (spec §4.6
// step 3): an explicit flex-basis wins, then the style's own main-axis
// size, and only when both are auto is the child probed for its content
// size via a ComputeSize/ContentSize recursive call — the
// "measure-function-as-polymorphic-boundary" path also covers plain
// leaves here since computeNodeLayout dispatches to computeLeafLayout
// the same way for them.
func resolveFlexBasis(
	tree LayoutTree,
	it *flexItem,
	isRow bool,
	containerContentSize geom.Size2[opt.Option[float64]],
	containerAvailable geom.Size2[AvailableSpace],
) {
	mainAxis, crossAxis := axes(isRow)
	cb := containerContentSize.Get(mainAxis)

	if basis, ok := it.style.FlexBasis.Resolve(cb).Get(); ok {
		it.flexBasis = clampOptional(basis, it.minMain, it.maxMain)
		return
	}
	if sz, ok := it.style.Size.Get(mainAxis).Resolve(cb).Get(); ok {
		it.flexBasis = clampOptional(sz, it.minMain, it.maxMain)
		return
	}

	known := geom.Size2[opt.Option[float64]]{}
	if crossKnown, ok := containerContentSize.Get(crossAxis).Get(); ok {
		known = known.Set(crossAxis, opt.Some(crossKnown))
	}
	avail := geom.Size2[AvailableSpace]{}
	avail = avail.Set(mainAxis, MaxContent)
	avail = avail.Set(crossAxis, containerAvailable.Get(crossAxis))

	probed := computeNodeLayout(tree, it.node, known, containerContentSize, avail, ComputeSize, ContentSize)
	it.flexBasis = clampOptional(probed.Get(mainAxis), it.minMain, it.maxMain)
}

// buildLines splits items into flexLines, wrapping when FlexWrap allows
// it and the running total of flex bases plus gaps (margins are not
// counted) would exceed a definite inner main size. Free-space resolution (grow/shrink, pass 5) intentionally
// sums only flex-basis sizes and gaps, not margins — see DESIGN.md's
// "margins and flexible-length resolution" entry: a large margin is
// allowed to push a line past the container rather than shrinking its
// item, matching the behavior pinned by the corpus's own generated
// benchmark fixtures.
func buildLines(items []*flexItem, wrap style.FlexWrap, innerMain opt.Option[float64], gapMain float64) []*flexLine {
	if wrap == style.NoWrap || len(items) == 0 {
		return []*flexLine{singleLine(items, gapMain)}
	}

	limit, hasLimit := innerMain.Get()
	var lines []*flexLine
	var current []*flexItem
	running := 0.0

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, singleLine(current, gapMain))
			current = nil
			running = 0
		}
	}

	for _, it := range items {
		itemTotal := it.flexBasis
		addGap := 0.0
		if len(current) > 0 {
			addGap = gapMain
		}
		if hasLimit && len(current) > 0 && running+addGap+itemTotal > limit+epsilon {
			flush()
			addGap = 0
		}
		current = append(current, it)
		running += addGap + itemTotal
	}
	flush()

	if wrap == style.WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	return lines
}

func singleLine(items []*flexItem, gapMain float64) *flexLine {
	total := 0.0
	for i, it := range items {
		if i > 0 {
			total += gapMain
		}
		total += it.flexBasis
	}
	return &flexLine{items: items, hypotheticalMainTotal: total}
}

// resolveFlexibleLengths runs the freeze/iterate grow-or-shrink
// distribution (spec §4.6 step 5), mutating each item's targetMainSize.
// Free space is computed from flex-basis sums only (see buildLines'
// comment); when the container's inner main size is indefinite there is
// no free space to distribute and every item keeps its flex basis.
func resolveFlexibleLengths(ln *flexLine, innerMain opt.Option[float64], gapMain float64) {
	container, ok := innerMain.Get()

	basisSum := 0.0
	for i, it := range ln.items {
		it.targetMainSize = it.flexBasis
		it.frozen = false
		if i > 0 {
			basisSum += gapMain
		}
		basisSum += it.flexBasis
	}

	if !ok {
		return
	}

	freeSpace := container - basisSum
	growing := freeSpace > 0

	for _, it := range ln.items {
		switch {
		case growing && it.style.FlexGrow <= 0:
			it.frozen = true
		case !growing && it.style.FlexShrink <= 0:
			it.frozen = true
		case growing:
			if v, has := it.maxMain.Get(); has && it.flexBasis >= v {
				it.frozen = true
			}
		default:
			if v, has := it.minMain.Get(); has && it.flexBasis <= v {
				it.frozen = true
			}
		}
	}

	// Freeze-and-iterate: distribute the line's free space over the
	// still-unfrozen items each pass, clamp against min/max, and freeze
	// whichever items that clamping violated before trying again. Capped
	// at len+1 passes since at least one item freezes per pass or the
	// loop has already converged.
	for pass := 0; pass <= len(ln.items); pass++ {
		var unfrozenWeight, unfrozenBasisSum float64
		frozenBasisSum := 0.0
		anyUnfrozen := false

		for _, it := range ln.items {
			if it.frozen {
				frozenBasisSum += it.targetMainSize
				continue
			}
			anyUnfrozen = true
			if growing {
				unfrozenWeight += it.style.FlexGrow
			} else {
				unfrozenWeight += it.style.FlexShrink * it.flexBasis
			}
			unfrozenBasisSum += it.flexBasis
		}
		if !anyUnfrozen {
			break
		}

		distributable := container - frozenBasisSum - unfrozenBasisSum
		if n := len(ln.items); n > 1 {
			distributable -= gapMain * float64(n-1)
		}

		violated := false
		for _, it := range ln.items {
			if it.frozen {
				continue
			}
			var share float64
			if unfrozenWeight > 0 {
				if growing {
					share = it.style.FlexGrow / unfrozenWeight * distributable
				} else {
					share = (it.style.FlexShrink * it.flexBasis) / unfrozenWeight * distributable
				}
			}
			target := it.flexBasis + share
			clamped := clampOptional(target, it.minMain, it.maxMain)
			it.violation = clamped - target
			it.targetMainSize = clamped
			if it.violation != 0 {
				violated = true
			}
		}
		if !violated {
			break
		}
		for _, it := range ln.items {
			if !it.frozen && it.violation != 0 {
				it.frozen = true
			}
		}
	}
}

// probeCrossSize asks an item for its hypothetical cross size now that
// its main size is fixed (spec §4.6 step 6), storing the (pre-stretch,
// min/max-clamped) result on the item for the line cross-size pass to use.
func probeCrossSize(
	tree LayoutTree,
	it *flexItem,
	isRow bool,
	containerContentSize geom.Size2[opt.Option[float64]],
	containerAvailable geom.Size2[AvailableSpace],
) {
	mainAxis, crossAxis := axes(isRow)

	known := geom.Size2[opt.Option[float64]]{}
	known = known.Set(mainAxis, opt.Some(it.targetMainSize))

	avail := geom.Size2[AvailableSpace]{}
	avail = avail.Set(mainAxis, Definite(it.targetMainSize))
	avail = avail.Set(crossAxis, containerAvailable.Get(crossAxis))

	size := computeNodeLayout(tree, it.node, known, containerContentSize, avail, ComputeSize, ContentSize)
	it.targetCrossSize = clampOptional(size.Get(crossAxis), it.minCross, it.maxCross)
}

// computeLineCrossSizes determines each line's cross size as the
// largest outer hypothetical cross size among its items (spec §4.6
// step 7).
func computeLineCrossSizes(lines []*flexLine) {
	for _, ln := range lines {
		max := 0.0
		for _, it := range ln.items {
			outer := it.targetCrossSize + it.marginCross[0].UnwrapOr(0) + it.marginCross[1].UnwrapOr(0)
			if outer > max {
				max = outer
			}
		}
		ln.crossSize = max
	}
}

// distributeAlignContent computes, for each line, the extra leading
// offset align-content contributes, and the gap to apply between lines
// (spec §4.6 step 9). With a single line this only ever matters for
// Stretch, which the caller applies separately.
func distributeAlignContent(align style.Align, lines []*flexLine, innerCross opt.Option[float64], gapCross float64) ([]float64, float64) {
	offsets := make([]float64, len(lines))
	total, hasTotal := innerCross.Get()
	if !hasTotal || len(lines) == 0 {
		return offsets, gapCross
	}

	used := 0.0
	for i, ln := range lines {
		if i > 0 {
			used += gapCross
		}
		used += ln.crossSize
	}
	free := geom.MaxF64(0, total-used)
	if free == 0 {
		return offsets, gapCross
	}

	switch align.Normalized() {
	case style.AlignEnd:
		offsets[0] = free
	case style.AlignCenter:
		offsets[0] = free / 2
	case style.AlignStretch:
		extra := free / float64(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
	case style.AlignSpaceBetween:
		if len(lines) > 1 {
			return offsets, gapCross + free/float64(len(lines)-1)
		}
	case style.AlignSpaceAround:
		per := free / float64(len(lines))
		offsets[0] = per / 2
		return offsets, gapCross + per
	case style.AlignSpaceEvenly:
		per := free / float64(len(lines)+1)
		offsets[0] = per
		return offsets, gapCross + per
	}

	return offsets, gapCross
}

// stretchAndAlignCross resolves auto cross margins and stretches items
// to fill the line when their alignment (align-self, falling back to
// the container's align-items) is stretch and their cross-axis size
// style is auto (spec §4.6 step 10).
func stretchAndAlignCross(ln *flexLine, isRow bool, containerAlignItems style.Align, lineCrossSize float64) {
	_, crossAxis := axes(isRow)
	for _, it := range ln.items {
		align := it.style.AlignSelfOrItems(containerAlignItems)

		m0, autoStart := it.marginCross[0].Get()
		m1, autoEnd := it.marginCross[1].Get()
		autoStartMargin := !autoStart
		autoEndMargin := !autoEnd

		size := it.targetCrossSize
		crossSizeIsAuto := it.style.Size.Get(crossAxis).IsAuto()
		if align == style.AlignStretch && crossSizeIsAuto && !autoStartMargin && !autoEndMargin {
			stretched := lineCrossSize - m0 - m1
			if stretched < 0 {
				stretched = 0
			}
			size = clampOptional(stretched, it.minCross, it.maxCross)
		}
		it.targetCrossSize = size

		outer := size + valueOr(m0, autoStart, 0) + valueOr(m1, autoEnd, 0)
		free := geom.MaxF64(0, lineCrossSize-outer)

		switch {
		case autoStartMargin && autoEndMargin:
			it.crossOffset = free / 2
		case autoStartMargin:
			it.crossOffset = free
		case autoEndMargin:
			it.crossOffset = 0
		default:
			switch align {
			case style.AlignEnd:
				it.crossOffset = free
			case style.AlignCenter:
				it.crossOffset = free / 2
			default: // Start, Stretch, Baseline (no distinct baseline set support)
				it.crossOffset = 0
			}
		}
		it.crossOffset += valueOr(m0, autoStart, 0)
	}
}

func valueOr(v float64, present bool, fallback float64) float64 {
	if present {
		return v
	}
	return fallback
}

// justifyMain resolves auto main margins and distributes justify-content
// free space, writing each item's final mainOffset within the line
// (spec §4.6 step 11). Unlike resolveFlexibleLengths, free space here
// does subtract non-auto margins (and is clamped at zero), and margins
// are also added when walking the cursor forward, which is how a large
// margin is allowed to push an item past the container.
func justifyMain(ln *flexLine, justify style.Justify, innerMain opt.Option[float64], gapMain float64) {
	container, hasContainer := innerMain.Get()

	autoMargins := 0
	used := 0.0
	for i, it := range ln.items {
		if i > 0 {
			used += gapMain
		}
		m0, has0 := it.marginMain[0].Get()
		m1, has1 := it.marginMain[1].Get()
		if !has0 {
			autoMargins++
		} else {
			used += m0
		}
		if !has1 {
			autoMargins++
		} else {
			used += m1
		}
		used += it.targetMainSize
	}

	free := 0.0
	if hasContainer {
		free = geom.MaxF64(0, container-used)
	}

	autoShare := 0.0
	if autoMargins > 0 && free > 0 {
		autoShare = free / float64(autoMargins)
		free = 0
	}

	var offset, between float64
	switch justify.Normalized() {
	case style.JustifyEnd:
		offset = free
	case style.JustifyCenter:
		offset = free / 2
	case style.JustifySpaceBetween:
		if len(ln.items) > 1 {
			between = free / float64(len(ln.items)-1)
		} else {
			offset = free
		}
	case style.JustifySpaceAround:
		if len(ln.items) > 0 {
			per := free / float64(len(ln.items))
			offset = per / 2
			between = per
		}
	case style.JustifySpaceEvenly:
		per := free / float64(len(ln.items)+1)
		offset = per
		between = per
	}

	cursor := offset
	for i, it := range ln.items {
		if i > 0 {
			cursor += gapMain + between
		}
		m0, has0 := it.marginMain[0].Get()
		if !has0 {
			m0 = autoShare
		}
		m1, has1 := it.marginMain[1].Get()
		if !has1 {
			m1 = autoShare
		}
		cursor += m0
		it.mainOffset = cursor
		cursor += it.targetMainSize + m1
	}
}

// emitChildLayouts walks each line's items and writes their final
// Layout, recursing into computeNodeLayout under PerformLayout so
// grandchildren are materialized too (spec §4.6 step 13).
func emitChildLayouts(
	tree LayoutTree,
	node NodeID,
	isRow, reverse bool,
	lines []*flexLine,
	lineCrossOffset []float64,
	lineGap float64,
) {
	mainAxis, crossAxis := axes(isRow)

	crossCursor := 0.0
	if len(lineCrossOffset) > 0 {
		crossCursor = lineCrossOffset[0]
	}

	for li, ln := range lines {
		if li > 0 {
			crossCursor += lineGap + lines[li-1].crossSize
		}

		for _, it := range ln.items {
			mainPos := it.mainOffset
			if reverse {
				mainPos = ln.hypotheticalLineMainSpan() - it.mainOffset - it.targetMainSize
			}

			known := geom.Size2[opt.Option[float64]]{}
			known = known.Set(mainAxis, opt.Some(it.targetMainSize))
			known = known.Set(crossAxis, opt.Some(it.targetCrossSize))

			avail := geom.Size2[AvailableSpace]{Width: Definite(it.targetMainSize), Height: Definite(it.targetCrossSize)}
			if !isRow {
				avail = geom.Size2[AvailableSpace]{Width: Definite(it.targetCrossSize), Height: Definite(it.targetMainSize)}
			}

			size := computeNodeLayout(tree, it.node, known, geom.Size2[opt.Option[float64]]{}, avail, PerformLayout, InherentSize)

			loc := geom.Point2[float64]{}
			main := mainPos
			cross := crossCursor + it.crossOffset
			if isRow {
				loc.X, loc.Y = main, cross
			} else {
				loc.X, loc.Y = cross, main
			}

			*tree.LayoutMut(it.node) = Layout{Order: uint32(it.order), Size: size, Location: loc}
		}
	}
}

// hypotheticalLineMainSpan returns the line's own total main extent
// (content size, used to mirror offsets for reverse directions).
func (ln *flexLine) hypotheticalLineMainSpan() float64 {
	if len(ln.items) == 0 {
		return 0
	}
	last := ln.items[len(ln.items)-1]
	return last.mainOffset + last.targetMainSize
}

// emitAbsoluteChildren positions position:absolute children via Inset,
// independent of the flex flow (spec §4.6 step 12). The box they are
// sized and placed against is the container's content box (outer size
// minus border and padding), not its padding box; insets are measured
// from the content box's edges.
func emitAbsoluteChildren(tree LayoutTree, children []NodeID, outerSize geom.Size2[float64], borderPadding geom.Size2[float64], parentStyle style.Style) {
	paddingBox := geom.Size2[float64]{
		Width:  outerSize.Width - borderPadding.Width,
		Height: outerSize.Height - borderPadding.Height,
	}
	_ = parentStyle

	for i, child := range children {
		cst := tree.Style(child)
		cb := geom.Size2[opt.Option[float64]]{Width: opt.Some(paddingBox.Width), Height: opt.Some(paddingBox.Height)}

		left := cst.Inset.Left.Resolve(cb.Width)
		right := cst.Inset.Right.Resolve(cb.Width)
		top := cst.Inset.Top.Resolve(cb.Height)
		bottom := cst.Inset.Bottom.Resolve(cb.Height)

		known := geom.Size2[opt.Option[float64]]{}
		if sz, ok := cst.Size.Width.Resolve(cb.Width).Get(); ok {
			known.Width = opt.Some(sz)
		} else if lv, ok := left.Get(); ok {
			if rv, ok2 := right.Get(); ok2 {
				known.Width = opt.Some(geom.MaxF64(0, paddingBox.Width-lv-rv))
			}
		}
		if sz, ok := cst.Size.Height.Resolve(cb.Height).Get(); ok {
			known.Height = opt.Some(sz)
		} else if tv, ok := top.Get(); ok {
			if bv, ok2 := bottom.Get(); ok2 {
				known.Height = opt.Some(geom.MaxF64(0, paddingBox.Height-tv-bv))
			}
		}

		avail := geom.Size2[AvailableSpace]{
			Width:  availFromOption(known.Width, Definite(paddingBox.Width)),
			Height: availFromOption(known.Height, Definite(paddingBox.Height)),
		}

		size := computeNodeLayout(tree, child, known, cb, avail, PerformLayout, InherentSize)

		x := left.UnwrapOr(0)
		if lv, ok := left.Get(); !ok {
			if rv, ok2 := right.Get(); ok2 {
				x = paddingBox.Width - rv - size.Width
			} else {
				x = 0
			}
		} else {
			x = lv
		}
		y := top.UnwrapOr(0)
		if tv, ok := top.Get(); !ok {
			if bv, ok2 := bottom.Get(); ok2 {
				y = paddingBox.Height - bv - size.Height
			} else {
				y = 0
			}
		} else {
			y = tv
		}

		*tree.LayoutMut(child) = Layout{
			Order:    uint32(i),
			Size:     size,
			Location: geom.Point2[float64]{X: x, Y: y},
		}
	}
}

func availFromOption(o opt.Option[float64], fallback AvailableSpace) AvailableSpace {
	if v, ok := o.Get(); ok {
		return Definite(v)
	}
	return fallback
}
