// Package measure is a host-side layout.Measurer implementation for
// text leaves: it asks a TrueType font for glyph metrics and a
// grapheme-aware wrapper for how a string breaks across lines, then
// reports the resulting pixel extent back to the solver.
//
// Grounded on internal/render/font.go for font loading and
// per-string measurement, instructions/text_wrap.go for grapheme-aware
// wrapping (rivo/uniseg), and internal/render/font_lru.go's eviction
// policy, adapted here into a measured-extent cache instead of a
// rendered-face cache.
package measure

import (
	"math"

	"github.com/DasLixou/taffy/internal/core/geom"
	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/internal/render"
	"github.com/DasLixou/taffy/layout"
	"github.com/rivo/uniseg"
)

// WrapMode controls how TextStyle.Wrap breaks a string across lines,
// mirroring the two modes instructions/text_wrap.go implements.
type WrapMode int

const (
	// NoWrap never breaks; the node's width is its single-line extent.
	NoWrap WrapMode = iota
	// WrapByWord breaks at ASCII space/tab/newline boundaries.
	WrapByWord
	// WrapBySymbol breaks at grapheme-cluster boundaries.
	WrapBySymbol
)

// TextStyle is the measurement-relevant subset of a text node's style.
type TextStyle struct {
	Font     *render.Font
	Text     string
	Wrap     WrapMode
	MaxLines int
}

// Provider implements layout.Measurer over a set of text nodes
// registered by id. A tree.Tree installs one via SetMeasure on whichever
// nodes carry text content; nodes with no geometry of their own (plain
// containers) are never registered and fall through to style sizing.
type Provider struct {
	nodes map[layout.NodeID]TextStyle
	cache *extentCache
}

// New returns an empty Provider with a bounded measurement cache.
func New() *Provider {
	return &Provider{
		nodes: make(map[layout.NodeID]TextStyle),
		cache: newExtentCache(256),
	}
}

// Register associates a text style with a node id. Call this once per
// node before the first layout pass; the node's Style.Size should stay
// Auto on both axes so the solver defers to this measurement.
func (p *Provider) Register(node layout.NodeID, st TextStyle) {
	p.nodes[node] = st
}

// MeasureNode implements layout.Measurer (spec §4.5's
// measure-function-as-polymorphic-boundary).
func (p *Provider) MeasureNode(
	node layout.NodeID,
	knownDimensions geom.Size2[opt.Option[float64]],
	availableSpace geom.Size2[layout.AvailableSpace],
) (geom.Size2[float64], bool) {
	st, ok := p.nodes[node]
	if !ok || st.Font == nil {
		return geom.Size2[float64]{}, false
	}

	if w, ok := knownDimensions.Width.Get(); ok {
		h := p.heightFor(st, w)
		return geom.Size2[float64]{Width: w, Height: h}, true
	}

	maxWidth := math.Inf(1)
	switch {
	case availableSpace.Width.IsDefinite():
		maxWidth = availableSpace.Width.Unwrap()
	case availableSpace.Width.IsMinContent():
		maxWidth = 0
	}

	lines := wrapLines(st, maxWidth)
	width := 0.0
	for _, ln := range lines {
		w, _ := p.cache.measure(st.Font, ln)
		if w > width {
			width = w
		}
	}
	height := float64(len(lines)) * st.Font.LineHeightPx()
	return geom.Size2[float64]{Width: width, Height: height}, true
}

// heightFor re-wraps st.Text at a forced width and returns the
// resulting block height, used when the solver already pinned the
// node's width (e.g. a stretched cross size) and only wants the height
// that width implies.
func (p *Provider) heightFor(st TextStyle, width float64) float64 {
	lines := wrapLines(st, width)
	return float64(len(lines)) * st.Font.LineHeightPx()
}

// wrapLines breaks st.Text into lines under maxWidth per st.Wrap,
// truncating at st.MaxLines when set. Word mode greedily packs
// words per line; symbol mode breaks at grapheme clusters; NoWrap
// returns the text as a single line regardless of width.
func wrapLines(st TextStyle, maxWidth float64) []string {
	if st.Wrap == NoWrap || math.IsInf(maxWidth, 1) {
		return []string{st.Text}
	}

	var lines []string
	switch st.Wrap {
	case WrapBySymbol:
		lines = wrapBySymbol(st.Font, st.Text, maxWidth)
	default:
		lines = wrapByWord(st.Font, st.Text, maxWidth)
	}

	if st.MaxLines > 0 && len(lines) > st.MaxLines {
		lines = lines[:st.MaxLines]
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapByWord(f *render.Font, text string, maxWidth float64) []string {
	words := splitWords(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		width, _ := f.MeasureString(candidate)
		if current != "" && width > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

func wrapBySymbol(f *render.Font, text string, maxWidth float64) []string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return []string{""}
	}

	var lines []string
	start := 0
	for start < len(clusters) {
		end := start + 1
		for end < len(clusters) {
			w, _ := f.MeasureString(joinRange(clusters, start, end+1))
			if w > maxWidth {
				break
			}
			end++
		}
		lines = append(lines, joinRange(clusters, start, end))
		start = end
	}
	return lines
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func joinRange(parts []string, start, end int) string {
	out := ""
	for _, s := range parts[start:end] {
		out += s
	}
	return out
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}
