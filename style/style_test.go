package style_test

import (
	"testing"

	"github.com/DasLixou/taffy/internal/core/opt"
	"github.com/DasLixou/taffy/style"
	"github.com/stretchr/testify/require"
)

func TestDimensionResolve(t *testing.T) {
	cases := []struct {
		name string
		dim  style.Dimension
		cb   opt.Option[float64]
		want opt.Option[float64]
	}{
		{"points ignores containing block", style.Points(10), opt.None[float64](), opt.Some(10.0)},
		{"percent against definite block", style.Percent(0.5), opt.Some(200.0), opt.Some(100.0)},
		{"percent against indefinite block", style.Percent(0.5), opt.None[float64](), opt.None[float64]()},
		{"auto is always none", style.Auto, opt.Some(50.0), opt.None[float64]()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.dim.Resolve(c.cb)
			require.Equal(t, c.want.IsSome(), got.IsSome())
			if c.want.IsSome() {
				require.InDelta(t, c.want.Unwrap(), got.Unwrap(), 1e-9)
			}
		})
	}
}

func TestLengthPercentageAutoAuto(t *testing.T) {
	require.True(t, style.LPAAuto.IsAuto())
	v := style.LPAAuto.Resolve(opt.Some(100.0))
	require.True(t, v.IsNone())

	fixed := style.LPAPoints(12)
	require.False(t, fixed.IsAuto())
	require.Equal(t, 12.0, fixed.ResolveOrZero(opt.None[float64]()))
}

func TestAlignSelfFallsBackToContainerAlignItems(t *testing.T) {
	s := style.Default()
	require.Equal(t, style.AlignStart.Normalized(), s.AlignSelfOrItems(style.AlignStart))

	s.SetAlignSelf(style.AlignCenter)
	require.Equal(t, style.AlignCenter, s.AlignSelfOrItems(style.AlignStart))
}

func TestAspectRatioRejectsNonPositive(t *testing.T) {
	s := style.Default()
	s.SetAspectRatio(2)
	require.True(t, s.HasAspectRatio())

	s.SetAspectRatio(-1)
	require.False(t, s.HasAspectRatio())
}

func TestJustifyAndAlignNormalizeAliases(t *testing.T) {
	require.Equal(t, style.JustifyStart, style.JustifyFlexStart.Normalized())
	require.Equal(t, style.JustifyEnd, style.JustifyFlexEnd.Normalized())
	require.Equal(t, style.AlignStart, style.AlignFlexStart.Normalized())
	require.Equal(t, style.AlignEnd, style.AlignFlexEnd.Normalized())
}
