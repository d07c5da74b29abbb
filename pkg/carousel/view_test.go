package carousel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func slides(n int) []Slide {
	out := make([]Slide, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Slide{Src: "/img/" + string(rune('a'+i)) + ".png", Alt: string(rune('A' + i))})
	}
	return out
}

func TestBuildViewLineMarkers(t *testing.T) {
	t.Parallel()

	view := BuildView(slides(4), 3, IndicatorLine)
	require.True(t, view.HasControls)
	require.Equal(t, 3, view.ActiveIndex)
	require.Equal(t, "/img/d.png", view.Active.Src)
	require.Equal(t, 2, view.PrevIndex)
	require.Equal(t, 0, view.NextIndex)
	require.Equal(t, "/img/a.png", view.Preload)
	require.Len(t, view.Markers, 4)
	for _, m := range view.Markers {
		require.Equal(t, m.Index == 3, m.Active)
		require.Empty(t, m.Src, "line markers carry no preview")
	}
	require.True(t, view.Line())
	require.EqualValues(t, 800, view.HideDelayMs)
	require.EqualValues(t, 300, view.RevealDelayMs)
}

func TestBuildViewThumbnailMarkers(t *testing.T) {
	t.Parallel()

	view := BuildView(slides(3), 0, IndicatorThumbnail)
	require.False(t, view.Line())
	require.Equal(t, 2, view.PrevIndex)
	require.Equal(t, "/img/b.png", view.Markers[1].Src)
	require.True(t, view.Markers[0].Active)
}

func TestBuildViewSingleSlideHasNoControls(t *testing.T) {
	t.Parallel()

	view := BuildView(slides(1), 0, IndicatorLine)
	require.False(t, view.HasControls)
	require.Empty(t, view.Markers)
	require.Empty(t, view.Preload)
	require.Equal(t, "/img/a.png", view.Active.Src)
}

func TestBuildViewClampsIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, BuildView(slides(3), 9, IndicatorLine).ActiveIndex)
	require.Equal(t, 0, BuildView(slides(3), -4, IndicatorLine).ActiveIndex)
	require.True(t, BuildView(nil, 0, IndicatorLine).Empty())
}

func TestParseIndicator(t *testing.T) {
	t.Parallel()

	require.Equal(t, IndicatorThumbnail, ParseIndicator("thumbnail"))
	require.Equal(t, IndicatorLine, ParseIndicator("line"))
	require.Equal(t, IndicatorLine, ParseIndicator(""))
}
