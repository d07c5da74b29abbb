package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"about-me/pkg/carousel"
	"about-me/pkg/filter"
)

func TestBuildWorkPage(t *testing.T) {
	t.Parallel()

	entries := fixture()
	state := filter.ParseQuery(url.Values{"category": {"Collections"}, "search": {"s"}})
	result := filter.Apply(entries, state)
	page := buildWorkPage(Layout{}, state, result, filter.Categories(entries))

	require.Equal(t, "1", page.GridColumns)
	require.Equal(t, "Collections", page.Search.Category)
	require.Equal(t, "s", page.Search.Value)
	require.False(t, page.Empty)

	require.Len(t, page.Categories, 3)
	require.Equal(t, "/work?search=s", page.Categories[0].Href, "All drops the category and keeps the search")
	require.False(t, page.Categories[0].Active)
	require.Equal(t, "/work?category=Games&search=s", page.Categories[1].Href)
	require.True(t, page.Categories[2].Active)

	require.Equal(t, "/work/card-collections?from=category%3DCollections%26search%3Ds", page.Cards[0].Href)
}

func TestBuildWorkPageDefaults(t *testing.T) {
	t.Parallel()

	entries := fixture()
	state := filter.DefaultState()
	page := buildWorkPage(Layout{}, state, filter.Apply(entries, state), filter.Categories(entries))

	require.Equal(t, "2", page.GridColumns)
	require.Empty(t, page.Search.Category)
	require.True(t, page.Categories[0].Active)
	require.Equal(t, "/work", page.Categories[0].Href)
	require.Len(t, page.Cards, 4)
	require.Equal(t, "/work/outdoor-games", page.Cards[0].Href)

	require.Len(t, page.Pages, 2)
	require.Equal(t, "/work", page.Pages[0].Href)
	require.True(t, page.Pages[0].Active)
	require.Equal(t, "/work?page=2", page.Pages[1].Href)
}

func TestBuildWorkPageNoResults(t *testing.T) {
	t.Parallel()

	entries := fixture()
	state := filter.DefaultState().SubmitSearch("zzz")
	page := buildWorkPage(Layout{}, state, filter.Apply(entries, state), filter.Categories(entries))

	require.True(t, page.Empty)
	require.Empty(t, page.Cards)
	require.Empty(t, page.Pages)
	require.Equal(t, "No projects found for the current filters.", page.EmptyText)
}

func TestNewCardCarouselLinks(t *testing.T) {
	t.Parallel()

	entry := fixture()[2]
	card := newCard(entry, 0, carousel.IndicatorLine)
	require.Equal(t, "pokemon", card.Title)
	require.Equal(t, "/work/card-collections?image=2", card.Prev.Href)
	require.Equal(t, "/work/card-collections/slide?image=1", card.Next.Fragment)
	require.Len(t, card.Markers, 3)
	require.True(t, card.Markers[0].Active)
	require.Equal(t, "/work/card-collections", card.Markers[0].Href)
	require.Empty(t, card.Markers[0].Src, "line markers carry no preview")

	thumb := newCard(entry, 1, carousel.IndicatorThumbnail)
	require.Equal(t, "world", thumb.Title)
	require.Equal(t, "/work/card-collections?indicator=thumbnail", thumb.Prev.Href)
	require.Equal(t, "/images/world.png", thumb.Markers[1].Src)
}

func TestNewCardSingleImageHasNoControls(t *testing.T) {
	t.Parallel()

	card := newCard(fixture()[1], 0, carousel.IndicatorLine)
	require.False(t, card.Carousel.HasControls)
	require.Empty(t, card.Markers)
	require.Empty(t, card.Prev.Href)
}

func TestBuildEntryPageClampsIndex(t *testing.T) {
	t.Parallel()

	page := buildEntryPage(Layout{}, fixture()[0], 7, carousel.IndicatorLine, "/work")
	require.Equal(t, 1, page.Carousel.ActiveIndex)
	require.Equal(t, "football", page.Caption.Title)

	empty := buildEntryPage(Layout{}, fixture()[5], 0, carousel.IndicatorLine, "/work")
	require.True(t, empty.Carousel.Empty())
	require.Empty(t, empty.Caption.Src)
}

func TestImageIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, imageIndex(url.Values{}))
	require.Equal(t, 3, imageIndex(url.Values{"image": {" 3 "}}))
	require.Equal(t, 0, imageIndex(url.Values{"image": {"-2"}}))
	require.Equal(t, 0, imageIndex(url.Values{"image": {"two"}}))
}
