package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQueryScenario(t *testing.T) {
	t.Parallel()

	state := ParseRawQuery("?category=collections&page=2")
	require.Equal(t, State{Category: "collections", Page: 2, Search: ""}, state)
}

func TestParseQueryDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultState(), ParseRawQuery(""))
	require.Equal(t, DefaultState(), ParseQuery(nil))
	require.Equal(t, State{Category: AllCategories, Page: 1}, ParseQuery(url.Values{}))
}

func TestParseQueryInvalidPage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"page=abc", "page=", "page=0", "page=-3", "page=2.5"} {
		require.Equal(t, 1, ParseRawQuery(raw).Page, raw)
	}
	require.Equal(t, 12, ParseRawQuery("page=%2012%20").Page)
}

func TestParseQueryRepeatedValuesUseFirst(t *testing.T) {
	t.Parallel()

	state := ParseQuery(url.Values{
		"category": {"Games", "Collections"},
		"page":     {"3", "9"},
		"search":   {"chess", "ludo"},
	})
	require.Equal(t, State{Category: "Games", Page: 3, Search: "chess"}, state)
}

func TestParseQueryAllSentinelIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	require.Equal(t, AllCategories, ParseRawQuery("category=ALL").Category)
	require.Equal(t, AllCategories, ParseRawQuery("category=All").Category)
}

func TestEncodeOmitsDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", DefaultState().Encode())
	require.Equal(t, "category=Games", State{Category: "Games", Page: 1}.Encode())
	require.Equal(t, "page=3", State{Category: AllCategories, Page: 3}.Encode())
	require.Equal(t, "search=pokemon+cards", State{Category: AllCategories, Page: 1, Search: "pokemon cards"}.Encode())
}

func TestEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	states := []State{
		DefaultState(),
		{Category: "Collections", Page: 2, Search: "stamps & coins"},
		{Category: "Games", Page: 5, Search: "Ünïcode ?&="},
	}
	for _, state := range states {
		require.Equal(t, state, ParseRawQuery(state.Encode()))
	}
}

func TestHref(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/work", DefaultState().Href("/work"))
	require.Equal(t, "/work?category=Games&page=2", State{Category: "Games", Page: 2}.Href("/work"))
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	state := State{Category: "Games", Page: 3, Search: "chess"}

	next := state.SelectCategory("Collections")
	require.Equal(t, State{Category: "Collections", Page: 1, Search: "chess"}, next)

	next = state.SelectCategory("All")
	require.Equal(t, AllCategories, next.Category)
	require.Equal(t, 1, next.Page)

	require.Equal(t, 2, state.SelectPage(2).Page)
	require.Equal(t, 1, state.SelectPage(0).Page)
	require.Equal(t, "Games", state.SelectPage(2).Category)

	next = state.SubmitSearch("ludo")
	require.Equal(t, State{Category: "Games", Page: 1, Search: "ludo"}, next)

	require.Equal(t, 3, state.Page, "transitions must not modify the receiver")
}
