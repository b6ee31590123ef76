package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	params := Parse(url.Values{})

	require.Equal(t, 1, params.Page)
	require.Equal(t, DefaultLimit, params.Limit)
}

func TestParseValues(t *testing.T) {
	params := Parse(url.Values{"page": {"3"}, "limit": {"25"}})

	require.Equal(t, 3, params.Page)
	require.Equal(t, 25, params.Limit)
}

func TestParseRejectsGarbage(t *testing.T) {
	params := Parse(url.Values{"page": {"-2"}, "limit": {"abc"}})

	require.Equal(t, 1, params.Page)
	require.Equal(t, DefaultLimit, params.Limit)
}

func TestParseCapsLimit(t *testing.T) {
	params := Parse(url.Values{"limit": {"5000"}})

	require.Equal(t, MaxLimit, params.Limit)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Slice(items, Params{Page: 2, Limit: 3})

	require.Equal(t, []int{4, 5, 6}, page.Data)
	require.Equal(t, 7, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 3, page.Limit)
}

func TestSlicePastEnd(t *testing.T) {
	items := []int{1, 2}

	page := Slice(items, Params{Page: 5, Limit: 10})

	require.Empty(t, page.Data)
	require.Equal(t, 2, page.Total)
}
