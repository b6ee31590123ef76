package orders

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func sample() Order {
	return Order{
		ID:            "ORD-1001",
		CustomerName:  "Alice Nguyen",
		CustomerEmail: "alice@example.com",
		Total:         149.90,
		Status:        StatusShipped,
		Date:          "2024-04-11",
	}
}

func TestParseFilters(t *testing.T) {
	filters, params, err := ParseFilters(url.Values{
		"q":        {" ord-10 "},
		"status":   {"shipped"},
		"fromDate": {"2024-04-01"},
		"toDate":   {"2024-04-30"},
		"page":     {"2"},
		"limit":    {"5"},
	})

	require.NoError(t, err)
	require.Equal(t, "ord-10", filters.Query)
	require.Equal(t, "shipped", filters.Status)
	require.Equal(t, "2024-04-01", filters.FromDate)
	require.Equal(t, "2024-04-30", filters.ToDate)
	require.Equal(t, 2, params.Page)
	require.Equal(t, 5, params.Limit)
}

func TestParseFiltersRejectsUnknownStatus(t *testing.T) {
	_, _, err := ParseFilters(url.Values{"status": {"teleported"}})

	var filterErr FilterError
	require.ErrorAs(t, err, &filterErr)
	require.Equal(t, "status", filterErr.Field)
}

func TestParseFiltersRejectsMalformedDates(t *testing.T) {
	_, _, err := ParseFilters(url.Values{"fromDate": {"04/01/2024"}})
	require.Error(t, err)

	_, _, err = ParseFilters(url.Values{"toDate": {"2024-04-01T00:00:00Z"}})
	require.Error(t, err)
}

func TestParseFiltersRejectsInvertedWindow(t *testing.T) {
	_, _, err := ParseFilters(url.Values{
		"fromDate": {"2024-04-30"},
		"toDate":   {"2024-04-01"},
	})

	var filterErr FilterError
	require.ErrorAs(t, err, &filterErr)
	require.Equal(t, "toDate", filterErr.Field)
}

func TestMatchQuery(t *testing.T) {
	order := sample()

	require.True(t, Match(order, Filters{Query: "ord-1001"}))
	require.True(t, Match(order, Filters{Query: "ALICE"}))
	require.True(t, Match(order, Filters{Query: "example.com"}))
	require.False(t, Match(order, Filters{Query: "bob"}))
}

func TestMatchStatus(t *testing.T) {
	order := sample()

	require.True(t, Match(order, Filters{Status: "shipped"}))
	require.False(t, Match(order, Filters{Status: "pending"}))
}

func TestMatchDateWindow(t *testing.T) {
	order := sample()

	require.True(t, Match(order, Filters{FromDate: "2024-04-11", ToDate: "2024-04-11"}))
	require.True(t, Match(order, Filters{FromDate: "2024-04-01"}))
	require.False(t, Match(order, Filters{FromDate: "2024-04-12"}))
	require.False(t, Match(order, Filters{ToDate: "2024-04-10"}))
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		require.True(t, ValidStatus(status))
	}
	require.False(t, ValidStatus("SHIPPED"))
	require.False(t, ValidStatus(""))
}
