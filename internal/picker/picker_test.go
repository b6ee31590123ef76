package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/datetime"
)

func testConverter() *datetime.Converter {
	return datetime.NewConverter(time.FixedZone("UTC+0", 0))
}

type recorder struct {
	calls  int
	last   *string
	gotNil bool
}

func (r *recorder) callback() func(*string) {
	return func(value *string) {
		r.calls++
		r.last = value
		r.gotNil = value == nil
	}
}

func strptr(s string) *string { return &s }

func TestDateOnlyEmitsBareDate(t *testing.T) {
	rec := &recorder{}
	p := New(testConverter(), Options{OnChange: rec.callback()})

	p.SetDate("2024-04-10")

	require.Equal(t, 1, rec.calls)
	require.NotNil(t, rec.last)
	require.Equal(t, "2024-04-10", *rec.last)
}

func TestWithTimeEmitsComposedISO(t *testing.T) {
	rec := &recorder{}
	p := New(testConverter(), Options{WithTime: true, OnChange: rec.callback()})

	p.SetDate("2024-03-19")
	require.Equal(t, 1, rec.calls)
	require.Equal(t, "2024-03-19T00:00:00+00:00", *rec.last)

	p.SetHour("14")
	require.Equal(t, 2, rec.calls)
	require.Equal(t, "2024-03-19T14:00:00+00:00", *rec.last)

	p.SetMinute("30")
	require.Equal(t, 3, rec.calls)
	require.Equal(t, "2024-03-19T14:30:00+00:00", *rec.last)
}

func TestClearEmitsNil(t *testing.T) {
	rec := &recorder{}
	p := New(testConverter(), Options{WithTime: true, OnChange: rec.callback()})

	p.SetDate("2024-03-19")
	p.SetHour("14")
	p.SetMinute("30")
	p.SetDate("")

	require.Equal(t, 4, rec.calls)
	require.True(t, rec.gotNil)
	require.Equal(t, "", p.Parts().Date)
}

func TestTimeEditWithoutDateEmitsNothing(t *testing.T) {
	rec := &recorder{}
	p := New(testConverter(), Options{WithTime: true, OnChange: rec.callback()})

	p.SetHour("14")
	p.SetMinute("30")

	require.Equal(t, 0, rec.calls)
	// The edits are still recorded locally.
	require.Equal(t, "14", p.Parts().Hour)
	require.Equal(t, "30", p.Parts().Minute)
	require.False(t, p.TimeEnabled())
}

func TestTimeEditsKeptLocallyApplyOnDateSet(t *testing.T) {
	rec := &recorder{}
	p := New(testConverter(), Options{WithTime: true, OnChange: rec.callback()})

	p.SetHour("09")
	p.SetMinute("45")
	p.SetDate("2024-05-01")

	require.Equal(t, 1, rec.calls)
	require.Equal(t, "2024-05-01T09:45:00+00:00", *rec.last)
}

func TestInitialPartsFromValue(t *testing.T) {
	value := strptr("2024-03-19T14:30:00+05:00")
	p := New(testConverter(), Options{Value: &value, WithTime: true})

	require.Equal(t, Controlled, p.Mode())
	require.Equal(t, datetime.Parts{Date: "2024-03-19", Hour: "14", Minute: "30"}, p.Parts())
}

func TestInitialPartsFallsBackToDefault(t *testing.T) {
	p := New(testConverter(), Options{DefaultValue: strptr("2024-01-02")})

	require.Equal(t, Uncontrolled, p.Mode())
	require.Equal(t, datetime.Parts{Date: "2024-01-02", Hour: "00", Minute: "00"}, p.Parts())
}

func TestInitialPartsEmptyOnUnparseable(t *testing.T) {
	p := New(testConverter(), Options{DefaultValue: strptr("garbage")})

	require.Equal(t, datetime.Parts{Date: "", Hour: "00", Minute: "00"}, p.Parts())
}

func TestControlledSetValueRecomputesParts(t *testing.T) {
	value := strptr("2024-03-19")
	p := New(testConverter(), Options{Value: &value, WithTime: true})

	p.SetDate("2024-06-01")
	require.Equal(t, "2024-06-01", p.Parts().Date)

	// External value wins over the in-flight local edit.
	p.SetValue(strptr("2024-12-25T08:15:00+00:00"), nil)
	require.Equal(t, datetime.Parts{Date: "2024-12-25", Hour: "08", Minute: "15"}, p.Parts())

	p.SetValue(nil, nil)
	require.Equal(t, "", p.Parts().Date)
}

func TestUncontrolledIgnoresSetValue(t *testing.T) {
	p := New(testConverter(), Options{})

	p.SetDate("2024-06-01")
	p.SetValue(strptr("2024-12-25"), nil)

	require.Equal(t, "2024-06-01", p.Parts().Date)
}
