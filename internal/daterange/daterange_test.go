package daterange_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/daterange"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := daterange.ParseDay(s)
	require.NoError(t, err)
	return d
}

func tap(t *testing.T, days ...string) daterange.Selection {
	t.Helper()
	var sel daterange.Selection
	for _, d := range days {
		sel = daterange.Select(sel, day(t, d))
	}
	return sel
}

// ---- Select ----------------------------------------------------------------

func TestSelect_FirstTapOpensRange(t *testing.T) {
	sel := tap(t, "2025-03-05")

	require.NotNil(t, sel.Start)
	assert.Nil(t, sel.End)
	assert.Equal(t, "2025-03-05", daterange.Key(*sel.Start))
	assert.Equal(t, daterange.StateOpen, sel.State())
	assert.Equal(t, daterange.MarkedDates{"2025-03-05": daterange.MarkSingle}, sel.Marked())
	assert.Empty(t, sel.Label())
}

func TestSelect_ForwardOrder(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-10")

	require.True(t, sel.Complete())
	assert.Equal(t, "2025-03-05", daterange.Key(*sel.Start))
	assert.Equal(t, "2025-03-10", daterange.Key(*sel.End))
}

func TestSelect_ReverseOrderIsReordered(t *testing.T) {
	sel := tap(t, "2025-03-10", "2025-03-05")

	require.True(t, sel.Complete())
	assert.Equal(t, "2025-03-05", daterange.Key(*sel.Start))
	assert.Equal(t, "2025-03-10", daterange.Key(*sel.End))
	assert.Len(t, sel.Marked(), 6)
	assert.Equal(t, "05 to 10 of March", sel.Label())
}

func TestSelect_OrderInvariantOverManyPairs(t *testing.T) {
	base := day(t, "2024-12-20")
	for i := 0; i < 40; i++ {
		for j := i + 1; j < 40; j += 7 {
			d1 := base.AddDate(0, 0, i)
			d2 := base.AddDate(0, 0, j)

			fwd := daterange.Select(daterange.Select(daterange.Selection{}, d1), d2)
			rev := daterange.Select(daterange.Select(daterange.Selection{}, d2), d1)

			assert.True(t, fwd.Start.Equal(d1) && fwd.End.Equal(d2), "forward %d/%d", i, j)
			assert.True(t, rev.Start.Equal(d1) && rev.End.Equal(d2), "reverse %d/%d", i, j)
			assert.Len(t, fwd.Marked(), j-i+1)
		}
	}
}

func TestSelect_SameDayTwiceClosesOneDayRange(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-05")

	require.True(t, sel.Complete())
	assert.True(t, sel.Start.Equal(*sel.End))
	assert.Equal(t, daterange.MarkedDates{"2025-03-05": daterange.MarkSingle}, sel.Marked())
	assert.Equal(t, 1, sel.Days())
}

func TestSelect_ThirdTapRestarts(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-10", "2025-04-01")

	require.NotNil(t, sel.Start)
	assert.Nil(t, sel.End)
	assert.Equal(t, "2025-04-01", daterange.Key(*sel.Start))
	assert.Len(t, sel.Marked(), 1)

	// A third tap earlier than the discarded range still just restarts.
	sel = tap(t, "2025-03-05", "2025-03-10", "2025-03-01")
	assert.Equal(t, "2025-03-01", daterange.Key(*sel.Start))
	assert.Nil(t, sel.End)
}

func TestSelect_NormalizesTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	tapped := time.Date(2025, 3, 5, 23, 30, 0, 0, loc)

	sel := daterange.Select(daterange.Selection{}, tapped)

	assert.Equal(t, "2025-03-05", daterange.Key(*sel.Start))
	assert.Equal(t, time.UTC, sel.Start.Location())
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	cur := tap(t, "2025-03-10")
	before := *cur.Start

	_ = daterange.Select(cur, day(t, "2025-03-01"))

	assert.True(t, cur.Start.Equal(before))
	assert.Nil(t, cur.End)
}

// ---- Marked ----------------------------------------------------------------

func TestMarked_Empty(t *testing.T) {
	var sel daterange.Selection

	marked := sel.Marked()

	assert.NotNil(t, marked)
	assert.Empty(t, marked)
	assert.Equal(t, daterange.StateEmpty, sel.State())
	assert.Empty(t, sel.Label())
}

func TestMarked_Range(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-08")

	assert.Equal(t, daterange.MarkedDates{
		"2025-03-05": daterange.MarkStart,
		"2025-03-06": daterange.MarkInRange,
		"2025-03-07": daterange.MarkInRange,
		"2025-03-08": daterange.MarkEnd,
	}, sel.Marked())
}

func TestMarked_AdjacentDaysHaveNoFill(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-06")

	assert.Equal(t, daterange.MarkedDates{
		"2025-03-05": daterange.MarkStart,
		"2025-03-06": daterange.MarkEnd,
	}, sel.Marked())
}

func TestMarked_CrossMonthAndLeapDay(t *testing.T) {
	sel := tap(t, "2024-03-02", "2024-02-27")

	marked := sel.Marked()

	assert.Len(t, marked, 5)
	assert.Equal(t, daterange.MarkInRange, marked["2024-02-29"])
	assert.Equal(t, daterange.MarkEnd, marked["2024-03-02"])
	// The label keeps the start month even across months.
	assert.Equal(t, "27 to 02 of February", sel.Label())
}

func TestMarked_Idempotent(t *testing.T) {
	sel := tap(t, "2025-03-10", "2025-03-05")

	assert.Equal(t, sel.Marked(), sel.Marked())
	assert.Equal(t, sel.Label(), sel.Label())
}

func TestMarked_JSON(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-07")

	b, err := json.Marshal(sel.Marked())
	require.NoError(t, err)
	assert.JSONEq(t, `{"2025-03-05":"start","2025-03-06":"in_range","2025-03-07":"end"}`, string(b))

	var back daterange.MarkedDates
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, sel.Marked(), back)
}

// ---- helpers ---------------------------------------------------------------

func TestNew_ReordersAndTolerantOfMissingStart(t *testing.T) {
	a, b := day(t, "2025-03-10"), day(t, "2025-03-05")

	sel := daterange.New(&a, &b)
	assert.Equal(t, "2025-03-05", daterange.Key(*sel.Start))
	assert.Equal(t, "2025-03-10", daterange.Key(*sel.End))

	onlyEnd := daterange.New(nil, &a)
	assert.Equal(t, daterange.StateOpen, onlyEnd.State())
	assert.Equal(t, "2025-03-10", daterange.Key(*onlyEnd.Start))
}

func TestContainsAndEach(t *testing.T) {
	sel := tap(t, "2025-03-05", "2025-03-07")

	assert.True(t, sel.Contains(day(t, "2025-03-06")))
	assert.False(t, sel.Contains(day(t, "2025-03-08")))

	var got []string
	sel.Each(func(d time.Time) { got = append(got, daterange.Key(d)) })
	assert.Equal(t, []string{"2025-03-05", "2025-03-06", "2025-03-07"}, got)
}

func TestSelection_ReversedLiteralReadsInOrder(t *testing.T) {
	start, end := day(t, "2025-03-10"), day(t, "2025-03-05")
	sel := daterange.Selection{Start: &start, End: &end}

	assert.Equal(t, 6, sel.Days())
	assert.Equal(t, "05 to 10 of March", sel.Label())
	assert.True(t, sel.Contains(day(t, "2025-03-07")))
	assert.Equal(t, daterange.MarkStart, sel.Marked()["2025-03-05"])
	assert.Equal(t, daterange.MarkEnd, sel.Marked()["2025-03-10"])
	assert.Len(t, sel.Marked(), 6)
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := daterange.ParseDay("2025-02-30")
	assert.Error(t, err)
}
