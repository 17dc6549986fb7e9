package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", EndOfDay, true},
		{"0930", 0, false},
		{"25:00", 0, false},
		{"12:60", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			if !tt.ok {
				assert.True(t, httperr.IsBusiness(err, "invalid_time_of_day"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}

	assert.Equal(t, "09:05", Clock(545).String())
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2026-12-31")
	require.NoError(t, err)

	assert.Equal(t, time.Thursday, d.Weekday())
	assert.Equal(t, "2027-01-01", d.AddDays(1).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))

	_, err = ParseDate("2026-02-30")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestDateAt(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	spring := Date{Year: 2026, Month: time.March, Day: 8}

	_, ok := spring.At(150, ny)
	assert.False(t, ok, "02:30 does not exist")

	ts, ok := spring.At(180, ny)
	require.True(t, ok)
	assert.Equal(t, "03:00", ts.Format("15:04"))

	end, ok := spring.At(EndOfDay, ny)
	require.True(t, ok)
	assert.Equal(t, "2026-03-09 00:00", end.Format("2006-01-02 15:04"))
	assert.Equal(t, 23*time.Hour, end.Sub(spring.Start(ny)))
}

func TestValidateWindows(t *testing.T) {
	ok := []Window{
		{Weekday: time.Monday, Start: 540, End: 720},
		{Weekday: time.Monday, Start: 720, End: 1080},
		{Weekday: time.Tuesday, Start: 600, End: 700},
	}
	assert.NoError(t, ValidateWindows(ok))
	assert.NoError(t, ValidateWindows(nil))

	overlap := append(ok, Window{Weekday: time.Monday, Start: 700, End: 800})
	assert.True(t, httperr.IsBusiness(ValidateWindows(overlap), "overlapping_windows"))

	assert.True(t, httperr.IsBusiness(ValidateWindows([]Window{{Weekday: 1, Start: 600, End: 600}}), "invalid_window"))
	assert.True(t, httperr.IsBusiness(ValidateWindows([]Window{{Weekday: -1, Start: 600, End: 700}}), "invalid_weekday"))
}

func TestParamsValidate(t *testing.T) {
	valid := Params{ServiceDuration: 30 * time.Minute, Granularity: 15 * time.Minute}
	assert.NoError(t, valid.Validate())

	cases := map[string]Params{
		"invalid_service_duration": {ServiceDuration: 0, Granularity: time.Minute},
		"invalid_granularity":      {ServiceDuration: time.Minute, Granularity: 90 * time.Second},
		"invalid_buffer":           {ServiceDuration: time.Minute, Granularity: time.Minute, BufferAfter: -time.Minute},
		"invalid_min_advance":      {ServiceDuration: time.Minute, Granularity: time.Minute, MinAdvance: -time.Minute},
	}
	for code, p := range cases {
		assert.True(t, httperr.IsBusiness(p.Validate(), code), code)
	}
}

func TestGenerate(t *testing.T) {
	windows := []Window{
		{Weekday: time.Monday, Start: 540, End: 600},
		{Weekday: time.Monday, Start: 840, End: 860},
		{Weekday: time.Tuesday, Start: 540, End: 600},
	}

	slots := Generate(windows, monday, 20*time.Minute, 30*time.Minute, time.UTC)

	// 14:00-14:20 is shorter than the service.
	assert.Equal(t, []string{"09:00", "09:20"}, labels(slots))

	assert.Nil(t, Generate(windows, monday, 0, 30*time.Minute, time.UTC))
	assert.Empty(t, Generate(nil, monday, 30*time.Minute, 30*time.Minute, time.UTC))
}

func TestGenerateOverlappingWindowsThenNormalize(t *testing.T) {
	windows := []Window{
		{Weekday: time.Monday, Start: 540, End: 660},
		{Weekday: time.Monday, Start: 600, End: 690},
	}

	raw := Generate(windows, monday, 30*time.Minute, 30*time.Minute, time.UTC)
	assert.Len(t, raw, 7)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, labels(Normalize(raw)))
}

func TestFilterMergesAndSkipsInvalid(t *testing.T) {
	base := time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)
	hm := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	var candidates []Slot
	for m := 0; m < 180; m += 30 {
		s := hm(9, m)
		candidates = append(candidates, Slot{Start: s, End: s.Add(30 * time.Minute)})
	}

	bookings := []Booking{
		{Start: hm(10, 0), End: hm(10, 20), Status: BookingConfirmed},
		{Start: hm(10, 10), End: hm(10, 40), Status: BookingConfirmed},
		{Start: hm(11, 30), End: hm(11, 0), Status: BookingConfirmed},
	}

	out := Filter(candidates, bookings, 0, 0)
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, labels(out))
}

func TestNormalize(t *testing.T) {
	base := time.Date(2026, 10, 26, 9, 0, 0, 0, time.UTC)
	short := Slot{Start: base, End: base.Add(15 * time.Minute)}
	long := Slot{Start: base, End: base.Add(30 * time.Minute)}
	later := Slot{Start: base.Add(30 * time.Minute), End: base.Add(60 * time.Minute)}

	in := []Slot{later, long, short, long, later}
	out := Normalize(in)

	assert.Equal(t, []Slot{short, long, later}, out)
	assert.Len(t, in, 5, "input is not modified")
	assert.Equal(t, later, in[0])
}

func TestBookingStatus(t *testing.T) {
	st, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.True(t, st.Blocks())

	assert.True(t, BookingPending.Blocks())
	assert.False(t, BookingCancelled.Blocks())
	assert.False(t, BookingCompleted.Blocks())

	_, err = ParseBookingStatus("no_show")
	assert.True(t, httperr.IsBusiness(err, "invalid_booking_status"))
}
