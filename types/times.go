package types

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
	"github.com/jsonwire/jsonwire/encoding"
)

// Day is a date in the proleptic Gregorian calendar.
type Day struct {
	Year  int
	Month int
	Day   int
}

// NewDay returns the given proleptic Gregorian date.
func NewDay(year, month, day int) Day {
	return Day{Year: year, Month: month, Day: day}
}

// NewDayFromTime returns the date of t in its own location.
func NewDayFromTime(t time.Time) Day {
	year, month, day := t.Date()
	return Day{Year: year, Month: int(month), Day: day}
}

func (d Day) String() string {
	data, _ := d.MarshalText()
	return string(data)
}

func (d Day) MarshalText() ([]byte, error) {
	return encoding.AppendDay(nil, d.Year, d.Month, d.Day), nil
}

func (d Day) MarshalJSON() ([]byte, error) {
	return quoted(encoding.AppendDay(nil, d.Year, d.Month, d.Day)), nil
}

// TimeOfDay is a wall-clock time. Seconds holds the picoseconds elapsed
// within the minute and may reach into [60s, 61s) to represent an inserted
// leap second.
type TimeOfDay struct {
	Hour    int
	Minute  int
	Seconds int64
}

// NewTimeOfDay returns a wall-clock time. seconds is in picoseconds within
// the minute.
func NewTimeOfDay(hour, minute int, seconds int64) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Seconds: seconds}
}

// NewTimeOfDayFromTime returns the wall-clock time of t in its own
// location, at nanosecond precision.
func NewTimeOfDayFromTime(t time.Time) TimeOfDay {
	hour, minute, sec := t.Clock()
	return TimeOfDay{
		Hour:    hour,
		Minute:  minute,
		Seconds: int64(sec)*encoding.PicosPerSecond + int64(t.Nanosecond())*1000,
	}
}

func (t TimeOfDay) String() string {
	data, _ := t.MarshalText()
	return string(data)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return encoding.AppendTimeOfDay(nil, t.Hour, t.Minute, t.Seconds), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return quoted(encoding.AppendTimeOfDay(nil, t.Hour, t.Minute, t.Seconds)), nil
}

// TimeZone is a timezone offset in minutes east of UTC.
type TimeZone int

func (tz TimeZone) String() string {
	data, _ := tz.MarshalText()
	return string(data)
}

func (tz TimeZone) MarshalText() ([]byte, error) {
	return encoding.AppendTimeZone(nil, int(tz)), nil
}

func (tz TimeZone) MarshalJSON() ([]byte, error) {
	return quoted(encoding.AppendTimeZone(nil, int(tz))), nil
}

// LocalTime is a date paired with a wall-clock time, without a timezone.
type LocalTime struct {
	Date Day
	Time TimeOfDay
}

func (lt LocalTime) String() string {
	data, _ := lt.MarshalText()
	return string(data)
}

func (lt LocalTime) MarshalText() ([]byte, error) {
	return encoding.AppendLocalTime(nil, lt.Date.Year, lt.Date.Month, lt.Date.Day, lt.Time.Hour, lt.Time.Minute, lt.Time.Seconds), nil
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	data, _ := lt.MarshalText()
	return quoted(data), nil
}

// UTCTime is a date paired with the picoseconds elapsed since midnight UTC.
// Seconds may reach up to and including 86400.999999999999 seconds to
// represent a leap second.
type UTCTime struct {
	Date    Day
	Seconds int64
}

// NewUTCTimeFromTime converts t to UTC and returns it at nanosecond
// precision.
func NewUTCTimeFromTime(t time.Time) UTCTime {
	u := t.UTC()
	hour, minute, sec := u.Clock()

	return UTCTime{
		Date:    NewDayFromTime(u),
		Seconds: int64(hour*3600+minute*60+sec)*encoding.PicosPerSecond + int64(u.Nanosecond())*1000,
	}
}

func (t UTCTime) String() string {
	data, _ := t.MarshalText()
	return string(data)
}

func (t UTCTime) MarshalText() ([]byte, error) {
	return encoding.AppendUTCTime(nil, t.Date.Year, t.Date.Month, t.Date.Day, t.Seconds), nil
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	data, _ := t.MarshalText()
	return quoted(data), nil
}

// ZonedTime is a local time paired with its timezone offset.
type ZonedTime struct {
	Local LocalTime
	Zone  TimeZone
}

// NewZonedTimeFromTime returns t as a local time plus the offset of its
// location.
func NewZonedTimeFromTime(t time.Time) ZonedTime {
	_, offset := t.Zone()

	return ZonedTime{
		Local: LocalTime{
			Date: NewDayFromTime(t),
			Time: NewTimeOfDayFromTime(t),
		},
		Zone: TimeZone(offset / 60),
	}
}

func (zt ZonedTime) String() string {
	data, _ := zt.MarshalText()
	return string(data)
}

func (zt ZonedTime) MarshalText() ([]byte, error) {
	lt := zt.Local
	return encoding.AppendZonedTime(nil, lt.Date.Year, lt.Date.Month, lt.Date.Day, lt.Time.Hour, lt.Time.Minute, lt.Time.Seconds, int(zt.Zone)), nil
}

func (zt ZonedTime) MarshalJSON() ([]byte, error) {
	data, _ := zt.MarshalText()
	return quoted(data), nil
}

var (
	epoch   = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).UnixMicro()
	maxTime = math.MaxInt64 - epoch
	minTime = math.MinInt64 + epoch
)

// ParseTimestamp parses a timestamp in any of the formats carbon
// understands and returns it as a zoned time.
func ParseTimestamp(s string) (ZonedTime, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return ZonedTime{}, errors.New("invalid timestamp")
	}

	ts := c.StdTime()
	m := ts.UnixMicro()
	if m > maxTime || m < minTime {
		return ZonedTime{}, errors.New("timestamp out of range")
	}

	return NewZonedTimeFromTime(ts), nil
}

func quoted(body []byte) []byte {
	data := make([]byte, 0, len(body)+2)
	data = append(data, '"')
	data = append(data, body...)
	return append(data, '"')
}
