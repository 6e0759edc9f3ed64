package encoding

import (
	"strconv"
	"time"
)

// Sub-second values are carried as picoseconds so that second fractions can
// be represented exactly, including the fraction of an inserted leap second.
const (
	PicosPerSecond = 1_000_000_000_000

	picosPerTenth = PicosPerSecond / 10
	halfTenth     = picosPerTenth / 2

	// Seconds within a minute at or above this value are rendered without
	// rounding, so that rounding close to the end of a minute does not
	// fabricate a 60th second while an explicit leap second still prints
	// as :60.
	noRoundThreshold = 59_999 * (PicosPerSecond / 1000)

	secondsPerDay = 86_400
)

// AppendDay appends the ISO-8601 date year-MM-DD to dst. The year is
// rendered as a plain signed integer with as many digits as it needs, month
// and day are always two digits.
func AppendDay(dst []byte, year, month, day int) []byte {
	dst = strconv.AppendInt(dst, int64(year), 10)
	dst = append(dst, '-')
	dst = AppendPad2(dst, month)
	dst = append(dst, '-')
	return AppendPad2(dst, day)
}

// AppendTimeOfDay appends HH:MM:SS to dst, followed by a single tenths
// digit when the rounded fraction is not zero. seconds is the number of
// picoseconds elapsed within the minute and may reach into the 61st second
// to represent a leap second.
//
// The fraction is rounded half-up to the nearest tenth of a second, a carry
// bumps the whole second. Values at or above 59.999s are passed through
// unrounded; see noRoundThreshold.
func AppendTimeOfDay(dst []byte, hour, minute int, seconds int64) []byte {
	whole := seconds / PicosPerSecond
	frac := seconds % PicosPerSecond

	var tenths int64
	if seconds >= noRoundThreshold {
		tenths = frac / picosPerTenth
	} else {
		tenths = (frac + halfTenth) / picosPerTenth
		if tenths == 10 {
			whole++
			tenths = 0
		}
	}

	dst = AppendPad2(dst, hour)
	dst = append(dst, ':')
	dst = AppendPad2(dst, minute)
	dst = append(dst, ':')
	dst = AppendPad2(dst, int(whole))
	if tenths != 0 {
		dst = append(dst, '.', '0'+byte(tenths))
	}

	return dst
}

// AppendTimeZone appends the ISO-8601 representation of a timezone offset
// expressed in minutes east of UTC. A zero offset is rendered as Z,
// anything else as {sign}HH:MM.
func AppendTimeZone(dst []byte, offsetMinutes int) []byte {
	if offsetMinutes == 0 {
		return append(dst, 'Z')
	}

	sign := byte('+')
	if offsetMinutes < 0 {
		sign = '-'
		offsetMinutes = -offsetMinutes
	}

	dst = append(dst, sign)
	dst = AppendPad2(dst, offsetMinutes/60)
	dst = append(dst, ':')
	return AppendPad2(dst, offsetMinutes%60)
}

// AppendLocalTime appends date and time of day separated by T. seconds is
// in picoseconds within the minute, as for AppendTimeOfDay.
func AppendLocalTime(dst []byte, year, month, day, hour, minute int, seconds int64) []byte {
	dst = AppendDay(dst, year, month, day)
	dst = append(dst, 'T')
	return AppendTimeOfDay(dst, hour, minute, seconds)
}

// AppendUTCTime appends the local time derived from daySeconds followed by
// the Z designator. daySeconds is the number of picoseconds elapsed since
// midnight and may reach up to and including 86400.999999999999 seconds to
// represent a leap second, which is rendered as second 60 of 23:59 rather
// than being normalized into the next day.
func AppendUTCTime(dst []byte, year, month, day int, daySeconds int64) []byte {
	var hour, minute int
	var seconds int64

	if daySeconds >= secondsPerDay*PicosPerSecond {
		hour, minute = 23, 59
		seconds = 60*PicosPerSecond + (daySeconds - secondsPerDay*PicosPerSecond)
	} else {
		whole := daySeconds / PicosPerSecond
		hour = int(whole / 3600)
		minute = int(whole/60) % 60
		seconds = whole%60*PicosPerSecond + daySeconds%PicosPerSecond
	}

	dst = AppendLocalTime(dst, year, month, day, hour, minute, seconds)
	return append(dst, 'Z')
}

// AppendZonedTime appends the local time followed by its timezone offset.
func AppendZonedTime(dst []byte, year, month, day, hour, minute int, seconds int64, offsetMinutes int) []byte {
	dst = AppendLocalTime(dst, year, month, day, hour, minute, seconds)
	return AppendTimeZone(dst, offsetMinutes)
}

// AppendTime appends t as an ISO-8601 UTC time. The time is converted to
// UTC first; nanosecond precision is preserved.
func AppendTime(dst []byte, t time.Time) []byte {
	u := t.UTC()
	year, month, day := u.Date()
	hour, minute, sec := u.Clock()

	daySeconds := int64(hour*3600+minute*60+sec)*PicosPerSecond + int64(u.Nanosecond())*1000

	return AppendUTCTime(dst, year, int(month), day, daySeconds)
}
