package types

import "time"

var _ Value = NewTimestampValue(UTCTime{})

// TimestampValue is a UTC time encoded as a quoted ISO-8601 JSON string.
type TimestampValue UTCTime

// NewTimestampValue returns a timestamp value.
func NewTimestampValue(t UTCTime) TimestampValue {
	return TimestampValue(t)
}

// NewTimestampFromTime returns a timestamp value holding t converted to
// UTC.
func NewTimestampFromTime(t time.Time) TimestampValue {
	return TimestampValue(NewUTCTimeFromTime(t))
}

func (v TimestampValue) V() any {
	return UTCTime(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) IsZero() (bool, error) {
	return UTCTime(v) == UTCTime{}, nil
}

func (v TimestampValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v TimestampValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return UTCTime(v).MarshalJSON()
}
