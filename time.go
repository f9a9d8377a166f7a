package treasury

import (
	"encoding/json"
	"time"

	"github.com/iov-one/treasury/errors"
)

// UnixTime represents a point in time as POSIX time.
// This type comes in handy when dealing with protobuf messages. Instead of
// using Go's time.Time that includes nanoseconds use primitive int64 type and
// seconds precision.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// IsZero returns true if this time represents a zero value.
func (t UnixTime) IsZero() bool {
	return t == 0
}

// AsUnixTime converts given Time structure into its UNIX time representation.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but it is
// convinient to use a string format in configurations (ie genesis file).
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = UnixTime(unix)
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := UnixTime(stdtime.Unix())
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// String returns the usual string representation of this time as the time.Time
// structure would.
func (t UnixTime) String() string {
	return t.Time().String()
}

// UnixDuration represents a time duration with granularity of a second.
type UnixDuration int64

// AsUnixDuration converts given duration into UnixDuration. Be aware that
// granularity of UnixDuration is one second, so the value is truncated.
func AsUnixDuration(d time.Duration) UnixDuration {
	return UnixDuration(d / time.Second)
}

// Duration returns the time.Duration representation of this value.
func (d UnixDuration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// Validate returns an error if this duration is invalid.
func (d UnixDuration) Validate() error {
	if d < 0 {
		return errors.Wrap(errors.ErrState, "negative duration")
	}
	return nil
}

// UnmarshalJSON accepts both a number of seconds and a time.Duration string
// representation, for example "168h".
func (d *UnixDuration) UnmarshalJSON(raw []byte) error {
	var secs int64
	if err := json.Unmarshal(raw, &secs); err == nil {
		*d = UnixDuration(secs)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid duration format")
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid duration %q", s)
	}
	*d = AsUnixDuration(dur)
	return nil
}

// MarshalJSON serializes the duration as a time.Duration string.
func (d UnixDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration().String())
}

func (d UnixDuration) String() string {
	return d.Duration().String()
}
