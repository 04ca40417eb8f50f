package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TimestampLayout is the stored form of every timestamp. It is fixed width
// and always UTC, so string order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in the stored form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp re-hydrates a stored timestamp. Any RFC 3339 string is
// accepted, including "+00:00" offsets and other fractional precisions.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// naive ISO strings without an offset are read as UTC
		t, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
		}
	}
	return t.UTC(), nil
}

// isoTime is a time.Time stored as an ISO-8601 string.
type isoTime time.Time

func (t isoTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(FormatTimestamp(time.Time(t)))
}

func (t *isoTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.String:
		parsed, err := ParseTimestamp(raw.StringValue())
		if err != nil {
			return err
		}
		*t = isoTime(parsed)
	case bsontype.DateTime:
		*t = isoTime(time.UnixMilli(raw.DateTime()).UTC())
	case bsontype.Null:
		*t = isoTime(time.Time{})
	default:
		return fmt.Errorf("unsupported timestamp type %s", bt)
	}
	return nil
}
