package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are the text forms a store may hand back for a timestamp column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp is a time.Time that scans from both native timestamps (lib/pq) and the text values
// SQLite returns when it cannot infer the column type, e.g. from a RETURNING clause.
type Timestamp struct {
	time.Time
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		t.Time = time.Time{}

		return nil
	case time.Time:
		t.Time = value

		return nil
	case []byte:
		return t.parse(string(value))
	case string:
		return t.parse(value)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *Timestamp) parse(value string) error {
	value = strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as timestamp", value)
}
