package api

import (
	"strings"
	"time"
)

// dateLayout is the wire format YNAB uses for all date-only fields
const dateLayout = "2006-01-02"

// Date represents a YNAB date, serialized on the wire as "YYYY-MM-DD"
type Date struct {
	time.Time
}

// DateFromString parses a YNAB formatted date string (YYYY-MM-DD)
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// DateFormat renders a Date using the YNAB wire format
func DateFormat(d Date) string {
	return d.Time.Format(dateLayout)
}

// IsZero reports whether d represents the zero date
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Pointer returns a pointer to d, useful for optional date fields
func (d Date) Pointer() *Date {
	return &d
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + DateFormat(d) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := DateFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
