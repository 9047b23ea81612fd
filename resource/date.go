package resource

import (
	"bytes"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

/* Date is a calendar day exchanged with the backend
 * Accepts "2006-01-02" and RFC 3339 timestamps, always kept at UTC midnight
 */
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a form or JSON date
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Input formats the date for an <input type="date">
func (d Date) Input() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// BR formats the date the way pt-BR users read it
func (d Date) BR() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("02/01/2006")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(d.UTC().Format(time.RFC3339))
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
