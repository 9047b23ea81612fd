package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
)

/* Variant is how a toast is painted
 * Destructive is used for every failed mutation
 */
type Variant int

const (
	Default Variant = iota + 1
	Destructive
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case Default:
		return "default"
	case Destructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// NewVariant creates a Variant from a string
func NewVariant(str string) Variant {
	switch str {
	case "destructive":
		return Destructive
	default:
		return Default
	}
}

// Validate checks if the variant is valid
func (v Variant) Validate() error {
	if v < Default || v > Destructive {
		return fmt.Errorf("invalid variant: %d", v)
	}
	return nil
}

func (v Variant) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(v.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (v *Variant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding variant: %w", err)
	}
	*v = NewVariant(s)
	return nil
}
