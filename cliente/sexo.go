package cliente

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Sexo type
type Sexo int

const (
	Masculino Sexo = iota + 1
	Feminino
)

// String returns the code sent to the API
func (s Sexo) String() string {
	switch s {
	case Masculino:
		return "M"
	case Feminino:
		return "F"
	}
	return ""
}

// Label returns the name shown on screen
func (s Sexo) Label() string {
	switch s {
	case Masculino:
		return "Masculino"
	case Feminino:
		return "Feminino"
	}
	return "Não informado"
}

// Define how to transform a Sexo into JSON
func (s Sexo) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (s *Sexo) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("decoding sexo: %w", err)
	}
	*s = NewSexo(str)
	return nil
}

// NewSexo creates a Sexo from "M" or "F". Anything else is the zero value,
// which the form reports as missing.
func NewSexo(s string) Sexo {
	switch s {
	case "M", "m", "Masculino":
		return Masculino
	case "F", "f", "Feminino":
		return Feminino
	}
	return 0
}

// Validate checks if the sexo is valid
func (s Sexo) Validate() error {
	if s < Masculino || s > Feminino {
		return fmt.Errorf("invalid sexo: %d", s)
	}
	return nil
}
