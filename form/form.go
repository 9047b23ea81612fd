package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/marcelsud/locadora-web/resource"
)

// ErrValidation is matched by every ValidationError
var ErrValidation = errors.New("validation failed")

// FieldErrors maps a form field name to the message shown next to it
type FieldErrors map[string]string

// Has reports whether field has an error
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

/* ValidationError carries the violations of one submission
 * It never leaves the dialog: pages render it as field messages
 */
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

/* Messenger is implemented by drafts to give each rule its own message
 * Keys are "field.tag" (e.g. "nome.min") or just "field" as fallback
 */
type Messenger interface {
	FieldMessages() map[string]string
}

const defaultMessage = "Campo inválido"

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Validator)

// WithClock replaces time.Now for the pastdate rule
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New creates a validator with the custom rules registered
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(fieldName)
	// only fails on an empty tag or nil func
	_ = v.validate.RegisterValidation("pastdate", v.pastDate)
	return v
}

// Validate checks draft and returns a *ValidationError on violations
func (v *Validator) Validate(draft any) error {
	err := v.validate.Struct(draft)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating form: %w", err)
	}

	var messages map[string]string
	if m, ok := draft.(Messenger); ok {
		messages = m.FieldMessages()
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(messages, fe.Field(), fe.Tag())
	}
	return &ValidationError{Fields: fields}
}

// pastDate accepts dates strictly before today, compared by calendar day in UTC
func (v *Validator) pastDate(fl validator.FieldLevel) bool {
	var t time.Time
	switch value := fl.Field().Interface().(type) {
	case resource.Date:
		t = value.Time
	case time.Time:
		t = value
	default:
		return false
	}
	if t.IsZero() {
		// required reports missing dates
		return true
	}
	return resource.NewDate(t).Before(resource.NewDate(v.now()).Time)
}

func message(messages map[string]string, field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return defaultMessage
}

// fieldName uses the form tag so errors line up with the HTML inputs
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
