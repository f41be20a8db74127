package form

import (
	"math"
	"strconv"
	"strings"
)

// Field describes one numeric input of a calculator form.
type Field struct {
	Name    string  // stable key used by values and defaults
	Label   string  // label shown next to the input
	Unit    string  // display unit, empty for dimensionless fields
	Default float64 // initial value suggested to the user
}

// Schema is the ordered set of fields a form collects.
type Schema struct {
	Fields []Field
}

// Values holds parsed field values keyed by field name.
type Values map[string]float64

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// FormatValue renders a numeric value as input text, the inverse of Parse.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Parse validates the raw text of every field in the schema. Each field
// must be non-empty and parse as a finite real number. All fields are
// checked so the caller can surface every failure at once.
func (s Schema) Parse(raw map[string]string) (Values, FieldErrors) {
	vals := make(Values, len(s.Fields))
	errs := make(FieldErrors)

	for _, f := range s.Fields {
		text := strings.TrimSpace(raw[f.Name])
		if text == "" {
			errs[f.Name] = &FieldError{Field: f.Name, Wrapped: ErrFieldRequired}
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			errs[f.Name] = &FieldError{Field: f.Name, Wrapped: ErrNotANumber}
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs[f.Name] = &FieldError{Field: f.Name, Wrapped: ErrNotFinite}
			continue
		}
		vals[f.Name] = v
	}

	if errs.Any() {
		return nil, errs
	}
	return vals, nil
}
