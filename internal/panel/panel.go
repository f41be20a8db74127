// Package panel binds each calculator form to its physics equation. A
// panel owns the field schema, the display labels and the compute step;
// it is the unit the TUI tabs and the CLI subcommands operate on.
package panel

import (
	"github.com/san-kum/fisicalc/internal/form"
)

// Panel is one self-contained calculator: a field schema, the formula over
// the parsed values, and the labels used to present the result.
type Panel struct {
	Name        string // stable key, also the CLI argument
	Title       string
	Description string
	Schema      form.Schema
	ResultLabel string
	ResultUnit  string
	Compute     func(form.Values) (float64, error)
}

// Submit runs the full validate-then-compute flow over raw field text.
// Field failures come back in FieldErrors; a non-finite result comes back
// as err. Exactly one of the three outcomes is populated.
func (p *Panel) Submit(raw map[string]string) (float64, form.FieldErrors, error) {
	vals, errs := p.Schema.Parse(raw)
	if errs.Any() {
		return 0, errs, nil
	}
	res, err := p.Compute(vals)
	if err != nil {
		return 0, nil, err
	}
	return res, nil, nil
}

// Defaults returns the schema's suggested values keyed by field name.
func (p *Panel) Defaults() form.Values {
	vals := make(form.Values, len(p.Schema.Fields))
	for _, f := range p.Schema.Fields {
		vals[f.Name] = f.Default
	}
	return vals
}
