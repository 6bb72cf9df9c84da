// Package form holds the per-field validation engine behind the booking, contact, review,
// guest and payment forms.
//
// A field is validated on blur and on submit. Editing a field clears only that field's
// error, and fields that depend on it are re-checked when they already hold a value.
package form

import (
	"homestay/shared/failure"
	"maps"
	"strings"
	"sync"
)

// SubmitErrorMessage is reported when ValidateAll fails.
const SubmitErrorMessage = "Please fix the errors in the form before submitting."

// Rule validates one raw value. values is a snapshot of the whole form, for cross-field rules.
// It returns the error message or "".
type Rule func(value string, values map[string]string) string

type Field struct {
	Name string
	Rule Rule
	// Dependents are re-validated when this field changes and they hold a value.
	Dependents []string
	Default    string
}

type Form struct {
	mu     sync.Mutex
	order  []string
	fields map[string]Field
	values map[string]string
	errors map[string]string
}

func New(fields ...Field) *Form {
	f := &Form{
		order:  make([]string, 0, len(fields)),
		fields: make(map[string]Field, len(fields)),
		values: make(map[string]string, len(fields)),
		errors: make(map[string]string, len(fields)),
	}

	for _, field := range fields {
		f.order = append(f.order, field.Name)
		f.fields[field.Name] = field
		f.values[field.Name] = field.Default
		f.errors[field.Name] = ""
	}

	return f
}

// Validate runs the rule of name against raw, without recording anything.
func (f *Form) Validate(name, raw string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.validate(name, raw)
}

func (f *Form) validate(name, raw string) string {
	field, ok := f.fields[name]
	if !ok || field.Rule == nil {
		return ""
	}

	values := maps.Clone(f.values)
	values[name] = raw

	return field.Rule(raw, values)
}

// Set stores value and clears the field's error. Dependents already holding a value are
// re-validated and their errors recorded.
func (f *Form) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	if !ok {
		return
	}

	f.values[name] = value
	f.errors[name] = ""

	for _, dependent := range field.Dependents {
		if strings.TrimSpace(f.values[dependent]) == "" {
			continue
		}

		f.errors[dependent] = f.validate(dependent, f.values[dependent])
	}
}

// Fill sets every known field present in values.
func (f *Form) Fill(values map[string]string) {
	for _, name := range f.order {
		if value, ok := values[name]; ok {
			f.Set(name, value)
		}
	}
}

// Blur validates the current value of name and records the result.
func (f *Form) Blur(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[name]; !ok {
		return ""
	}

	msg := f.validate(name, f.values[name])
	f.errors[name] = msg

	return msg
}

// ValidateAll runs every rule, records every result and reports whether all passed.
func (f *Form) ValidateAll() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	valid := true

	for _, name := range f.order {
		msg := f.validate(name, f.values[name])
		f.errors[name] = msg

		if msg != "" {
			valid = false
		}
	}

	return valid
}

// Err validates the whole form and returns a 422 failure listing the failing fields.
func (f *Form) Err() error {
	if f.ValidateAll() {
		return nil
	}

	return failure.Validation(SubmitErrorMessage, f.Errors())
}

// Errors returns the non-empty recorded errors by field.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)

	for name, msg := range f.errors {
		if msg != "" {
			errs[name] = msg
		}
	}

	return errs
}

func (f *Form) Error(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.errors[name]
}

func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maps.Clone(f.values)
}

func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.values[name]
}

// Fields lists field names in declaration order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.order...)
}
