package forms

import (
	"context"
	"html"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/motormart/motormart-backend/pkg/errors"
)

// Policy decides what a controller does with a failed submission.
type Policy string

const (
	// PolicySticky re-renders the originating form with the submitted
	// values and per-field messages.
	PolicySticky Policy = "sticky"
	// PolicyRedirect flashes the joined messages and bounces back to the
	// page the form lives on.
	PolicyRedirect Policy = "redirect"
)

var validate = validator.New()

// Transform rewrites a raw submitted value before any rule sees it.
type Transform func(string) string

// Check is a rule that needs the outside world, e.g. a uniqueness probe.
// ok=false fails the field with the rule's message; an error aborts the
// whole validation as an internal failure.
type Check func(ctx context.Context, value string) (bool, error)

// Rule is one requirement on a field. Exactly one of Tag, Func, or Check
// should be set. Rules run in order and the first failure wins the field.
type Rule struct {
	Tag     string
	Func    func(string) bool
	Check   Check
	Message string
}

// Field is one named input with its transform and rule chain.
type Field struct {
	Name       string
	Transforms []Transform
	Rules      []Rule
}

// Form is a declarative description of one POST target.
type Form struct {
	Policy Policy
	Fields []Field
}

// Outcome carries the transformed values and the per-field failures.
type Outcome struct {
	Values map[string]string
	Errors map[string]string
	order  []string
}

// OK reports whether every rule passed.
func (o Outcome) OK() bool {
	return len(o.Errors) == 0
}

// Value returns the transformed value for a field.
func (o Outcome) Value(name string) string {
	return o.Values[name]
}

// Joined flattens the failures into one flash-sized string, in field order.
func (o Outcome) Joined() string {
	var parts []string
	for _, name := range o.order {
		if msg, ok := o.Errors[name]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " ")
}

// Validate runs the pipeline over one submission. The returned error is
// reserved for Check infrastructure failures; rule failures land in the
// Outcome.
func (f *Form) Validate(ctx context.Context, submitted url.Values) (Outcome, error) {
	outcome := Outcome{
		Values: make(map[string]string, len(f.Fields)),
		Errors: map[string]string{},
		order:  make([]string, 0, len(f.Fields)),
	}

	for _, field := range f.Fields {
		outcome.order = append(outcome.order, field.Name)

		value := submitted.Get(field.Name)
		for _, transform := range field.Transforms {
			value = transform(value)
		}
		outcome.Values[field.Name] = value

		for _, rule := range field.Rules {
			failed, err := rule.apply(ctx, value)
			if err != nil {
				return Outcome{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validate "+field.Name)
			}
			if failed {
				outcome.Errors[field.Name] = rule.Message
				break
			}
		}
	}

	return outcome, nil
}

func (r Rule) apply(ctx context.Context, value string) (failed bool, err error) {
	switch {
	case r.Tag != "":
		return validate.Var(value, r.Tag) != nil, nil
	case r.Func != nil:
		return !r.Func(value), nil
	case r.Check != nil:
		ok, err := r.Check(ctx, value)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
	return false, nil
}

// Trim drops surrounding whitespace.
func Trim(value string) string {
	return strings.TrimSpace(value)
}

// Escape HTML-encodes the value so stored text is inert when re-rendered.
func Escape(value string) string {
	return html.EscapeString(value)
}

// Lowercase folds the value, used for email normalization.
func Lowercase(value string) string {
	return strings.ToLower(value)
}
