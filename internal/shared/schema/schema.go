// Package schema declares field constraints once and derives ozzo-validation
// rules from them, so every DTO variant reports the same violation messages.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Issue is a single constraint violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Issues is an ordered list of violations, in field declaration order.
type Issues []Issue

func (is Issues) Error() string {
	msgs := make([]string, len(is))
	for i, issue := range is {
		msgs[i] = issue.Path + ": " + issue.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the first violation. It is the zero Issue for an empty list.
func (is Issues) First() Issue {
	if len(is) == 0 {
		return Issue{}
	}
	return is[0]
}

// IssuesOf extracts the ordered violations from a validation error.
func IssuesOf(err error) (Issues, bool) {
	var issues Issues
	if errors.As(err, &issues) {
		return issues, true
	}
	return nil, false
}

// Text declares a bounded text field.
type Text struct {
	Label string // human name used in messages
	Min   int
	Max   int
}

func (t Text) RequiredMessage() string { return t.Label + " is required" }
func (t Text) TooShortMessage() string { return t.Label + " is too short" }
func (t Text) TooLongMessage() string  { return t.Label + " is too long" }

// Rules returns the rules for a mandatory field. The value may be a string or *string.
func (t Text) Rules() []validation.Rule {
	return []validation.Rule{
		validation.NotNil.Error(t.RequiredMessage()),
		validation.Required.Error(t.TooShortMessage()),
		validation.RuneLength(t.Min, 0).Error(t.TooShortMessage()),
		validation.RuneLength(0, t.Max).Error(t.TooLongMessage()),
	}
}

// OptionalRules returns the rules for a partial update: nil is accepted, a
// present value gets the same bounds as Rules.
func (t Text) OptionalRules() []validation.Rule {
	return []validation.Rule{
		validation.NilOrNotEmpty.Error(t.TooShortMessage()),
		validation.RuneLength(t.Min, 0).Error(t.TooShortMessage()),
		validation.RuneLength(0, t.Max).Error(t.TooLongMessage()),
	}
}

type objectIDRule struct {
	message string
}

// ObjectID accepts strings that are structurally valid store identifiers.
// Whether the identifier exists is not checked. Nil values are skipped.
func ObjectID(message string) validation.Rule {
	return objectIDRule{message: message}
}

func (r objectIDRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_is_object_id", r.message)
	}
	if !IsObjectID(s) {
		return validation.NewError("validation_is_object_id", r.message)
	}
	return nil
}

// IsObjectID reports whether s is the 24 character hex form of an ObjectID.
func IsObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

type objectIDSetRule struct {
	message string
}

// ObjectIDSet rejects the zero ObjectID.
func ObjectIDSet(message string) validation.Rule {
	return objectIDSetRule{message: message}
}

func (r objectIDSetRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return validation.NewError("validation_object_id_set", r.message)
	}
	id, ok := value.(primitive.ObjectID)
	if !ok || id.IsZero() {
		return validation.NewError("validation_object_id_set", r.message)
	}
	return nil
}

// ValidateStruct behaves like validation.ValidateStruct but returns Issues
// ordered by the struct's field declaration order.
func ValidateStruct(structPtr interface{}, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, fields...)
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	return order(errs, fieldOrder(structPtr))
}

func order(errs validation.Errors, names []string) Issues {
	issues := make(Issues, 0, len(errs))
	seen := make(map[string]bool, len(errs))

	for _, name := range names {
		if err, ok := errs[name]; ok {
			issues = appendIssues(issues, name, err)
			seen[name] = true
		}
	}

	// Keys not matched to a declared field keep a stable order.
	var rest []string
	for name := range errs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		issues = appendIssues(issues, name, errs[name])
	}

	return issues
}

func appendIssues(issues Issues, path string, err error) Issues {
	var nested Issues
	if errors.As(err, &nested) {
		for _, n := range nested {
			issues = append(issues, Issue{Path: path + "." + n.Path, Message: n.Message})
		}
		return issues
	}

	var nestedErrs validation.Errors
	if errors.As(err, &nestedErrs) {
		keys := make([]string, 0, len(nestedErrs))
		for k := range nestedErrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			issues = appendIssues(issues, path+"."+k, nestedErrs[k])
		}
		return issues
	}

	return append(issues, Issue{Path: path, Message: err.Error()})
}

// fieldOrder lists the error keys ozzo-validation uses for each struct field,
// in declaration order.
func fieldOrder(structPtr interface{}) []string {
	t := reflect.TypeOf(structPtr)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		names = append(names, errorFieldName(f))
	}
	return names
}

func errorFieldName(f reflect.StructField) string {
	if tag := f.Tag.Get(validation.ErrorTag); tag != "" && tag != "-" {
		if name := strings.SplitN(tag, ",", 2)[0]; name != "" {
			return name
		}
	}
	return f.Name
}

// Result is the discriminated outcome of validating a candidate value.
type Result[T any] struct {
	Success bool
	Data    T
	Issues  Issues
}

// Validatable is implemented by every schema-backed type.
type Validatable interface {
	Validate() error
}

// SafeParse validates candidate and never panics or returns an error:
// failures are reported through Result.Issues.
func SafeParse[T Validatable](candidate T) Result[T] {
	err := candidate.Validate()
	if err == nil {
		return Result[T]{Success: true, Data: candidate}
	}

	if issues, ok := IssuesOf(err); ok {
		return Result[T]{Issues: issues}
	}
	return Result[T]{Issues: Issues{{Message: fmt.Sprint(err)}}}
}
