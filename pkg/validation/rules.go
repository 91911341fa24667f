package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
)

// Error kinds produced by the generic rule primitives.
const (
	KindRequired     = "required"
	KindInvalidEmail = "invalidEmail"
)

// FieldError describes one failed rule on one field.
type FieldError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Rule inspects a whole record snapshot and reports at most one failure.
type Rule[T any] func(rec T) *FieldError

// Result is the verdict of a RuleSet run. Errors is keyed by field path and
// must be treated as read-only: results are shared by cached forms.
type Result struct {
	Valid  bool                    `json:"valid"`
	Errors map[string][]FieldError `json:"errors"`
}

// FieldErrors returns the errors recorded for path, in rule order.
func (r Result) FieldErrors(path string) []FieldError {
	return r.Errors[path]
}

// HasKind reports whether path failed a rule of the given kind.
func (r Result) HasKind(path, kind string) bool {
	for _, fe := range r.Errors[path] {
		if fe.Kind == kind {
			return true
		}
	}
	return false
}

// Paths returns the failing field paths in sorted order.
func (r Result) Paths() []string {
	out := make([]string, 0, len(r.Errors))
	for p := range r.Errors {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Details flattens the result to the first message per path, the same shape
// ToDetails returns for request binding errors.
func (r Result) Details() map[string]string {
	if r.Valid {
		return nil
	}
	out := make(map[string]string, len(r.Errors))
	for p, errs := range r.Errors {
		if len(errs) > 0 {
			out[p] = errs[0].Message
		}
	}
	return out
}

func (r *Result) add(path string, fe FieldError) {
	r.Errors[path] = append(r.Errors[path], fe)
}

type check[T any] struct {
	path  string
	rules []Rule[T]
	each  func(rec T, prefix string, out *Result)
}

// RuleSet is an ordered table of field path -> rules for records of type T.
type RuleSet[T any] struct {
	checks []*check[T]
	index  map[string]int
}

func NewRuleSet[T any]() *RuleSet[T] {
	return &RuleSet[T]{index: map[string]int{}}
}

// Field appends rules to path. Paths keep the order of their first registration.
func (rs *RuleSet[T]) Field(path string, rules ...Rule[T]) *RuleSet[T] {
	if i, ok := rs.index[path]; ok && rs.checks[i].each == nil {
		rs.checks[i].rules = append(rs.checks[i].rules, rules...)
		return rs
	}
	rs.index[path] = len(rs.checks)
	rs.checks = append(rs.checks, &check[T]{path: path, rules: rules})
	return rs
}

// Validate runs every rule against rec. Nothing short-circuits, so every failing
// rule of a field is reported.
func (rs *RuleSet[T]) Validate(rec T) Result {
	out := Result{Errors: map[string][]FieldError{}}
	rs.evaluate(rec, "", &out)
	out.Valid = len(out.Errors) == 0
	return out
}

func (rs *RuleSet[T]) evaluate(rec T, prefix string, out *Result) {
	for _, c := range rs.checks {
		if c.each != nil {
			c.each(rec, prefix, out)
			continue
		}
		for _, rule := range c.rules {
			if fe := rule(rec); fe != nil {
				out.add(prefix+c.path, *fe)
			}
		}
	}
}

// ForEach applies nested independently to every element returned by items.
// Element errors are addressed as path[i].field.
func ForEach[T, E any](rs *RuleSet[T], path string, items func(T) []E, nested *RuleSet[E]) *RuleSet[T] {
	rs.index[path] = len(rs.checks)
	rs.checks = append(rs.checks, &check[T]{
		path: path,
		each: func(rec T, prefix string, out *Result) {
			for i, item := range items(rec) {
				nested.evaluate(item, fmt.Sprintf("%s%s[%d].", prefix, path, i), out)
			}
		},
	})
	return rs
}

// Required fails with KindRequired when the selected value is empty: "" for
// strings, no elements for slices and maps, nil for pointers, zero otherwise.
func Required[T, V any](get func(T) V, message string) Rule[T] {
	if message == "" {
		message = "is required"
	}
	return func(rec T) *FieldError {
		if isEmpty(get(rec)) {
			return &FieldError{Kind: KindRequired, Message: message}
		}
		return nil
	}
}

// EmailFormat fails with KindInvalidEmail when the value is set but is not an
// email address. Empty values are left to Required.
func EmailFormat[T any](get func(T) string, message string) Rule[T] {
	if message == "" {
		message = "must be a valid email"
	}
	return func(rec T) *FieldError {
		v := get(rec)
		if v != "" && !IsEmail(v) {
			return &FieldError{Kind: KindInvalidEmail, Message: message}
		}
		return nil
	}
}

// Pattern fails with kind when the value is set and does not match re.
func Pattern[T any](get func(T) string, re *regexp.Regexp, kind, message string) Rule[T] {
	return func(rec T) *FieldError {
		v := get(rec)
		if v != "" && !re.MatchString(v) {
			return &FieldError{Kind: kind, Message: message}
		}
		return nil
	}
}

// Cross wraps a predicate that may read any field of the record.
func Cross[T any](fn func(rec T) *FieldError) Rule[T] {
	return fn
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
