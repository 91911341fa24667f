package application

import (
	"github.com/oksasatya/go-onboarding-wizard/pkg/validation"
)

// Form holds one step's record and its rule set. Every mutation bumps the
// revision; the validation result is cached per revision, so reads after a
// change always see a fresh verdict.
type Form[T any] struct {
	value T
	rules *validation.RuleSet[T]
	clone func(T) T

	rev       uint64
	cached    validation.Result
	cachedRev uint64
	hasCache  bool
}

// NewForm builds a form. clone may be nil for records without reference fields.
func NewForm[T any](initial T, rules *validation.RuleSet[T], clone func(T) T) *Form[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Form[T]{value: clone(initial), rules: rules, clone: clone}
}

// Value returns a copy of the current record.
func (f *Form[T]) Value() T {
	return f.clone(f.value)
}

// Set replaces the record.
func (f *Form[T]) Set(v T) {
	f.value = f.clone(v)
	f.rev++
}

// Update applies fn to a copy of the record and stores the result.
func (f *Form[T]) Update(fn func(v *T)) {
	next := f.clone(f.value)
	fn(&next)
	f.value = next
	f.rev++
}

// Revision identifies the current snapshot.
func (f *Form[T]) Revision() uint64 {
	return f.rev
}

// Result returns the verdict for the current snapshot.
func (f *Form[T]) Result() validation.Result {
	if !f.hasCache || f.cachedRev != f.rev {
		f.cached = f.rules.Validate(f.value)
		f.cachedRev = f.rev
		f.hasCache = true
	}
	return f.cached
}

func (f *Form[T]) Valid() bool {
	return f.Result().Valid
}

func (f *Form[T]) Errors(path string) []validation.FieldError {
	return f.Result().FieldErrors(path)
}
