package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string
	Code string
}

type record struct {
	Name    string
	Email   string
	Confirm string
	Tags    []string
	Items   []item
}

var codePattern = regexp.MustCompile(`^\d+$`)

func recordRules() *RuleSet[record] {
	items := NewRuleSet[item]().
		Field("name", Required(func(i item) string { return i.Name }, "Name is required")).
		Field("code", Pattern(func(i item) string { return i.Code }, codePattern, "digits", "digits only"))

	rs := NewRuleSet[record]().
		Field("name", Required(func(r record) string { return r.Name }, "")).
		Field("email",
			Required(func(r record) string { return r.Email }, ""),
			EmailFormat(func(r record) string { return r.Email }, "")).
		Field("confirm", Cross(func(r record) *FieldError {
			if r.Confirm != "" && r.Confirm == r.Email {
				return &FieldError{Kind: "same", Message: "must differ"}
			}
			return nil
		}))
	return ForEach(rs, "items", func(r record) []item { return r.Items }, items)
}

func TestRequired(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		rule := Required(func(r record) string { return r.Name }, "")
		fe := rule(record{})
		require.NotNil(t, fe)
		assert.Equal(t, KindRequired, fe.Kind)
		assert.Equal(t, "is required", fe.Message)
	})

	t.Run("empty and nil slices", func(t *testing.T) {
		rule := Required(func(r record) []string { return r.Tags }, "tags needed")
		require.NotNil(t, rule(record{}))
		require.NotNil(t, rule(record{Tags: []string{}}))
		assert.Equal(t, "tags needed", rule(record{Tags: []string{}}).Message)
	})

	t.Run("non-empty values pass", func(t *testing.T) {
		assert.Nil(t, Required(func(r record) string { return r.Name }, "")(record{Name: "x"}))
		assert.Nil(t, Required(func(r record) []string { return r.Tags }, "")(record{Tags: []string{""}}))
	})
}

func TestEmailFormat(t *testing.T) {
	rule := EmailFormat(func(r record) string { return r.Email }, "bad email")

	assert.Nil(t, rule(record{Email: "a@b.com"}))
	assert.Nil(t, rule(record{}), "empty value is left to Required")

	fe := rule(record{Email: "abc"})
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidEmail, fe.Kind)
	assert.Equal(t, "bad email", fe.Message)
}

func TestPattern(t *testing.T) {
	rule := Pattern(func(i item) string { return i.Code }, codePattern, "digits", "digits only")

	assert.Nil(t, rule(item{Code: "123"}))
	assert.Nil(t, rule(item{}))
	fe := rule(item{Code: "12a"})
	require.NotNil(t, fe)
	assert.Equal(t, "digits", fe.Kind)
}

func TestRuleSetValidate(t *testing.T) {
	rs := recordRules()

	res := rs.Validate(record{})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"email", "name"}, res.Paths())
	assert.True(t, res.HasKind("email", KindRequired))
	assert.False(t, res.HasKind("email", KindInvalidEmail))

	res = rs.Validate(record{Name: "n", Email: "a@b.com", Confirm: "a@b.com"})
	assert.False(t, res.Valid)
	assert.Equal(t, []FieldError{{Kind: "same", Message: "must differ"}}, res.FieldErrors("confirm"))

	res = rs.Validate(record{Name: "n", Email: "a@b.com", Confirm: "c@d.com"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Nil(t, res.Details())
}

func TestRuleSetReportsEveryFailingRule(t *testing.T) {
	rs := NewRuleSet[record]().
		Field("name", Required(func(r record) string { return r.Name }, "first")).
		Field("name", Cross(func(r record) *FieldError {
			return &FieldError{Kind: "always", Message: "second"}
		}))

	res := rs.Validate(record{})
	require.Len(t, res.FieldErrors("name"), 2)
	assert.Equal(t, "first", res.FieldErrors("name")[0].Message)
	assert.Equal(t, "second", res.FieldErrors("name")[1].Message)
	assert.Equal(t, map[string]string{"name": "first"}, res.Details())
}

func TestForEachTagsErrorsByIndex(t *testing.T) {
	rs := recordRules()
	rec := record{
		Name:  "n",
		Email: "a@b.com",
		Items: []item{{Name: "ok", Code: "1"}, {Code: "x"}, {Name: "ok"}},
	}

	res := rs.Validate(rec)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"items[1].code", "items[1].name"}, res.Paths())
	assert.True(t, res.HasKind("items[1].name", KindRequired))
	assert.True(t, res.HasKind("items[1].code", "digits"))
}

func TestValidateIsDeterministic(t *testing.T) {
	rs := recordRules()
	rec := record{Email: "nope", Items: []item{{Code: "z"}}}

	first := rs.Validate(rec)
	second := rs.Validate(rec)
	assert.Equal(t, first, second)
}

func TestVarAliases(t *testing.T) {
	assert.NoError(t, Var("Phone", "contact_method"))
	assert.NoError(t, Var("Work", "phone_type"))
	assert.NoError(t, Var("auto", "theme"))

	err := Var("purple", "theme")
	require.Error(t, err)
	assert.Equal(t, "must be one of: light, dark, auto", Message(err))
}

func TestToDetails(t *testing.T) {
	type payload struct {
		Field string `json:"field" validate:"phone_field"`
	}
	err := engine.Struct(payload{Field: "colour"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"field": "must be one of: type, number"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
