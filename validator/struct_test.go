package validator

import (
	"testing"

	"github.com/ncobase/yatube/ecode"
	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password  string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}

type groupForm struct {
	Title string `json:"title" validate:"notblank,max=200"`
	Slug  string `validate:"required,slug"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(&signupForm{Username: "alice.b@x", Password: "secret123", Password2: "secret123"})
	assert.Empty(t, errs)
}

func TestValidateStructUsesFormNames(t *testing.T) {
	errs := ValidateStruct(&signupForm{Username: "bad name!", Password: "short", Password2: "other"})

	assert.Equal(t, ecode.FieldIsInvalid(), errs["username"])
	assert.Equal(t, ecode.FieldTooShort(), errs["password1"])
	assert.Equal(t, ecode.FieldMismatch(), errs["password2"])
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(&signupForm{})
	assert.Equal(t, ecode.FieldIsRequired(), errs["username"])
	assert.Equal(t, ecode.FieldIsRequired(), errs["password1"])
}

func TestValidateStructCustomRules(t *testing.T) {
	errs := ValidateStruct(&groupForm{Title: "   ", Slug: "not a slug"})
	assert.Equal(t, ecode.FieldIsRequired(), errs["title"])
	assert.Equal(t, ecode.FieldIsInvalid(), errs["Slug"])

	assert.Empty(t, ValidateStruct(&groupForm{Title: "News", Slug: "news_2"}))
}

func TestValidateStructRejectsNonStruct(t *testing.T) {
	errs := ValidateStruct("nope")
	assert.NotEmpty(t, errs[NonFieldKey])
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{"text": "required", "group": "invalid choice"}
	assert.Equal(t, "invalid form: group: invalid choice, text: required", err.Error())
}
