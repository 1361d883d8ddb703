package ecode

import (
	"fmt"
)

const (
	requiredMsg      = "required"
	invalidMsg       = "invalid"
	invalidChoiceMsg = "invalid choice"
	existMsg         = "already exists"
	notExistMsg      = "does not exist"
	tooLongMsg       = "too long"
	tooShortMsg      = "too short"
	mismatchMsg      = "mismatch"
)

func withField(msg string, k []string) string {
	if len(k) > 0 && k[0] != "" {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string { return withField(requiredMsg, k) }

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string { return withField(invalidMsg, k) }

// InvalidChoice returns the message for a selection outside the allowed set
func InvalidChoice(k ...string) string { return withField(invalidChoiceMsg, k) }

// FieldTooLong returns field too long message
func FieldTooLong(k ...string) string { return withField(tooLongMsg, k) }

// FieldTooShort returns field too short message
func FieldTooShort(k ...string) string { return withField(tooShortMsg, k) }

// FieldMismatch returns field mismatch message
func FieldMismatch(k ...string) string { return withField(mismatchMsg, k) }

// AlreadyExist returns already exist message
func AlreadyExist(k ...string) string { return withField(existMsg, k) }

// NotExist returns not exist message
func NotExist(k ...string) string { return withField(notExistMsg, k) }
