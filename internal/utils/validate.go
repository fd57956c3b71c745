package utils

import (
	"unicode/utf8"

	"github.com/qaboard-dev/qaboard/internal/errors"
)

const maxTitleLen = 255

type QuestionValidator struct{}

func (v *QuestionValidator) Title(title string) error {
	if len(title) == 0 {
		return errors.Validation("The title field is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.Validation("The title may not be greater than 255 characters")
	}
	return nil
}

func (v *QuestionValidator) Content(content string) error {
	if len(content) == 0 {
		return errors.Validation("The content field is required")
	}
	return nil
}

type ReplyValidator struct{}

func (v *ReplyValidator) Content(content string) error {
	if len(content) == 0 {
		return errors.Validation("The content field is required")
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return errors.Validation("The content is too long")
	}
	return nil
}

type CredentialsValidator struct{}

func (v *CredentialsValidator) Name(name string) error {
	if len(name) == 0 {
		return errors.Validation("The name field is required")
	}
	if utf8.RuneCountInString(name) > 50 {
		return errors.Validation("The name is too long")
	}
	return nil
}

func (v *CredentialsValidator) Password(password string) error {
	if utf8.RuneCountInString(password) < 6 {
		return errors.Validation("The password must be at least 6 characters")
	}
	return nil
}
