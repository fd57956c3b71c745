package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValidatorTitle(t *testing.T) {
	v := &QuestionValidator{}

	assert.NoError(t, v.Title("How do slices grow?"))
	assert.NoError(t, v.Title(strings.Repeat("a", 255)))
	assert.Error(t, v.Title(""))
	assert.Error(t, v.Title(strings.Repeat("a", 256)))
	// length counts runes, not bytes
	assert.NoError(t, v.Title(strings.Repeat("я", 255)))
}

func TestQuestionValidatorContent(t *testing.T) {
	v := &QuestionValidator{}

	assert.NoError(t, v.Content("anything"))
	assert.Error(t, v.Content(""))
}

func TestReplyValidatorContent(t *testing.T) {
	v := &ReplyValidator{}

	assert.NoError(t, v.Content("short answer"))
	assert.Error(t, v.Content(""))
	assert.Error(t, v.Content(strings.Repeat("a", 10_001)))
}

func TestCredentialsValidator(t *testing.T) {
	v := &CredentialsValidator{}

	assert.NoError(t, v.Name("alice"))
	assert.Error(t, v.Name(""))
	assert.Error(t, v.Name(strings.Repeat("a", 51)))

	assert.NoError(t, v.Password("hunter22"))
	assert.Error(t, v.Password("short"))
}
