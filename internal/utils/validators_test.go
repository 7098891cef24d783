package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("first.last@sub.example.co"))

	assert.Error(t, ValidateEmail("userexample.com"))
	assert.Error(t, ValidateEmail("user@examplecom"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("user@"))
	assert.Error(t, ValidateEmail("user@example."))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Str0ngpass"))
	assert.NoError(t, ValidatePassword("Another1One"))

	assert.Error(t, ValidatePassword("Short1a"), "too short")
	assert.Error(t, ValidatePassword("alllowercase1"), "no upper case")
	assert.Error(t, ValidatePassword("ALLUPPERCASE1"), "no lower case")
	assert.Error(t, ValidatePassword("NoDigitsHere"), "no digit")
}
