package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLanguage(t *testing.T) {
	lang, err := LookupLanguage("python")
	require.NoError(t, err)
	assert.Equal(t, "python:3.12-alpine", lang.Image)
	assert.Equal(t, "main.py", lang.FileName)

	_, err = LookupLanguage("cobol")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguageNamesSorted(t *testing.T) {
	names := LanguageNames()
	assert.Equal(t, []string{"javascript", "python"}, names)
}
