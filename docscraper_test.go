package docscraper_test

import (
	"testing"

	docscraper "github.com/josephcrawford99/custom-doc-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docscraper.Errorf(docscraper.ENOTFOUND, "lesson %q not found", "intro")

	assert.Equal(t, docscraper.ENOTFOUND, docscraper.ErrorCode(err))
	assert.Equal(t, "lesson \"intro\" not found", docscraper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscraper.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docscraper.EINTERNAL, docscraper.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docscraper.ErrorMessage(nil))
}
