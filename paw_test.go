package paw_test

import (
	"errors"
	"testing"

	"github.com/pawhq/paw"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := paw.Errorf(paw.ENOTFOUND, "crawl %q not found", "test")

	assert.Equal(t, paw.ENOTFOUND, paw.ErrorCode(err))
	assert.Equal(t, "crawl \"test\" not found", paw.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, paw.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, paw.EINTERNAL, paw.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, paw.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", paw.ErrorMessage(errors.New("boom")))
}
