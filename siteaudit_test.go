package siteaudit_test

import (
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteaudit.Errorf(siteaudit.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, siteaudit.ENOTFOUND, siteaudit.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", siteaudit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteaudit.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteaudit.ErrorMessage(nil))
}
