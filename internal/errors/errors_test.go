package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := NotFound("file 'missing.csv'")
	wrapped := Wrap(base, "load failed")

	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.True(t, Is(wrapped, CodeNotFound))
	assert.Contains(t, wrapped.Error(), "missing.csv")
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	cause := stderrors.New("boom")
	wrapped := Wrapf(cause, "step %d", 3)

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "step 3: boom", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, cause))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", MissingColumn("Age"))

	assert.Equal(t, CodeMissingColumn, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWithCode(t *testing.T) {
	cause := stderrors.New("bad quote")
	err := WithCode(CodeReadFailed, cause)

	assert.Equal(t, CodeReadFailed, GetCode(err))
	assert.True(t, stderrors.Is(err, cause))
}
