package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestIsAny(t *testing.T) {
	wrapped := Wrap(io.EOF, "read frame")

	assert.True(t, IsAny(wrapped, io.ErrUnexpectedEOF, io.EOF))
	assert.False(t, IsAny(wrapped, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(nil, io.EOF))
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codedError{code: 7}, "user %s", "abc")

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, coded.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	err := WithMessage(Wrap(io.EOF, "inner"), "outer")

	assert.Equal(t, io.EOF, Cause(err))
	assert.Equal(t, "outer: inner: EOF", err.Error())
}
