package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "bad token")
	assert.Equal(t, "INVALID_ARGUMENT: bad token", err.Error())
	assert.Equal(t, CodeInvalidArgument, GetCode(err))
	assert.Equal(t, "bad token", GetMessage(err))
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := InvalidArgumentf("could not parse %q as dice notation", "xd6")
	wrapped := Wrap(inner, "failed to resolve tokens")

	assert.Equal(t, CodeInvalidArgument, GetCode(wrapped))
	assert.True(t, IsInvalidArgument(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(stderrors.New("boom"), "failed to read macro file")

	assert.Equal(t, CodeInternal, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestWithMeta(t *testing.T) {
	err := InvalidArgument("no die specified").WithMeta("token", "3d")
	require.NotNil(t, err.Meta)
	assert.Equal(t, "3d", err.Meta["token"])
}

func TestGetCode_NilAndUnknown(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeInternal, GetCode(stderrors.New("plain")))
}

func TestGetMessage_PlainError(t *testing.T) {
	assert.Equal(t, "plain", GetMessage(stderrors.New("plain")))
}
