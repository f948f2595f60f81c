package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aurum-R/Shellfast/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "file missing")
	assert.Equal(t, "[NOT_FOUND] file missing", err.Error())
	assert.Equal(t, errors.ErrNotFound, err.Code)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidPattern, "invalid pattern %q", "[")
	assert.Equal(t, `[INVALID_PATTERN] invalid pattern "["`, err.Error())
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("underlying failure")
	err := errors.Wrap(inner, errors.ErrPermission, "cannot read")

	assert.Equal(t, "[PERMISSION] cannot read: underlying failure", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrIsADirectory, "is a directory")

	assert.True(t, errors.IsErrorCode(err, errors.ErrIsADirectory))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrIsADirectory))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrIsADirectory))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrInvalidFieldSpec, "bad selector")
	outer := fmt.Errorf("processing request: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrInvalidFieldSpec))
	assert.Equal(t, errors.ErrInvalidFieldSpec, errors.GetErrorCode(outer))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(errors.New(errors.ErrConfigParse, "bad toml")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").
		WithDetail("path", "/tmp/x").
		WithDetail("attempts", 2)

	require.NotNil(t, err.Details)
	assert.Equal(t, "/tmp/x", err.Details["path"])
	assert.Equal(t, 2, err.Details["attempts"])
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrNotFound, "first")
	b := errors.New(errors.ErrNotFound, "second")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, errors.New(errors.ErrPermission, "other")))
}
