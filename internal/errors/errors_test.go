package errors_test

import (
	"errors"
	"testing"

	dnderr "github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := dnderr.InvalidConfiguration("max rooms must be positive").
		WithMeta("max_rooms", 0)

	wrapped := dnderr.Wrap(base, "failed to configure generator")

	assert.True(t, dnderr.IsInvalidConfiguration(wrapped))
	assert.Equal(t, 0, dnderr.GetMeta(wrapped)["max_rooms"])
	assert.Equal(t, "failed to configure generator: max rooms must be positive", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(errors.New("boom"), "render failed")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.GetMeta(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
	assert.Nil(t, dnderr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeInternal, "nothing"))
}

func TestWrapWithCode_OverridesCode(t *testing.T) {
	wrapped := dnderr.WrapWithCode(dnderr.NotFound("layout missing"), dnderr.CodeInternal, "lookup failed")

	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(wrapped))
	assert.False(t, dnderr.IsNotFound(wrapped))
}

func TestWithMeta_DoesNotLeakIntoWrappedCopy(t *testing.T) {
	base := dnderr.NotFoundf("layout %s not found", "abc").WithMeta("layout_id", "abc")
	wrapped := dnderr.Wrap(base, "get failed").WithMeta("attempt", 2)

	assert.NotContains(t, base.Meta, "attempt")
	assert.Equal(t, "abc", wrapped.Meta["layout_id"])
}
