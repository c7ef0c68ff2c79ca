package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_ListsEveryField(t *testing.T) {
	err := NewValidation(map[string]string{
		"price": "must be greater than zero",
		"area":  "must be greater than zero",
	})
	assert.Contains(t, err.Error(), "price: must be greater than zero")
	assert.Contains(t, err.Error(), "area: must be greater than zero")
	assert.True(t, IsValidation(err))
}

func TestWrapStore_PreservesTypedKinds(t *testing.T) {
	nf := NewNotFound("listing", "ABC123DEF4")
	wrapped := WrapStore(fmt.Errorf("fetching: %w", nf))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsStoreUnavailable(wrapped))
}

func TestWrapStore_WrapsPlainErrors(t *testing.T) {
	plain := errors.New("connection reset")
	wrapped := WrapStore(plain)
	assert.True(t, IsStoreUnavailable(wrapped))
	assert.ErrorIs(t, wrapped, plain)
}

func TestWrapStore_Nil(t *testing.T) {
	assert.NoError(t, WrapStore(nil))
}

func TestIsConflict(t *testing.T) {
	err := fmt.Errorf("publishing: %w", NewConflict("submission already published"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsConflict(errors.New("other")))
}
