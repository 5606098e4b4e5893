package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("wishlist", "w-1")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "wishlist with id w-1 not found")
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("wishlist", "user_id", "u-1")

	assert.Equal(t, "ALREADY_EXISTS", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Message, `user_id "u-1"`)
}

func TestDuplicateItem(t *testing.T) {
	err := DuplicateItem("prod-1")

	assert.Equal(t, "DUPLICATE_ITEM", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestCapacityExceeded(t *testing.T) {
	err := CapacityExceeded(20)

	assert.Equal(t, "CAPACITY_EXCEEDED", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Message, "20")
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"app error", NotFound("product", "p-1"), http.StatusNotFound},
		{"wrapped not found", Wrap(ErrNotFound, "get wishlist"), http.StatusNotFound},
		{"wrapped duplicate item", Wrap(ErrDuplicateItem, "add item"), http.StatusBadRequest},
		{"wrapped capacity", Wrap(ErrCapacityExceeded, "add item"), http.StatusBadRequest},
		{"wrapped already exists", Wrap(ErrAlreadyExists, "create"), http.StatusBadRequest},
		{"wrapped conflict", Wrap(ErrConflict, "save"), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "load wishlist")
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, "load wishlist: resource not found", wrapped.Error())
}
