package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createWishlistPayload struct {
	UserID string `json:"user_id" validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(createWishlistPayload{UserID: "u-1"}))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(createWishlistPayload{})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), "UserID")
	assert.Equal(t, "is required", valErr.Fields()["UserID"])
}

func TestDecodeAndValidate_Success(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"user_id":"u-1"}`))

	var payload createWishlistPayload
	require.NoError(t, DecodeAndValidate(r, &payload))
	assert.Equal(t, "u-1", payload.UserID)
}

func TestDecodeAndValidate_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))

	var payload createWishlistPayload
	err := DecodeAndValidate(r, &payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
