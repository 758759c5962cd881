package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Rooms    int    `json:"rooms" binding:"gte=0"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	return binding.Validator.ValidateStruct(v)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	err := validate(t, &sample{Email: "bad", Password: "longenough", Rooms: 1})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestPwdAlias(t *testing.T) {
	Init()

	err := validate(t, &sample{Email: "a@b.com", Password: "abc", Rooms: 1})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "min length 6", details["password"])
}

func TestToDetailsRequired(t *testing.T) {
	Init()

	err := validate(t, &sample{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsUnknownError(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
