package validation

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

// Gin's binding engine validates the `binding` tag.
type signupPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,min=3"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestPwdAliasRequiresSixChars(t *testing.T) {
	v := engine(t)

	err := v.Struct(signupPayload{Email: "a@x.com", Password: "12345", Name: "Ann"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "password")

	err = v.Struct(signupPayload{Email: "a@x.com", Password: "123456", Name: "Ann"})
	assert.NoError(t, err)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	v := engine(t)

	err := v.Struct(signupPayload{Email: "nope", Password: "secret1", Name: "An"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 3 characters long", details["name"])
}

func TestToDetailsNilAndFallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	details := ToDetails(assert.AnError)
	assert.Equal(t, "invalid payload", details["payload"])
}
