package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwootapp/iwoot/pkg/utils"
)

const testSecret = "test-secret"

func runAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ownerID string
	handler := Auth(testSecret)(func(c echo.Context) error {
		ownerID, _ = utils.ExtractTokenUser(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, ownerID
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := utils.CreateJWTToken("user-1", "user@example.com", testSecret)
	require.NoError(t, err)

	rec, ownerID := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", ownerID)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	token, err := utils.CreateJWTToken("user-1", "user@example.com", "other-secret")
	require.NoError(t, err)

	rec, _ := runAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
