package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"medifind/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithRole(t *testing.T, mw echo.MiddlewareFunc, role any) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(ContextKeyRole, role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	m := NewAuthMiddleware(nil)

	rec := callWithRole(t, m.RequireRole(entity.RolePatient), entity.RolePatient)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_AllowsAnyOfSeveral(t *testing.T) {
	m := NewAuthMiddleware(nil)
	mw := m.RequireRole(entity.RoleAdmin, entity.RolePharmacy)

	assert.Equal(t, http.StatusOK, callWithRole(t, mw, entity.RoleAdmin).Code)
	assert.Equal(t, http.StatusOK, callWithRole(t, mw, entity.RolePharmacy).Code)
}

func TestRequireRole_RejectsUnlistedRole(t *testing.T) {
	m := NewAuthMiddleware(nil)

	rec := callWithRole(t, m.RequireRole(entity.RoleAdmin), entity.RolePatient)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	m := NewAuthMiddleware(nil)

	rec := callWithRole(t, m.RequireRole(entity.RolePatient), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
