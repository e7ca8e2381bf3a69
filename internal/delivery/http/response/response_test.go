package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "medifind/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, write(e.NewContext(req, rec)))

	var envelope domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func TestSuccess_WrapsPayload(t *testing.T) {
	rec, envelope := record(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"id": "42"}, "Created")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, http.StatusCreated, envelope.Code)
	assert.Equal(t, "Created", envelope.Message)
	assert.Nil(t, envelope.Error)
}

func TestError_CarriesBusinessCode(t *testing.T) {
	rec, envelope := record(t, func(c echo.Context) error {
		return NotFound(c, "MEDICINE_NOT_FOUND", "No such medicine")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "MEDICINE_NOT_FOUND", envelope.Error.Code)
}
