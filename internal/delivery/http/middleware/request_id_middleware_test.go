package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vitrina/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagatesID(t *testing.T) {
	m := NewRequestIDMiddleware(newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	handler := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		seenID = deliverycontext.GetRequestIDFromContext(ctx)
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	_, err := uuid.Parse(seenID)
	assert.NoError(t, err, "generated request id must be a uuid")
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientProvidedID(t *testing.T) {
	m := NewRequestIDMiddleware(newTestLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/business", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Process(func(c echo.Context) error {
		assert.Equal(t, "client-supplied-id",
			deliverycontext.GetRequestIDFromContext(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
