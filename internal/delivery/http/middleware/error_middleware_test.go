package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskman/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(err error) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("renders app errors with their status and code", func(t *testing.T) {
		t.Parallel()

		rec := handleError(domainerrors.ErrTaskNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Body.String(), "TASK_NOT_FOUND")
	})

	t.Run("unwraps app errors behind context", func(t *testing.T) {
		t.Parallel()

		rec := handleError(errors.Wrap(domainerrors.ErrTaskOwnershipViolation, "task belongs to another user"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "TASK_OWNERSHIP_VIOLATION")
	})

	t.Run("renders echo errors", func(t *testing.T) {
		t.Parallel()

		rec := handleError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("unknown errors stay opaque", func(t *testing.T) {
		t.Parallel()

		rec := handleError(errors.New("pq: connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}
