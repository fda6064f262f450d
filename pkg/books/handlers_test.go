package books

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/radrium/polylibrary/pkg/binder"
	"github.com/radrium/polylibrary/pkg/errcodes"
	"github.com/radrium/polylibrary/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, payload, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandler_Create_DefaultsAvailability(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	// No availability given; it defaults to available.
	payload := `{"title":"The Go Programming Language","author":"Donovan & Kernighan"}`
	c, rr := newTestContext(t, payload, http.MethodPost, "/books")

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.Book
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, models.Available, resp.Availability)
}

func TestHandler_Create_RejectsBadAvailability(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	payload := `{"title":"Bad Flag","author":"A","availability":"X"}`
	c, _ := newTestContext(t, payload, http.MethodPost, "/books")

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Contains(t, codeErr.Message, `"availability" must be one of the following: "Y", "N"`)
}

func TestHandler_Create_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	payload := `{"title":"Extra","author":"A","publisher":"Nope"}`
	c, _ := newTestContext(t, payload, http.MethodPost, "/books")

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "unknown_parameter", codeErr.Code)
}

func TestHandler_UpdateAvailability_ReturnsMessage(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{bookService: svc}

	created, err := svc.Create(context.Background(), CreateBookOptions{Title: "Borrowable", Author: "A", Availability: models.Available})
	require.NoError(t, err)

	payload := `{"availability":"N"}`
	c, rr := newTestContext(t, payload, http.MethodPut, "/books/1/availability")
	c.Set("id", created.ID)

	err = h.updateAvailability(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Book availability updated successfully", resp["message"])
}

func TestHandler_Update_EchoesStoredRow(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{bookService: svc}

	created, err := svc.Create(context.Background(), CreateBookOptions{Title: "Draft", Author: "A", Availability: models.Available})
	require.NoError(t, err)

	payload := `{"title":"Final","author":"A","availability":"N"}`
	c, rr := newTestContext(t, payload, http.MethodPut, "/books/1")
	c.Set("id", created.ID)

	err = h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.Book
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Final", resp.Title)
	assert.Equal(t, models.Unavailable, resp.Availability)
}

func TestHandler_Remove_ReturnsNoContent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{bookService: svc}

	created, err := svc.Create(context.Background(), CreateBookOptions{Title: "Ephemeral", Author: "A", Availability: models.Available})
	require.NoError(t, err)

	c, rr := newTestContext(t, "", http.MethodDelete, "/books/1")
	c.Set("id", created.ID)

	err = h.remove(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
