package users

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
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandler_Create_ReturnsUserWithoutPasswordHash(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{userService: NewService(db)}

	payload := `{"username":"weihang","email":"weihang@example.com"}`
	c, rr := newTestContext(t, payload, http.MethodPost, "/users")

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "weihang", resp["username"])
	assert.NotContains(t, resp, "password_hash")
}

func TestHandler_Create_RejectsBadEmail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{userService: NewService(db)}

	payload := `{"username":"weihang","email":"not-an-email"}`
	c, _ := newTestContext(t, payload, http.MethodPost, "/users")

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Contains(t, codeErr.Message, `"email" is not a valid email`)
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{userService: svc}

	_, err := svc.Create(context.Background(), CreateUserOptions{Username: "weihang", Email: "weihang@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateUserOptions{Username: "other", Email: "other@example.com"})
	require.NoError(t, err)

	c, rr := newTestContext(t, "", http.MethodGet, "/users/search?searchTerm=hang")

	err = h.search(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.User
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "weihang", resp[0].Username)
}

func TestHandler_Search_RequiresTerm(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{userService: NewService(db)}

	c, _ := newTestContext(t, "", http.MethodGet, "/users/search")

	err := h.search(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
}

func TestHandler_ListWithBooks(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{userService: svc}

	user, err := svc.Create(context.Background(), CreateUserOptions{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	book := &models.Book{Title: "Linked", Author: "A", Availability: models.Available}
	_, err = db.NewInsert().Model(book).Exec(context.Background())
	require.NoError(t, err)
	link := &models.UserBook{UserID: user.ID, BookID: book.ID}
	_, err = db.NewInsert().Model(link).Exec(context.Background())
	require.NoError(t, err)

	c, rr := newTestContext(t, "", http.MethodGet, "/users/with-books")

	err = h.listWithBooks(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []UserWithBooks
	err = json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Books, 1)
	assert.Equal(t, "Linked", resp[0].Books[0].Title)
}

func TestHandler_Remove_ReturnsNoContent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{userService: svc}

	created, err := svc.Create(context.Background(), CreateUserOptions{Username: "weihang", Email: "weihang@example.com"})
	require.NoError(t, err)

	c, rr := newTestContext(t, "", http.MethodDelete, "/users/1")
	c.Set("id", created.ID)

	err = h.remove(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
