package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/middleware"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// テスト用に管理者フラグの立ったcookieを発行する
func adminCookie(t *testing.T, store sessions.Store) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, _ := store.Get(req, middleware.SessionName)
	sess.Values[middleware.CtxIsAdminKey] = true
	sess.Values[middleware.CtxSessionIDKey] = "test-session"
	assert.NoError(t, sess.Save(req, rec))

	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	return cookies[0]
}

func TestAdminSessionGuard_NoSession(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := middleware.AdminSessionGuard(store)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	//handlerまで到達しない
	assert.False(t, called)
}

func TestAdminSessionGuard_WithAdminSession(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))
	cookie := adminCookie(t, store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := middleware.AdminSessionGuard(store)(func(c echo.Context) error {
		called = true
		//認可コンテキストが積まれている
		assert.Equal(t, true, c.Get(middleware.CtxIsAdminKey))
		assert.Equal(t, "test-session", c.Get(middleware.CtxSessionIDKey))
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
