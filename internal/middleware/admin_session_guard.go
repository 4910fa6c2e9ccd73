package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	//セッションcookie名（旧構成のsidに合わせる）
	SessionName = "sid"

	CtxIsAdminKey   = "is_admin"
	CtxSessionIDKey = "session_id"
)

type errorResponse struct {
	Error string `json:"error"`
}

// AdminSessionGuard は管理者セッションのフラグをリクエスト冒頭に一度だけ読み、
// 立っていなければ403で打ち切る（storageには一切触らない）。
// 通った場合は認可コンテキストをechoのcontextへ積んでhandlerに渡す。
func AdminSessionGuard(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := store.Get(c.Request(), SessionName)

			isAdmin, ok := sess.Values[CtxIsAdminKey].(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, errorResponse{Error: "Unauthorized"})
			}

			c.Set(CtxIsAdminKey, true)
			if sid, ok := sess.Values[CtxSessionIDKey].(string); ok {
				c.Set(CtxSessionIDKey, sid)
			}

			return next(c)
		}
	}
}
