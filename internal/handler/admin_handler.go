package handler

import (
	"net/http"

	mw "github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/middleware"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 管理者のログイン・ログアウト
type AdminHandler struct {
	uc     *usecase.AuthUsecase
	store  sessions.Store
	logger *zap.Logger
}

func NewAdminHandler(uc *usecase.AuthUsecase, store sessions.Store, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, store: store, logger: logger}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	admin := e.Group("/admin")
	admin.POST("/login", h.login)
	admin.POST("/logout", h.logout)
	admin.GET("/dashboard", h.dashboard, guard)
}

func (h *AdminHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Login(req.Username, req.Password); err != nil {
		return writeError(c, err)
	}

	//成功時のみフラグを立てる（セッション内で書くのはこの一度きり）
	sess, _ := h.store.Get(c.Request(), mw.SessionName)
	sess.Values[mw.CtxIsAdminKey] = true
	sess.Values[mw.CtxSessionIDKey] = uuid.NewString()
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.logger.Error("failed to save admin session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", IsAdmin: true})
}

func (h *AdminHandler) logout(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), mw.SessionName)

	//MaxAge<0でcookieごと破棄させる
	sess.Values[mw.CtxIsAdminKey] = false
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.logger.Error("failed to destroy admin session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Logout failed"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out successfully"})
}

func (h *AdminHandler) dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Welcome to the admin dashboard!"})
}
