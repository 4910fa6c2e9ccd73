package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	env string
}

func NewHealthHandler(db *gorm.DB, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.check)
}

// DB疎通まで見るヘルスチェック
func (h *HealthHandler) check(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "DB connection failed"})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
	})
}
