package server

import (
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/config"
	mw "github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はグローバルmiddlewareまで積んだechoを組み立てる。
func New(cfg config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(mw.RequestLogger(logger))
	e.Use(echomw.Recover())

	//cookieセッションなのでAllowCredentials必須。originは設定から。
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
