package main

import (
	"net/http"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/config"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/domain/model"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/handler"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/infra/db"
	infraRepo "github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/infra/repository"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/middleware"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/server"
	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番は環境変数で入る）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connection failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.Order{}); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	//セッションストア（cookie）。有効期限1時間は旧構成のまま。
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.MaxAge = 3600
	if cfg.GoEnv == "production" {
		sessionStore.Options.Secure = true
		sessionStore.Options.SameSite = http.SameSiteNoneMode
	} else {
		sessionStore.Options.SameSite = http.SameSiteLaxMode
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//Usecase生成
	verifier := usecase.NewBcryptAdminVerifier(cfg.AdminUsername, cfg.AdminPasswordHash)
	orderUC := usecase.NewOrderUsecase(orderRepo, logger)
	authUC := usecase.NewAuthUsecase(verifier, logger)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC)
	adminOrderH := handler.NewAdminOrderHandler(orderUC)
	adminH := handler.NewAdminHandler(authUC, sessionStore, logger)
	healthH := handler.NewHealthHandler(gormDB, cfg.GoEnv)

	guard := middleware.AdminSessionGuard(sessionStore)

	//Server起動
	e := server.New(cfg, logger)
	server.RegisterRoutes(e, guard, orderH, adminOrderH, adminH, healthH)

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
