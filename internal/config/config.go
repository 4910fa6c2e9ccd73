package config

import (
	"fmt"
	"os"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	DBDriver    string // mysql / postgres
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBParams    string // mysql DSNの追加パラメータ
	DatabaseURL string // あればDSNとして最優先

	AdminUsername     string // 管理者ID（1人だけ）
	AdminPasswordHash string // 管理者パスワードのbcryptハッシュ

	SessionSecret  string   // cookieストアの署名キー
	AllowedOrigins []string // CORSで許可するorigin

	GoEnv string // development / production
}

// Loadは環境変数から読む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "3000"),

		DBDriver:    getenv("DB_DRIVER", "mysql"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBUser:      getenv("DB_USER", "root"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME", "brahminfoods"),
		DBParams:    getenv("DB_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoEnv: getenv("GO_ENV", "development"),
	}

	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	//必須チェック（平文パスワードや既定secretでの起動は許さない）
	if cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
