package db

import (
	"fmt"
	"time"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// 本番構成がMySQLなのでmysqlがデフォルト。DB_DRIVER=postgresで切り替え。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var gdb *gorm.DB
	var err error

	switch cfg.DBDriver {
	case "postgres":
		gdb, err = gorm.Open(postgres.Open(postgresDSN(cfg)), gormCfg)
	default:
		gdb, err = gorm.Open(mysql.Open(mysqlDSN(cfg)), gormCfg)
	}
	if err != nil {
		return nil, err
	}

	// ワーカーが使い回すコネクションの上限（旧構成のconnectionLimit: 10に合わせる）
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return gdb, nil
}

func mysqlDSN(cfg config.Config) string {
	// DATABASE_URL があれば最優先で使う
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBParams,
	)
}

func postgresDSN(cfg config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}
