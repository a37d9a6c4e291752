package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gamesentity "gamestore_backend/internal/feature/games/domain/entity"
	usersentity "gamestore_backend/internal/feature/users/domain/entity"
	"gamestore_backend/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Open は起動時の有限リトライ付きでPostgreSQLへ接続し、設定されたプール上限を
// 下層のsql.DBへ適用します。プールはプロセス全体で共有され、ここで一度だけ
// 生成されてシャットダウン時にCloseで解放されます。
func Open(cfg config.Config) *gorm.DB {
	dsn := DSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(connectRetry)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize)
	sqlDB.SetMaxIdleConns(cfg.DBPoolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.RunMigrations {
		// マイグレーション（User, Game）
		if err := db.AutoMigrate(
			&usersentity.User{},
			&gamesentity.Game{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// DSN は環境設定からPostgreSQLの接続文字列を構築します。
func DSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBDatabase)
}

// Close は下層のコネクションプールを解放します。
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
