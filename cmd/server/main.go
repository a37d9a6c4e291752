package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gamestore_backend/internal/app/router"
	gamesadapters "gamestore_backend/internal/feature/games/adapters"
	gameshandler "gamestore_backend/internal/feature/games/transport/handler"
	gamesusecase "gamestore_backend/internal/feature/games/usecase"
	usersadapters "gamestore_backend/internal/feature/users/adapters"
	usershandler "gamestore_backend/internal/feature/users/transport/handler"
	usersusecase "gamestore_backend/internal/feature/users/usecase"
	"gamestore_backend/internal/platform/config"
	infradb "gamestore_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.Open(cfg)
	defer func() {
		if err := infradb.Close(db); err != nil {
			log.Println("[ERROR] Failed to close connection pool:", err)
		}
	}()

	// Repository
	userRepo := usersadapters.NewUserRepository(db)
	gameRepo := gamesadapters.NewGameRepository(db)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	gameUC := gamesusecase.NewGameUsecase(gameRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	gameH := gameshandler.NewGameHandler(gameUC)

	// ルータ生成
	r := router.NewRouter(userH, gameH, router.Options{
		Development: cfg.IsDevelopment(),
		PostersDir:  cfg.PostersDir,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
		// 前段のロードバランサのタイムアウトよりIdleを長く、さらにヘッダ読みを
		// その上に設定し、常にバランサ側が先に切断するようにします。
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 31 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if cfg.IsDevelopment() {
			log.Printf("Application available on: http://%s/", srv.Addr)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] Server shutdown:", err)
	}
}
