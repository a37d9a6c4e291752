// Package router はHTTPの外部surfaceをフィーチャーのハンドラーへ結び付けます。
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	gameshandler "gamestore_backend/internal/feature/games/transport/handler"
	usershandler "gamestore_backend/internal/feature/users/transport/handler"
	"gamestore_backend/internal/platform/http/handler"
	"gamestore_backend/internal/platform/http/middleware"
)

// Options はルータの横断的な挙動を制御します。
type Options struct {
	// Development はレスポンスへの詳細なエラー出力を有効にします。
	Development bool

	// PostersDir を設定すると /images/posters 配下で配信されます。
	PostersDir string
}

// NewRouter はアプリケーションのルートを登録します。
func NewRouter(users *usershandler.UserHandler, games *gameshandler.GameHandler, opts Options) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.ErrorHandler(opts.Development))

	// 導通確認用
	r.GET("/healthz", handler.Health)

	if opts.PostersDir != "" {
		r.Static("/images/posters", opts.PostersDir)
	}

	api := r.Group("/api")

	u := api.Group("/users")
	{
		u.GET("", users.List)
		// 静的ルートは:idパラメータより優先されます。
		u.GET("/active", users.ListActive)
		u.GET("/:id", users.GetByID)
		u.POST("", users.Create)
		u.PUT("/:id", users.Update)
		// 旧来のクライアントはidルートへのPOSTで更新します。
		u.POST("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
	}

	g := api.Group("/games")
	{
		g.GET("", games.List)
		g.GET("/:id", games.GetByID)
		g.POST("", games.Create)
		g.PUT("/:id", games.Update)
		g.POST("/:id", games.Update)
		g.DELETE("/:id", games.Delete)
	}

	// 一致しないパスは空ボディの410 Goneで応答します。
	r.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusGone)
	})

	return r
}
