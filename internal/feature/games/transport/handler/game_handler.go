// Package handler はgamesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/feature/games/domain/entity"
	"gamestore_backend/internal/feature/games/transport/http/dto"
	"gamestore_backend/internal/feature/games/usecase"
	"gamestore_backend/internal/shared/httperr"
	"gamestore_backend/internal/shared/validation"
)

// GameUsecase はゲーム操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type GameUsecase interface {
	GetGameByID(ctx context.Context, id int32) (*entity.Game, error)
	GetAllGames(ctx context.Context, p usecase.ListParams) ([]entity.Game, error)
	CreateGame(ctx context.Context, game *entity.Game) (*entity.Game, error)
	UpdateGame(ctx context.Context, id int32, game *entity.Game) (*entity.Game, error)
	DeleteGame(ctx context.Context, id int32) error
}

// GameHandler はゲームリソースのHTTPリクエストを処理します。
// エラーはローカルで処理せず、境界のエラーミドルウェアへ転送します。
type GameHandler struct {
	games GameUsecase
}

// NewGameHandler はGameHandlerの新しいインスタンスを生成します。
func NewGameHandler(games GameUsecase) *GameHandler {
	return &GameHandler{games: games}
}

func listParams(c *gin.Context) (usecase.ListParams, error) {
	page, err := validation.ParsePage(c.Query("page"))
	if err != nil {
		return usecase.ListParams{}, err
	}
	limit, err := validation.ParseLimit(c.Query("limit"))
	if err != nil {
		return usecase.ListParams{}, err
	}
	return usecase.ListParams{Page: page, Limit: limit}, nil
}

// GetByID はGET /api/games/:id/ を処理します。
func (h *GameHandler) GetByID(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.games.GetGameByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// List はGET /api/games/ を処理します。
func (h *GameHandler) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	games, err := h.games.GetAllGames(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGameResponses(games))
}

// Create はPOST /api/games/ を処理します。成功時は201を返します。
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.BadRequest(validation.BindingMessage(err), err))
		return
	}

	created, err := h.games.CreateGame(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewGameResponse(created))
}

// Update はPUT /api/games/:id/ を処理します（レガシーエイリアスのPOSTも同じ実装）。
func (h *GameHandler) Update(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.BadRequest(validation.BindingMessage(err), err))
		return
	}

	updated, err := h.games.UpdateGame(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGameResponse(updated))
}

// Delete はDELETE /api/games/:id/ を処理します。成功時は204（空ボディ）を返します。
func (h *GameHandler) Delete(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.games.DeleteGame(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
