// Package dto はgames HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "gamestore_backend/internal/feature/games/domain/entity"

// GameRequest はゲームの作成および完全置換のペイロードです。
// VoteAverageとRatingは正当な0がrequiredルールを通過できるようポインタです。
// 未知のフィールドは型付きデコードで破棄されます。
type GameRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required,min=1,max=255"`
	VoteAverage *float64 `json:"voteAverage" binding:"required,gte=0,lte=5"`
	Rating      *int     `json:"rating" binding:"required,gte=0,lte=5"`
	PosterURL   string   `json:"posterUrl" binding:"required,url,min=8,max=255"`
}

// ToEntity は検証済みリクエストをドメインエンティティへ変換します。
func (r GameRequest) ToEntity() *entity.Game {
	return &entity.Game{
		Title:       r.Title,
		Description: r.Description,
		VoteAverage: *r.VoteAverage,
		Rating:      *r.Rating,
		PosterURL:   r.PosterURL,
	}
}

// GameResponse は保存された行をそのまま表します。
type GameResponse struct {
	ID          int32   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VoteAverage float64 `json:"voteAverage"`
	Rating      int     `json:"rating"`
	PosterURL   string  `json:"posterUrl"`
}

// NewGameResponse はドメインエンティティをAPI表現へ変換します。
func NewGameResponse(g *entity.Game) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		VoteAverage: g.VoteAverage,
		Rating:      g.Rating,
		PosterURL:   g.PosterURL,
	}
}

// NewGameResponses はコレクションを変換します。常にJSON配列として描画されます。
func NewGameResponses(games []entity.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for i := range games {
		out = append(out, NewGameResponse(&games[i]))
	}
	return out
}
