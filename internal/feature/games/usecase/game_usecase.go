// Package usecase はgamesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"gamestore_backend/internal/feature/games/domain/entity"
	"gamestore_backend/internal/shared/httperr"
)

// ErrGameNotFound はリポジトリに該当する行が存在しない場合に返されます。
var ErrGameNotFound = errors.New("game not found")

// ListParams はページネーションウィンドウを表します。Pageが設定されている
// (>= 1)場合、オフセットは(Page-1)*limitで計算されます。
// それ以外はOffsetがそのまま使用されます。
type ListParams struct {
	Page   int
	Limit  int
	Offset int
}

// GameRepository はゲームエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type GameRepository interface {
	GetByID(ctx context.Context, id int32) (*entity.Game, error)
	List(ctx context.Context, p ListParams) ([]entity.Game, error)
	Create(ctx context.Context, game *entity.Game) (*entity.Game, error)
	Update(ctx context.Context, id int32, game *entity.Game) (*entity.Game, error)
	Delete(ctx context.Context, id int32) (bool, error)
}

// GameUsecase はゲームリソースのビジネスルールを実装します。
type GameUsecase struct {
	games GameRepository
}

// NewGameUsecase はGameUsecaseの新しいインスタンスを生成します。
func NewGameUsecase(games GameRepository) *GameUsecase {
	return &GameUsecase{games: games}
}

// GetGameByID はゲームを返します。存在しない場合はNotFoundのドメインエラーを返します。
func (u *GameUsecase) GetGameByID(ctx context.Context, id int32) (*entity.Game, error) {
	game, err := u.games.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, httperr.NotFound("Game not found")
		}
		return nil, err
	}
	return game, nil
}

// GetAllGames はページネーションウィンドウをそのままリポジトリへ渡します。
func (u *GameUsecase) GetAllGames(ctx context.Context, p ListParams) ([]entity.Game, error) {
	return u.games.List(ctx, p)
}

// CreateGame は新しいゲームを永続化します。永続化の失敗はBadRequestの
// ドメインエラーとして再通知され、原因はサーバー側に留まります。
func (u *GameUsecase) CreateGame(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	created, err := u.games.Create(ctx, game)
	if err != nil {
		return nil, httperr.BadRequest("Error creating game", err)
	}
	return created, nil
}

// UpdateGame は書き込み前に対象の存在を確認し、検証済みフィールドを
// 全置換します。
func (u *GameUsecase) UpdateGame(ctx context.Context, id int32, game *entity.Game) (*entity.Game, error) {
	if _, err := u.games.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, httperr.NotFound("Game not found")
		}
		return nil, err
	}

	updated, err := u.games.Update(ctx, id, game)
	if err != nil {
		return nil, httperr.BadRequest("Error updating game", err)
	}
	if updated == nil {
		// 存在確認と書き込みの間に行が消えた場合。
		return nil, httperr.NotFound("Game not found")
	}
	return updated, nil
}

// DeleteGame は削除前に対象の存在を確認します。
func (u *GameUsecase) DeleteGame(ctx context.Context, id int32) error {
	if _, err := u.games.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return httperr.NotFound("Game not found")
		}
		return err
	}

	if _, err := u.games.Delete(ctx, id); err != nil {
		return httperr.BadRequest("Error deleting game", err)
	}
	return nil
}
