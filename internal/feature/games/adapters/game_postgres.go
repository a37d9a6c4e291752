// Package adapters はgamesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamestore_backend/internal/feature/games/domain/entity"
	"gamestore_backend/internal/feature/games/usecase"
)

const (
	// queryTimeout は各ステートメントの実行時間を制限します。
	// タイムアウトはエラーとして表面化し、空の結果にはなりません。
	queryTimeout = 10 * time.Second

	defaultLimit = 30
)

// gamePostgres はGameRepositoryインターフェースのPostgreSQL実装です。
type gamePostgres struct {
	db *gorm.DB
}

var _ usecase.GameRepository = (*gamePostgres)(nil)

// NewGameRepository は指定されたgorm.DB接続でgamePostgresの新しいインスタンスを生成します。
func NewGameRepository(db *gorm.DB) *gamePostgres {
	return &gamePostgres{db: db}
}

// window はページネーションウィンドウを (limit, offset) に解決します。
func window(p usecase.ListParams) (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset = p.Offset
	if p.Page > 0 {
		offset = (p.Page - 1) * limit
	}
	return limit, offset
}

// GetByID はIDでゲームを取得します。
// ゲームが存在しない場合、usecase.ErrGameNotFoundを返します。
func (r *gamePostgres) GetByID(ctx context.Context, id int32) (*entity.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var g entity.Game
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

// List はID順にページネーションウィンドウ内のゲームを返します。
func (r *gamePostgres) List(ctx context.Context, p usecase.ListParams) ([]entity.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	limit, offset := window(p)

	var games []entity.Game
	if err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Create はゲームを追加し、ストアが割り当てたIDを反映して返します。
func (r *gamePostgres) Create(ctx context.Context, g *entity.Game) (*entity.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// Update は検証済みフィールドを全置換します。影響を受けた行が無い場合は (nil, nil) を返します。
func (r *gamePostgres) Update(ctx context.Context, id int32, g *entity.Game) (*entity.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// マップ更新によりゼロ値フィールド（rating 0等）も確実に書き込まれます。
	res := r.db.WithContext(ctx).
		Model(&entity.Game{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":        g.Title,
			"description":  g.Description,
			"vote_average": g.VoteAverage,
			"rating":       g.Rating,
			"poster_url":   g.PosterURL,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	updated := *g
	updated.ID = id
	return &updated, nil
}

// Delete は行を削除し、削除された場合にtrueを返します。
func (r *gamePostgres) Delete(ctx context.Context, id int32) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Game{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
