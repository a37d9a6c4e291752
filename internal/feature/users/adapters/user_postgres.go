// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamestore_backend/internal/feature/users/domain/entity"
	"gamestore_backend/internal/feature/users/usecase"
)

const (
	// queryTimeout は各ステートメントの実行時間を制限します。
	// タイムアウトはエラーとして表面化し、空の結果にはなりません。
	queryTimeout = 10 * time.Second

	// activeWindow はアクティブユーザーを定義する直近のウィンドウです。
	activeWindow = 15 * time.Minute

	defaultLimit = 30
)

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。接続はDBゲートウェイが所有し、
// リポジトリは呼び出し間で状態を保持しません。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// window はページネーションウィンドウを (limit, offset) に解決します。
// Pageが設定されている場合は offset = (Page-1)*limit、それ以外はOffsetをそのまま使用します。
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

// GetByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userPostgres) GetByID(ctx context.Context, id int32) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List はID順にページネーションウィンドウ内のユーザーを返します。
func (r *userPostgres) List(ctx context.Context, p usecase.ListParams) ([]entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	limit, offset := window(p)

	var users []entity.User
	if err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListActive は last_visit がクエリ実行時点から15分以内のユーザーを返します。
func (r *userPostgres) ListActive(ctx context.Context, p usecase.ListParams) ([]entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	limit, offset := window(p)
	cutoff := time.Now().Add(-activeWindow)

	var users []entity.User
	if err := r.db.WithContext(ctx).
		Where("last_visit >= ?", cutoff).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create はユーザーを追加し、ストアが割り当てたIDを反映して返します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// Update は検証済みフィールドを全置換します。影響を受けた行が無い場合は (nil, nil) を返します。
func (r *userPostgres) Update(ctx context.Context, id int32, u *entity.User) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// マップ更新によりゼロ値フィールドも確実に書き込まれます。
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       u.Name,
			"email":      u.Email,
			"avatar_url": u.AvatarURL,
			"password":   u.Password,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	updated := *u
	updated.ID = id
	return &updated, nil
}

// Delete は行を削除し、削除された場合にtrueを返します。
func (r *userPostgres) Delete(ctx context.Context, id int32) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
