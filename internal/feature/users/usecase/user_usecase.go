// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"gamestore_backend/internal/feature/users/domain/entity"
	"gamestore_backend/internal/shared/httperr"
)

// ErrUserNotFound はリポジトリに該当する行が存在しない場合に返されます。
var ErrUserNotFound = errors.New("user not found")

// ListParams はページネーションウィンドウを表します。Pageが設定されている
// (>= 1)場合、オフセットは(Page-1)*limitで計算されます。
// それ以外はOffsetがそのまま使用されます。
type ListParams struct {
	Page   int
	Limit  int
	Offset int
}

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// GetByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	GetByID(ctx context.Context, id int32) (*entity.User, error)

	// List はページネーションウィンドウ内のユーザーを返します。
	List(ctx context.Context, p ListParams) ([]entity.User, error)

	// ListActive は直近15分以内に訪問したユーザーを返します。
	ListActive(ctx context.Context, p ListParams) ([]entity.User, error)

	// Create は新しいユーザーを永続化し、IDを割り当てて返します。
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update は検証済みフィールドを全置換します。
	// 影響行が無い場合は (nil, nil) を返します。
	Update(ctx context.Context, id int32, user *entity.User) (*entity.User, error)

	// Delete は行を削除し、削除された場合にtrueを返します。
	Delete(ctx context.Context, id int32) (bool, error)
}

// UserUsecase はユーザーリソースのビジネスルールを実装します。
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetUserByID はユーザーを返します。存在しない場合はNotFoundのドメインエラーを返します。
func (u *UserUsecase) GetUserByID(ctx context.Context, id int32) (*entity.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, httperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsers はページネーションウィンドウをそのままリポジトリへ渡します。
func (u *UserUsecase) GetAllUsers(ctx context.Context, p ListParams) ([]entity.User, error) {
	return u.users.List(ctx, p)
}

// GetActiveUsers は最終訪問が直近15分以内のユーザーを一覧します。
func (u *UserUsecase) GetActiveUsers(ctx context.Context, p ListParams) ([]entity.User, error) {
	return u.users.ListActive(ctx, p)
}

// CreateUser は新しいユーザーを永続化します。永続化の失敗はBadRequestの
// ドメインエラーとして再通知され、原因はサーバー側に留まります。
func (u *UserUsecase) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, httperr.BadRequest("Error creating user", err)
	}
	return created, nil
}

// UpdateUser は書き込み前に対象の存在を確認し、検証済みフィールドを
// 全置換します。
func (u *UserUsecase) UpdateUser(ctx context.Context, id int32, user *entity.User) (*entity.User, error) {
	if _, err := u.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, httperr.NotFound("User not found")
		}
		return nil, err
	}

	updated, err := u.users.Update(ctx, id, user)
	if err != nil {
		return nil, httperr.BadRequest("Error updating user", err)
	}
	if updated == nil {
		// 存在確認と書き込みの間に行が消えた場合。
		return nil, httperr.NotFound("User not found")
	}
	return updated, nil
}

// DeleteUser は削除前に対象の存在を確認します。
func (u *UserUsecase) DeleteUser(ctx context.Context, id int32) error {
	if _, err := u.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return httperr.NotFound("User not found")
		}
		return err
	}

	if _, err := u.users.Delete(ctx, id); err != nil {
		return httperr.BadRequest("Error deleting user", err)
	}
	return nil
}
