// Package dto はusers HTTP APIのデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"gamestore_backend/internal/feature/users/domain/entity"
)

// UserRequest はユーザーの作成および完全置換のペイロードです。
// 未知のフィールドは型付きデコードで破棄されます。
type UserRequest struct {
	Name      string  `json:"name" binding:"required,min=4,max=64"`
	Email     string  `json:"email" binding:"required,email,min=3,max=255"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url,min=8,max=255"`
	Password  string  `json:"password" binding:"required,min=6,max=64"`
}

// ToEntity は検証済みリクエストをドメインエンティティへ変換します。
func (r UserRequest) ToEntity() *entity.User {
	return &entity.User{
		Name:      r.Name,
		Email:     r.Email,
		AvatarURL: r.AvatarURL,
		Password:  r.Password,
	}
}

// UserResponse は保存された行をそのまま表します。パスワードは本サービスの
// 契約が従来から含めているため、そのまま返されます。
type UserResponse struct {
	ID        int32      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	Password  string     `json:"password"`
	LastVisit *time.Time `json:"lastVisit,omitempty"`
}

// NewUserResponse はドメインエンティティをAPI表現へ変換します。
func NewUserResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Password:  u.Password,
	}
	if !u.LastVisit.IsZero() {
		visit := u.LastVisit
		resp.LastVisit = &visit
	}
	return resp
}

// NewUserResponses はコレクションを変換します。常にJSON配列として描画されます。
func NewUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
