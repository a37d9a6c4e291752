// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore_backend/internal/feature/users/domain/entity"
	"gamestore_backend/internal/feature/users/transport/http/dto"
	"gamestore_backend/internal/feature/users/usecase"
	"gamestore_backend/internal/shared/httperr"
	"gamestore_backend/internal/shared/validation"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	GetUserByID(ctx context.Context, id int32) (*entity.User, error)
	GetAllUsers(ctx context.Context, p usecase.ListParams) ([]entity.User, error)
	GetActiveUsers(ctx context.Context, p usecase.ListParams) ([]entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, id int32, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int32) error
}

// UserHandler はユーザーリソースのHTTPリクエストを処理します。
// バリデーションまたはユースケースのエラーはローカルで処理せず、
// 境界のエラーミドルウェアへ転送します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// listParams はpageとlimitクエリパラメータを検証します。
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

// GetByID はGET /api/users/:id/ を処理します。
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// List はGET /api/users/ を処理します。
func (h *UserHandler) List(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	users, err := h.users.GetAllUsers(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// ListActive はGET /api/users/active/ を処理します。
func (h *UserHandler) ListActive(c *gin.Context) {
	p, err := listParams(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	users, err := h.users.GetActiveUsers(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Create はPOST /api/users/ を処理します。成功時は201を返します。
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.BadRequest(validation.BindingMessage(err), err))
		return
	}

	created, err := h.users.CreateUser(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(created))
}

// Update はPUT /api/users/:id/ を処理します（レガシーエイリアスのPOSTも同じ実装）。
func (h *UserHandler) Update(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(httperr.BadRequest(validation.BindingMessage(err), err))
		return
	}

	updated, err := h.users.UpdateUser(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Delete はDELETE /api/users/:id/ を処理します。成功時は204（空ボディ）を返します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
