package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore_backend/internal/feature/games/domain/entity"
	"gamestore_backend/internal/feature/games/usecase"
	"gamestore_backend/internal/platform/http/middleware"
	"gamestore_backend/internal/shared/httperr"
)

// mockGameUsecase is a mock implementation of the GameUsecase interface.
type mockGameUsecase struct {
	GetGameByIDFunc func(ctx context.Context, id int32) (*entity.Game, error)
	GetAllGamesFunc func(ctx context.Context, p usecase.ListParams) ([]entity.Game, error)
	CreateGameFunc  func(ctx context.Context, g *entity.Game) (*entity.Game, error)
	UpdateGameFunc  func(ctx context.Context, id int32, g *entity.Game) (*entity.Game, error)
	DeleteGameFunc  func(ctx context.Context, id int32) error
}

func (m *mockGameUsecase) GetGameByID(ctx context.Context, id int32) (*entity.Game, error) {
	if m.GetGameByIDFunc != nil {
		return m.GetGameByIDFunc(ctx, id)
	}
	return nil, httperr.NotFound("Game not found")
}

func (m *mockGameUsecase) GetAllGames(ctx context.Context, p usecase.ListParams) ([]entity.Game, error) {
	if m.GetAllGamesFunc != nil {
		return m.GetAllGamesFunc(ctx, p)
	}
	return []entity.Game{}, nil
}

func (m *mockGameUsecase) CreateGame(ctx context.Context, g *entity.Game) (*entity.Game, error) {
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, g)
	}
	g.ID = 1
	return g, nil
}

func (m *mockGameUsecase) UpdateGame(ctx context.Context, id int32, g *entity.Game) (*entity.Game, error) {
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(ctx, id, g)
	}
	g.ID = id
	return g, nil
}

func (m *mockGameUsecase) DeleteGame(ctx context.Context, id int32) error {
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, id)
	}
	return nil
}

func newTestRouter(uc GameUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewGameHandler(uc)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))

	r.GET("/api/games", h.List)
	r.GET("/api/games/:id", h.GetByID)
	r.POST("/api/games", h.Create)
	r.PUT("/api/games/:id", h.Update)
	r.DELETE("/api/games/:id", h.Delete)

	return r
}

func doRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGameHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockGameUsecase{
			GetGameByIDFunc: func(ctx context.Context, id int32) (*entity.Game, error) {
				return &entity.Game{
					ID: id, Title: "Hollow Depths", Description: "metroidvania",
					VoteAverage: 4.8, Rating: 5, PosterURL: "https://cdn.example.com/hd.png",
				}, nil
			},
		}

		w := doRequest(newTestRouter(uc), http.MethodGet, "/api/games/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Hollow Depths", body["title"])
		assert.EqualValues(t, 4.8, body["voteAverage"])
	})

	t.Run("missing game answers 404", func(t *testing.T) {
		w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodGet, "/api/games/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Game not found")
	})

	t.Run("malformed id answers 400", func(t *testing.T) {
		w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodGet, "/api/games/0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ID must be a positive integer")
	})
}

func TestGameHandler_Create(t *testing.T) {
	t.Run("valid body answers 201", func(t *testing.T) {
		payload := []byte(`{
			"title":"Hollow Depths",
			"description":"metroidvania",
			"voteAverage":4.8,
			"rating":5,
			"posterUrl":"https://cdn.example.com/hd.png"
		}`)
		w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodPost, "/api/games", payload)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body["id"])
		assert.Equal(t, "Hollow Depths", body["title"])
	})

	t.Run("zero voteAverage and rating are legitimate values", func(t *testing.T) {
		payload := []byte(`{
			"title":"Rough Draft",
			"description":"unrated",
			"voteAverage":0,
			"rating":0,
			"posterUrl":"https://cdn.example.com/rd.png"
		}`)
		w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodPost, "/api/games", payload)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing rating answers 400 before any persistence call", func(t *testing.T) {
		called := false
		uc := &mockGameUsecase{
			CreateGameFunc: func(ctx context.Context, g *entity.Game) (*entity.Game, error) {
				called = true
				return g, nil
			},
		}

		payload := []byte(`{
			"title":"Hollow Depths",
			"description":"metroidvania",
			"voteAverage":4.8,
			"posterUrl":"https://cdn.example.com/hd.png"
		}`)
		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/games", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rating is required")
		assert.False(t, called)
	})

	t.Run("rating above the range answers 400", func(t *testing.T) {
		payload := []byte(`{
			"title":"Hollow Depths",
			"description":"metroidvania",
			"voteAverage":4.8,
			"rating":6,
			"posterUrl":"https://cdn.example.com/hd.png"
		}`)
		w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodPost, "/api/games", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rating must be at most 5")
	})
}

func TestGameHandler_Update(t *testing.T) {
	payload := []byte(`{
		"title":"Renamed",
		"description":"new description",
		"voteAverage":3.5,
		"rating":3,
		"posterUrl":"https://cdn.example.com/new.png"
	}`)

	w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodPut, "/api/games/3", payload)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["id"])
	assert.Equal(t, "Renamed", body["title"])
}

func TestGameHandler_Delete(t *testing.T) {
	w := doRequest(newTestRouter(&mockGameUsecase{}), http.MethodDelete, "/api/games/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
