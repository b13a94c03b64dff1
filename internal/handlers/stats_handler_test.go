// internal/handlers/stats_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_5_learn2code/internal/handlers"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsRouter(h *handlers.StatsHandler, userID *uuid.UUID) *chi.Mux {
	router := chi.NewRouter()
	if userID != nil {
		router.Use(withUserID(*userID))
	}
	router.Get("/api/v1/stats", h.GetStats)
	router.Post("/api/v1/stats", h.UpdateStats)
	return router
}

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()

	expectedStats := &model.StatsResponse{
		Energy:          4,
		MaxEnergy:       5,
		NextRefillIn:    12,
		CurrentStreak:   3,
		LongestStreak:   9,
		TotalExercises:  42,
		CorrectAnswers:  30,
		TotalXP:         250,
		Level:           2,
		XPIntoLevel:     150,
		XPNeededForNext: 50,
		ProgressPercent: 75,
	}

	t.Run("正常系: 統計が取得できる", func(t *testing.T) {
		mockStatsService := mocks.NewMockStatsService(t)
		statsHandler := handlers.NewStatsHandler(mockStatsService, nil)
		router := newStatsRouter(statsHandler, &userID)

		mockStatsService.On("GetStats", mock.Anything, userID).
			Return(expectedStats, nil).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/v1/stats", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.StatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *expectedStats, got)
	})

	t.Run("異常系: 認証情報がない", func(t *testing.T) {
		mockStatsService := mocks.NewMockStatsService(t)
		statsHandler := handlers.NewStatsHandler(mockStatsService, nil)
		router := newStatsRouter(statsHandler, nil) // 認証ミドルウェアなし

		rec := doRequest(t, router, http.MethodGet, "/api/v1/stats", nil)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, rec.Body.Bytes()))
		mockStatsService.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		mockStatsService := mocks.NewMockStatsService(t)
		statsHandler := handlers.NewStatsHandler(mockStatsService, nil)
		router := newStatsRouter(statsHandler, &userID)

		mockStatsService.On("GetStats", mock.Anything, userID).
			Return(nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)).Once()

		rec := doRequest(t, router, http.MethodGet, "/api/v1/stats", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeErrorCode(t, rec.Body.Bytes()))
	})
}

func TestStatsHandler_UpdateStats(t *testing.T) {
	userID := uuid.New()

	validReq := model.UpdateStatsRequest{Action: "complete_exercise", Result: "correct"}
	updatedStats := &model.StatsResponse{
		Energy:    3,
		MaxEnergy: 5,
		TotalXP:   110,
		Level:     2,
	}

	tests := []struct {
		name           string
		authed         bool
		body           interface{}
		setupMock      func(statsService *mocks.MockStatsService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "正常系: 演習完了イベントを適用できる",
			authed: true,
			body:   validReq,
			setupMock: func(statsService *mocks.MockStatsService) {
				statsService.On("UpdateStats", mock.Anything, userID, &validReq).
					Return(updatedStats, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 認証情報がない",
			authed:         false,
			body:           validReq,
			setupMock:      func(statsService *mocks.MockStatsService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: ボディが壊れたJSON",
			authed:         true,
			body:           `{"action": `,
			setupMock:      func(statsService *mocks.MockStatsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: actionが空",
			authed:         true,
			body:           model.UpdateStatsRequest{Result: "correct"},
			setupMock:      func(statsService *mocks.MockStatsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "異常系: サービスがアクションを拒否する",
			authed: true,
			body:   model.UpdateStatsRequest{Action: "teleport"},
			setupMock: func(statsService *mocks.MockStatsService) {
				req := model.UpdateStatsRequest{Action: "teleport"}
				statsService.On("UpdateStats", mock.Anything, userID, &req).
					Return(nil, model.NewAppError("INVALID_ACTION", "アクションに指定できない値が設定されています。", "action", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ACTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStatsService := mocks.NewMockStatsService(t)
			statsHandler := handlers.NewStatsHandler(mockStatsService, nil)

			var router *chi.Mux
			if tt.authed {
				router = newStatsRouter(statsHandler, &userID)
			} else {
				router = newStatsRouter(statsHandler, nil)
			}
			tt.setupMock(mockStatsService)

			rec := doRequest(t, router, http.MethodPost, "/api/v1/stats", tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, "body: %s", rec.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeErrorCode(t, rec.Body.Bytes()))
			} else {
				var got model.StatsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *updatedStats, got)
			}
		})
	}
}
