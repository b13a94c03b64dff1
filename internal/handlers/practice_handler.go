// internal/handlers/practice_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_learn2code/internal/middleware"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/service"
	"go_5_learn2code/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// CreateSnippet は生成済みユニットJSON付きのスニペットを登録するハンドラ
func (h *PracticeHandler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateSnippet"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateSnippetRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	sn, err := h.service.CreateSnippet(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating snippet in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Snippet created successfully", slog.String("snippet_id", sn.SnippetID.String()), slog.Int("units", len(sn.Units)))
	webutil.RespondWithJSON(w, http.StatusCreated, sn, logger)
}

// GetSnippet はスニペット1件をユニット付きで取得するハンドラ
func (h *PracticeHandler) GetSnippet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSnippet"))

	snippetID, ok := h.parseUUIDParam(w, r, logger, "snippet_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("snippet_id", snippetID.String()))

	sn, err := h.service.GetSnippet(r.Context(), snippetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Snippet not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting snippet from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Snippet retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, sn, logger)
}

// ListSnippets は認証ユーザーのスニペット一覧を返すハンドラ
func (h *PracticeHandler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListSnippets"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	snippets, err := h.service.ListSnippets(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing snippets in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if snippets == nil {
		snippets = []model.Snippet{}
	}
	logger.Info("Snippets listed successfully", slog.Int("count", len(snippets)))
	webutil.RespondWithJSON(w, http.StatusOK, snippets, logger)
}

// GetSampleSnippet は作り付けサンプルを返すハンドラ。認証不要。
// index は0始まりで、範囲外の値は周回して扱われる。
func (h *PracticeHandler) GetSampleSnippet(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSampleSnippet"))

	index := 0
	if raw := r.URL.Query().Get("index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid index query parameter", slog.String("index", raw))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "indexの形式が正しくありません。", "index", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		index = parsed
	}

	sample := h.service.GetSampleSnippet(r.Context(), index)
	webutil.RespondWithJSON(w, http.StatusOK, sample, logger)
}

// EvaluateExplanation は指定ユニットに対する説明文を採点するハンドラ
func (h *PracticeHandler) EvaluateExplanation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "EvaluateExplanation"))

	snippetID, ok := h.parseUUIDParam(w, r, logger, "snippet_id")
	if !ok {
		return
	}
	unitID, ok := h.parseUUIDParam(w, r, logger, "unit_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("snippet_id", snippetID.String()), slog.String("unit_id", unitID.String()))

	var req model.EvaluateExplanationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// 空の説明は不正入力ではなく、通常どおり採点対象になる
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.EvaluateExplanation(r.Context(), snippetID, unitID, req.Explanation)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Teaching unit not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error evaluating explanation in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Explanation evaluated successfully", slog.String("result", string(result.Result)), slog.Int("confidence", result.ConfidenceScore))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// parseUUIDParam はURLパラメータをUUIDとして解釈します。失敗時はレスポンス送信まで行います。
func (h *PracticeHandler) parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
