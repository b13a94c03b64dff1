// internal/service/practice_service.go
package service

import (
	"context"
	"errors"

	"go_5_learn2code/internal/config"
	"go_5_learn2code/internal/evaluator"
	"go_5_learn2code/internal/middleware"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/repository"
	"go_5_learn2code/internal/snippet"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeService interface {
	CreateSnippet(ctx context.Context, userID uuid.UUID, req *model.CreateSnippetRequest) (*model.Snippet, error)
	GetSnippet(ctx context.Context, snippetID uuid.UUID) (*model.Snippet, error)
	ListSnippets(ctx context.Context, userID uuid.UUID) ([]model.Snippet, error)
	GetSampleSnippet(ctx context.Context, index int) *model.Snippet
	EvaluateExplanation(ctx context.Context, snippetID, unitID uuid.UUID, explanation string) (*model.EvaluationResult, error)
}

type practiceService struct {
	db          *gorm.DB
	snippetRepo repository.SnippetRepository
	eval        *evaluator.Evaluator
	cfg         *config.Config
}

func NewPracticeService(db *gorm.DB, snippetRepo repository.SnippetRepository, eval *evaluator.Evaluator, cfg *config.Config) PracticeService {
	return &practiceService{
		db:          db,
		snippetRepo: snippetRepo,
		eval:        eval,
		cfg:         cfg,
	}
}

// CreateSnippet は生成結果のユニットJSONをパース・検証して保存します。
// 検証で全ユニットが落ちた場合はコードから素朴なユニットを再生成します。
func (s *practiceService) CreateSnippet(ctx context.Context, userID uuid.UUID, req *model.CreateSnippetRequest) (*model.Snippet, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	units, err := snippet.ParseUnits(req.UnitsJSON)
	if err != nil {
		logger.Warn("Failed to parse units JSON", "error", err)
		return nil, model.NewAppError("INVALID_UNITS", "ユニットJSONの形式が正しくありません。", "units_json", model.ErrInvalidInput)
	}

	units = snippet.ValidateUnits(units, req.Code)
	if len(units) == 0 {
		logger.Info("No valid units after validation, generating fallback units")
		units = snippet.GenerateUnits(req.Code)
	}
	if len(units) == 0 {
		return nil, model.NewAppError("NO_UNITS", "このコードから学習ユニットを作成できませんでした。", "code", model.ErrInvalidInput)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}

	sn := &model.Snippet{
		SnippetID:   uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Language:    req.Language,
		Difficulty:  difficulty,
		Units:       units,
	}
	for i := range sn.Units {
		sn.Units[i].UnitID = uuid.New()
		sn.Units[i].SnippetID = sn.SnippetID
	}

	if err := s.snippetRepo.Create(ctx, s.db, sn); err != nil {
		logger.Error("Failed to create snippet", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スニペットの保存に失敗しました。", "", err)
	}

	logger.Info("Snippet created", "snippet_id", sn.SnippetID, "units", len(sn.Units))
	return sn, nil
}

func (s *practiceService) GetSnippet(ctx context.Context, snippetID uuid.UUID) (*model.Snippet, error) {
	logger := middleware.GetLogger(ctx)

	sn, err := s.snippetRepo.FindByID(ctx, s.db, snippetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Snippet not found", "snippet_id", snippetID)
			return nil, model.NewAppError("SNIPPET_NOT_FOUND", "スニペットが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find snippet", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return sn, nil
}

func (s *practiceService) ListSnippets(ctx context.Context, userID uuid.UUID) ([]model.Snippet, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	snippets, err := s.snippetRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list snippets", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スニペット一覧の取得に失敗しました。", "", err)
	}
	return snippets, nil
}

// GetSampleSnippet は作り付けサンプルを返します。index は周回させるので
// 範囲外でもエラーにしません。
func (s *practiceService) GetSampleSnippet(ctx context.Context, index int) *model.Snippet {
	samples := snippet.Samples()
	if index < 0 {
		index = 0
	}
	sample := samples[index%len(samples)]
	return &sample
}

// EvaluateExplanation は指定ユニットに対する説明文を採点します。
// 採点は決定的な純粋計算で、結果は永続化しません (進捗への反映は
// クライアントが統計更新APIを別途呼ぶ)。
func (s *practiceService) EvaluateExplanation(ctx context.Context, snippetID, unitID uuid.UUID, explanation string) (*model.EvaluationResult, error) {
	logger := middleware.GetLogger(ctx).With("snippet_id", snippetID, "unit_id", unitID)

	unit, err := s.snippetRepo.FindUnit(ctx, s.db, snippetID, unitID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Teaching unit not found")
			return nil, model.NewAppError("UNIT_NOT_FOUND", "学習ユニットが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find teaching unit", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	result := s.eval.Evaluate(explanation, unit)
	logger.Info("Explanation evaluated", "result", result.Result, "confidence", result.ConfidenceScore)
	return result, nil
}
