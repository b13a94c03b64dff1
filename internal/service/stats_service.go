// internal/service/stats_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_learn2code/internal/config"
	"go_5_learn2code/internal/middleware"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/progression"
	"go_5_learn2code/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error)
	UpdateStats(ctx context.Context, userID uuid.UUID, req *model.UpdateStatsRequest) (*model.StatsResponse, error)
}

type statsService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	tracker  *progression.Tracker
	cfg      *config.Config
}

func NewStatsService(db *gorm.DB, userRepo repository.UserRepository, tracker *progression.Tracker, cfg *config.Config) StatsService {
	return &statsService{
		db:       db,
		userRepo: userRepo,
		tracker:  tracker,
		cfg:      cfg,
	}
}

// GetStats は現在の統計を返します。経過時間によるエネルギー回復を反映し、
// 保存済みの値と変わったときだけ永続化します (回復ウィンドウもそのとき
// リセットされる)。変わっていなければ書き込みは発生しません。
func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found")
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	now := time.Now()
	maxEnergy := s.maxEnergyFor(user)
	energy, nextRefill := s.tracker.ComputeEnergy(user.Energy, user.LastEnergyRefill, maxEnergy, now)

	if energy != user.Energy {
		user.Energy = energy
		user.LastEnergyRefill = now
		if err := s.userRepo.Update(ctx, s.db, user); err != nil {
			logger.Error("Failed to persist regenerated energy", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の更新に失敗しました。", "", err)
		}
		logger.Debug("Energy regenerated and persisted", "energy", energy)
	}

	return s.buildStatsResponse(user, maxEnergy, nextRefill), nil
}

// UpdateStats は演習完了などのイベントを1件適用し、更新後の統計を返します。
// 読み取り→再計算→書き込みを1トランザクションで行います。
func (s *statsService) UpdateStats(ctx context.Context, userID uuid.UUID, req *model.UpdateStatsRequest) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "action", req.Action)

	action := model.StatsAction(req.Action)
	result := model.AnswerResult(req.Result)

	switch action {
	case model.ActionCompleteExercise:
		if result != model.ResultCorrect && result != model.ResultPartial && result != model.ResultIncorrect {
			logger.Warn("Invalid result for complete_exercise", "result", req.Result)
			return nil, model.NewAppError("INVALID_RESULT", "採点結果に指定できない値が設定されています。", "result", model.ErrInvalidInput)
		}
	case model.ActionUseEnergy, model.ActionEarnEnergy:
		// result は無視する
	default:
		logger.Warn("Invalid action", "action", req.Action)
		return nil, model.NewAppError("INVALID_ACTION", "アクションに指定できない値が設定されています。", "action", model.ErrInvalidInput)
	}

	var resp *model.StatsResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}

		now := time.Now()
		maxEnergy := s.maxEnergyFor(user)
		streakBonus := s.deriveStreakBonus(user, action, result, req.StreakBonus)

		if err := s.tracker.ApplyCompletion(user, action, result, streakBonus, maxEnergy, now); err != nil {
			return model.NewAppError("INVALID_ACTION", "統計を更新できませんでした。", "", err)
		}

		if err := s.userRepo.Update(ctx, tx, user); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "統計の更新に失敗しました。", "", err)
		}

		_, nextRefill := s.tracker.ComputeEnergy(user.Energy, user.LastEnergyRefill, maxEnergy, now)
		resp = s.buildStatsResponse(user, maxEnergy, nextRefill)

		if streakBonus > 0 {
			logger.Info("Streak bonus granted", "consecutive_correct", user.ConsecutiveCorrect)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Stats updated", "energy", resp.Energy, "total_xp", resp.TotalXP, "streak", resp.CurrentStreak)
	return resp, nil
}

// deriveStreakBonus はこのイベントで付与するエネルギーボーナスを決めます。
// 正解の完了イベントでは連続正解カウンタから導出し (N回ごとに1)、
// earn_energy ではクライアント申告の値をそのまま使います。
func (s *statsService) deriveStreakBonus(user *model.User, action model.StatsAction, result model.AnswerResult, requested int) int {
	switch action {
	case model.ActionCompleteExercise:
		if result != model.ResultCorrect {
			return 0
		}
		every := s.cfg.App.StreakBonusEvery
		if every <= 0 {
			every = config.DefaultStreakBonusEvery
		}
		if (user.ConsecutiveCorrect+1)%every == 0 {
			return 1
		}
		return 0
	case model.ActionEarnEnergy:
		return requested
	default:
		return 0
	}
}

func (s *statsService) maxEnergyFor(user *model.User) int {
	if user.IsPro() {
		return s.cfg.App.MaxEnergyPro
	}
	return s.cfg.App.MaxEnergyFree
}

func (s *statsService) buildStatsResponse(user *model.User, maxEnergy, nextRefill int) *model.StatsResponse {
	level := progression.LevelFromXP(user.TotalXP)

	return &model.StatsResponse{
		Energy:          user.Energy,
		MaxEnergy:       maxEnergy,
		NextRefillIn:    nextRefill,
		CurrentStreak:   user.CurrentStreak,
		LongestStreak:   user.LongestStreak,
		TotalExercises:  user.TotalExercises,
		CorrectAnswers:  user.CorrectAnswers,
		TotalXP:         user.TotalXP,
		Level:           level.Level,
		XPIntoLevel:     level.XPIntoLevel,
		XPNeededForNext: level.XPNeededForNext,
		ProgressPercent: level.ProgressPercent,
		IsPro:           user.IsPro(),
	}
}
