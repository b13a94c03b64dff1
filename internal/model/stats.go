// internal/model/stats.go
package model

// StatsAction は統計更新APIのアクション種別です
type StatsAction string

const (
	ActionCompleteExercise StatsAction = "complete_exercise"
	ActionUseEnergy        StatsAction = "use_energy"
	ActionEarnEnergy       StatsAction = "earn_energy"
)

// AnswerResult は演習1回の採点結果です (complete_exercise のときのみ意味を持つ)
type AnswerResult string

const (
	ResultCorrect   AnswerResult = "correct"
	ResultPartial   AnswerResult = "partial"
	ResultIncorrect AnswerResult = "incorrect"
)

// 統計更新リクエストDTO
type UpdateStatsRequest struct {
	Action      string `json:"action" validate:"required"`
	Result      string `json:"result" validate:"omitempty"`
	StreakBonus int    `json:"streak_bonus" validate:"omitempty,min=0"`
}

// StatsResponse は統計取得/更新APIのレスポンスです
type StatsResponse struct {
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`
	// 次のエネルギー回復までの分数 (満タンなら0)
	NextRefillIn   int   `json:"next_refill_in"`
	CurrentStreak  int   `json:"current_streak"`
	LongestStreak  int   `json:"longest_streak"`
	TotalExercises int   `json:"total_exercises"`
	CorrectAnswers int   `json:"correct_answers"`
	TotalXP        int64 `json:"total_xp"`

	// 累計XPから導出したレベル情報
	Level           int     `json:"level"`
	XPIntoLevel     int64   `json:"xp_into_level"`
	XPNeededForNext int64   `json:"xp_needed_for_next"`
	ProgressPercent float64 `json:"progress_percent"`

	IsPro bool `json:"is_pro"`
}
