// internal/progression/completion.go
package progression

import (
	"fmt"
	"time"

	"go_5_learn2code/internal/model"
)

// ApplyCompletion は統計更新イベント1件をユーザーレコードに適用します。
// レコードを直接書き換えますが、I/Oは一切行いません（保存は呼び出し側）。
//
// すべての分岐で、まず現在エネルギーを再計算してから処理します。
// 処理後は LastEnergyRefill = now になるため、次回読み取り時の回復
// ウィンドウはこのトランザクション起点で始まります。
//
// 未知の action / result は呼び出し側の契約違反なので、黙って無視せず
// ErrInvalidInput を返して失敗させます。
func (t *Tracker) ApplyCompletion(u *model.User, action model.StatsAction, result model.AnswerResult, streakBonus int, maxEnergy int, now time.Time) error {
	energy, _ := t.ComputeEnergy(u.Energy, u.LastEnergyRefill, maxEnergy, now)

	switch action {
	case model.ActionCompleteExercise:
		if result != model.ResultCorrect && result != model.ResultPartial && result != model.ResultIncorrect {
			return fmt.Errorf("progression: unknown result %q: %w", result, model.ErrInvalidInput)
		}

		u.TotalExercises++

		newStreak, _ := t.ComputeStreak(u.LastPracticeDate, u.CurrentStreak, now)
		u.CurrentStreak = newStreak
		practiced := now
		u.LastPracticeDate = &practiced
		if newStreak > u.LongestStreak {
			u.LongestStreak = newStreak
		}

		switch result {
		case model.ResultCorrect:
			u.CorrectAnswers++
			u.ConsecutiveCorrect++
			u.TotalXP += int64(t.cfg.XPCorrect)
			// 連続正解ボーナス。何回ごとに付与するかは呼び出し側が数え、
			// ここでは指示されたときに1だけ回復する。
			if streakBonus > 0 {
				energy = clamp(energy+1, 0, maxEnergy)
			}
		case model.ResultPartial:
			u.ConsecutiveCorrect = 0
			u.TotalXP += int64(t.cfg.XPPartial)
		case model.ResultIncorrect:
			u.ConsecutiveCorrect = 0
			u.TotalXP += int64(t.cfg.XPIncorrect)
		}

	case model.ActionUseEnergy:
		// 不正解時のエネルギー消費。無制限プランでは消費しない。
		if maxEnergy < t.cfg.MaxEnergyPro && energy > 0 {
			energy--
		}

	case model.ActionEarnEnergy:
		if streakBonus > 0 {
			energy = clamp(energy+streakBonus, 0, maxEnergy)
		}

	default:
		return fmt.Errorf("progression: unknown action %q: %w", action, model.ErrInvalidInput)
	}

	u.Energy = clamp(energy, 0, maxEnergy)
	u.LastEnergyRefill = now

	// カウンタは単調非減少の不変条件を守る（呼び出し側のバグでも負にはしない）
	if u.TotalExercises < 0 {
		u.TotalExercises = 0
	}
	if u.CorrectAnswers < 0 {
		u.CorrectAnswers = 0
	}
	if u.ConsecutiveCorrect < 0 {
		u.ConsecutiveCorrect = 0
	}
	if u.TotalXP < 0 {
		u.TotalXP = 0
	}

	return nil
}
