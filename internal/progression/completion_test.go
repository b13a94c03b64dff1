// internal/progression/completion_test.go
package progression

import (
	"testing"
	"time"

	"go_5_learn2code/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_ApplyCompletion_CompleteExercise(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 7, 9, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		user        model.User
		result      model.AnswerResult
		streakBonus int
		wantXP      int64
		wantEnergy  int
		wantCorrect int
		wantConsec  int
		wantStreak  int
	}{
		{
			name: "正常系: 正解でXP10と各カウンタ更新",
			user: model.User{
				Energy: 3, LastEnergyRefill: now,
				LastPracticeDate: &yesterday, CurrentStreak: 4,
				TotalExercises: 10, CorrectAnswers: 7, ConsecutiveCorrect: 2, TotalXP: 95,
			},
			result:      model.ResultCorrect,
			wantXP:      105,
			wantEnergy:  3,
			wantCorrect: 8,
			wantConsec:  3,
			wantStreak:  5,
		},
		{
			name: "正常系: 連続正解ボーナスでエネルギー1回復",
			user: model.User{
				Energy: 3, LastEnergyRefill: now,
				TotalXP: 0,
			},
			result:      model.ResultCorrect,
			streakBonus: 1,
			wantXP:      10,
			wantEnergy:  4,
			wantCorrect: 1,
			wantConsec:  1,
			wantStreak:  1,
		},
		{
			name: "境界系: 上限ではボーナス回復も頭打ち",
			user: model.User{
				Energy: 5, LastEnergyRefill: now,
			},
			result:      model.ResultCorrect,
			streakBonus: 1,
			wantXP:      10,
			wantEnergy:  5,
			wantCorrect: 1,
			wantConsec:  1,
			wantStreak:  1,
		},
		{
			name: "正常系: 部分正解はXP5で連続正解リセット",
			user: model.User{
				Energy: 2, LastEnergyRefill: now,
				ConsecutiveCorrect: 4, TotalXP: 50,
			},
			result:      model.ResultPartial,
			wantXP:      55,
			wantEnergy:  2,
			wantCorrect: 0,
			wantConsec:  0,
			wantStreak:  1,
		},
		{
			name: "正常系: 不正解でもXP2は入る",
			user: model.User{
				Energy: 2, LastEnergyRefill: now,
				ConsecutiveCorrect: 1, TotalXP: 20,
			},
			result:      model.ResultIncorrect,
			wantXP:      22,
			wantEnergy:  2,
			wantCorrect: 0,
			wantConsec:  0,
			wantStreak:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			err := tracker.ApplyCompletion(&u, model.ActionCompleteExercise, tt.result, tt.streakBonus, 5, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantXP, u.TotalXP)
			assert.Equal(t, tt.wantEnergy, u.Energy)
			assert.Equal(t, tt.wantCorrect, u.CorrectAnswers)
			assert.Equal(t, tt.wantConsec, u.ConsecutiveCorrect)
			assert.Equal(t, tt.wantStreak, u.CurrentStreak)
			assert.Equal(t, now, u.LastEnergyRefill)
			require.NotNil(t, u.LastPracticeDate)
			assert.Equal(t, now, *u.LastPracticeDate)
		})
	}
}

func TestTracker_ApplyCompletion_UseEnergy(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	t.Run("正常系: 無料プランは1消費", func(t *testing.T) {
		u := model.User{Energy: 3, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionUseEnergy, "", 0, 5, now)
		require.NoError(t, err)
		assert.Equal(t, 2, u.Energy)
	})

	t.Run("境界系: 0からは減らない", func(t *testing.T) {
		u := model.User{Energy: 0, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionUseEnergy, "", 0, 5, now)
		require.NoError(t, err)
		assert.Equal(t, 0, u.Energy)
	})

	t.Run("正常系: 無制限プランは消費しない", func(t *testing.T) {
		u := model.User{Energy: 100, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionUseEnergy, "", 0, 999, now)
		require.NoError(t, err)
		assert.Equal(t, 100, u.Energy)
	})

	t.Run("正常系: 消費前に経過時間分を回復する", func(t *testing.T) {
		u := model.User{Energy: 2, LastEnergyRefill: now.Add(-65 * time.Minute)}
		err := tracker.ApplyCompletion(&u, model.ActionUseEnergy, "", 0, 5, now)
		require.NoError(t, err)
		// 2 + 2回復 - 1消費
		assert.Equal(t, 3, u.Energy)
		assert.Equal(t, now, u.LastEnergyRefill)
	})
}

func TestTracker_ApplyCompletion_EarnEnergy(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	t.Run("正常系: ボーナス分だけ回復", func(t *testing.T) {
		u := model.User{Energy: 2, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionEarnEnergy, "", 2, 5, now)
		require.NoError(t, err)
		assert.Equal(t, 4, u.Energy)
	})

	t.Run("境界系: 上限を超えない", func(t *testing.T) {
		u := model.User{Energy: 4, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionEarnEnergy, "", 3, 5, now)
		require.NoError(t, err)
		assert.Equal(t, 5, u.Energy)
	})
}

func TestTracker_ApplyCompletion_InvalidInput(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

	t.Run("異常系: 未知のactionはErrInvalidInput", func(t *testing.T) {
		u := model.User{Energy: 3, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, "teleport", "", 0, 5, now)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: complete_exerciseに未知のresultはErrInvalidInput", func(t *testing.T) {
		u := model.User{Energy: 3, LastEnergyRefill: now}
		err := tracker.ApplyCompletion(&u, model.ActionCompleteExercise, "perfect", 0, 5, now)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		// 失敗時はカウンタを汚さない
		assert.Equal(t, 0, u.TotalExercises)
	})
}
