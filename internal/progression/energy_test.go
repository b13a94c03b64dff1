// internal/progression/energy_test.go
package progression

import (
	"testing"
	"time"

	"go_5_learn2code/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestTracker() *Tracker {
	return NewTracker(config.AppConfig{
		EnergyRegenMinutes: 30,
		MaxEnergyFree:      5,
		MaxEnergyPro:       999,
		StreakBonusEvery:   3,
		XPCorrect:          10,
		XPPartial:          5,
		XPIncorrect:        2,
	})
}

func TestTracker_ComputeEnergy(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastEnergy int
		lastRefill time.Time
		maxEnergy  int
		wantEnergy int
		wantNext   int
	}{
		{
			name:       "正常系: 65分経過で2回復し上限に到達 (シナリオC)",
			lastEnergy: 3,
			lastRefill: now.Add(-65 * time.Minute),
			maxEnergy:  5,
			wantEnergy: 5,
			wantNext:   0,
		},
		{
			name:       "正常系: 経過0分なら回復なし",
			lastEnergy: 2,
			lastRefill: now,
			maxEnergy:  5,
			wantEnergy: 2,
			wantNext:   30,
		},
		{
			name:       "正常系: 45分経過で1回復、次の回復まで15分",
			lastEnergy: 1,
			lastRefill: now.Add(-45 * time.Minute),
			maxEnergy:  5,
			wantEnergy: 2,
			wantNext:   15,
		},
		{
			name:       "正常系: 長時間放置しても上限でクランプ",
			lastEnergy: 0,
			lastRefill: now.Add(-24 * time.Hour),
			maxEnergy:  5,
			wantEnergy: 5,
			wantNext:   0,
		},
		{
			name:       "境界系: 時計の巻き戻りは経過0分として扱う",
			lastEnergy: 3,
			lastRefill: now.Add(10 * time.Minute),
			maxEnergy:  5,
			wantEnergy: 3,
			wantNext:   30,
		},
		{
			name:       "境界系: すでに上限なら回復も待ち時間もなし",
			lastEnergy: 5,
			lastRefill: now.Add(-10 * time.Minute),
			maxEnergy:  5,
			wantEnergy: 5,
			wantNext:   0,
		},
		{
			name:       "正常系: 有料プランの大きな上限でも同じ式で回復",
			lastEnergy: 100,
			lastRefill: now.Add(-90 * time.Minute),
			maxEnergy:  999,
			wantEnergy: 103,
			wantNext:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			energy, next := tracker.ComputeEnergy(tt.lastEnergy, tt.lastRefill, tt.maxEnergy, now)
			assert.Equal(t, tt.wantEnergy, energy)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestTracker_ComputeEnergy_Range(t *testing.T) {
	tracker := newTestTracker()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	// エネルギーは常に [lastEnergy, maxEnergy]、待ち時間は常に [0, 30] に収まる
	for minutes := 0; minutes <= 200; minutes += 7 {
		for lastEnergy := 0; lastEnergy <= 5; lastEnergy++ {
			energy, next := tracker.ComputeEnergy(lastEnergy, now.Add(-time.Duration(minutes)*time.Minute), 5, now)
			assert.GreaterOrEqual(t, energy, lastEnergy)
			assert.LessOrEqual(t, energy, 5)
			assert.GreaterOrEqual(t, next, 0)
			assert.LessOrEqual(t, next, 30)
		}
	}
}
