// internal/progression/energy.go

// Package progression は学習進捗（エネルギー・ストリーク・XP・レベル）の
// 状態遷移を純粋関数として実装します。現在時刻は必ず引数 now で受け取り、
// パッケージ内では絶対に time.Now() を読みません（テストで時刻を自由に
// 動かせるようにするため）。永続化は呼び出し側 (service層) の責務です。
package progression

import (
	"time"

	"go_5_learn2code/internal/config"
)

// Tracker は進捗計算の調整値を保持します。状態は持ちません。
type Tracker struct {
	cfg config.AppConfig
}

func NewTracker(cfg config.AppConfig) *Tracker {
	// ゼロ値で渡された場合もデフォルトで動くようにしておく
	if cfg.EnergyRegenMinutes <= 0 {
		cfg.EnergyRegenMinutes = config.DefaultEnergyRegenMinutes
	}
	if cfg.MaxEnergyPro <= 0 {
		cfg.MaxEnergyPro = config.DefaultMaxEnergyPro
	}
	if cfg.XPCorrect <= 0 {
		cfg.XPCorrect = config.DefaultXPCorrect
	}
	if cfg.XPPartial <= 0 {
		cfg.XPPartial = config.DefaultXPPartial
	}
	if cfg.XPIncorrect <= 0 {
		cfg.XPIncorrect = config.DefaultXPIncorrect
	}
	return &Tracker{cfg: cfg}
}

// ComputeEnergy は経過時間から回復後のエネルギーと、次の回復までの分数を計算します。
// 1回復あたりの分数は cfg.EnergyRegenMinutes (既定30分)。
// 戻り値の energy は必ず [0, maxEnergy] に収まります。
// 再計算した値をいつ永続化するかは呼び出し側が決めます
// （保存する場合は lastRefill も now に更新して回復ウィンドウをリセットすること）。
func (t *Tracker) ComputeEnergy(lastEnergy int, lastRefill time.Time, maxEnergy int, now time.Time) (energy int, minutesUntilNextRefill int) {
	regen := t.cfg.EnergyRegenMinutes

	minutesPassed := int(now.Sub(lastRefill).Minutes())
	if minutesPassed < 0 {
		// 時計の巻き戻り。回復なしとして扱う。
		minutesPassed = 0
	}

	energyToAdd := minutesPassed / regen
	energy = clamp(lastEnergy+energyToAdd, 0, maxEnergy)

	if energy >= maxEnergy {
		return energy, 0
	}
	return energy, regen - (minutesPassed % regen)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
