// internal/progression/level.go
package progression

// レベルLを完了するのに必要なXPは L*100 (レベル1は100、レベル2は200、…) で、
// 三角数的に累積していく。
const xpPerLevelStep int64 = 100

// LevelInfo は累計XPから導出したレベル情報です
type LevelInfo struct {
	Level           int
	XPIntoLevel     int64
	XPNeededForNext int64
	ProgressPercent float64
}

// LevelFromXP は累計XPを現在レベルと、レベル内の進捗に変換します。
// xp=0 はレベル1の0%。負のXPは0として扱います。
func LevelFromXP(xp int64) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := 1
	var cumulative int64
	for cumulative+int64(level)*xpPerLevelStep <= xp {
		cumulative += int64(level) * xpPerLevelStep
		level++
	}

	required := int64(level) * xpPerLevelStep
	into := xp - cumulative

	return LevelInfo{
		Level:           level,
		XPIntoLevel:     into,
		XPNeededForNext: required - into,
		ProgressPercent: float64(into) / float64(required) * 100,
	}
}
