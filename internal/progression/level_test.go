// internal/progression/level_test.go
package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		name string
		xp   int64
		want LevelInfo
	}{
		{
			name: "正常系: XP0はレベル1の開始地点",
			xp:   0,
			want: LevelInfo{Level: 1, XPIntoLevel: 0, XPNeededForNext: 100, ProgressPercent: 0},
		},
		{
			name: "正常系: レベル2到達の直前",
			xp:   99,
			want: LevelInfo{Level: 1, XPIntoLevel: 99, XPNeededForNext: 1, ProgressPercent: 99},
		},
		{
			name: "正常系: ちょうど100でレベル2",
			xp:   100,
			want: LevelInfo{Level: 2, XPIntoLevel: 0, XPNeededForNext: 200, ProgressPercent: 0},
		},
		{
			name: "正常系: 250XPはレベル2の中間 (シナリオE)",
			xp:   250,
			want: LevelInfo{Level: 2, XPIntoLevel: 150, XPNeededForNext: 50, ProgressPercent: 75},
		},
		{
			name: "正常系: 300でレベル3",
			xp:   300,
			want: LevelInfo{Level: 3, XPIntoLevel: 0, XPNeededForNext: 300, ProgressPercent: 0},
		},
		{
			name: "境界系: 負のXPは0として扱う",
			xp:   -50,
			want: LevelInfo{Level: 1, XPIntoLevel: 0, XPNeededForNext: 100, ProgressPercent: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromXP(tt.xp))
		})
	}
}

func TestLevelFromXP_Monotonic(t *testing.T) {
	// XPが増えてもレベルは下がらない
	prev := LevelFromXP(0)
	for xp := int64(1); xp <= 5000; xp += 37 {
		cur := LevelFromXP(xp)
		assert.GreaterOrEqual(t, cur.Level, prev.Level, "xp=%d", xp)
		prev = cur
	}
}
