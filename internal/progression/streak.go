// internal/progression/streak.go
package progression

import "time"

// ComputeStreak はカレンダー上の日付比較でストリークの継続を判定します。
// ローリング24時間ではなく「日付」の比較です。
//
// 日付境界はUTC固定で判定します。元実装はサーバーのローカルタイムゾーンに
// 依存していましたが、環境によって結果が変わるため、ここでは意図的にUTCに
// 統一しています（DESIGN.md参照）。
//
//   - lastPractice == nil        -> (1, true)   初回練習でストリーク開始
//   - 同じ日                      -> (currentStreak, false)
//   - ちょうど1日後               -> (currentStreak+1, true)
//   - 2日以上の間隔・負の間隔      -> (1, true)   ストリークはリセット
func (t *Tracker) ComputeStreak(lastPractice *time.Time, currentStreak int, now time.Time) (newStreak int, isNewDay bool) {
	if lastPractice == nil {
		return 1, true
	}

	today := truncateToDayUTC(now)
	lastDay := truncateToDayUTC(*lastPractice)

	daysDiff := int(today.Sub(lastDay).Hours() / 24)

	switch {
	case daysDiff == 0:
		return currentStreak, false
	case daysDiff == 1:
		return currentStreak + 1, true
	default:
		return 1, true
	}
}

// truncateToDayUTC はUTCでの0時0分に切り詰めます
func truncateToDayUTC(ts time.Time) time.Time {
	u := ts.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
