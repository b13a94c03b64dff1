// internal/snippet/validate.go
package snippet

import (
	"strings"

	"go_5_learn2code/internal/model"
)

// コメント行とみなす先頭プレフィックス
var commentPrefixes = []string{"//", "#", "/*", "*", "*/", `"""`, "'''"}

// ValidateUnits は行範囲が不正なユニットと、空行またはコメント行だけを
// 指すユニットを取り除きます。評価器はここを通過したユニットしか
// 受け取らない前提で、行範囲の再検証を行いません。
func ValidateUnits(units []model.TeachingUnit, code string) []model.TeachingUnit {
	lines := strings.Split(code, "\n")

	valid := make([]model.TeachingUnit, 0, len(units))
	for _, u := range units {
		if u.LineStart < 1 || u.LineEnd > len(lines) || u.LineStart > u.LineEnd {
			continue
		}
		if u.LineStart == u.LineEnd && isCommentLine(lines, u.LineStart) {
			continue
		}
		valid = append(valid, u)
	}
	return valid
}

// isCommentLine は1始まりの行番号が空行またはコメント行かを判定します。
func isCommentLine(lines []string, lineNum int) bool {
	line := strings.TrimSpace(lines[lineNum-1])
	if line == "" {
		return true
	}
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
