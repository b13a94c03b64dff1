// internal/snippet/fallback.go
package snippet

import (
	"fmt"
	"regexp"
	"strings"

	"go_5_learn2code/internal/model"
)

// フォールバック生成で作るユニット数の上限
const maxFallbackUnits = 8

var (
	typeDeclRe  = regexp.MustCompile(`^(int|void|float|double|char|def|class|public|private)\s+\w+`)
	conditionRe = regexp.MustCompile(`\b(if|else|elif)\b`)
	loopRe      = regexp.MustCompile(`\b(for|while|do)\b`)
	outputRe    = regexp.MustCompile(`\b(printf|print|cout|System\.out)\b`)
	inputRe     = regexp.MustCompile(`\b(scanf|input|cin|Scanner)\b`)
	varDeclRe   = regexp.MustCompile(`^\s*\w+\s+\w+\s*[=;]`)
)

// GenerateUnits は生成モデルのユニットが全滅した場合の保険として、
// コードから1行1ユニットの素朴なユニット列を作ります。
// 空行とコメント行は飛ばし、行の内容から unitType を推定します。
func GenerateUnits(code string) []model.TeachingUnit {
	lines := strings.Split(code, "\n")
	units := make([]model.TeachingUnit, 0, maxFallbackUnits)

	for i, line := range lines {
		lineNum := i + 1
		if isCommentLine(lines, lineNum) {
			continue
		}

		unitType := classifyLine(line)
		units = append(units, model.TeachingUnit{
			Seq:                  len(units) + 1,
			LineStart:            lineNum,
			LineEnd:              lineNum,
			UnitType:             unitType,
			ReferenceExplanation: fmt.Sprintf("This line contains: %s", strings.TrimSpace(line)),
			KeyConcepts:          []string{"code", "syntax", strings.ReplaceAll(unitType, "_", " ")},
		})
		if len(units) >= maxFallbackUnits {
			break
		}
	}
	return units
}

func classifyLine(line string) string {
	switch {
	case strings.Contains(line, "#include") || strings.Contains(line, "import"):
		return "import"
	case typeDeclRe.MatchString(line):
		return "function_signature"
	case strings.Contains(line, "return"):
		return "return_statement"
	case conditionRe.MatchString(line):
		return "condition"
	case loopRe.MatchString(line):
		return "loop"
	case outputRe.MatchString(line):
		return "output"
	case inputRe.MatchString(line):
		return "input"
	case varDeclRe.MatchString(line):
		return "variable_declaration"
	default:
		return "expression"
	}
}
