// internal/evaluator/evaluator.go

// Package evaluator は学習者の自由記述の説明文を、ユニットのキーコンセプトと
// 同義語テーブルに基づいて決定的に採点します。I/Oも乱数も持たない純粋な
// 計算のみで、同じ入力には常に同じ判定を返します。
package evaluator

import (
	"fmt"
	"math"
	"strings"

	"go_5_learn2code/internal/model"
)

const (
	// この閾値以上の adjustedRatio で Correct
	correctRatioThreshold = 0.4
	// この閾値以上の adjustedRatio で Partially Correct
	partialRatioThreshold = 0.2
	// これより短い説明文は採点せず短絡する
	minExplanationLength = 5
)

// Evaluator は説明文の採点器です。同義語テーブルは構築時に注入され、
// 以後変更されない前提です（読み取り専用で共有可能）。
type Evaluator struct {
	synonyms map[string][]string
}

// New は任意の同義語テーブルで Evaluator を生成します。
// nil を渡した場合は同義語照合をスキップします。
func New(synonyms map[string][]string) *Evaluator {
	return &Evaluator{synonyms: synonyms}
}

// NewDefault は標準の同義語テーブルで Evaluator を生成します。
func NewDefault() *Evaluator {
	return New(DefaultSynonyms())
}

// Evaluate は説明文をユニットに対して採点し、判定を返します。
// explanation は空文字を含む任意のテキスト、unit.KeyConcepts は空でも構いません。
func (e *Evaluator) Evaluate(explanation string, unit *model.TeachingUnit) *model.EvaluationResult {
	trimmed := strings.TrimSpace(explanation)

	// 非回答（"idk"、記号のみ等）は長さ判定より先に弾く
	if isNoise(trimmed) {
		return &model.EvaluationResult{
			Result:          model.EvalIncorrect,
			ConfidenceScore: 0,
			Reason:          "Please provide a meaningful explanation of what this code does.",
			MatchedConcepts: []string{},
			MissingConcepts: []string{},
			Encouragement:   "It's okay not to know! Use the hint or try your best guess.",
			HintForRetry:    strPtr("Think about what action or operation this code performs."),
		}
	}

	if len(trimmed) < minExplanationLength {
		return &model.EvaluationResult{
			Result:          model.EvalIncorrect,
			ConfidenceScore: 5,
			Reason:          "Your explanation is too short. Please provide more detail.",
			MatchedConcepts: []string{},
			MissingConcepts: []string{},
			Encouragement:   "Try to explain what this code does in your own words.",
			HintForRetry:    strPtr("What action does this code perform?"),
		}
	}

	normalized := strings.ToLower(trimmed)
	words := wordSet(normalized)

	matched := []string{}
	missing := []string{}
	for _, concept := range unit.KeyConcepts {
		if e.conceptMatches(normalized, words, concept) {
			matched = append(matched, concept)
		} else {
			missing = append(missing, concept)
		}
	}

	// コンセプトが空のときは 0 として扱う（ゼロ除算回避）
	matchRatio := 0.0
	if len(unit.KeyConcepts) > 0 {
		matchRatio = float64(len(matched)) / float64(len(unit.KeyConcepts))
	}

	substantial := isSubstantial(normalized)
	verb := hasActionVerb(words)

	adjustedRatio := matchRatio
	switch {
	case substantial && verb:
		adjustedRatio += 0.20
	case substantial || verb:
		adjustedRatio += 0.10
	}
	if adjustedRatio > 1.0 {
		adjustedRatio = 1.0
	}

	switch {
	case adjustedRatio >= correctRatioThreshold || (len(matched) >= 2 && substantial):
		return &model.EvaluationResult{
			Result:          model.EvalCorrect,
			ConfidenceScore: confidence(70, adjustedRatio, 30),
			Reason:          "Your explanation captures the key concepts well!",
			MatchedConcepts: matched,
			MissingConcepts: missing,
			Encouragement:   "Great job! You demonstrated good understanding.",
			HintForRetry:    nil,
		}

	case adjustedRatio >= partialRatioThreshold || len(matched) >= 1:
		return &model.EvaluationResult{
			Result:          model.EvalPartiallyCorrect,
			ConfidenceScore: confidence(40, adjustedRatio, 30),
			Reason:          "You got some concepts right, but missed a few important details.",
			MatchedConcepts: matched,
			MissingConcepts: missing,
			Encouragement:   "You're on the right track! Try to be more specific.",
			HintForRetry:    partialHint(missing),
		}

	default:
		return &model.EvaluationResult{
			Result:          model.EvalIncorrect,
			ConfidenceScore: confidence(0, adjustedRatio, 40),
			Reason:          "Your explanation doesn't quite capture what this code does.",
			MatchedConcepts: matched,
			MissingConcepts: missing,
			Encouragement:   "Don't worry - this is how we learn! Take another look at the code.",
			HintForRetry:    strPtr(incorrectHint(unit.UnitType)),
		}
	}
}

// conceptMatches は1つのコンセプトが説明文に含まれるかを優先順に判定します。
//  1. コンセプト句そのものの部分文字列一致
//  2. 同義語テーブル（複数語は句として包含、単一語は単語一致）
//  3. コンセプト内の3文字以上の単語が単語として出現
func (e *Evaluator) conceptMatches(normalized string, words map[string]struct{}, concept string) bool {
	c := strings.ToLower(strings.TrimSpace(concept))
	if c == "" {
		return false
	}

	if strings.Contains(normalized, c) {
		return true
	}

	for _, syn := range e.synonyms[c] {
		if strings.Contains(syn, " ") {
			if strings.Contains(normalized, syn) {
				return true
			}
		} else if _, ok := words[syn]; ok {
			return true
		}
	}

	for _, w := range strings.Fields(c) {
		if len(w) < 3 {
			continue
		}
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// confidence は base + ratio*scale を四捨五入し [0,100] にクランプします。
func confidence(base float64, ratio float64, scale float64) int {
	v := int(math.Round(base + ratio*scale))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// partialHint は未習得コンセプト（最大2件）を促すヒントを返します。
// 未習得がなければヒントなし。
func partialHint(missing []string) *string {
	if len(missing) == 0 {
		return nil
	}
	if len(missing) > 2 {
		missing = missing[:2]
	}
	return strPtr("Think about: " + strings.Join(missing, ", "))
}

func incorrectHint(unitType string) string {
	label := strings.ReplaceAll(unitType, "_", " ")
	if strings.TrimSpace(label) == "" {
		label = "code"
	}
	return fmt.Sprintf("What action does this %s perform?", label)
}

func strPtr(s string) *string {
	return &s
}
