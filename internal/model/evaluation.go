// internal/model/evaluation.go
package model

// EvaluationTier は評価結果の3段階判定です
type EvaluationTier string

const (
	EvalCorrect          EvaluationTier = "Correct"
	EvalPartiallyCorrect EvaluationTier = "Partially Correct"
	EvalIncorrect        EvaluationTier = "Incorrect"
)

// EvaluationResult は1回の説明に対する評価結果です。
// 毎回の提出ごとに新しく計算され、永続化はされません。
type EvaluationResult struct {
	Result          EvaluationTier `json:"result"`
	ConfidenceScore int            `json:"confidence_score"` // 0-100
	Reason          string         `json:"reason"`
	// MatchedConcepts と MissingConcepts は KeyConcepts の分割
	// （各コンセプトは必ずどちらか一方にだけ現れる）
	MatchedConcepts []string `json:"matched_concepts"`
	MissingConcepts []string `json:"missing_concepts"`
	Encouragement   string   `json:"encouragement"`
	// Correct のときだけ nil
	HintForRetry *string `json:"hint_for_retry"`
}

// 説明の評価リクエストDTO。空文字の説明もエラーではなく通常どおり採点される。
type EvaluateExplanationRequest struct {
	Explanation string `json:"explanation" validate:"max=5000"`
}
