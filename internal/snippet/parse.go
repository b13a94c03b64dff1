// internal/snippet/parse.go

// Package snippet は生成モデルが返すティーチングユニットJSONの
// パース・検証と、サンプルスニペットの提供を行います。
// 生成呼び出しそのものはスコープ外で、このパッケージは出力の
// 後処理だけを担当します。
package snippet

import (
	"encoding/json"
	"fmt"
	"strings"

	"go_5_learn2code/internal/model"
)

// 生成モデル出力の1ユニット。フィールドは欠けていることがあるので
// パース後にデフォルトを補う。
type rawUnit struct {
	ID                   int      `json:"id"`
	LineStart            int      `json:"lineStart"`
	LineEnd              int      `json:"lineEnd"`
	UnitType             string   `json:"unitType"`
	ReferenceExplanation string   `json:"referenceExplanation"`
	KeyConcepts          []string `json:"keyConcepts"`
}

// ParseUnits は生成モデルが返した生テキストをユニット配列にパースします。
// マークダウンのコードフェンス (```json ... ```) が付いていても剥がします。
// 欠けたフィールドにはデフォルト (id=連番, 行=1, unitType=expression) を補います。
func ParseUnits(raw string) ([]model.TeachingUnit, error) {
	cleaned := stripCodeFence(raw)

	var rawUnits []rawUnit
	if err := json.Unmarshal([]byte(cleaned), &rawUnits); err != nil {
		return nil, fmt.Errorf("snippet: units JSONのパースに失敗しました: %w", err)
	}

	units := make([]model.TeachingUnit, 0, len(rawUnits))
	for i, ru := range rawUnits {
		u := model.TeachingUnit{
			Seq:                  ru.ID,
			LineStart:            ru.LineStart,
			LineEnd:              ru.LineEnd,
			UnitType:             ru.UnitType,
			ReferenceExplanation: ru.ReferenceExplanation,
			KeyConcepts:          ru.KeyConcepts,
		}
		if u.Seq == 0 {
			u.Seq = i + 1
		}
		if u.LineStart == 0 {
			u.LineStart = 1
		}
		if u.LineEnd == 0 {
			u.LineEnd = 1
		}
		if u.UnitType == "" {
			u.UnitType = "expression"
		}
		if u.KeyConcepts == nil {
			u.KeyConcepts = []string{}
		}
		units = append(units, u)
	}
	return units, nil
}

// stripCodeFence は前後のマークダウンフェンスを除去します。
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
