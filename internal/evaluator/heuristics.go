// internal/evaluator/heuristics.go
package evaluator

import (
	"regexp"
	"strings"
	"unicode"
)

// 説明文として実質的とみなす最低単語数
const substantialWordCount = 5

// 説明文中に現れたら「動作を説明しようとしている」とみなす動詞。
// 完全一致の単語としてチェックする（larger word の一部はノーカウント）。
var actionVerbs = []string{
	"does", "performs", "creates", "stores", "saves",
	"reads", "writes", "prints", "displays", "asks",
	"gets", "returns", "loops", "checks", "compares",
	"calls", "runs", "executes", "assigns", "declares", "initializes",
}

// 明らかに回答になっていない入力。長さ判定より先に適用する
// （"idk" を「短すぎる」ではなく「非回答」として扱うため）。
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(idk|i don'?t know|no idea|dunno|idfk)$`),
	regexp.MustCompile(`(?i)^(asdf|qwer|test|hello|hi|help)$`),
	regexp.MustCompile(`^[^a-zA-Z]*$`),
}

// wordSet は小文字化済みテキストを単語集合に分解します。
// 区切りは英数字以外のすべての文字。
func wordSet(text string) map[string]struct{} {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// isSubstantial は空白区切りの単語数が閾値以上かを判定します。
func isSubstantial(text string) bool {
	return len(strings.Fields(text)) >= substantialWordCount
}

// hasActionVerb は動作動詞のいずれかが単語として含まれるかを判定します。
func hasActionVerb(words map[string]struct{}) bool {
	for _, v := range actionVerbs {
		if _, ok := words[v]; ok {
			return true
		}
	}
	return false
}

// isNoise は trim 済みテキストが非回答パターンに一致するかを判定します。
func isNoise(trimmed string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}
