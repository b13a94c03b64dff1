// internal/evaluator/synonyms.go
package evaluator

// DefaultSynonyms は標準の同義語テーブルを返します。
// キーは正規化済みのキーコンセプト、値はその同義語（単語または句）。
// 複数語の同義語はフレーズとしての包含、単一語は単語単位の一致で照合されます。
// 呼び出しごとに新しいマップを返すので、呼び出し側が自由に加工できます。
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"output":   {"prints", "print", "displays", "display", "shows", "show", "outputs", "writes out", "puts out"},
		"print":    {"output", "outputs", "displays", "display", "shows", "show", "writes out"},
		"variable": {"value holder", "storage", "container", "box", "holds a value", "stores a value"},
		"loop":     {"repeat", "repeats", "iterate", "iterates", "iteration", "cycle through", "cycles through", "goes through"},
		"function": {"method", "procedure", "routine", "subroutine"},
		"return":   {"returns", "gives back", "sends back", "outputs", "hands back"},
		"returns":  {"return", "gives back", "sends back", "outputs", "hands back"},
		"input":    {"reads", "read", "asks", "asks for", "gets", "receives", "takes in", "user types"},
		"string":   {"text", "word", "words", "characters", "message", "quote", "quoted", "hello"},
		"integer":  {"number", "numbers", "whole number", "numeric", "int"},
		"number":   {"integer", "numeric", "value", "digit", "digits"},
		"condition": {
			"if", "check", "checks", "checking", "test", "tests", "compare", "compares", "decides", "decision",
		},
		"comparison":  {"compare", "compares", "checks if", "greater", "less", "equal", "bigger", "smaller"},
		"assignment":  {"assigns", "assign", "sets", "set to", "stores", "puts", "saves"},
		"declaration": {"declares", "declare", "creates", "defines", "makes", "introduces"},
		"increment":   {"increases", "increase", "adds one", "adds 1", "counts up", "goes up", "plus one"},
		"sum":         {"total", "adds", "add", "addition", "adds up", "plus", "accumulates"},
		"array":       {"list", "collection", "set of", "group of", "sequence"},
		"index":       {"position", "spot", "place", "location", "offset"},
		"call":        {"calls", "invokes", "invoke", "runs", "executes", "uses"},
		"argument":    {"parameter", "parameters", "input value", "passed in", "passes"},
		"pointer":     {"address", "memory address", "reference", "points to"},
	}
}
