// internal/snippet/validate_test.go
package snippet

import (
	"testing"

	"go_5_learn2code/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validateTestCode = `#include <stdio.h>
// entry point
int main() {

    printf("hi\n");
    return 0;
}`

func unit(start, end int) model.TeachingUnit {
	return model.TeachingUnit{LineStart: start, LineEnd: end, UnitType: "expression"}
}

func TestValidateUnits(t *testing.T) {
	tests := []struct {
		name  string
		units []model.TeachingUnit
		want  int
	}{
		{
			name:  "正常系: 有効な範囲はそのまま残る",
			units: []model.TeachingUnit{unit(1, 1), unit(3, 3), unit(5, 6)},
			want:  3,
		},
		{
			name:  "異常系: lineStartが0未満は落ちる",
			units: []model.TeachingUnit{unit(0, 2)},
			want:  0,
		},
		{
			name:  "異常系: 行数超過は落ちる",
			units: []model.TeachingUnit{unit(1, 99)},
			want:  0,
		},
		{
			name:  "異常系: start > endは落ちる",
			units: []model.TeachingUnit{unit(5, 3)},
			want:  0,
		},
		{
			name:  "正常系: コメント1行だけのユニットは落ちる",
			units: []model.TeachingUnit{unit(2, 2)},
			want:  0,
		},
		{
			name:  "正常系: 空行1行だけのユニットは落ちる",
			units: []model.TeachingUnit{unit(4, 4)},
			want:  0,
		},
		{
			name:  "境界系: コメント行を含む複数行ユニットは残る",
			units: []model.TeachingUnit{unit(2, 3)},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUnits(tt.units, validateTestCode)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestGenerateUnits(t *testing.T) {
	units := GenerateUnits(validateTestCode)

	// コメント行と空行は飛ばされる
	require.NotEmpty(t, units)
	for _, u := range units {
		assert.NotEqual(t, 2, u.LineStart, "コメント行はユニットにならない")
		assert.NotEqual(t, 4, u.LineStart, "空行はユニットにならない")
		assert.NotEmpty(t, u.ReferenceExplanation)
		assert.Len(t, u.KeyConcepts, 3)
	}

	// 連番は1始まり
	for i, u := range units {
		assert.Equal(t, i+1, u.Seq)
	}
}

func TestGenerateUnits_Classification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"import行", `#include <stdio.h>`, "import"},
		{"関数シグネチャ", "int main() {", "function_signature"},
		{"return文", "    return 0;", "return_statement"},
		{"条件分岐", "    if (a > b) {", "condition"},
		{"ループ", "    for (int i = 0; i < 5; i++) {", "loop"},
		{"出力", `    printf("x");`, "output"},
		{"入力", `    scanf("%d", &x);`, "input"},
		{"その他", "    x++;", "expression"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyLine(tt.line))
		})
	}
}

func TestSamples(t *testing.T) {
	samples := Samples()
	require.NotEmpty(t, samples)

	for _, s := range samples {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Code)
		require.NotEmpty(t, s.Units, "snippet %q", s.Title)

		// 作り付けユニットは検証を通る状態で定義されていること
		valid := ValidateUnits(s.Units, s.Code)
		assert.Len(t, valid, len(s.Units), "snippet %q", s.Title)

		for _, u := range s.Units {
			assert.NotEmpty(t, u.ReferenceExplanation)
			assert.NotEmpty(t, u.KeyConcepts)
		}
	}
}
