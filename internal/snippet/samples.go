// internal/snippet/samples.go
package snippet

import "go_5_learn2code/internal/model"

// Samples は生成呼び出しなしで練習を始められる作り付けのサンプル
// スニペットを返します。ID類は未設定なので、永続化する場合は
// 呼び出し側で採番してください。
func Samples() []model.Snippet {
	return []model.Snippet{
		{
			Title:       "Hello World",
			Description: "Your first C program - printing text to the screen",
			Language:    "c",
			Difficulty:  "beginner",
			Code: `#include <stdio.h>

int main() {
    printf("Hello, World!\n");
    return 0;
}`,
			// #include 行は単一行コメント扱いで検証に落ちるためユニットにしない
			Units: []model.TeachingUnit{
				{
					Seq:                  1,
					LineStart:            3,
					LineEnd:              3,
					UnitType:             "function_signature",
					ReferenceExplanation: "This declares the main function, the entry point where the program starts running.",
					KeyConcepts:          []string{"function", "main", "entry point"},
				},
				{
					Seq:                  2,
					LineStart:            4,
					LineEnd:              4,
					UnitType:             "function_call",
					ReferenceExplanation: "This calls printf to display the text Hello, World! on the screen.",
					KeyConcepts:          []string{"output", "string", "call"},
				},
				{
					Seq:                  3,
					LineStart:            5,
					LineEnd:              5,
					UnitType:             "return_statement",
					ReferenceExplanation: "This returns 0 to tell the operating system the program finished successfully.",
					KeyConcepts:          []string{"return", "exit status"},
				},
			},
		},
		{
			Title:       "Variables and Data Types",
			Description: "Learn how to store different types of data",
			Language:    "c",
			Difficulty:  "beginner",
			Code: `#include <stdio.h>

int main() {
    int age = 25;
    float height = 1.75;
    char grade = 'A';

    printf("Age: %d\n", age);
    printf("Height: %.2f\n", height);
    printf("Grade: %c\n", grade);

    return 0;
}`,
			Units: []model.TeachingUnit{
				{
					Seq:                  1,
					LineStart:            4,
					LineEnd:              6,
					UnitType:             "variable_declaration",
					ReferenceExplanation: "These lines create three variables of different types: an integer for age, a decimal number for height, and a single character for grade.",
					KeyConcepts:          []string{"variable", "integer", "declaration"},
				},
				{
					Seq:                  2,
					LineStart:            8,
					LineEnd:              10,
					UnitType:             "function_call",
					ReferenceExplanation: "These lines print each variable using a format specifier that matches its type.",
					KeyConcepts:          []string{"output", "variable", "format specifier"},
				},
				{
					Seq:                  3,
					LineStart:            12,
					LineEnd:              12,
					UnitType:             "return_statement",
					ReferenceExplanation: "This returns 0 to signal that the program ended without errors.",
					KeyConcepts:          []string{"return", "exit status"},
				},
			},
		},
		{
			Title:       "Basic Arithmetic",
			Description: "Perform calculations with variables",
			Language:    "c",
			Difficulty:  "beginner",
			Code: `#include <stdio.h>

int main() {
    int a = 10;
    int b = 3;

    printf("Sum: %d\n", a + b);
    printf("Difference: %d\n", a - b);
    printf("Product: %d\n", a * b);

    return 0;
}`,
			Units: []model.TeachingUnit{
				{
					Seq:                  1,
					LineStart:            4,
					LineEnd:              5,
					UnitType:             "variable_declaration",
					ReferenceExplanation: "These lines store the numbers 10 and 3 in two integer variables.",
					KeyConcepts:          []string{"variable", "integer", "assignment"},
				},
				{
					Seq:                  2,
					LineStart:            7,
					LineEnd:              9,
					UnitType:             "function_call",
					ReferenceExplanation: "These lines calculate the sum, difference and product of the two numbers and print each result.",
					KeyConcepts:          []string{"output", "sum", "calculation"},
				},
				{
					Seq:                  3,
					LineStart:            11,
					LineEnd:              11,
					UnitType:             "return_statement",
					ReferenceExplanation: "This returns 0 to signal that the program ended without errors.",
					KeyConcepts:          []string{"return", "exit status"},
				},
			},
		},
	}
}
