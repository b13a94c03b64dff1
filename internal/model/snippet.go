// internal/model/snippet.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snippet は自動生成されたコードスニペット1件を表します。
// コード分割（生成AI呼び出し）はスコープ外で、このアプリは
// 生成結果のJSONを受け取って検証・保存するだけです。
type Snippet struct {
	SnippetID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"snippet_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Code        string         `gorm:"not null" json:"code"`
	Language    string         `gorm:"not null" json:"language"`
	Difficulty  string         `gorm:"not null;default:beginner" json:"difficulty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Units []TeachingUnit `gorm:"foreignKey:SnippetID;references:SnippetID" json:"units"`
}

func (Snippet) TableName() string {
	return "snippets"
}

// TeachingUnit はスニペット中の「説明すべき1単位」を表します。
// 生成時に一度だけ作られ、以降は評価の入力として読み取り専用で使われます。
type TeachingUnit struct {
	UnitID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"unit_id"`
	SnippetID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	// スニペット内の連番 (1始まり)
	Seq int `gorm:"not null" json:"id"`
	// 1始まりの行範囲 (両端を含む)。1 <= LineStart <= LineEnd <= 行数 が不変条件。
	LineStart int `gorm:"not null" json:"line_start"`
	LineEnd   int `gorm:"not null" json:"line_end"`
	// variable_declaration / loop / condition などの開いた語彙。ヒント文言にのみ使う。
	UnitType             string   `gorm:"not null;default:expression" json:"unit_type"`
	ReferenceExplanation string   `gorm:"not null" json:"reference_explanation"`
	KeyConcepts          []string `gorm:"serializer:json" json:"key_concepts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeachingUnit) TableName() string {
	return "teaching_units"
}

// スニペット登録リクエストDTO。
// UnitsJSON には生成モデルが返した生のJSON（コードフェンス付きでも可）をそのまま渡す。
type CreateSnippetRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Code        string `json:"code" validate:"required"`
	Language    string `json:"language" validate:"required,max=20"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	UnitsJSON   string `json:"units_json" validate:"required"`
}
