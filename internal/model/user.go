// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionTier は課金プランを表します
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

// User はユーザーの基本情報と学習進捗（エネルギー・ストリーク・XP）を保持します。
// 進捗カラムに対する計算はすべて progression パッケージの純粋関数で行い、
// このレコードは読み取り→再計算→条件付き書き込みの対象でしかありません。
type User struct {
	UserID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name             string           `gorm:"not null" json:"name"`
	Email            string           `gorm:"unique;not null" json:"email"`
	PasswordHash     string           `gorm:"not null" json:"-"`
	IsActive         bool             `gorm:"default:false" json:"is_active"`
	SubscriptionTier SubscriptionTier `gorm:"not null;default:free" json:"subscription_tier"`

	// --- 学習進捗 ---
	Energy           int        `gorm:"not null;default:5" json:"energy"`
	LastEnergyRefill time.Time  `gorm:"not null" json:"-"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0" json:"longest_streak"`
	LastPracticeDate *time.Time `json:"-"` // 最後に演習を完了した日 (nullable)
	TotalExercises   int        `gorm:"not null;default:0" json:"total_exercises"`
	CorrectAnswers   int        `gorm:"not null;default:0" json:"correct_answers"`
	TotalXP          int64      `gorm:"not null;default:0" json:"total_xp"`
	// 連続正解カウンタ。3回連続正解ごとのエネルギーボーナス判定に使う。
	// 元実装ではクライアント側で数えていたが、レコードに持たせる方が確実。
	ConsecutiveCorrect int `gorm:"not null;default:0" json:"consecutive_correct"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsPro は無制限エネルギー対象のプランかどうかを返します
func (u *User) IsPro() bool {
	return u.SubscriptionTier == TierPro
}

// ユーザー登録リクエストDTO
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}
