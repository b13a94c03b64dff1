// internal/model/context.go
package model

// コンテキストキーの衝突を避けるための専用型
type contextKey string

// UserIDKey は認証ミドルウェアが検証済みユーザーIDを格納するキーです。
const UserIDKey contextKey = "userID"
