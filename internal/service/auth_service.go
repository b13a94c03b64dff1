// internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go_5_learn2code/internal/config"
	"go_5_learn2code/internal/middleware"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	VerifyAccount(ctx context.Context, tokenString string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

// RegisterUser は新しいユーザーを登録し、有効化メールを送信します。
// 学習進捗は満タンのエネルギーとゼロのストリーク/XPで初期化します。
func (s *authService) RegisterUser(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		now := time.Now()
		user := &model.User{
			UserID:           uuid.New(),
			Name:             req.Name,
			Email:            req.Email,
			PasswordHash:     string(hashedPassword),
			IsActive:         false,
			SubscriptionTier: model.TierFree,
			Energy:           s.cfg.App.MaxEnergyFree,
			LastEnergyRefill: now,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// ユニーク制約違反 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user

		tokenString, err := s.generateAndSaveVerificationToken(ctx, tx, newUser.UserID)
		if err != nil {
			return err
		}

		if err := s.sendVerificationEmail(ctx, newUser.Email, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "確認メールの送信に失敗しました。時間をおいて再度お試しください。", "", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered and verification email sent", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// VerifyAccount は提供されたトークンを検証し、アカウントを有効化します。
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found")
				return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
			}
			logger.Error("Error finding verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "expires_at", token.ExpiresAt)
			_ = s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		updateResult := tx.Model(&model.User{}).Where("user_id = ?", token.UserID).Update("is_active", true)
		if updateResult.Error != nil {
			logger.Error("Failed to activate user account", "error", updateResult.Error, "user_id", token.UserID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの有効化に失敗しました。", "", updateResult.Error)
		}
		if updateResult.RowsAffected == 0 {
			logger.Error("User not found during activation", "user_id", token.UserID)
			return model.NewAppError("NOT_FOUND", "アカウントが見つかりません。", "", model.ErrNotFound)
		}

		// 使用済みトークンの削除失敗は致命的ではないので処理は続行する
		if err := s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err)
		}

		logger.Info("Account verified successfully", "user_id", token.UserID)
		return nil
	})
}

// Login はユーザーを認証し、JWTを返します。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	if !user.IsActive {
		logger.Warn("Login failed: account not active", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "アカウントが有効化されていません。登録時に送信されたメールをご確認ください。", "", model.ErrForbidden)
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    s.cfg.App.Name,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken}, nil
}

// RequestPasswordReset はパスワード再設定メールを送信します。
// ユーザーが存在しない場合も、それを悟られないように成功として扱います。
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Password reset requested for non-existent email")
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
	}

	// 古いトークンを無効化してから新しいトークンを発行する
	if err := s.tokenRepo.DeletePasswordResetTokensByUser(ctx, s.db, user.UserID); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "エラーが発生しました。", "", err)
	}

	tokenString, err := s.generateAndSavePasswordResetToken(ctx, s.db, user.UserID)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.FrontendURL, tokenString)
	subject := fmt.Sprintf("【%s】パスワードの再設定", s.cfg.App.Name)
	body := fmt.Sprintf("パスワードを再設定するには、以下のリンクをクリックしてください:\n%s\n\nこのリンクの有効期限は1時間です。", resetURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "メールの送信に失敗しました。", "", err)
	}

	logger.Info("Password reset email sent")
	return nil
}

// ResetPassword はトークンを検証してパスワードを更新します。
func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindPasswordResetToken(ctx, tx, tokenString)
		if err != nil {
			return model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています。", "token", model.ErrInvalidInput)
		}
		if time.Now().After(token.ExpiresAt) {
			_ = s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "このリンクの有効期限が切れています。", "token", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		result := tx.Model(&model.User{}).Where("user_id = ?", token.UserID).Update("password_hash", string(hashedPassword))
		if result.Error != nil || result.RowsAffected == 0 {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの更新に失敗しました。", "", result.Error)
		}

		if err := s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used password reset token", "error", err)
		}

		logger.Info("Password reset successfully", "user_id", token.UserID)
		return nil
	})
}

// --- ヘルパー関数 ---

func (s *authService) generateAndSaveVerificationToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)

	verificationToken := &model.UserVerificationToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := s.tokenRepo.CreateVerificationToken(ctx, tx, verificationToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
	}
	return tokenString, nil
}

func (s *authService) generateAndSavePasswordResetToken(ctx context.Context, db *gorm.DB, userID uuid.UUID) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}
	tokenString := hex.EncodeToString(tokenBytes)
	resetToken := &model.PasswordResetToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, db, resetToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました。", "", err)
	}
	return tokenString, nil
}

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	logger := middleware.GetLogger(ctx)
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.FrontendURL, token)
	subject := fmt.Sprintf("【%s】アカウントの有効化をお願いします", s.cfg.App.Name)
	body := fmt.Sprintf("%sにご登録いただきありがとうございます。\n\n以下のリンクをクリックしてアカウントを有効化してください:\n%s\n\nこのリンクの有効期限は24時間です。", s.cfg.App.Name, verifyURL)

	logger.Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}
