// internal/service/auth_service_test.go
package service_test // 公開APIだけを使ってテストする

import (
	"context"
	"testing"
	"time"

	"go_5_learn2code/internal/config"
	"go_5_learn2code/internal/model"
	"go_5_learn2code/internal/repository/mocks"
	"go_5_learn2code/internal/service"
	servicemocks "go_5_learn2code/internal/service/mocks" // Mailerのモック

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
type AuthServiceTestSuite struct {
	suite.Suite

	db            *gorm.DB
	mockUserRepo  *mocks.UserRepository
	mockTokenRepo *mocks.TokenRepository
	mockMailer    *servicemocks.Mailer
	cfg           *config.Config
	authService   service.AuthService
}

// 各テストの直前に呼ばれ、モックとDBをクリーンな状態にする
func (s *AuthServiceTestSuite) SetupTest() {
	// VerifyAccount / ResetPassword はトランザクション内で users テーブルを
	// 直接更新するため、インメモリDBに実テーブルを用意する
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&model.User{}))
	s.db = db

	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{
		App: config.AppConfig{
			Name:          "Learn2Code",
			FrontendURL:   "http://localhost:3000",
			MaxEnergyFree: 5,
		},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}

	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) assertAllExpectations() {
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockTokenRepo.AssertExpectations(s.T())
	s.mockMailer.AssertExpectations(s.T())
}

// --- RegisterUser ---
func (s *AuthServiceTestSuite) TestRegisterUser() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
					Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						u := args.Get(2).(*model.User)
						s.Equal(model.TierFree, u.SubscriptionTier)
						s.False(u.IsActive)
						// 満タンのエネルギーで初期化される
						s.Equal(5, u.Energy)
						s.WithinDuration(time.Now(), u.LastEnergyRefill, 5*time.Second)
					}).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).
					Run(func(args mock.Arguments) {
						token := args.Get(2).(*model.UserVerificationToken)
						s.Len(token.Token, 64) // 32バイトのhex
						s.WithinDuration(time.Now().Add(24*time.Hour), token.ExpiresAt, 5*time.Second)
					}).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "test@example.com", mock.Anything, mock.Anything).
					Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.NoError(err)
				s.Require().NotNil(user)
				s.Equal("test@example.com", user.Email)
				s.NotEqual(uuid.Nil, user.UserID)
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
					Return(&model.User{}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.Require().Error(err)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
				s.ErrorIs(err, model.ErrConflict)
			},
		},
		{
			name: "Failure - メール送信に失敗すると登録全体がロールバックされる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").
					Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).
					Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(model.ErrInternalServer).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.Require().Error(err)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			createdUser, err := s.authService.RegisterUser(context.Background(), tc.req)

			tc.checkResult(createdUser, err)
			s.assertAllExpectations()
		})
	}
}

// --- Login ---
func (s *AuthServiceTestSuite) TestLogin() {
	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeUser := func() *model.User {
		return &model.User{
			UserID:       userID,
			Email:        "login@example.com",
			PasswordHash: string(hashed),
			IsActive:     true,
		}
	}

	testCases := []struct {
		name        string
		req         *model.LoginRequest
		setupMocks  func()
		checkResult func(resp *model.LoginResponse, err error)
	}{
		{
			name: "Success - 正しい資格情報でJWTが返る",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "correct-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").
					Return(activeUser(), nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Require().NoError(err)
				s.Require().NotNil(resp)

				// 返ったJWTが自分の秘密鍵で検証でき、subjectがユーザーIDであること
				token, parseErr := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
					return []byte("test-secret"), nil
				})
				s.Require().NoError(parseErr)
				sub, subErr := token.Claims.GetSubject()
				s.Require().NoError(subErr)
				s.Equal(userID.String(), sub)
			},
		},
		{
			name: "Failure - パスワードが違う",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").
					Return(activeUser(), nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - ユーザーが存在しない",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "whatever"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").
					Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				// 存在有無を悟らせないよう、パスワード誤りと同じコードを返す
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - アカウントが未有効化",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "correct-password"},
			setupMocks: func() {
				inactive := activeUser()
				inactive.IsActive = false
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").
					Return(inactive, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Detail.Code)
				s.ErrorIs(err, model.ErrForbidden)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			resp, err := s.authService.Login(context.Background(), tc.req)

			tc.checkResult(resp, err)
			s.assertAllExpectations()
		})
	}
}

// --- VerifyAccount ---
func (s *AuthServiceTestSuite) TestVerifyAccount() {
	s.Run("Success - トークンが有効ならアカウントが有効化される", func() {
		s.SetupTest()

		user := &model.User{
			UserID:       uuid.New(),
			Name:         "verify",
			Email:        "verify@example.com",
			PasswordHash: "x",
			IsActive:     false,
		}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "valid-token").
			Return(&model.UserVerificationToken{
				Token:     "valid-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "valid-token").
			Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "valid-token")
		s.Require().NoError(err)

		var got model.User
		s.Require().NoError(s.db.First(&got, "user_id = ?", user.UserID).Error)
		s.True(got.IsActive)
		s.assertAllExpectations()
	})

	s.Run("Failure - トークンの期限切れ", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "expired-token").
			Return(&model.UserVerificationToken{
				Token:     "expired-token",
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil).Once()
		// 期限切れトークンは掃除される
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "expired-token").
			Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "expired-token")
		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.assertAllExpectations()
	})

	s.Run("Failure - トークンが存在しない", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "missing-token").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "missing-token")
		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.assertAllExpectations()
	})
}

// --- RequestPasswordReset ---
func (s *AuthServiceTestSuite) TestRequestPasswordReset() {
	s.Run("Success - 既存ユーザーに再設定メールが送られる", func() {
		s.SetupTest()

		user := &model.User{UserID: uuid.New(), Email: "reset@example.com"}
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "reset@example.com").
			Return(user, nil).Once()
		// 古いトークンは先に無効化される
		s.mockTokenRepo.On("DeletePasswordResetTokensByUser", mock.Anything, mock.Anything, user.UserID).
			Return(nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.PasswordResetToken")).
			Run(func(args mock.Arguments) {
				token := args.Get(2).(*model.PasswordResetToken)
				s.WithinDuration(time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
			}).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "reset@example.com", mock.Anything, mock.Anything).
			Return(nil).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "reset@example.com")
		s.NoError(err)
		s.assertAllExpectations()
	})

	s.Run("Success - 存在しないメールアドレスでも成功を装う", func() {
		s.SetupTest()

		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ghost@example.com").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.RequestPasswordReset(context.Background(), "ghost@example.com")
		s.NoError(err)
		s.mockTokenRepo.AssertNotCalled(s.T(), "CreatePasswordResetToken", mock.Anything, mock.Anything, mock.Anything)
		s.mockMailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		s.assertAllExpectations()
	})
}

// --- ResetPassword ---
func (s *AuthServiceTestSuite) TestResetPassword() {
	s.Run("Success - パスワードが更新される", func() {
		s.SetupTest()

		oldHash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
		s.Require().NoError(err)
		user := &model.User{
			UserID:       uuid.New(),
			Name:         "reset",
			Email:        "reset@example.com",
			PasswordHash: string(oldHash),
			IsActive:     true,
		}
		s.Require().NoError(s.db.Create(user).Error)

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset-token").
			Return(&model.PasswordResetToken{
				Token:     "reset-token",
				UserID:    user.UserID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "reset-token").
			Return(nil).Once()

		err = s.authService.ResetPassword(context.Background(), "reset-token", "new-password")
		s.Require().NoError(err)

		var got model.User
		s.Require().NoError(s.db.First(&got, "user_id = ?", user.UserID).Error)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("new-password")))
		s.assertAllExpectations()
	})

	s.Run("Failure - トークンの期限切れ", func() {
		s.SetupTest()

		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "expired").
			Return(&model.PasswordResetToken{
				Token:     "expired",
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "expired").
			Return(nil).Once()

		err := s.authService.ResetPassword(context.Background(), "expired", "new-password")
		var appErr *model.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.assertAllExpectations()
	})
}
