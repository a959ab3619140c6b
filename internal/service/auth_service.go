package service

import (
	"errors"
	"strings"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/common"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/config"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/consts"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/model"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/repository"
	"github.com/PhanHoangKe/GooglePhotosClone/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates the account with the default 5 GiB storage limit.
func (s *AuthService) Register(username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(username) < 3 || len(username) > 32 {
		return nil, common.NewValidationError("username must be 3-32 characters")
	}
	if !strings.Contains(email, "@") || len(email) > 255 {
		return nil, common.NewValidationError("invalid email address")
	}
	if len(password) < 8 {
		return nil, common.NewValidationError("password must be at least 8 characters")
	}

	if taken, err := s.users.FieldExists(repository.UserFieldUsername, username, nil); err != nil {
		return nil, common.NewInternalError("failed to check username")
	} else if taken {
		return nil, common.NewConflictError("username is already taken")
	}
	if taken, err := s.users.FieldExists(repository.UserFieldEmail, email, nil); err != nil {
		return nil, common.NewInternalError("failed to check email")
	} else if taken {
		return nil, common.NewConflictError("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("failed to hash password")
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Password:     string(hashed),
		StorageLimit: consts.DefaultStorageLimitBytes,
	}
	if err := s.users.Create(user); err != nil {
		return nil, common.NewInternalError("failed to create account")
	}
	return user, nil
}

// Login accepts a username or an email and returns a signed JWT.
func (s *AuthService) Login(account, password string) (string, *model.User, error) {
	account = strings.TrimSpace(account)
	if account == "" || password == "" {
		return "", nil, common.NewValidationError("account and password are required")
	}

	var user *model.User
	var err error
	if strings.Contains(account, "@") {
		user, err = s.users.FindByEmail(strings.ToLower(account))
	} else {
		user, err = s.users.FindByUsername(account)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.NewUnauthorizedError("invalid credentials")
		}
		return "", nil, common.NewInternalError("failed to load account")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, common.NewUnauthorizedError("invalid credentials")
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, time.Duration(hours)*time.Hour)
	if err != nil {
		return "", nil, common.NewInternalError("failed to issue token")
	}
	return token, user, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(tokenString string) {
	claims, err := utils.ParseLoginToken(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	utils.BlacklistToken(tokenString, claims.ExpiresAt.Time)
}
