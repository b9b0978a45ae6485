package services

import (
	"strings"

	"github.com/garageservices/garage-backend/internal/models"
	"github.com/garageservices/garage-backend/pkg/utils"
)

// UserStore is the persistence surface the auth service depends on.
type UserStore interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
}

type AuthService struct {
	users     UserStore
	jwtSecret string
}

func NewAuthService(users UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Register creates a user with a bcrypt password hash. A store constraint
// violation (duplicate username) surfaces as the store's error.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if username == "" || fullName == "" || email == "" {
		return nil, ValidationError("username, full name and email are required")
	}

	user := &models.User{
		Username: username,
		FullName: fullName,
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token with the user's
// identity. Unknown username and wrong password are indistinguishable.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ValidationError("username and password are required")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := user.CheckPassword(password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
