package services

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"stayconnected-api/config"
	"stayconnected-api/models"
	"stayconnected-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(refreshToken string) (string, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.NewFieldError("username", "This username is already taken.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.NewFieldError("email", "This email is already in use.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Tokens: *tokens, User: *user}, nil
}

// Login accepts either an email address or a username as the identifier.
// All failures collapse into one "invalid credentials" response.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	var user *models.User
	var err error

	if strings.Contains(req.Identifier, "@") {
		user, err = s.userRepo.GetByEmail(req.Identifier)
	} else {
		user, err = s.userRepo.GetByUsername(req.Identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	tokens, err := s.generateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Tokens: *tokens, User: *user}, nil
}

// Refresh validates a refresh-typed token and issues a fresh access token.
func (s *authService) Refresh(refreshToken string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrorUnauthorized{Message: "invalid refresh token"}
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return "", models.ErrorUnauthorized{Message: "invalid refresh token"}
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return "", models.ErrorUnauthorized{Message: "invalid refresh token"}
	}

	user, err := s.userRepo.GetByID(uint(userID))
	if err != nil {
		return "", models.ErrorUnauthorized{Message: "invalid refresh token"}
	}

	return s.signToken(user, "access", config.AccessTokenExpiration)
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) generateTokenPair(user *models.User) (*models.TokenPair, error) {
	access, err := s.signToken(user, "access", config.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, "refresh", config.RefreshTokenExpiration)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) signToken(user *models.User, tokenType string, expiration time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"token_type": tokenType,
		"exp":        now.Add(expiration).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// ValidatePassword is the password policy: at least 8 characters with at
// least one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.NewFieldError("password", "Password must be at least 8 characters long.")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return models.NewFieldError("password", "Password must contain at least one letter and one digit.")
	}
	return nil
}
