package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gin-boutique/constants"
	"gin-boutique/models"
	"gin-boutique/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var (
	ErrEmailExists        = errors.New(constants.ErrEmailExists)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
)

type IAuthService interface {
	Signup(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) (*string, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
	Logout(tokenString string) error
	SeedAdmin(ctx context.Context, email string, password string) (bool, error)
}

type AuthService struct {
	repository      repositories.IUserRepository
	tokenRepository repositories.ITokenRepository
	secretKey       []byte
	tokenTTL        time.Duration
}

func NewAuthService(repository repositories.IUserRepository, tokenRepository repositories.ITokenRepository, secretKey string, tokenTTL time.Duration) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		secretKey:       []byte(secretKey),
		tokenTTL:        tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, email string, password string) error {
	_, err := s.repository.FindUser(ctx, email)
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	_, err = s.createUser(ctx, email, password, constants.RoleUser)
	return err
}

func (s *AuthService) createUser(ctx context.Context, email string, password string, role string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
		Cart:     models.NewEmptyCart(),
	}
	created, err := s.repository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "duplicate") {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return created, nil
}

// SeedAdmin creates the admin account once. It reports whether a user was created.
func (s *AuthService) SeedAdmin(ctx context.Context, email string, password string) (bool, error) {
	_, err := s.repository.FindUser(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, fmt.Errorf("look up admin: %w", err)
	}

	if _, err := s.createUser(ctx, email, password, constants.RoleAdmin); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Printf("Admin created: %s", email)
	return true, nil
}

// SeedAdminAccount seeds the admin on db. Startup and the migrations command share it.
func SeedAdminAccount(ctx context.Context, db *gorm.DB, email string, password string) (bool, error) {
	return NewAuthService(repositories.NewUserRepository(db), nil, "", 0).SeedAdmin(ctx, email, password)
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(ctx, email)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.CreateToken(foundUser.ID, foundUser.Email, foundUser.Role)
}

func (s *AuthService) CreateToken(userID uint, email string, role string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// トークンがブラックリストに含まれているかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrTokenBlacklisted
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("token has no email claim")
	}
	return s.repository.FindUser(ctx, email)
}

func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.tokenTTL).Unix()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Unix()
	}

	// トークンをブラックリストに追加
	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
