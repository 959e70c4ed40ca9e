package repositories

import (
	"context"
	"errors"
	"time"

	"gin-boutique/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ITokenRepository interface {
	AddBlacklistedToken(token string, expiresAt int64) error
	IsTokenBlacklisted(token string) (bool, error)
	CleanExpiredTokens() error
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) AddBlacklistedToken(token string, expiresAt int64) error {
	blacklistedToken := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.Create(&blacklistedToken).Error
}

func (r *TokenRepository) IsTokenBlacklisted(token string) (bool, error) {
	var blacklistedToken models.BlacklistedToken
	result := r.db.Where("token = ?", token).First(&blacklistedToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return !blacklistedToken.Expired(time.Now()), nil
}

func (r *TokenRepository) CleanExpiredTokens() error {
	now := time.Now().Unix()
	return r.db.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{}).Error
}

const blacklistKeyPrefix = "blacklist:"

// RedisTokenRepository keeps blacklisted tokens as keys expiring with the token itself.
type RedisTokenRepository struct {
	client *redis.Client
}

func NewRedisTokenRepository(client *redis.Client) ITokenRepository {
	return &RedisTokenRepository{client: client}
}

func (r *RedisTokenRepository) AddBlacklistedToken(token string, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(context.Background(), blacklistKeyPrefix+token, expiresAt, ttl).Err()
}

func (r *RedisTokenRepository) IsTokenBlacklisted(token string) (bool, error) {
	n, err := r.client.Exists(context.Background(), blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CleanExpiredTokens is a no-op: Redis expires the keys.
func (r *RedisTokenRepository) CleanExpiredTokens() error {
	return nil
}
