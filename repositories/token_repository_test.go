package repositories

import (
	"testing"
	"time"

	"gin-boutique/infra"
	"gin-boutique/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository(t *testing.T) {
	db := infra.SetupTestDB(uuid.NewString())
	require.NoError(t, db.AutoMigrate(&models.BlacklistedToken{}))
	repo := NewTokenRepository(db)

	require.NoError(t, repo.AddBlacklistedToken("live", time.Now().Add(time.Hour).Unix()))
	require.NoError(t, repo.AddBlacklistedToken("stale", time.Now().Add(-time.Hour).Unix()))

	blacklisted, err := repo.IsTokenBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = repo.IsTokenBlacklisted("unknown")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = repo.IsTokenBlacklisted("stale")
	require.NoError(t, err)
	assert.False(t, blacklisted, "an expired entry no longer matters")

	require.NoError(t, repo.CleanExpiredTokens())
	var count int64
	db.Model(&models.BlacklistedToken{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
