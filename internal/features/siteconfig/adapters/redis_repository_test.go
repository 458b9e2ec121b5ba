package adapters

import (
	"context"
	"testing"
	"time"

	"storefront-engine/internal/core/cache"
	"storefront-engine/internal/features/siteconfig/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*RedisSiteConfigRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisSiteConfigRepository(adapter), mr
}

func TestRedisSiteConfigRepository_SaveGet(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	cfg := &domain.SiteConfig{
		StoreName:        "Kashmir Crafts",
		SupportEmail:     "support@kashmircrafts.example",
		CartButtonColor:  "#c0392b",
		AnnouncementText: "Free shipping on orders above Rs. 2000",
		UpdatedAt:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cfg, got)
}

func TestRedisSiteConfigRepository_GetEmpty(t *testing.T) {
	repo, _ := newRepo(t)

	got, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSiteConfigRepository_SaveReplaces(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.SiteConfig{StoreName: "Old Name"}))
	require.NoError(t, repo.Save(ctx, &domain.SiteConfig{StoreName: "New Name"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", got.StoreName)
}

func TestRedisSiteConfigRepository_NoExpiry(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.SiteConfig{StoreName: "Kashmir Crafts"}))

	mr.FastForward(365 * 24 * time.Hour)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
}
