package service

import (
	"context"
	"testing"

	"temanikan/internal/models"
	"temanikan/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Home_LocksByRole(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, &fakeAdminRepo{})

	locked := func(p HomePage) map[models.View]bool {
		out := map[models.View]bool{}
		for _, q := range p.QuickAccess {
			out[q.View] = q.Locked
		}
		return out
	}

	guest, err := svc.Home(context.Background(), models.RoleGuest)
	require.NoError(t, err)
	g := locked(guest)
	assert.False(t, g[models.ViewEncyclopedia])
	assert.False(t, g[models.ViewShop])
	assert.True(t, g[models.ViewMonitoring])
	assert.True(t, g[models.ViewDiagnosis])
	assert.True(t, g[models.ViewForum])
	assert.Len(t, guest.Articles, 1)

	member, err := svc.Home(context.Background(), models.RoleMember)
	require.NoError(t, err)
	for v, l := range locked(member) {
		assert.False(t, l, "member should open %s", v)
	}
}

func TestCatalogService_Home_DoesNotMutateTiles(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, &fakeAdminRepo{})

	_, err := svc.Home(context.Background(), models.RoleGuest)
	require.NoError(t, err)
	for _, q := range quickAccess {
		assert.False(t, q.Locked)
	}
}

func TestCatalogService_Encyclopedia_ForwardsFilter(t *testing.T) {
	repo := &fakeCatalogRepo{fish: []models.Fish{{ID: 1, Name: "Ikan Cupang"}}}
	svc := NewCatalogService(repo, &fakeAdminRepo{})

	f := repository.FishFilter{Search: "cupang", Category: "Air Tawar", Difficulty: "all"}
	page, err := svc.Encyclopedia(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, f, repo.gotFilter)
	assert.Len(t, page.Fish, 1)
	assert.Equal(t, FishCategories, page.Categories)
	assert.Equal(t, FishDifficulties, page.Difficulties)
}

func TestCatalogService_Shop_ComputesDiscount(t *testing.T) {
	orig := decimal.NewFromInt(3000000)
	repo := &fakeCatalogRepo{products: []models.Product{
		{ID: 1, Price: decimal.NewFromInt(2500000), OriginalPrice: &orig},
		{ID: 2, Price: decimal.NewFromInt(850000)},
	}}
	svc := NewCatalogService(repo, &fakeAdminRepo{})

	page, err := svc.Shop(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page.Products[0].DiscountPct)
	assert.Equal(t, "17", page.Products[0].DiscountPct.String())
	assert.Nil(t, page.Products[1].DiscountPct)
}

func TestDiscountPercent(t *testing.T) {
	d := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }

	assert.Nil(t, DiscountPercent(decimal.NewFromInt(100), nil))
	assert.Nil(t, DiscountPercent(decimal.NewFromInt(100), d(100)))
	assert.Nil(t, DiscountPercent(decimal.NewFromInt(100), d(80)))
	assert.Equal(t, "18", DiscountPercent(decimal.NewFromInt(1800000), d(2200000)).String())
}

func TestCatalogService_Admin(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, &fakeAdminRepo{})

	page, err := svc.Admin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1247, page.Stats.TotalUsers)
	assert.Equal(t, 23, page.Stats.PendingReviews)
	assert.Len(t, page.RecentUsers, 1)
	assert.Len(t, page.PendingProducts, 1)
}

func TestCatalogService_PropagatesRepoErrors(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{err: errBoom}, &fakeAdminRepo{err: errBoom})
	ctx := context.Background()

	_, err := svc.Forum(ctx)
	assert.ErrorIs(t, err, errBoom)
	_, err = svc.Guides(ctx)
	assert.ErrorIs(t, err, errBoom)
	_, err = svc.Shop(ctx)
	assert.ErrorIs(t, err, errBoom)
	_, err = svc.Admin(ctx)
	assert.ErrorIs(t, err, errBoom)
}
