package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/repositories"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/threaddate-backend/internal/testutil"
)

func newBrand(t *testing.T, name string, verified bool) *entities.Brand {
	t.Helper()
	brand, err := entities.NewBrand(name, "5f0c3c4e-8d7a-4f59-9b5e-2f7f8a1b2c3d")
	require.NoError(t, err)
	if verified {
		brand.Verify()
	}
	return brand
}

func TestBrandRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persiste marca pendente", func(t *testing.T) {
		repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})
		brand := newBrand(t, "  Levi's  ", false)

		require.NoError(t, repo.Create(ctx, brand))
		assert.NotEmpty(t, brand.ID)

		found, err := repo.FindBySlug(ctx, "levis")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Levi's", found.Name)
		assert.False(t, found.Verified)
		assert.Equal(t, entities.VerificationPending, found.VerificationStatus)
	})

	t.Run("slug duplicado retorna ErrDuplicate", func(t *testing.T) {
		repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

		require.NoError(t, repo.Create(ctx, newBrand(t, "Levi's", false)))
		err := repo.Create(ctx, newBrand(t, "LEVIS", false))

		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})

	t.Run("busca inexistente retorna nil sem erro", func(t *testing.T) {
		repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

		found, err := repo.FindByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestBrandRepository_UpdateVerification(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

	brand := newBrand(t, "Wrangler", false)
	require.NoError(t, repo.Create(ctx, brand))

	brand.Verify()
	require.NoError(t, repo.UpdateVerification(ctx, brand))

	found, err := repo.FindByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.True(t, found.Verified)
	assert.Equal(t, entities.VerificationVerified, found.VerificationStatus)

	brand.Reject()
	require.NoError(t, repo.UpdateVerification(ctx, brand))

	found, err = repo.FindByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.False(t, found.Verified)
	assert.Equal(t, entities.VerificationRejected, found.VerificationStatus)
}

func TestBrandRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

	for _, b := range []struct {
		name     string
		verified bool
	}{
		{"Levi's", false},
		{"Lee", true},
		{"Le Tigre", false},
		{"Filson", true},
		{"Pendleton", true},
		{"Lesney", false},
		{"Wrangler", true},
	} {
		require.NoError(t, repo.Create(ctx, newBrand(t, b.name, b.verified)))
	}

	t.Run("verificadas primeiro e ordem alfabética em cada grupo", func(t *testing.T) {
		brands, err := repo.Search(ctx, "le", 5)
		require.NoError(t, err)
		require.Len(t, brands, 5)

		names := make([]string, len(brands))
		for i, b := range brands {
			names[i] = b.Name
		}
		assert.Equal(t, []string{"Lee", "Pendleton", "Wrangler", "Le Tigre", "Lesney"}, names)

		seenUnverified := false
		for _, b := range brands {
			if !b.Verified {
				seenUnverified = true
			}
			assert.False(t, seenUnverified && b.Verified, "verified brand after unverified one")
		}
	})

	t.Run("não diferencia maiúsculas", func(t *testing.T) {
		brands, err := repo.Search(ctx, "WRANG", 10)
		require.NoError(t, err)
		require.Len(t, brands, 1)
		assert.Equal(t, "Wrangler", brands[0].Name)
	})

	t.Run("curingas do LIKE são tratados como texto", func(t *testing.T) {
		brands, err := repo.Search(ctx, "%", 10)
		require.NoError(t, err)
		assert.Empty(t, brands)
	})
}

func TestBrandRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

	require.NoError(t, repo.Create(ctx, newBrand(t, "Carhartt", true)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "Champion", false)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "Barbour", true)))

	verified := entities.VerificationVerified
	brands, err := repo.List(ctx, repositories.BrandFilters{Status: &verified})
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Barbour", brands[0].Name)
	assert.Equal(t, "Carhartt", brands[1].Name)

	all, err := repo.List(ctx, repositories.BrandFilters{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Champion", all[0].Name)
}

func TestBrandRepository_NameOrderIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewBrandRepository(testutil.NewDB(t), testutil.NopLogger{})

	for _, name := range []string{"Zara", "adidas", "Lee", "evisu"} {
		require.NoError(t, repo.Create(ctx, newBrand(t, name, true)))
	}

	names := func(brands []*entities.Brand) []string {
		out := make([]string, len(brands))
		for i, b := range brands {
			out[i] = b.Name
		}
		return out
	}

	t.Run("listagem", func(t *testing.T) {
		brands, err := repo.List(ctx, repositories.BrandFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"adidas", "evisu", "Lee", "Zara"}, names(brands))
	})

	t.Run("typeahead", func(t *testing.T) {
		brands, err := repo.Search(ctx, "e", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"evisu", "Lee"}, names(brands))
	})
}
