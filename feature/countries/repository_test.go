package countries

import (
	"context"
	"errors"
	"testing"
	"time"

	"country-currency/core/utils"
	"country-currency/feature/countries/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func country(name, region, currency string, gdp string) *models.Country {
	c := &models.Country{
		Name:            name,
		NameKey:         utils.NameKey(name),
		Region:          utils.StringPtr(region),
		CurrencyCode:    utils.StringPtr(currency),
		Population:      int64(len(name)) * 1000,
		LastRefreshedAt: time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC),
	}
	if gdp != "" {
		c.EstimatedGDP = decimal.NewNullDecimal(decimal.RequireFromString(gdp))
	}
	return c
}

func seed(t *testing.T, repo *Repository, countries ...*models.Country) {
	t.Helper()
	require.NoError(t, repo.Persist(context.Background(), countries, nil))
}

func names(list []models.Country) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestRepository_List(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	seed(t, repo,
		country("A", "Europe", "EUR", "5"),
		country("B", "europe", "GBP", ""),
		country("C", "Asia", "eur", "10"),
	)

	t.Run("GDP descending, absent as zero", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "gdp_desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A", "B"}, names(list))
	})

	t.Run("GDP ascending", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "GDP_ASC"})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, names(list))
	})

	t.Run("Name descending", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "name_desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "B", "A"}, names(list))
	})

	t.Run("Region and currency filters ignore case", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Region: "Europe", Currency: "eur"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, names(list))

		list, err = repo.List(ctx, ListQuery{Region: "EUROPE", Sort: "name_asc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, names(list))
	})

	t.Run("Unknown sort keeps every record", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "by_magic"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, names(list))
	})

	t.Run("No match is an empty list", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Region: "Oceania"})
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestRepository_ListPopulationAndNameSorts(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	withPopulation := func(name string, population int64) *models.Country {
		c := country(name, "Somewhere", "", "")
		c.Population = population
		return c
	}
	seed(t, repo,
		withPopulation("Brazil", 200),
		withPopulation("angola", 30),
		withPopulation("Chad", 17),
		withPopulation("Denmark", 30),
	)

	t.Run("Population descending, ties by name", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "population_desc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Brazil", "angola", "Denmark", "Chad"}, names(list))
	})

	t.Run("Population ascending, ties by name", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "Population_Asc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chad", "angola", "Denmark", "Brazil"}, names(list))
	})

	t.Run("Name ascending ignores case", func(t *testing.T) {
		list, err := repo.List(ctx, ListQuery{Sort: "name_asc"})
		require.NoError(t, err)
		assert.Equal(t, []string{"angola", "Brazil", "Chad", "Denmark"}, names(list))
	})
}

func TestRepository_FindByName(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	seed(t, repo, country("France", "Europe", "EUR", "1"))

	c, err := repo.FindByName(ctx, "fRaNcE")
	require.NoError(t, err)
	assert.Equal(t, "France", c.Name)
	assert.Len(t, c.ID, 36)

	_, err = repo.FindByName(ctx, "Atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Atlantis", nf.Name)
}

func TestRepository_DeleteByName(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	seed(t, repo, country("France", "Europe", "EUR", "1"), country("Peru", "Americas", "PEN", "2"))

	deleted, err := repo.DeleteByName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.False(t, deleted)
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	deleted, err = repo.DeleteByName(ctx, "FRANCE")
	require.NoError(t, err)
	assert.True(t, deleted)
	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = repo.FindByName(ctx, "France")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_UniqueNameKey(t *testing.T) {
	repo := NewRepository(setupDB(t))
	seed(t, repo, country("France", "Europe", "EUR", "1"))

	err := repo.Persist(context.Background(), []*models.Country{country("FRANCE", "Europe", "EUR", "1")}, nil)

	assert.Error(t, err)
}

func TestRepository_PersistUpdatesMutableColumns(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	c := country("France", "Europe", "EUR", "1")
	seed(t, repo, c)

	c.Region = nil
	c.EstimatedGDP = decimal.NullDecimal{}
	c.Population = 42
	require.NoError(t, repo.Persist(ctx, nil, []*models.Country{c}))

	got, err := repo.FindByName(ctx, "france")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Nil(t, got.Region)
	assert.False(t, got.EstimatedGDP.Valid)
	assert.Equal(t, int64(42), got.Population)
}

func TestRepository_TopByGDP(t *testing.T) {
	repo := NewRepository(setupDB(t))
	seed(t, repo,
		country("A", "", "", "5"),
		country("B", "", "", ""),
		country("C", "", "", "10"),
		country("D", "", "", "0"),
		country("E", "", "", "7.5"),
	)

	top, err := repo.TopByGDP(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E"}, names(top))
}

func TestRepository_PersistInsertError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `countries`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.Persist(context.Background(), []*models.Country{country("France", "Europe", "EUR", "1")}, nil)

	assert.ErrorContains(t, err, "failed to insert countries")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LoadAllError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `countries`").WillReturnError(errors.New("connection reset"))

	_, err := repo.LoadAll(context.Background())

	assert.ErrorContains(t, err, "failed to load countries")
	assert.NoError(t, mock.ExpectationsWereMet())
}
