package repositories

import (
	"errors"
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDB("repotest_"+uuid.NewString(), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, seed.Seed(db.GORM))
	return db.GORM
}

func TestProductRepoList(t *testing.T) {
	repo := NewProductRepo(newSeededDB(t))

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 5)
	for i, p := range products {
		assert.Equal(t, seed.Products()[i].ID, p.ID)
	}

	first, err := repo.First()
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)
}

func TestProductRepoCreateAppends(t *testing.T) {
	repo := NewProductRepo(newSeededDB(t))

	product := &models.Product{Name: "Bamboo Toothbrush", EcoScore: models.EcoScoreA}
	require.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 6, product.SortOrder)
	assert.Equal(t, models.StatusDraft, product.Status)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, product.ID, products[len(products)-1].ID)
}

func TestProductRepoSetStatus(t *testing.T) {
	repo := NewProductRepo(newSeededDB(t))

	require.NoError(t, repo.SetStatus("5", models.StatusPublished))
	p, err := repo.GetByID("5")
	require.NoError(t, err)
	assert.True(t, p.IsPublished())

	err = repo.SetStatus("missing", models.StatusPublished)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductRepoIncrementScans(t *testing.T) {
	repo := NewProductRepo(newSeededDB(t))

	require.NoError(t, repo.IncrementScans("1"))
	p, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, 568, *p.Scans)

	// NULL counters start from zero
	require.NoError(t, repo.IncrementScans("5"))
	p, err = repo.GetByID("5")
	require.NoError(t, err)
	require.NotNil(t, p.Scans)
	assert.Equal(t, 1, *p.Scans)

	assert.ErrorIs(t, repo.IncrementScans("missing"), gorm.ErrRecordNotFound)
}

func TestProductRepoExists(t *testing.T) {
	repo := NewProductRepo(newSeededDB(t))

	ok, err := repo.Exists("3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists("99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecyclingPointRepoList(t *testing.T) {
	repo := NewRecyclingPointRepo(newSeededDB(t))

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	buyback, err := repo.List(models.PointBuyback)
	require.NoError(t, err)
	require.Len(t, buyback, 2)
	assert.Equal(t, "r3", buyback[0].ID)
}

func TestConversationRepo(t *testing.T) {
	repo := NewConversationRepo(newSeededDB(t))

	convs, err := repo.List("", 2)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "conv-1", convs[0].ID)

	archived, err := repo.List(models.ConversationArchived, 0)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "conv-3", archived[0].ID)

	analysis, err := repo.GetAnalysisByProductID("1")
	require.NoError(t, err)
	assert.Equal(t, 92, analysis.SustainabilityScore)

	_, err = repo.GetAnalysisByProductID("4")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestScanRepo(t *testing.T) {
	repo := NewScanRepo(newSeededDB(t))

	require.NoError(t, repo.Create(&models.Scan{SessionID: "s1", ProductID: "1", Code: "1"}))
	require.NoError(t, repo.Create(&models.Scan{SessionID: "s1", ProductID: "2", Code: "2"}))
	require.NoError(t, repo.Create(&models.Scan{SessionID: "s2", ProductID: "3", Code: "3"}))

	scans, err := repo.ListBySession("s1")
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, "2", scans[0].ProductID)

	require.NoError(t, repo.DeleteBySession("s1"))
	scans, err = repo.ListBySession("s1")
	require.NoError(t, err)
	assert.Empty(t, scans)

	scans, err = repo.ListBySession("s2")
	require.NoError(t, err)
	assert.Len(t, scans, 1)
}
