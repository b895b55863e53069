package services

import (
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendMaterials(t *testing.T) {
	tests := []struct {
		material string
		want     []string
	}{
		{material: "rPET", want: []string{"rPET (Recycled PET)", "Bamboo Fiber Composite", "Tritan (BPA-free)"}},
		{material: "bamboo", want: []string{"Bamboo Fiber Composite"}},
		{material: "tritan", want: []string{"Tritan (BPA-free)"}},
		{material: "glass", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.material, func(t *testing.T) {
			names := []string{}
			for _, m := range recommendMaterials(tt.material) {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestWizardServiceCompletesIntoDraftProduct(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWizardService(wizard.NewStore(), env.productRepo)

	material := "bamboo"
	_, err := svc.UpdateForm("s1", wizard.FormUpdate{Material: &material})
	require.NoError(t, err)
	svc.ApplySuggestion("s1", wizard.Suggestion{Capacity: 750})

	for i := 1; i < len(wizard.Steps); i++ {
		state, err := svc.Next("s1")
		require.NoError(t, err)
		assert.False(t, state.Completed)
	}

	state, err := svc.Next("s1")
	require.NoError(t, err)
	assert.True(t, state.Completed)
	assert.Equal(t, navigation.PageFounderDashboard, state.NextPage)
	assert.Equal(t, 0, state.Draft.Step)
	require.NotNil(t, state.Product)

	product, err := NewProductService(env.productRepo).GetProduct(state.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "EcoBottle Pro 500ml", product.Name)
	assert.Equal(t, models.StatusDraft, product.Status)
	assert.Equal(t, models.EcoScoreA, product.EcoScore)
	assert.Equal(t, 98, product.Recyclability)
	assert.Equal(t, 750, *product.Capacity)
	assert.Equal(t, 220.0, product.GetDimensions().Height)

	all, err := env.productRepo.List()
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, product.ID, all[5].ID, "new products go to the end of the catalog")

	client, err := NewProductService(env.productRepo).ClientCatalog("EcoBottle")
	require.NoError(t, err)
	assert.Len(t, client.Products, 1, "the created draft stays out of the client catalog")
}

func TestWizardServiceBackAndReset(t *testing.T) {
	svc := NewWizardService(wizard.NewStore(), newTestEnv(t).productRepo)

	_, err := svc.Back("s1")
	assert.ErrorIs(t, err, wizard.ErrStepOutOfRange)

	_, err = svc.Next("s1")
	require.NoError(t, err)
	state := svc.Reset("s1")
	assert.Equal(t, 0, state.Draft.Step)
	assert.Len(t, state.Steps, 6)

	assert.Len(t, svc.MaterialRecommendations("s1"), 3)
}
