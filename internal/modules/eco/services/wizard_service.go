package services

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// defaultMaterial is recommended alongside every other material option
const defaultMaterial = "rPET"

// WizardState is the creator page payload
type WizardState struct {
	Draft     wizard.Draft    `json:"draft"`
	Steps     []wizard.Step   `json:"steps"`
	Completed bool            `json:"completed"`
	Product   *models.Product `json:"product,omitempty"`
	NextPage  navigation.Page `json:"next_page,omitempty"`
}

type WizardService struct {
	store       *wizard.Store
	productRepo repositories.ProductRepo
}

func NewWizardService(store *wizard.Store, productRepo repositories.ProductRepo) *WizardService {
	return &WizardService{store: store, productRepo: productRepo}
}

func (s *WizardService) state(d wizard.Draft) *WizardState {
	return &WizardState{Draft: d, Steps: wizard.Steps}
}

// Get returns the session's draft
func (s *WizardService) Get(sessionID string) *WizardState {
	return s.state(s.store.Get(sessionID))
}

// Next advances the draft. On the publish step it saves the form as a draft
// product and points the founder back to the dashboard.
func (s *WizardService) Next(sessionID string) (*WizardState, error) {
	var created *models.Product
	d, completed, err := s.store.Next(sessionID, func(form wizard.Form) error {
		product := s.productFromForm(form)
		if err := s.productRepo.Create(product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	state := s.state(d)
	if completed {
		log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created from wizard")
		state.Completed = true
		state.Product = created
		state.NextPage = navigation.PageFounderDashboard
	}
	return state, nil
}

// Back returns to the previous step
func (s *WizardService) Back(sessionID string) (*WizardState, error) {
	d, err := s.store.Back(sessionID)
	if err != nil {
		return nil, err
	}
	return s.state(d), nil
}

// ApplySuggestion copies assistant-proposed specs into the form
func (s *WizardService) ApplySuggestion(sessionID string, suggestion wizard.Suggestion) *WizardState {
	return s.state(s.store.ApplySuggestion(sessionID, suggestion))
}

// UpdateForm edits the form
func (s *WizardService) UpdateForm(sessionID string, update wizard.FormUpdate) (*WizardState, error) {
	d, err := s.store.UpdateForm(sessionID, update)
	if err != nil {
		return nil, err
	}
	return s.state(d), nil
}

// Reset discards the session's draft and returns a fresh one
func (s *WizardService) Reset(sessionID string) *WizardState {
	s.store.Reset(sessionID)
	return s.Get(sessionID)
}

// Forget drops the session's draft without recreating it
func (s *WizardService) Forget(sessionID string) {
	s.store.Reset(sessionID)
}

// MaterialRecommendations lists the assistant's material options that match
// the draft's material. The default material matches every option.
func (s *WizardService) MaterialRecommendations(sessionID string) []models.MaterialOption {
	return recommendMaterials(s.store.Get(sessionID).Form.Material)
}

func recommendMaterials(material string) []models.MaterialOption {
	needle := strings.ToLower(material)
	options := seed.Suggestions().Materials

	matches := make([]models.MaterialOption, 0, len(options))
	for _, m := range options {
		if material == defaultMaterial || strings.Contains(strings.ToLower(m.Name), needle) {
			matches = append(matches, m)
		}
	}
	return matches
}

// productFromForm grades the new product by its best matching material
// option. Unknown materials get a middle grade.
func (s *WizardService) productFromForm(form wizard.Form) *models.Product {
	score, recyclability, sustainable := models.EcoScoreC, 50, false
	if matches := recommendMaterials(form.Material); len(matches) > 0 {
		score, recyclability, sustainable = matches[0].EcoScore, matches[0].Recyclability, true
	}

	product := &models.Product{
		Name:        form.Name,
		Description: form.Description,
		EcoScore:    score,
		Materials: datatypes.JSONSlice[models.Material]{
			{Name: form.Material, Percentage: 100, Recyclable: true, Sustainable: sustainable},
		},
		Recyclability: recyclability,
		Dimensions: datatypes.NewJSONType(&models.Dimensions{
			Height: form.Height,
			Width:  form.Width,
			Depth:  form.Depth,
		}),
		Status: models.StatusDraft,
	}
	if form.Capacity > 0 {
		product.Capacity = models.IntPtr(form.Capacity)
	}
	return product
}
