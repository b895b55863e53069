package models

// PlanFeature is one line of a pricing plan
type PlanFeature struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// PricingPlan is a subscription tier on the pricing page
type PricingPlan struct {
	Name        string        `json:"name"`
	Price       string        `json:"price"` // USD per month
	Description string        `json:"description"`
	Features    []PlanFeature `json:"features"`
	CTA         string        `json:"cta"`
	Popular     bool          `json:"popular"`
}
