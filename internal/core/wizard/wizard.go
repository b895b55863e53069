// Package wizard keeps the per-session state of the product creator: the
// current step and the product form being filled in.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrStepOutOfRange = errors.New("wizard step out of range")
	ErrInvalidForm    = errors.New("invalid wizard form")
)

// Step is one page of the creator
type Step struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Steps in the order the creator walks them
var Steps = []Step{
	{ID: "idea", Name: "Idea"},
	{ID: "dimensions", Name: "Dimensions"},
	{ID: "materials", Name: "Materials"},
	{ID: "manufacturing", Name: "Manufacturing"},
	{ID: "gallery", Name: "Description & Gallery"},
	{ID: "publish", Name: "Publish"},
}

// Form is the product specification being drafted. Lengths are in mm,
// capacity in ml.
type Form struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	Material    string  `json:"material"`
	Thickness   float64 `json:"thickness"`
}

// DefaultForm is the demo bottle every new draft starts from
func DefaultForm() Form {
	return Form{
		Name:        "EcoBottle Pro 500ml",
		Description: "Premium reusable water bottle made from 100% recycled ocean plastic. Features leak-proof design, ergonomic grip, and sustainable materials. Perfect for daily hydration with style and environmental consciousness.",
		Capacity:    500,
		Height:      220,
		Width:       70,
		Depth:       70,
		Material:    "rPET",
		Thickness:   2.5,
	}
}

// Draft is a session's progress through the creator
type Draft struct {
	Step      int       `json:"step"`
	Form      Form      `json:"form"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentStep returns the step the draft is on
func (d Draft) CurrentStep() Step {
	return Steps[d.Step]
}

// IsLastStep reports whether Next would complete the draft
func (d Draft) IsLastStep() bool {
	return d.Step == len(Steps)-1
}

// Suggestion carries assistant-proposed specs. Zero values leave the form
// unchanged.
type Suggestion struct {
	Capacity int     `json:"capacity"`
	Height   float64 `json:"height"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
}

func (f *Form) apply(s Suggestion) {
	if s.Capacity != 0 {
		f.Capacity = s.Capacity
	}
	if s.Height != 0 {
		f.Height = s.Height
	}
	if s.Width != 0 {
		f.Width = s.Width
	}
	if s.Depth != 0 {
		f.Depth = s.Depth
	}
}

// FormUpdate is a partial edit; nil fields are left as they are
type FormUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Capacity    *int     `json:"capacity"`
	Height      *float64 `json:"height"`
	Width       *float64 `json:"width"`
	Depth       *float64 `json:"depth"`
	Material    *string  `json:"material"`
	Thickness   *float64 `json:"thickness"`
}

func (f Form) update(u FormUpdate) (Form, error) {
	if u.Name != nil {
		f.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		f.Description = *u.Description
	}
	if u.Capacity != nil {
		f.Capacity = *u.Capacity
	}
	if u.Height != nil {
		f.Height = *u.Height
	}
	if u.Width != nil {
		f.Width = *u.Width
	}
	if u.Depth != nil {
		f.Depth = *u.Depth
	}
	if u.Material != nil {
		f.Material = strings.TrimSpace(*u.Material)
	}
	if u.Thickness != nil {
		f.Thickness = *u.Thickness
	}
	return f, f.validate()
}

func (f Form) validate() error {
	switch {
	case f.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	case f.Material == "":
		return fmt.Errorf("%w: material is required", ErrInvalidForm)
	case f.Capacity < 0, f.Height < 0, f.Width < 0, f.Depth < 0, f.Thickness < 0:
		return fmt.Errorf("%w: sizes must not be negative", ErrInvalidForm)
	}
	return nil
}
