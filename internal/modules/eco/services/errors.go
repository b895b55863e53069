package services

import "errors"

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrRecyclingPointNotFound = errors.New("recycling point not found")
	ErrConversationNotFound   = errors.New("conversation not found")
	ErrAnalysisNotFound       = errors.New("analysis not found")
	ErrCatalogEmpty           = errors.New("catalog is empty")
)
