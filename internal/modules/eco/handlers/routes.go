package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/utils"
	"github.com/gofiber/fiber/v2"
)

// Services is everything the HTTP layer talks to
type Services struct {
	Sessions      *session.Store
	Assistant     *assistant.Service
	Transcripts   *assistant.Transcripts
	Products      *services.ProductService
	Export        *services.ExportService
	Scanner       *services.ScannerService
	Recycling     *services.RecyclingService
	Conversations *services.ConversationService
	Wizard        *services.WizardService
	Dashboard     *services.DashboardService
	Profile       *services.ProfileService
}

// ForgetSession drops the per-session state kept outside the session store
func (s *Services) ForgetSession(id string) {
	s.Transcripts.Forget(id)
	s.Wizard.Forget(id)
	if err := s.Scanner.Forget(id); err != nil {
		utils.LogError("failed to drop scan history", err, map[string]interface{}{"session_id": id})
	}
}

// RegisterRoutes mounts the API on app and ties per-session state to the
// session lifecycle.
func RegisterRoutes(app *fiber.App, svc *Services) {
	svc.Sessions.OnExpire(svc.ForgetSession)

	healthHandler := NewHealthHandler(svc.Assistant, svc.Sessions)
	sessionHandler := NewSessionHandler(svc.Sessions, svc.Products)
	authHandler := NewAuthHandler(svc.Sessions)
	productHandler := NewProductHandler(svc.Products, svc.Export)
	scannerHandler := NewScannerHandler(svc.Scanner)
	recyclingHandler := NewRecyclingHandler(svc.Recycling)
	assistantHandler := NewAssistantHandler(svc.Transcripts, svc.Assistant)
	conversationHandler := NewConversationHandler(svc.Conversations)
	wizardHandler := NewWizardHandler(svc.Wizard)
	dashboardHandler := NewDashboardHandler(svc.Dashboard, svc.Profile)

	withSession := session.Middleware(svc.Sessions)
	founderOnly := session.RequireRole(navigation.RoleFounder)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Session routes
	app.Post("/sessions", sessionHandler.CreateSession)
	current := app.Group("/sessions/current", withSession)
	current.Get("/", sessionHandler.GetSession)
	current.Patch("/theme", sessionHandler.ToggleTheme)
	current.Put("/locale", sessionHandler.SetLocale)
	current.Put("/role", sessionHandler.SetRole)
	current.Post("/navigate", sessionHandler.Navigate)
	current.Delete("/", sessionHandler.DeleteSession)
	app.Get("/navigation/menu", withSession, sessionHandler.GetMenu)

	// Auth routes
	auth := app.Group("/auth", withSession)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// Product routes
	app.Get("/products", productHandler.ListProducts)
	app.Get("/products/export.csv", withSession, founderOnly, productHandler.ExportCatalog)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Patch("/products/:id/publish", withSession, founderOnly, productHandler.TogglePublish)
	app.Get("/products/:id/similar", productHandler.SimilarProducts)
	app.Get("/products/:id/qr", productHandler.GetQRCode)
	app.Get("/products/:id/export", withSession, founderOnly, productHandler.ExportSpecSheet)
	app.Get("/catalog", productHandler.ClientCatalog)
	app.Get("/store", withSession, founderOnly, productHandler.StoreOverview)

	// Scanner route
	app.Post("/scanner/scan", withSession, scannerHandler.Scan)

	// Recycling routes
	app.Get("/recycling-points", recyclingHandler.ListPoints)
	app.Get("/recycling-points/:id", recyclingHandler.GetPoint)

	// Assistant routes
	app.Get("/assistant/messages", withSession, assistantHandler.GetMessages)
	app.Post("/assistant/messages", withSession, assistantHandler.SendMessage)
	app.Post("/assistant/respond", assistantHandler.Respond)
	app.Get("/conversations", conversationHandler.ListConversations)
	app.Get("/conversations/:id", conversationHandler.GetConversation)
	app.Get("/ai/analyses/:productId", conversationHandler.GetAnalysis)
	app.Get("/ai/suggestions", conversationHandler.GetSuggestions)

	// Wizard routes
	wiz := app.Group("/wizard", withSession, founderOnly)
	wiz.Get("/", wizardHandler.GetWizard)
	wiz.Post("/next", wizardHandler.Next)
	wiz.Post("/back", wizardHandler.Back)
	wiz.Post("/apply-suggestion", wizardHandler.ApplySuggestion)
	wiz.Put("/form", wizardHandler.UpdateForm)
	wiz.Get("/materials", wizardHandler.GetMaterials)
	wiz.Delete("/", wizardHandler.Reset)

	// Dashboard routes
	app.Get("/dashboard/founder", withSession, founderOnly, dashboardHandler.GetFounderDashboard)
	app.Get("/analytics", withSession, founderOnly, dashboardHandler.GetAnalytics)
	app.Get("/profile/client", withSession, dashboardHandler.GetClientProfile)
	app.Get("/pricing", dashboardHandler.GetPricing)
}
