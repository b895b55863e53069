package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/session"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/wizard"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/database"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app *fiber.App
	svc *Services
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := database.NewDB("handlertest_"+uuid.NewString(), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, seed.Seed(db.GORM))

	productRepo := repositories.NewProductRepo(db.GORM)
	scanRepo := repositories.NewScanRepo(db.GORM)
	convRepo := repositories.NewConversationRepo(db.GORM)
	assistantService := assistant.NewService(0)
	scanner := services.NewScannerService(productRepo, scanRepo)

	svc := &Services{
		Sessions:      session.NewStore(),
		Assistant:     assistantService,
		Transcripts:   assistant.NewTranscripts(assistantService),
		Products:      services.NewProductService(productRepo),
		Export:        services.NewExportService(productRepo, export.NewService(), "http://test.local"),
		Scanner:       scanner,
		Recycling:     services.NewRecyclingService(repositories.NewRecyclingPointRepo(db.GORM)),
		Conversations: services.NewConversationService(convRepo),
		Wizard:        services.NewWizardService(wizard.NewStore(), productRepo),
		Dashboard:     services.NewDashboardService(productRepo, convRepo, analytics.NewAggregator(db.GORM)),
		Profile:       services.NewProfileService(productRepo, scanner),
	}

	app := fiber.New()
	RegisterRoutes(app, svc)
	return &testApp{app: app, svc: svc}
}

func (a *testApp) do(t *testing.T, method, path, sessionID string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(session.Header, sessionID)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (a *testApp) newSession(t *testing.T) string {
	t.Helper()
	resp := a.do(t, "POST", "/sessions", "", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out SessionResponse
	decode(t, resp, &out)
	return out.Session.ID
}

func (a *testApp) signIn(t *testing.T, role string) string {
	t.Helper()
	id := a.newSession(t)
	resp := a.do(t, "POST", "/auth/signup", id, map[string]string{"role": role, "name": "Jane", "email": "jane@example.com"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return id
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	resp := a.do(t, "GET", "/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	decode(t, resp, &out)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "scripted", out["provider"])
}

func TestSessionLifecycle(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, "POST", "/sessions", "", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created SessionResponse
	decode(t, resp, &created)
	id := created.Session.ID
	assert.Equal(t, "1", created.Session.SelectedProductID)
	assert.Equal(t, "landing", string(created.View.Page))
	assert.False(t, created.View.ShowNavigation)

	resp = a.do(t, "PATCH", "/sessions/current/theme", id, nil)
	var themed SessionResponse
	decode(t, resp, &themed)
	assert.Equal(t, session.ThemeDark, themed.Session.Theme)

	resp = a.do(t, "PUT", "/sessions/current/locale", id, LocaleRequest{Locale: "ar"})
	var localized SessionResponse
	decode(t, resp, &localized)
	assert.Equal(t, session.RTL, localized.Session.Direction)

	resp = a.do(t, "PUT", "/sessions/current/locale", id, LocaleRequest{Locale: "de"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = a.do(t, "POST", "/auth/signup", id, SignupRequest{Role: "founder"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var signedIn AuthResponse
	decode(t, resp, &signedIn)
	assert.Equal(t, "founder-dashboard", string(signedIn.Home))
	assert.True(t, signedIn.View.ShowNavigation)
	assert.True(t, signedIn.View.ShowChatbot)

	resp = a.do(t, "POST", "/auth/logout", id, nil)
	var signedOut SessionResponse
	decode(t, resp, &signedOut)
	assert.False(t, signedOut.Session.IsAuthenticated)
	assert.Equal(t, "landing", string(signedOut.Session.CurrentPage))

	resp = a.do(t, "DELETE", "/sessions/current", id, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = a.do(t, "GET", "/sessions/current", id, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignupRequiresRole(t *testing.T) {
	a := newTestApp(t)
	id := a.newSession(t)

	for _, role := range []string{"", "admin"} {
		resp := a.do(t, "POST", "/auth/signup", id, SignupRequest{Role: role})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, role)
	}

	resp := a.do(t, "POST", "/auth/login", id, LoginRequest{Email: "a@b.c"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out AuthResponse
	decode(t, resp, &out)
	assert.Equal(t, "scanner", string(out.Home), "login without a role signs in as client")
}

func TestNavigateSelectsExistingProducts(t *testing.T) {
	a := newTestApp(t)
	id := a.signIn(t, "client")

	resp := a.do(t, "POST", "/sessions/current/navigate", id, NavigateRequest{Page: "product-detail", ProductID: "3"})
	var out SessionResponse
	decode(t, resp, &out)
	assert.Equal(t, "product-detail", string(out.Session.CurrentPage))
	assert.Equal(t, "3", out.Session.SelectedProductID)

	product, err := a.svc.Products.GetProduct("3")
	require.NoError(t, err)
	assert.Equal(t, 2104, *product.Views)

	resp = a.do(t, "POST", "/sessions/current/navigate", id, NavigateRequest{Page: "nowhere", ProductID: "99"})
	decode(t, resp, &out)
	assert.Equal(t, "landing", string(out.Session.CurrentPage))
	assert.Equal(t, "3", out.Session.SelectedProductID, "unknown products keep the selection")
}

func TestMenuFollowsRole(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		role  string
		first string
	}{
		{role: "founder", first: "founder-dashboard"},
		{role: "client", first: "scanner"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			resp := a.do(t, "GET", "/navigation/menu", a.signIn(t, tt.role), nil)
			var items []map[string]string
			decode(t, resp, &items)
			require.NotEmpty(t, items)
			assert.Equal(t, tt.first, items[0]["page"])
		})
	}
}

func TestProductRoutes(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name  string
		path  string
		total int
	}{
		{name: "all", path: "/products", total: 5},
		{name: "grade A", path: "/products?eco_score=a", total: 3},
		{name: "published only", path: "/products?published_only=true", total: 4},
		{name: "material", path: "/products?material=bamboo", total: 2},
		{name: "client catalog", path: "/catalog?query=bottle", total: 2},
		{name: "grade all", path: "/products?eco_score=all", total: 5},
		{name: "material all", path: "/products?material=All", total: 5},
		{name: "similar includes drafts", path: "/products/1/similar", total: 4},
		{name: "similar published only", path: "/products/1/similar?published_only=true", total: 3},
		{name: "similar grade all", path: "/products/1/similar?eco_score=all&published_only=false", total: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.do(t, "GET", tt.path, "", nil)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			var out struct {
				Total int `json:"total"`
			}
			decode(t, resp, &out)
			assert.Equal(t, tt.total, out.Total)
		})
	}

	resp := a.do(t, "GET", "/products?eco_score=Z", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = a.do(t, "GET", "/products/404", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = a.do(t, "GET", "/products/1/qr?size=128", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestFounderOnlyRoutes(t *testing.T) {
	a := newTestApp(t)
	founder := a.signIn(t, "founder")
	client := a.signIn(t, "client")

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/store"},
		{"GET", "/wizard"},
		{"GET", "/dashboard/founder"},
		{"GET", "/analytics"},
		{"GET", "/products/1/export"},
		{"GET", "/products/export.csv"},
	}
	for _, p := range paths {
		t.Run(p.path, func(t *testing.T) {
			assert.Equal(t, fiber.StatusForbidden, a.do(t, p.method, p.path, client, nil).StatusCode)
			assert.Equal(t, fiber.StatusUnauthorized, a.do(t, p.method, p.path, "", nil).StatusCode)
			assert.Equal(t, fiber.StatusOK, a.do(t, p.method, p.path, founder, nil).StatusCode)
		})
	}

	resp := a.do(t, "PATCH", "/products/5/publish", founder, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var product map[string]interface{}
	decode(t, resp, &product)
	assert.Equal(t, "published", product["status"])
}

func TestExportDownloads(t *testing.T) {
	a := newTestApp(t)
	founder := a.signIn(t, "founder")

	resp := a.do(t, "GET", "/products/1/export?format=excel", founder, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ecobottle-pro-500ml-spec.xlsx")

	resp = a.do(t, "GET", "/products/1/export?format=docx", founder, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = a.do(t, "GET", "/products/export.csv", founder, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "id,name,"))
}

func TestScannerAndProfile(t *testing.T) {
	a := newTestApp(t)
	id := a.signIn(t, "client")

	resp := a.do(t, "POST", "/scanner/scan", id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var result map[string]interface{}
	decode(t, resp, &result)
	assert.Equal(t, "1", result["product"].(map[string]interface{})["id"])

	resp = a.do(t, "POST", "/scanner/scan", id, map[string]string{"code": "ecoscan:product:nope"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = a.do(t, "GET", "/profile/client", id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var profile struct {
		Stats struct {
			TotalScans int `json:"total_scans"`
		} `json:"stats"`
		ScanHistory []map[string]interface{} `json:"scan_history"`
	}
	decode(t, resp, &profile)
	assert.Equal(t, 48, profile.Stats.TotalScans)
	assert.Len(t, profile.ScanHistory, 4)

	a.do(t, "DELETE", "/sessions/current", id, nil)
	history, err := a.svc.Scanner.History(id)
	require.NoError(t, err)
	assert.Empty(t, history, "ending the session drops its scans")
}

func TestRecyclingRoutes(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name   string
		path   string
		status int
		first  string
	}{
		{name: "all", path: "/recycling-points", status: fiber.StatusOK, first: "r1"},
		{name: "buyback", path: "/recycling-points?type=buyback", status: fiber.StatusOK, first: "r3"},
		{name: "nearest", path: "/recycling-points?lat=40.7289&lng=-73.9750", status: fiber.StatusOK, first: "r4"},
		{name: "bad type", path: "/recycling-points?type=landfill", status: fiber.StatusBadRequest},
		{name: "lat without lng", path: "/recycling-points?lat=40.7", status: fiber.StatusBadRequest},
		{name: "not a number", path: "/recycling-points?lat=north&lng=1", status: fiber.StatusBadRequest},
		{name: "NaN latitude", path: "/recycling-points?lat=NaN&lng=2.35", status: fiber.StatusBadRequest},
		{name: "NaN longitude", path: "/recycling-points?lat=48.85&lng=nan", status: fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.do(t, "GET", tt.path, "", nil)
			require.Equal(t, tt.status, resp.StatusCode)
			if tt.first == "" {
				return
			}
			var points []map[string]interface{}
			decode(t, resp, &points)
			require.NotEmpty(t, points)
			assert.Equal(t, tt.first, points[0]["id"])
		})
	}

	assert.Equal(t, fiber.StatusNotFound, a.do(t, "GET", "/recycling-points/r9", "", nil).StatusCode)
}

func TestAssistantRoutes(t *testing.T) {
	a := newTestApp(t)
	id := a.newSession(t)

	resp := a.do(t, "GET", "/assistant/messages", id, nil)
	var transcript []assistant.Message
	decode(t, resp, &transcript)
	require.Len(t, transcript, 1)
	assert.Equal(t, assistant.Greeting, transcript[0].Content)

	resp = a.do(t, "POST", "/assistant/messages", id, MessageRequest{Content: "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = a.do(t, "POST", "/assistant/messages", id, MessageRequest{Content: "I want a water bottle"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var exchange ExchangeResponse
	decode(t, resp, &exchange)
	assert.True(t, strings.HasPrefix(exchange.Assistant.Content, "Great! For a sustainable water bottle"))
	require.NotNil(t, exchange.Assistant.Suggestion)
	assert.Equal(t, 500, exchange.Assistant.Suggestion.Capacity)

	resp = a.do(t, "GET", "/assistant/messages", id, nil)
	decode(t, resp, &transcript)
	assert.Len(t, transcript, 3)

	resp = a.do(t, "POST", "/assistant/respond", "", MessageRequest{Content: "hello"})
	var reply assistant.Reply
	decode(t, resp, &reply)
	assert.Nil(t, reply.Suggestion)

	resp = a.do(t, "GET", "/conversations?status=archived", "", nil)
	var convs []map[string]interface{}
	decode(t, resp, &convs)
	require.Len(t, convs, 1)
	assert.Equal(t, "conv-3", convs[0]["id"])

	assert.Equal(t, fiber.StatusBadRequest, a.do(t, "GET", "/conversations?status=open", "", nil).StatusCode)
	assert.Equal(t, fiber.StatusNotFound, a.do(t, "GET", "/ai/analyses/4", "", nil).StatusCode)
	assert.Equal(t, fiber.StatusOK, a.do(t, "GET", "/ai/suggestions", "", nil).StatusCode)
}

func TestWizardRoutes(t *testing.T) {
	a := newTestApp(t)
	id := a.signIn(t, "founder")

	assert.Equal(t, fiber.StatusConflict, a.do(t, "POST", "/wizard/back", id, nil).StatusCode)

	resp := a.do(t, "POST", "/wizard/apply-suggestion", id, ApplySuggestionRequest{
		Capacity:   750,
		Dimensions: &assistant.Dimensions{Height: 180},
	})
	var state services.WizardState
	decode(t, resp, &state)
	assert.Equal(t, 750, state.Draft.Form.Capacity)
	assert.Equal(t, 180.0, state.Draft.Form.Height)
	assert.Equal(t, 70.0, state.Draft.Form.Width)

	assert.Equal(t, fiber.StatusBadRequest, a.do(t, "PUT", "/wizard/form", id, map[string]string{"name": " "}).StatusCode)

	for i := 1; i < len(wizard.Steps); i++ {
		require.Equal(t, fiber.StatusOK, a.do(t, "POST", "/wizard/next", id, nil).StatusCode)
	}
	resp = a.do(t, "POST", "/wizard/next", id, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	decode(t, resp, &state)
	require.NotNil(t, state.Product)
	assert.Equal(t, "draft", string(state.Product.Status))

	resp = a.do(t, "GET", "/store", id, nil)
	var overview struct {
		Drafts []map[string]interface{} `json:"drafts"`
	}
	decode(t, resp, &overview)
	assert.Len(t, overview.Drafts, 2)
}

func TestAnalyticsPeriod(t *testing.T) {
	a := newTestApp(t)
	id := a.signIn(t, "founder")

	resp := a.do(t, "GET", "/analytics?period=90d", id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report services.AnalyticsReport
	decode(t, resp, &report)
	assert.Equal(t, []string{"Apr", "May", "Jun"}, report.Activity.Labels)

	assert.Equal(t, fiber.StatusBadRequest, a.do(t, "GET", "/analytics?period=2w", id, nil).StatusCode)
	assert.Equal(t, fiber.StatusOK, a.do(t, "GET", "/pricing", "", nil).StatusCode)
}
