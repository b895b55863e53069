// Package navigation resolves which page a session is on and what chrome
// (sidebar, assistant chat) the UI shows around it.
package navigation

// Page identifies a screen of the app
type Page string

const (
	PageLanding          Page = "landing"
	PageLogin            Page = "login"
	PageSignup           Page = "signup"
	PagePricing          Page = "pricing"
	PageDesignSystem     Page = "design-system"
	PageFounderDashboard Page = "founder-dashboard"
	PageAICreator        Page = "ai-creator"
	PageProductDetail    Page = "product-detail"
	PageStoreManagement  Page = "store-management"
	PageAnalytics        Page = "analytics"
	PageScanner          Page = "scanner"
	PageClientCatalog    Page = "client-catalog"
	PageSimilarProducts  Page = "similar-products"
	PageRecyclingMap     Page = "recycling-map"
	PageClientProfile    Page = "client-profile"
)

// Pages lists every known page
var Pages = []Page{
	PageLanding, PageLogin, PageSignup, PagePricing, PageDesignSystem,
	PageFounderDashboard, PageAICreator, PageProductDetail, PageStoreManagement, PageAnalytics,
	PageScanner, PageClientCatalog, PageSimilarProducts, PageRecyclingMap, PageClientProfile,
}

var knownPages = func() map[Page]bool {
	m := make(map[Page]bool, len(Pages))
	for _, p := range Pages {
		m[p] = true
	}
	return m
}()

// ParsePage maps unknown names to the landing page
func ParsePage(raw string) Page {
	if p := Page(raw); knownPages[p] {
		return p
	}
	return PageLanding
}

// UsesSelectedProduct reports whether the page renders the selected product
func (p Page) UsesSelectedProduct() bool {
	return p == PageProductDetail || p == PageSimilarProducts
}

// Role of the signed-in user
type Role string

const (
	RoleNone    Role = ""
	RoleFounder Role = "founder"
	RoleClient  Role = "client"
)

// ParseRole accepts founder, client or empty
func ParseRole(raw string) (Role, bool) {
	switch r := Role(raw); r {
	case RoleNone, RoleFounder, RoleClient:
		return r, true
	}
	return "", false
}

// Home is the page a role lands on after signing in
func (r Role) Home() Page {
	if r == RoleFounder {
		return PageFounderDashboard
	}
	return PageScanner
}

// State is the part of a session navigation depends on
type State struct {
	IsAuthenticated bool
	Role            Role
}

// View is the resolved screen for a page
type View struct {
	Page           Page `json:"page"`
	ShowNavigation bool `json:"show_navigation"`
	ShowChatbot    bool `json:"show_chatbot"`
}

var chromeless = map[Page]bool{
	PageLanding:      true,
	PageLogin:        true,
	PageSignup:       true,
	PageDesignSystem: true,
}

var chatbotPages = map[Page]bool{
	PageFounderDashboard: true,
	PageAICreator:        true,
	PageProductDetail:    true,
}

// Resolve decides sidebar and chatbot visibility. Pages are not access
// checked here; an unauthenticated session can still be on any page.
func Resolve(state State, page Page) View {
	page = ParsePage(string(page))
	return View{
		Page:           page,
		ShowNavigation: state.IsAuthenticated && !chromeless[page],
		ShowChatbot:    state.IsAuthenticated && state.Role == RoleFounder && chatbotPages[page],
	}
}

// MenuItem is a sidebar link
type MenuItem struct {
	Name string `json:"name"`
	Page Page   `json:"page"`
	Icon string `json:"icon"`
}

// Menu returns the sidebar links. Anyone who is not a founder gets the
// client links.
func Menu(role Role) []MenuItem {
	if role == RoleFounder {
		return []MenuItem{
			{Name: "Dashboard", Page: PageFounderDashboard, Icon: "layout-dashboard"},
			{Name: "AI Creator", Page: PageAICreator, Icon: "sparkles"},
			{Name: "Store", Page: PageStoreManagement, Icon: "store"},
			{Name: "Analytics", Page: PageAnalytics, Icon: "bar-chart"},
		}
	}
	return []MenuItem{
		{Name: "Scanner", Page: PageScanner, Icon: "scan"},
		{Name: "Catalog", Page: PageClientCatalog, Icon: "package"},
		{Name: "Map", Page: PageRecyclingMap, Icon: "map-pin"},
		{Name: "Profile", Page: PageClientProfile, Icon: "user"},
	}
}
