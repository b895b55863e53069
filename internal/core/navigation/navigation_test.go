package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, PageAnalytics, ParsePage("analytics"))
	assert.Equal(t, PageLanding, ParsePage("nowhere"))
	assert.Equal(t, PageLanding, ParsePage(""))
	for _, p := range Pages {
		assert.Equal(t, p, ParsePage(string(p)))
	}
}

func TestResolve(t *testing.T) {
	founder := State{IsAuthenticated: true, Role: RoleFounder}
	client := State{IsAuthenticated: true, Role: RoleClient}
	anonymous := State{}

	tests := []struct {
		name     string
		state    State
		page     Page
		wantNav  bool
		wantChat bool
	}{
		{"anonymous landing", anonymous, PageLanding, false, false},
		{"anonymous dashboard", anonymous, PageFounderDashboard, false, false},
		{"founder landing", founder, PageLanding, false, false},
		{"founder login", founder, PageLogin, false, false},
		{"founder signup", founder, PageSignup, false, false},
		{"founder design system", founder, PageDesignSystem, false, false},
		{"founder dashboard", founder, PageFounderDashboard, true, true},
		{"founder creator", founder, PageAICreator, true, true},
		{"founder product detail", founder, PageProductDetail, true, true},
		{"founder analytics", founder, PageAnalytics, true, false},
		{"founder pricing", founder, PagePricing, true, false},
		{"client dashboard", client, PageFounderDashboard, true, false},
		{"client scanner", client, PageScanner, true, false},
		{"unknown page", founder, Page("bogus"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Resolve(tt.state, tt.page)
			assert.Equal(t, tt.wantNav, view.ShowNavigation)
			assert.Equal(t, tt.wantChat, view.ShowChatbot)
		})
	}

	assert.Equal(t, PageLanding, Resolve(founder, "bogus").Page)
}

func TestMenu(t *testing.T) {
	founder := Menu(RoleFounder)
	assert.Len(t, founder, 4)
	assert.Equal(t, PageFounderDashboard, founder[0].Page)

	client := Menu(RoleClient)
	assert.Len(t, client, 4)
	assert.Equal(t, PageScanner, client[0].Page)

	assert.Equal(t, client, Menu(RoleNone))
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, PageFounderDashboard, RoleFounder.Home())
	assert.Equal(t, PageScanner, RoleClient.Home())
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"founder", "client", ""} {
		_, ok := ParseRole(raw)
		assert.True(t, ok, raw)
	}
	_, ok := ParseRole("admin")
	assert.False(t, ok)
}
