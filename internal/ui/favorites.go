package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// favoriteGroups groups the loaded favorites and returns them flattened in
// display order alongside.
func (m Model) favoriteGroups() ([]listing.CityGroup, []sixcities.Offer) {
	groups := listing.GroupByCity(m.snapshot.Favorites.Favorites)
	var flat []sixcities.Offer
	for _, g := range groups {
		flat = append(flat, g.Offers...)
	}
	return groups, flat
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.snapshot.User.Authorized() {
		return m, nil
	}
	if key.Matches(msg, m.keys.Refresh) {
		return m, m.runOp(opFetchFavorites, m.ops.FetchFavorites)
	}

	_, flat := m.favoriteGroups()
	if len(flat) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.favSelected < len(flat)-1 {
			m.favSelected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.favSelected > 0 {
			m.favSelected--
		}
	case key.Matches(msg, m.keys.Top):
		m.favSelected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.favSelected = len(flat) - 1
	case key.Matches(msg, m.keys.Open):
		return m.openOffer(flat[m.favSelected].ID)
	case key.Matches(msg, m.keys.ToggleFavorite):
		offer := flat[m.favSelected]
		return m, m.runOp(opToggleFavorite, func(ctx context.Context) error {
			return m.ops.ToggleOfferFavorite(ctx, offer)
		})
	}
	return m, nil
}

func (m Model) renderFavorites() string {
	styles := m.theme.Styles()
	s := m.snapshot

	if !s.User.Authorized() {
		return styles.MutedText.Render("Sign in to see your saved places. Press L to sign in.")
	}
	groups, flat := m.favoriteGroups()
	switch {
	case s.Favorites.Status == state.Pending && len(flat) == 0:
		return styles.InfoText.Render(m.spinner.View() + " Loading favorites...")
	case s.Favorites.Status == state.Failure && len(flat) == 0:
		return styles.DangerText.Render("Could not load favorites.") + "\n" +
			styles.MutedText.Render("Press R to try again.")
	case len(flat) == 0:
		return styles.Text.Bold(true).Render("Nothing yet saved.") + "\n" +
			styles.MutedText.Render("Save properties to narrow down search or plan your future trips.")
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Saved listing"))
	b.WriteString("\n")

	idx := 0
	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(string(g.City)))
		b.WriteString("\n")
		for _, o := range g.Offers {
			b.WriteString(m.renderOfferRow(o, idx == m.favSelected, styles))
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}
