package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// currentOffers returns the listing for the selected city and sort.
func (m Model) currentOffers() []sixcities.Offer {
	s := m.snapshot
	return m.memo.Offers(s.Offers.Offers, s.Offers.Revision, s.City.City.Name, s.Listing.Sort)
}

func (m Model) selectedOffer() (sixcities.Offer, bool) {
	offers := m.currentOffers()
	if m.selected < 0 || m.selected >= len(offers) {
		return sixcities.Offer{}, false
	}
	return offers[m.selected], true
}

func (m Model) handleOffersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextCity):
		m.switchCity(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevCity):
		m.switchCity(-1)
		return m, nil
	case key.Matches(msg, m.keys.RandomCity):
		m.selectCity(listing.RandomCity())
		return m, nil
	case key.Matches(msg, m.keys.CycleSort):
		next := m.snapshot.Listing.Sort.Next()
		m.ops.SelectSort(next)
		m.prefs.Sort = next.Key()
		m.savePrefs()
		m.selected = 0
		m.refreshSnapshot()
		m.hoverSelected()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.runOp(opFetchOffers, m.ops.FetchOffers)
	}

	offers := m.currentOffers()
	if len(offers) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(offers)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(offers) - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selected = min(m.selected+m.contentHeight()/2, len(offers)-1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selected = max(m.selected-m.contentHeight()/2, 0)
	case key.Matches(msg, m.keys.Open):
		return m.openOffer(offers[m.selected].ID)
	case key.Matches(msg, m.keys.ToggleFavorite):
		return m.toggleListedFavorite(offers[m.selected])
	default:
		return m, nil
	}
	m.hoverSelected()
	return m, nil
}

func (m *Model) switchCity(step int) {
	cities := sixcities.Cities()
	idx := slices.IndexFunc(cities, func(c sixcities.City) bool {
		return c.Name == m.snapshot.City.City.Name
	})
	idx = ((idx+step)%len(cities) + len(cities)) % len(cities)
	m.selectCity(cities[idx])
}

func (m *Model) selectCity(city sixcities.City) {
	m.ops.SelectCity(city)
	m.prefs.City = string(city.Name)
	m.savePrefs()
	m.selected = 0
	m.refreshSnapshot()
	m.hoverSelected()
}

// hoverSelected highlights the selected offer, the way a pointer resting on
// a card would.
func (m *Model) hoverSelected() {
	offer, ok := m.selectedOffer()
	if !ok {
		m.ops.Hover("")
	} else {
		m.ops.Hover(offer.ID)
	}
	m.refreshSnapshot()
}

func (m Model) openOffer(id string) (tea.Model, tea.Cmd) {
	m.view = ViewDetail
	m.detailViewport.GotoTop()
	m.updateDetailViewport()
	return m, m.runOp(opOpenOffer, func(ctx context.Context) error {
		return m.ops.OpenOffer(ctx, id)
	})
}

func (m Model) toggleListedFavorite(offer sixcities.Offer) (tea.Model, tea.Cmd) {
	if !m.requireLogin("Sign in to save places to your favorites.") {
		return m, m.form.focusCmd()
	}
	return m, m.runOp(opToggleFavorite, func(ctx context.Context) error {
		return m.ops.ToggleOfferFavorite(ctx, offer)
	})
}

func (m Model) renderOffers() string {
	styles := m.theme.Styles()
	s := m.snapshot
	city := s.City.City.Name
	offers := m.currentOffers()

	var b strings.Builder
	switch {
	case !s.Offers.Status.Settled() && len(s.Offers.Offers) == 0:
		b.WriteString(styles.InfoText.Render(m.spinner.View() + " Loading offers..."))
		return b.String()
	case s.Offers.Status == state.Failure && len(s.Offers.Offers) == 0:
		b.WriteString(styles.DangerText.Render("Could not load offers."))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Press R to try again."))
		return b.String()
	case len(offers) == 0:
		b.WriteString(styles.Text.Bold(true).Render("No places to stay available"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("We could not find any property available at the moment in %s", city)))
		return b.String()
	}

	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("%s to stay in %s", pluralize(len(offers), "place"), city)))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("Sort by "))
	b.WriteString(styles.AccentText.Render(s.Listing.Sort.String()))
	b.WriteString("\n")

	visible := max(m.contentHeight()-2, 1)
	offset := scrollOffset(m.selected, len(offers), visible)
	end := min(offset+visible, len(offers))
	for i := offset; i < end; i++ {
		b.WriteString(m.renderOfferRow(offers[i], i == m.selected, styles))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderOfferRow(o sixcities.Offer, selected bool, styles Styles) string {
	compact := m.width < LayoutCompactWidth

	fav := "  "
	if o.IsFavorite {
		fav = styles.Favorite.Render("♥") + " "
	}
	badge := ""
	if o.IsPremium {
		badge = styles.Premium.Render("Premium") + " "
	}

	price := formatPrice(o.Price) + " / night"
	rating := formatRating(o.Rating)
	kind := ""
	if m.width >= LayoutWideWidth {
		kind = "  " + styles.MutedText.Render(offerTypeLabel(o.Type))
	}

	titleWidth := m.width - 40
	if compact {
		titleWidth = m.width - 30
	}
	title := truncate(o.Title, max(titleWidth, 12))

	line := fav + badge + title + kind + "  " + styles.AccentText.Render(price) + "  " + styles.WarningText.Render(rating)
	if selected {
		return styles.Selected.Render("›") + " " + line
	}
	return "  " + line
}
