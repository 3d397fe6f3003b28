package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// renderHeader renders the logo, city tabs and account status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("six cities", styles.Logo)}

	current := m.snapshot.City.City.Name
	tabs := make([]string, 0, len(sixcities.Cities()))
	for _, c := range sixcities.Cities() {
		if c.Name == current {
			tabs = append(tabs, bg.Render(string(c.Name), styles.AccentText.Bold(true).Underline(true)))
			continue
		}
		tabs = append(tabs, bg.Render(string(c.Name), styles.MutedText))
	}
	parts = append(parts, bg.Join(tabs, " "))

	parts = append(parts, bg.Render(m.viewLabel(), styles.InfoText))
	if status, ok := m.viewStatus(); ok && status != state.Success {
		parts = append(parts, styles.StatusStyle(status.String()).Render(status.String()))
	}

	if m.busy > 0 {
		parts = append(parts, bg.Render(m.spinner.View(), styles.InfoText))
	}

	left := bg.Join(parts, "  ")
	right := m.renderAccount(styles, bg)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 2 {
		return styles.Header.Width(m.width).Render(left + sep + right)
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) renderAccount(styles Styles, bg BgStyle) string {
	u := m.snapshot.User
	switch {
	case u.Authorized():
		email := ""
		if u.User != nil {
			email = u.User.Email
		}
		favs := len(m.snapshot.Favorites.Favorites)
		out := bg.Render("●", styles.SuccessText) + bg.Space() + bg.Render(truncate(email, 32), styles.Text)
		if favs > 0 {
			out += bg.Space() + bg.Render("♥ "+strconv.Itoa(favs), styles.Favorite)
		}
		return out
	case u.Auth == state.AuthUnknown:
		return bg.Render("Checking session...", styles.FaintText)
	default:
		return bg.Render("Sign in (L)", styles.MutedText)
	}
}

func (m Model) viewLabel() string {
	switch m.view {
	case ViewDetail:
		return "Offer"
	case ViewFavorites:
		return "Favorites"
	case ViewLogs:
		return "Log"
	default:
		return "Offers"
	}
}

// viewStatus returns the loading status behind the active view.
func (m Model) viewStatus() (state.LoadingStatus, bool) {
	switch m.view {
	case ViewOffers:
		return m.snapshot.Offers.Status, true
	case ViewDetail:
		return m.snapshot.Offer.Status, true
	case ViewFavorites:
		return m.snapshot.Favorites.Status, m.snapshot.User.Authorized()
	default:
		return state.Idle, false
	}
}

// renderCommandBar renders key hints, or the latest notice when there is one.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	if m.notice != "" {
		style := styles.SuccessText
		if m.noticeErr {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).Render(style.Render(truncate(m.notice, max(m.width-4, 10))))
	}

	hints := make([]string, 0, 8)
	for _, b := range m.viewHints() {
		h := b.Help()
		hints = append(hints,
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Render(h.Key)+" "+
				styles.MutedText.Render(h.Desc))
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}
