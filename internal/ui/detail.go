package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.snapshot.Offer.Offer

	switch {
	case key.Matches(msg, m.keys.ToggleFavorite):
		if current == nil {
			return m, nil
		}
		if !m.requireLogin("Sign in to save places to your favorites.") {
			return m, m.form.focusCmd()
		}
		return m, m.runOp(opToggleFavorite, m.ops.ToggleCurrentFavorite)

	case key.Matches(msg, m.keys.WriteReview):
		if current == nil {
			return m, nil
		}
		if !m.snapshot.User.Authorized() {
			m.setNotice("Sign in to leave a review", true)
			return m, nil
		}
		m.form = newReviewForm(current.ID)
		return m, m.form.focusCmd()

	case key.Matches(msg, m.keys.Refresh):
		if id := m.snapshot.Offer.ActiveID; id != "" {
			return m.openOffer(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateDetailViewport() {
	if !m.ready || m.view != ViewDetail {
		return
	}
	m.detailViewport.SetContent(m.renderDetail())
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	s := m.snapshot
	offer := s.Offer.Offer

	if offer == nil {
		switch s.Offer.Status {
		case state.Failure:
			return styles.DangerText.Render("This place no longer exists.") + "\n" +
				styles.MutedText.Render("Press esc to go back to the listing.")
		default:
			return styles.InfoText.Render(m.spinner.View() + " Loading offer...")
		}
	}

	width := max(m.width-2, 20)
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder

	// Title
	if offer.IsPremium {
		b.WriteString(styles.Premium.Render("Premium"))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Bold(true).Render(offer.Title))
	if offer.IsFavorite {
		b.WriteString(" ")
		b.WriteString(styles.Favorite.Render("♥ In favorites"))
	}
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Render(formatRating(offer.Rating)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Join([]string{
		offerTypeLabel(offer.Type),
		pluralize(offer.Bedrooms, "bedroom"),
		"Max " + pluralize(offer.MaxAdults, "adult"),
	}, " · ")))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(formatPrice(offer.Price)))
	b.WriteString(styles.MutedText.Render(" / night"))
	b.WriteString("\n\n")

	if len(offer.Goods) > 0 {
		b.WriteString(sectionTitle(styles, "What's inside"))
		b.WriteString(wrap.Render(strings.Join(offer.Goods, ", ")))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionTitle(styles, "Meet the host"))
	b.WriteString(styles.Text.Render(offer.Host.Name))
	if offer.Host.IsPro {
		b.WriteString(" ")
		b.WriteString(styles.InfoText.Render("Pro"))
	}
	b.WriteString("\n")
	if offer.Description != "" {
		b.WriteString(wrap.Render(offer.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderReviews(styles, wrap))
	b.WriteString("\n")
	b.WriteString(m.renderNearby(styles, offer))
	return b.String()
}

func (m Model) renderReviews(styles Styles, wrap lipgloss.Style) string {
	s := m.snapshot.Comments
	var b strings.Builder
	b.WriteString(sectionTitle(styles, fmt.Sprintf("Reviews · %d", len(s.Comments))))

	if s.Status == state.Pending && len(s.Comments) == 0 {
		b.WriteString(styles.InfoText.Render("Loading reviews..."))
		b.WriteString("\n")
		return b.String()
	}
	reviews := listing.Reviews(s.Comments)
	if len(reviews) == 0 {
		b.WriteString(styles.MutedText.Render("No reviews yet."))
		b.WriteString("\n")
	}
	for _, r := range reviews {
		b.WriteString(styles.Text.Bold(true).Render(r.User.Name))
		b.WriteString("  ")
		b.WriteString(styles.WarningText.Render(formatStars(r.Rating)))
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render(r.Date.Format("January 2006")))
		b.WriteString("\n")
		b.WriteString(wrap.Render(r.Comment))
		b.WriteString("\n\n")
	}
	if m.snapshot.User.Authorized() {
		b.WriteString(styles.FaintText.Render("Press c to write a review."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderNearby(styles Styles, current *sixcities.FullOffer) string {
	s := m.snapshot.Offers
	var b strings.Builder
	b.WriteString(sectionTitle(styles, "Other places in the neighbourhood"))

	if s.Status == state.Pending && len(s.Nearby) == 0 {
		b.WriteString(styles.InfoText.Render("Loading nearby places..."))
		b.WriteString("\n")
		return b.String()
	}

	markers := listing.NearbyMarkers(s.Nearby, current)
	for _, o := range markers {
		marker := styles.MutedText.Render("○")
		name := styles.Text.Render(o.Title)
		if o.ID == current.ID {
			marker = styles.AccentText.Render("●")
			name = styles.AccentText.Render(o.Title + " (this place)")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			marker,
			name,
			styles.MutedText.Render(formatPrice(o.Price)),
			styles.FaintText.Render(fmt.Sprintf("%.5f, %.5f", o.Location.Latitude, o.Location.Longitude)),
		))
	}
	return b.String()
}

func sectionTitle(styles Styles, title string) string {
	return styles.AccentText.Bold(true).Render(title) + "\n"
}
