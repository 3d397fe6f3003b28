package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Account    key.Binding

	// View switching
	ViewOffers    key.Binding
	ViewFavorites key.Binding
	ViewLogs      key.Binding

	// Listing
	NextCity       key.Binding
	PrevCity       key.Binding
	RandomCity     key.Binding
	CycleSort      key.Binding
	Open           key.Binding
	ToggleFavorite key.Binding
	Refresh        key.Binding

	// Detail
	WriteReview key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to listing"),
		),
		Account: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log in / log out"),
		),

		ViewOffers: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Offers"),
		),
		ViewFavorites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Favorites"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Client log"),
		),

		NextCity: key.NewBinding(
			key.WithKeys("]", "right"),
			key.WithHelp("]/→", "Next city"),
		),
		PrevCity: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[/←", "Previous city"),
		),
		RandomCity: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Random city"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open offer"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle favorite"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reload"),
		),

		WriteReview: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Write a review"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ViewOffers, k.ViewFavorites, k.ViewLogs, k.Account, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewOffers, k.ViewFavorites, k.ViewLogs, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp},
		{k.NextCity, k.PrevCity, k.RandomCity, k.CycleSort, k.Open, k.ToggleFavorite, k.Refresh},
		{k.WriteReview},
		{k.Account, k.CycleTheme, k.Help, k.Quit},
	}
}
