// Package ui implements the sixcities terminal interface with Bubble Tea.
//
// # Views
//
//   - Offers: city tabs, the sorted listing of the selected city, favorite
//     toggles. Moving the selection highlights the offer in the store.
//   - Offer: the full offer with host, amenities, up to ten newest reviews
//     and the nearby places shown as map markers.
//   - Favorites: saved places grouped by city. Requires a session.
//   - Log: the tail of the client's own log file.
//
// Sign-in and review forms open as modals on top of the current view.
//
// # Data Flow
//
// The model never mutates state itself. Key presses call into the
// operations layer, either directly for synchronous dispatches (city, sort,
// hover) or through a tea.Cmd for anything touching the network. A
// completed command reports back with opDoneMsg, after which the model
// re-reads the store. A tick re-reads it as well so background refreshes
// show up.
//
// # Preferences
//
// Theme, city and sort changes are written to the preferences file as they
// happen, so the next session opens where this one left off.
package ui
