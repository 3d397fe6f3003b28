// Package app is the composition root of the sixcities client.
//
// # Overview
//
// Run wires configuration, logging, the token store, the API client, the
// state store and the operations layer together, loads the initial data
// and hands control to the TUI.
//
// # Startup
//
//  1. Load config (TOML, .env, environment)
//  2. Load user preferences (theme, last city, last sort)
//  3. Open the log file and build the slog logger
//  4. Create the file-backed token store and the API client
//  5. Seed the state store with the preferred city and sort
//  6. Check authorization and fetch offers concurrently
//  7. Start the background offers refresher, if enabled
//  8. Run the TUI (blocks)
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read config
//	       ├─────> sixcities.NewClient()  HTTP client with token header
//	       ├─────> state.NewStore()       Shared state container
//	       ├─────> bootstrap()            CheckAuth + FetchOffers
//	       ├─────> StartRefresher()       Background offers refresh
//	       └─────> ui.Run()               Start TUI (blocks)
//
// # Refresh Behavior
//
// The refresher is off unless refresh_interval (or -refresh) is positive.
// Each tick refetches the offers list through the same operation the UI
// uses, so every refresh is visible as a loading cycle in the store.
// Consecutive failures double the delay up to five minutes; a success
// resets it.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration
//   - Log file cannot be opened
//   - API base URL cannot be parsed
//
// Recoverable errors are logged and reflected as loading statuses in the
// store: an unreachable API at startup still opens the UI.
package app
