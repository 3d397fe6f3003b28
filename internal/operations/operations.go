// Package operations orchestrates API calls and the dispatch sequences that
// reflect them in the store.
package operations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
	"github.com/five82/sixcities/internal/token"
)

// ErrNotAuthorized is returned by operations that need a logged-in user.
var ErrNotAuthorized = errors.New("not authorized")

// Operations runs the client's asynchronous units of work. Each method blocks
// on network I/O and dispatches its state transitions in order.
type Operations struct {
	api    sixcities.Requester
	store  state.Dispatcher
	tokens token.Store
	logger *slog.Logger
}

// New wires operations to an API, a store and a token store. A nil logger
// discards output.
func New(api sixcities.Requester, store state.Dispatcher, tokens token.Store, logger *slog.Logger) *Operations {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Operations{api: api, store: store, tokens: tokens, logger: logger}
}

func (o *Operations) dispatch(a state.Action) {
	o.logger.Debug("dispatch", "action", a.Type())
	o.store.Dispatch(a)
}

// Login posts credentials. Blank fields are rejected before any request.
// Any outcome other than 201 leaves the user unauthorized without error.
func (o *Operations) Login(ctx context.Context, creds sixcities.AuthData) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	var user sixcities.User
	status, err := o.api.Post(ctx, sixcities.PathLogin, creds, &user)
	if err != nil || status != http.StatusCreated {
		o.logger.Warn("login rejected", "status", status, "error", err)
		o.dispatch(state.SetAuthorization{Authorized: false})
		return nil
	}

	o.dispatch(state.SetAuthorization{Authorized: true})
	o.dispatch(state.SetUser{User: user})
	o.saveToken(user.Token)
	return nil
}

// Logout ends the session server-side, then forgets the user and token.
// Request failures propagate and leave state untouched.
func (o *Operations) Logout(ctx context.Context) error {
	if _, err := o.api.Delete(ctx, sixcities.PathLogout); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	o.dispatch(state.SetAuthorization{Authorized: false})
	o.dispatch(state.ClearUser{})
	if err := o.tokens.Drop(); err != nil {
		return fmt.Errorf("drop token: %w", err)
	}
	return nil
}

// CheckAuth validates the stored token. Failure of any kind clears the user.
func (o *Operations) CheckAuth(ctx context.Context) error {
	var user sixcities.User
	if _, err := o.api.Get(ctx, sixcities.PathLogin, &user); err != nil {
		o.logger.Info("auth check failed", "error", err)
		o.dispatch(state.SetAuthorization{Authorized: false})
		o.dispatch(state.ClearUser{})
		return nil
	}

	o.dispatch(state.SetAuthorization{Authorized: true})
	o.dispatch(state.SetUser{User: user})
	o.saveToken(user.Token)
	return nil
}

func (o *Operations) saveToken(tok string) {
	if err := o.tokens.Save(tok); err != nil {
		o.logger.Warn("save token failed", "error", err)
	}
}

// FetchOffers replaces the offers list. 404 marks the slice failed without
// error; other failures mark it failed and are returned.
func (o *Operations) FetchOffers(ctx context.Context) error {
	o.dispatch(state.SetOffersLoadingStatus{Status: state.Pending})

	var offers []sixcities.Offer
	status, err := o.api.Get(ctx, sixcities.PathOffers, &offers, http.StatusNotFound)
	if err != nil {
		o.dispatch(state.SetOffersLoadingStatus{Status: state.Failure})
		return fmt.Errorf("fetch offers: %w", err)
	}
	if status == http.StatusNotFound {
		o.dispatch(state.SetOffersLoadingStatus{Status: state.Failure})
		return nil
	}

	o.dispatch(state.SetOffers{Offers: offers})
	o.dispatch(state.SetOffersLoadingStatus{Status: state.Success})
	return nil
}

// FetchOffer replaces the current full offer.
func (o *Operations) FetchOffer(ctx context.Context, id string) error {
	o.dispatch(state.SetOfferLoadingStatus{Status: state.Pending})

	var full sixcities.FullOffer
	status, err := o.api.Get(ctx, sixcities.OfferPath(id), &full, http.StatusNotFound)
	if err != nil {
		o.dispatch(state.SetOfferLoadingStatus{Status: state.Failure})
		return fmt.Errorf("fetch offer %s: %w", id, err)
	}
	if status == http.StatusNotFound {
		o.logger.Info("offer not found", "offer_id", id)
		o.dispatch(state.SetOfferLoadingStatus{Status: state.Failure})
		return nil
	}

	o.dispatch(state.SetOffer{Offer: full})
	o.dispatch(state.SetOfferLoadingStatus{Status: state.Success})
	return nil
}

// FetchNearby replaces the nearby offers of id. It drives the offers-slice
// loading status, which the detail view uses to gate the nearby section.
// On failure the status returns to what it was before the request, unless
// another fetch settled it meanwhile.
func (o *Operations) FetchNearby(ctx context.Context, id string) error {
	prev := o.store.State().Offers.Status
	o.dispatch(state.SetOffersLoadingStatus{Status: state.Pending})

	var nearby []sixcities.Offer
	if _, err := o.api.Get(ctx, sixcities.NearbyPath(id), &nearby); err != nil {
		o.dispatch(state.RestoreOffersLoadingStatus{Status: prev})
		return fmt.Errorf("fetch nearby %s: %w", id, err)
	}

	o.dispatch(state.SetNearbyOffers{Offers: nearby})
	o.dispatch(state.SetOffersLoadingStatus{Status: state.Success})
	return nil
}

// FetchComments replaces the review list of id. Failure restores the status
// the same way FetchNearby does.
func (o *Operations) FetchComments(ctx context.Context, id string) error {
	prev := o.store.State().Comments.Status
	o.dispatch(state.SetCommentsLoadingStatus{Status: state.Pending})

	var comments []sixcities.Review
	if _, err := o.api.Get(ctx, sixcities.CommentsPath(id), &comments); err != nil {
		o.dispatch(state.RestoreCommentsLoadingStatus{Status: prev})
		return fmt.Errorf("fetch comments %s: %w", id, err)
	}

	o.dispatch(state.SetComments{Comments: comments})
	o.dispatch(state.SetCommentsLoadingStatus{Status: state.Success})
	return nil
}

// CreateComment posts a review for id. Comments are refetched only when the
// server created it and id is still the offer on display.
func (o *Operations) CreateComment(ctx context.Context, id string, form sixcities.ReviewForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	status, err := o.api.Post(ctx, sixcities.CommentsPath(id), form, nil)
	if err != nil {
		return fmt.Errorf("create comment %s: %w", id, err)
	}
	if status != http.StatusCreated {
		return nil
	}

	current := o.store.State().Offer.Offer
	if current == nil || current.ID != id {
		o.logger.Debug("skip comments refetch, offer no longer displayed", "offer_id", id)
		return nil
	}
	return o.FetchComments(ctx, id)
}

// FetchFavorites replaces the favorites list.
func (o *Operations) FetchFavorites(ctx context.Context) error {
	o.dispatch(state.SetFavoritesLoadingStatus{Status: state.Pending})

	var favorites []sixcities.Offer
	status, err := o.api.Get(ctx, sixcities.PathFavorites, &favorites, http.StatusNotFound)
	if err != nil {
		o.dispatch(state.SetFavoritesLoadingStatus{Status: state.Failure})
		return fmt.Errorf("fetch favorites: %w", err)
	}
	if status == http.StatusNotFound {
		o.dispatch(state.SetFavoritesLoadingStatus{Status: state.Failure})
		return nil
	}

	o.dispatch(state.SetFavorites{Favorites: favorites})
	o.dispatch(state.SetFavoritesLoadingStatus{Status: state.Success})
	return nil
}

// ToggleFavorite sets the favorite flag of id to favorite, then refetches
// favorites and the offers list, whose summaries embed the flag.
func (o *Operations) ToggleFavorite(ctx context.Context, id string, favorite bool) error {
	status, err := o.api.Post(ctx, sixcities.FavoriteStatusPath(id, favorite), nil, nil)
	if err != nil {
		return fmt.Errorf("toggle favorite %s: %w", id, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil
	}

	// Both refetches run to completion even if one fails.
	var g errgroup.Group
	g.Go(func() error { return o.FetchFavorites(ctx) })
	g.Go(func() error { return o.FetchOffers(ctx) })
	return g.Wait()
}
