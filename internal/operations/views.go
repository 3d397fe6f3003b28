package operations

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
	"github.com/five82/sixcities/internal/state"
)

// OpenOffer enters the detail view for id: highlight it, load the full
// offer, then its nearby offers and reviews once an offer is resident. The
// two side fetches are independent; a failure in one does not skip the
// other and both errors are returned.
func (o *Operations) OpenOffer(ctx context.Context, id string) error {
	o.dispatch(state.SetActiveOffer{ID: id})
	if err := o.FetchOffer(ctx, id); err != nil {
		return err
	}
	if o.store.State().Offer.Offer == nil {
		return nil
	}
	nearbyErr := o.FetchNearby(ctx, id)
	commentsErr := o.FetchComments(ctx, id)
	return errors.Join(nearbyErr, commentsErr)
}

// LeaveOffer tears down the detail view. The current offer, its nearby
// offers and its reviews go together.
func (o *Operations) LeaveOffer() {
	o.dispatch(state.ClearOffer{})
	o.dispatch(state.SetActiveOffer{})
	o.dispatch(state.ClearNearbyOffers{})
	o.dispatch(state.ClearComments{})
}

// ToggleOfferFavorite flips the favorite flag of a listed offer.
func (o *Operations) ToggleOfferFavorite(ctx context.Context, offer sixcities.Offer) error {
	if !o.store.State().User.Authorized() {
		return ErrNotAuthorized
	}
	return o.ToggleFavorite(ctx, offer.ID, !offer.IsFavorite)
}

// ToggleCurrentFavorite flips the favorite flag of the offer on display and
// reloads it so the detail view reflects the server's answer.
func (o *Operations) ToggleCurrentFavorite(ctx context.Context) error {
	s := o.store.State()
	if !s.User.Authorized() {
		return ErrNotAuthorized
	}
	if s.Offer.Offer == nil {
		return fmt.Errorf("toggle favorite: no offer on display")
	}
	id := s.Offer.Offer.ID
	if err := o.ToggleFavorite(ctx, id, !s.Offer.Offer.IsFavorite); err != nil {
		return err
	}
	return o.FetchOffer(ctx, id)
}

// SelectCity switches the listing to city.
func (o *Operations) SelectCity(city sixcities.City) {
	o.dispatch(state.ChangeCity{City: city})
}

// SelectSort changes the listing order.
func (o *Operations) SelectSort(sort listing.SortName) {
	o.dispatch(state.ChangeSort{Sort: sort})
}

// Hover highlights id in the listing; an empty id clears the highlight.
// Re-hovering the highlighted offer dispatches nothing.
func (o *Operations) Hover(id string) {
	if o.store.State().Offer.ActiveID == id {
		return
	}
	o.dispatch(state.SetActiveOffer{ID: id})
}
