package state

import (
	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
)

// Action is a synchronous state change. The set of actions is closed: only
// types in this package implement it, and every slice reducer switches over
// the concrete types it owns.
type Action interface {
	// Type names the action for logs, e.g. "offers/set".
	Type() string
	action()
}

// City slice.

// ChangeCity selects the city whose offers are listed.
type ChangeCity struct{ City sixcities.City }

// Listing slice.

// ChangeSort selects the listing order.
type ChangeSort struct{ Sort listing.SortName }

// Offers slice.

// SetOffers replaces the full offer list and bumps its revision.
type SetOffers struct{ Offers []sixcities.Offer }

// SetOffersLoadingStatus sets the offers status unconditionally.
type SetOffersLoadingStatus struct{ Status LoadingStatus }

// RestoreOffersLoadingStatus puts back a status saved before a request. It
// applies only while the status is still Pending, so a fetch that settled
// in the meantime keeps its outcome.
type RestoreOffersLoadingStatus struct{ Status LoadingStatus }

// SetNearbyOffers replaces the offers near the one on display.
type SetNearbyOffers struct{ Offers []sixcities.Offer }

// ClearNearbyOffers empties the nearby list.
type ClearNearbyOffers struct{}

// Offer slice.

// SetOffer makes a full offer resident.
type SetOffer struct{ Offer sixcities.FullOffer }

// ClearOffer drops the resident offer.
type ClearOffer struct{}

// SetOfferLoadingStatus sets the status of the resident offer fetch.
type SetOfferLoadingStatus struct{ Status LoadingStatus }

// SetActiveOffer highlights an offer; an empty ID clears the highlight.
type SetActiveOffer struct{ ID string }

// User slice.

// SetAuthorization records whether the session is authorized.
type SetAuthorization struct{ Authorized bool }

// SetUser stores the signed-in user.
type SetUser struct{ User sixcities.User }

// ClearUser forgets the signed-in user.
type ClearUser struct{}

// Comments slice.

// SetComments replaces the reviews of the resident offer.
type SetComments struct{ Comments []sixcities.Review }

// ClearComments empties the review list.
type ClearComments struct{}

// SetCommentsLoadingStatus sets the comments status unconditionally.
type SetCommentsLoadingStatus struct{ Status LoadingStatus }

// RestoreCommentsLoadingStatus is RestoreOffersLoadingStatus for comments.
type RestoreCommentsLoadingStatus struct{ Status LoadingStatus }

// Favorites slice.

// SetFavorites replaces the user's favorite offers.
type SetFavorites struct{ Favorites []sixcities.Offer }

// SetFavoritesLoadingStatus sets the favorites status.
type SetFavoritesLoadingStatus struct{ Status LoadingStatus }

func (ChangeCity) Type() string                   { return "city/change" }
func (ChangeSort) Type() string                   { return "listing/sort" }
func (SetOffers) Type() string                    { return "offers/set" }
func (SetOffersLoadingStatus) Type() string       { return "offers/loading" }
func (RestoreOffersLoadingStatus) Type() string   { return "offers/restoreLoading" }
func (SetNearbyOffers) Type() string              { return "offers/nearby" }
func (ClearNearbyOffers) Type() string            { return "offers/clearNearby" }
func (SetOffer) Type() string                     { return "offer/set" }
func (ClearOffer) Type() string                   { return "offer/clear" }
func (SetOfferLoadingStatus) Type() string        { return "offer/loading" }
func (SetActiveOffer) Type() string               { return "offer/setActive" }
func (SetAuthorization) Type() string             { return "user/authorization" }
func (SetUser) Type() string                      { return "user/setData" }
func (ClearUser) Type() string                    { return "user/clear" }
func (SetComments) Type() string                  { return "comments/set" }
func (ClearComments) Type() string                { return "comments/clear" }
func (SetCommentsLoadingStatus) Type() string     { return "comments/loading" }
func (RestoreCommentsLoadingStatus) Type() string { return "comments/restoreLoading" }
func (SetFavorites) Type() string                 { return "favorites/set" }
func (SetFavoritesLoadingStatus) Type() string    { return "favorites/loading" }

func (ChangeCity) action()                   {}
func (ChangeSort) action()                   {}
func (SetOffers) action()                    {}
func (SetOffersLoadingStatus) action()       {}
func (RestoreOffersLoadingStatus) action()   {}
func (SetNearbyOffers) action()              {}
func (ClearNearbyOffers) action()            {}
func (SetOffer) action()                     {}
func (ClearOffer) action()                   {}
func (SetOfferLoadingStatus) action()        {}
func (SetActiveOffer) action()               {}
func (SetAuthorization) action()             {}
func (SetUser) action()                      {}
func (ClearUser) action()                    {}
func (SetComments) action()                  {}
func (ClearComments) action()                {}
func (SetCommentsLoadingStatus) action()     {}
func (RestoreCommentsLoadingStatus) action() {}
func (SetFavorites) action()                 {}
func (SetFavoritesLoadingStatus) action()    {}
