package state

import (
	"slices"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
)

// LoadingStatus tracks the fetch lifecycle of a data slice.
type LoadingStatus int

const (
	Idle LoadingStatus = iota
	Pending
	Success
	Failure
)

func (s LoadingStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// Settled reports whether a fetch has finished, successfully or not.
func (s LoadingStatus) Settled() bool {
	return s == Success || s == Failure
}

// AuthStatus is tri-state: unknown until the first check completes.
type AuthStatus int

const (
	AuthUnknown AuthStatus = iota
	AuthAuthorized
	AuthNoAuth
)

func (a AuthStatus) String() string {
	switch a {
	case AuthAuthorized:
		return "authorized"
	case AuthNoAuth:
		return "no-auth"
	default:
		return "unknown"
	}
}

type CityState struct {
	City sixcities.City
}

type ListingState struct {
	Sort listing.SortName
}

// OffersState holds the city listing and the nearby offers of the open
// detail view. Revision increases on every SetOffers.
type OffersState struct {
	Offers   []sixcities.Offer
	Nearby   []sixcities.Offer
	Status   LoadingStatus
	Revision uint64
}

// OfferState holds at most one full offer plus the highlighted offer ID.
type OfferState struct {
	ActiveID string
	Offer    *sixcities.FullOffer
	Status   LoadingStatus
}

type UserState struct {
	Auth AuthStatus
	User *sixcities.User
}

// Authorized reports whether the last auth check or login succeeded.
func (u UserState) Authorized() bool {
	return u.Auth == AuthAuthorized
}

type CommentsState struct {
	Comments []sixcities.Review
	Status   LoadingStatus
}

type FavoritesState struct {
	Favorites []sixcities.Offer
	Status    LoadingStatus
}

// State is the root of the client state tree.
type State struct {
	City      CityState
	Listing   ListingState
	Offers    OffersState
	Offer     OfferState
	User      UserState
	Comments  CommentsState
	Favorites FavoritesState
}

// Initial returns the state the client starts from: default city, popular
// sort, nothing loaded and authorization unknown.
func Initial() State {
	return State{
		City:    CityState{City: sixcities.DefaultCity()},
		Listing: ListingState{Sort: listing.Popular},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Offers.Offers = slices.Clone(s.Offers.Offers)
	out.Offers.Nearby = slices.Clone(s.Offers.Nearby)
	if s.Offer.Offer != nil {
		full := s.Offer.Offer.Clone()
		out.Offer.Offer = &full
	}
	if s.User.User != nil {
		user := *s.User.User
		out.User.User = &user
	}
	out.Comments.Comments = slices.Clone(s.Comments.Comments)
	out.Favorites.Favorites = slices.Clone(s.Favorites.Favorites)
	return out
}
