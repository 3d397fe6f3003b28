package state

import "slices"

// Reduce applies a to s and returns the next state. Each slice reducer sees
// every action but only reacts to its own; s is not modified.
func Reduce(s State, a Action) State {
	return State{
		City:      reduceCity(s.City, a),
		Listing:   reduceListing(s.Listing, a),
		Offers:    reduceOffers(s.Offers, a),
		Offer:     reduceOffer(s.Offer, a),
		User:      reduceUser(s.User, a),
		Comments:  reduceComments(s.Comments, a),
		Favorites: reduceFavorites(s.Favorites, a),
	}
}

func reduceCity(s CityState, a Action) CityState {
	switch a := a.(type) {
	case ChangeCity:
		s.City = a.City
	}
	return s
}

func reduceListing(s ListingState, a Action) ListingState {
	switch a := a.(type) {
	case ChangeSort:
		s.Sort = a.Sort
	}
	return s
}

func reduceOffers(s OffersState, a Action) OffersState {
	switch a := a.(type) {
	case SetOffers:
		s.Offers = slices.Clone(a.Offers)
		s.Revision++
	case SetOffersLoadingStatus:
		s.Status = a.Status
	case RestoreOffersLoadingStatus:
		if s.Status == Pending {
			s.Status = a.Status
		}
	case SetNearbyOffers:
		s.Nearby = slices.Clone(a.Offers)
	case ClearNearbyOffers:
		s.Nearby = nil
	}
	return s
}

func reduceOffer(s OfferState, a Action) OfferState {
	switch a := a.(type) {
	case SetOffer:
		full := a.Offer.Clone()
		s.Offer = &full
	case ClearOffer:
		s.Offer = nil
	case SetOfferLoadingStatus:
		s.Status = a.Status
	case SetActiveOffer:
		s.ActiveID = a.ID
	}
	return s
}

func reduceUser(s UserState, a Action) UserState {
	switch a := a.(type) {
	case SetAuthorization:
		if a.Authorized {
			s.Auth = AuthAuthorized
		} else {
			s.Auth = AuthNoAuth
		}
	case SetUser:
		user := a.User
		s.User = &user
	case ClearUser:
		s.User = nil
	}
	return s
}

func reduceComments(s CommentsState, a Action) CommentsState {
	switch a := a.(type) {
	case SetComments:
		s.Comments = slices.Clone(a.Comments)
	case ClearComments:
		s.Comments = nil
	case SetCommentsLoadingStatus:
		s.Status = a.Status
	case RestoreCommentsLoadingStatus:
		if s.Status == Pending {
			s.Status = a.Status
		}
	}
	return s
}

func reduceFavorites(s FavoritesState, a Action) FavoritesState {
	switch a := a.(type) {
	case SetFavorites:
		s.Favorites = slices.Clone(a.Favorites)
	case SetFavoritesLoadingStatus:
		s.Status = a.Status
	}
	return s
}
