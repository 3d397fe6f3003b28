package sixcities

import "net/url"

// REST routes.
const (
	PathLogin     = "/login"
	PathLogout    = "/logout"
	PathOffers    = "/hotels"
	PathFavorites = "/favorite"
)

// OfferPath is the full-offer route for id.
func OfferPath(id string) string {
	return PathOffers + "/" + url.PathEscape(id)
}

// NearbyPath lists offers near id.
func NearbyPath(id string) string {
	return OfferPath(id) + "/nearby"
}

// CommentsPath lists or creates reviews for id.
func CommentsPath(id string) string {
	return "/comments/" + url.PathEscape(id)
}

// FavoriteStatusPath sets (status=true) or clears the favorite flag on id.
func FavoriteStatusPath(id string, status bool) string {
	flag := "0"
	if status {
		flag = "1"
	}
	return PathFavorites + "/" + url.PathEscape(id) + "/" + flag
}
