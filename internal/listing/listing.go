// Package listing derives display views from loaded offers: the sorted
// city listing, favorites grouped by city, the review list and the nearby
// markers of the detail view. Everything here is pure.
package listing

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/five82/sixcities/internal/sixcities"
)

// SortName selects the listing order.
type SortName int

const (
	Popular SortName = iota
	PriceLowToHigh
	PriceHighToLow
	TopRated
)

// SortNames lists the criteria in menu order.
var SortNames = []SortName{Popular, PriceLowToHigh, PriceHighToLow, TopRated}

func (s SortName) String() string {
	switch s {
	case PriceLowToHigh:
		return "Price: low to high"
	case PriceHighToLow:
		return "Price: high to low"
	case TopRated:
		return "Top rated first"
	default:
		return "Popular"
	}
}

// Key is the stable identifier used when persisting the criterion.
func (s SortName) Key() string {
	switch s {
	case PriceLowToHigh:
		return "price-asc"
	case PriceHighToLow:
		return "price-desc"
	case TopRated:
		return "top-rated"
	default:
		return "popular"
	}
}

// ParseSort maps a key produced by Key back to its criterion.
func ParseSort(key string) (SortName, bool) {
	for _, s := range SortNames {
		if s.Key() == key {
			return s, true
		}
	}
	return Popular, false
}

// Next returns the following criterion, wrapping around.
func (s SortName) Next() SortName {
	idx := slices.Index(SortNames, s)
	return SortNames[(idx+1)%len(SortNames)]
}

// Offers returns the offers located in city, ordered by sort. Ties keep
// their input order. The result never aliases all.
func Offers(all []sixcities.Offer, city sixcities.CityName, sort SortName) []sixcities.Offer {
	out := make([]sixcities.Offer, 0, len(all))
	for _, o := range all {
		if o.City.Name == city {
			out = append(out, o)
		}
	}

	switch sort {
	case TopRated:
		slices.SortStableFunc(out, func(a, b sixcities.Offer) int { return cmp.Compare(b.Rating, a.Rating) })
	case PriceHighToLow:
		slices.SortStableFunc(out, func(a, b sixcities.Offer) int { return cmp.Compare(b.Price, a.Price) })
	case PriceLowToHigh:
		slices.SortStableFunc(out, func(a, b sixcities.Offer) int { return cmp.Compare(a.Price, b.Price) })
	}
	return out
}

// Memo caches the last Offers result. The offers list is identified by the
// revision the caller supplies, so a new list must come with a new revision.
type Memo struct {
	mu     sync.Mutex
	valid  bool
	rev    uint64
	city   sixcities.CityName
	sort   SortName
	result []sixcities.Offer
}

// Offers returns the derived listing, recomputing only when an input key
// changed. Callers get their own copy of the cached slice.
func (m *Memo) Offers(all []sixcities.Offer, revision uint64, city sixcities.CityName, sort SortName) []sixcities.Offer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid || m.rev != revision || m.city != city || m.sort != sort {
		m.result = Offers(all, city, sort)
		m.rev, m.city, m.sort = revision, city, sort
		m.valid = true
	}
	return slices.Clone(m.result)
}

// CityGroup is one city's favorites.
type CityGroup struct {
	City   sixcities.CityName
	Offers []sixcities.Offer
}

// GroupByCity groups favorites by city name. Groups appear in the order
// their city is first seen; offers keep their input order within a group.
func GroupByCity(favorites []sixcities.Offer) []CityGroup {
	var groups []CityGroup
	index := make(map[sixcities.CityName]int)
	for _, o := range favorites {
		i, ok := index[o.City.Name]
		if !ok {
			i = len(groups)
			index[o.City.Name] = i
			groups = append(groups, CityGroup{City: o.City.Name})
		}
		groups[i].Offers = append(groups[i].Offers, o)
	}
	return groups
}

// MaxReviews caps the review list on the detail view.
const MaxReviews = 10

// Reviews returns the newest reviews first, at most MaxReviews.
func Reviews(reviews []sixcities.Review) []sixcities.Review {
	out := slices.Clone(reviews)
	slices.SortStableFunc(out, func(a, b sixcities.Review) int { return b.Date.Compare(a.Date) })
	if len(out) > MaxReviews {
		out = out[:MaxReviews]
	}
	return out
}

// MaxNearby caps the nearby offers shown next to a detail view.
const MaxNearby = 3

// NearbyMarkers returns the first MaxNearby nearby offers, followed by the
// current offer when one is loaded.
func NearbyMarkers(nearby []sixcities.Offer, current *sixcities.FullOffer) []sixcities.Offer {
	n := min(len(nearby), MaxNearby)
	out := make([]sixcities.Offer, 0, n+1)
	out = append(out, nearby[:n]...)
	if current != nil {
		out = append(out, current.Offer)
	}
	return out
}

// RandomCity picks one of the supported cities.
func RandomCity() sixcities.City {
	all := sixcities.Cities()
	return all[rand.IntN(len(all))]
}
