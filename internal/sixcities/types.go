package sixcities

import "time"

// CityName is one of the fixed set of cities the API serves.
type CityName string

const (
	Paris      CityName = "Paris"
	Cologne    CityName = "Cologne"
	Brussels   CityName = "Brussels"
	Amsterdam  CityName = "Amsterdam"
	Hamburg    CityName = "Hamburg"
	Dusseldorf CityName = "Dusseldorf"
)

// Location is a point on the map with the zoom level the map should use.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// City pairs a city name with its map centre.
type City struct {
	Name     CityName `json:"name"`
	Location Location `json:"location"`
}

var cities = []City{
	{Name: Paris, Location: Location{Latitude: 48.85661, Longitude: 2.351499, Zoom: 13}},
	{Name: Cologne, Location: Location{Latitude: 50.938361, Longitude: 6.959974, Zoom: 13}},
	{Name: Brussels, Location: Location{Latitude: 50.846557, Longitude: 4.351697, Zoom: 13}},
	{Name: Amsterdam, Location: Location{Latitude: 52.37454, Longitude: 4.897976, Zoom: 13}},
	{Name: Hamburg, Location: Location{Latitude: 53.550341, Longitude: 10.000654, Zoom: 13}},
	{Name: Dusseldorf, Location: Location{Latitude: 51.225402, Longitude: 6.776314, Zoom: 13}},
}

// Cities returns the supported cities in display order.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// DefaultCity is selected on startup.
func DefaultCity() City {
	return cities[0]
}

// LookupCity returns the city with the given name.
func LookupCity(name CityName) (City, bool) {
	for _, c := range cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}

// Offer is the summary form of a listing returned by list endpoints.
type Offer struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Price        int      `json:"price"`
	City         City     `json:"city"`
	Location     Location `json:"location"`
	IsFavorite   bool     `json:"isFavorite"`
	IsPremium    bool     `json:"isPremium"`
	Rating       float64  `json:"rating"`
	PreviewImage string   `json:"previewImage"`
}

// Host is the person renting out an offer. Reviews reuse it for authors.
type Host struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
}

// FullOffer is the detail form returned by /hotels/{id}.
type FullOffer struct {
	Offer
	Description string   `json:"description"`
	Bedrooms    int      `json:"bedrooms"`
	MaxAdults   int      `json:"maxAdults"`
	Goods       []string `json:"goods"`
	Images      []string `json:"images"`
	Host        Host     `json:"host"`
}

// Clone returns a copy that shares no slices with f.
func (f FullOffer) Clone() FullOffer {
	f.Goods = append([]string(nil), f.Goods...)
	f.Images = append([]string(nil), f.Images...)
	return f
}

// Review is a comment left on an offer.
type Review struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	User    Host      `json:"user"`
	Comment string    `json:"comment"`
	Rating  float64   `json:"rating"`
}

// User is the authenticated account, including its token.
type User struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsPro     bool   `json:"isPro"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// AuthData are login credentials.
type AuthData struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ReviewForm is the body of a new review.
type ReviewForm struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"min=50,max=300"`
}
