package state

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
)

func TestInitial(t *testing.T) {
	s := Initial()
	if s.City.City.Name != sixcities.Paris {
		t.Fatalf("initial city = %q, want Paris", s.City.City.Name)
	}
	if s.Listing.Sort != listing.Popular {
		t.Fatalf("initial sort = %v, want Popular", s.Listing.Sort)
	}
	if s.User.Auth != AuthUnknown || s.User.Authorized() {
		t.Fatalf("initial auth = %v, want unknown", s.User.Auth)
	}
	if s.Offers.Status != Idle || s.Offer.Status != Idle || s.Comments.Status != Idle || s.Favorites.Status != Idle {
		t.Fatalf("initial statuses should be idle: %#v", s)
	}
}

func TestReduce_SlicesHandleOnlyTheirActions(t *testing.T) {
	start := Initial()
	start.Offers.Offers = []sixcities.Offer{{ID: "1"}}
	start.Offers.Nearby = []sixcities.Offer{{ID: "n"}}
	start.Comments.Comments = []sixcities.Review{{ID: "c"}}
	start.Favorites.Favorites = []sixcities.Offer{{ID: "f"}}
	start.Offer.Offer = &sixcities.FullOffer{Offer: sixcities.Offer{ID: "1"}}

	next := Reduce(start, ClearNearbyOffers{})
	if next.Offers.Nearby != nil {
		t.Fatalf("nearby not cleared")
	}
	if len(next.Offers.Offers) != 1 || len(next.Comments.Comments) != 1 || len(next.Favorites.Favorites) != 1 || next.Offer.Offer == nil {
		t.Fatalf("clearing nearby touched a sibling: %#v", next)
	}

	next = Reduce(start, ClearComments{})
	if next.Comments.Comments != nil || len(next.Offers.Nearby) != 1 || next.Offer.Offer == nil {
		t.Fatalf("ClearComments result = %#v", next)
	}

	next = Reduce(start, ClearOffer{})
	if next.Offer.Offer != nil || len(next.Comments.Comments) != 1 || len(next.Offers.Nearby) != 1 {
		t.Fatalf("ClearOffer result = %#v", next)
	}

	if len(start.Offers.Nearby) != 1 || start.Offer.Offer == nil {
		t.Fatalf("Reduce mutated its input")
	}
}

func TestReduce_ActionCatalog(t *testing.T) {
	cologne, _ := sixcities.LookupCity(sixcities.Cologne)
	full := sixcities.FullOffer{Offer: sixcities.Offer{ID: "9"}, Goods: []string{"Kitchen"}}
	user := sixcities.User{Email: "a@b.c", Token: "tok"}

	s := Initial()
	steps := []struct {
		action Action
		check  func(State) bool
	}{
		{ChangeCity{City: cologne}, func(s State) bool { return s.City.City.Name == sixcities.Cologne }},
		{ChangeSort{Sort: listing.TopRated}, func(s State) bool { return s.Listing.Sort == listing.TopRated }},
		{SetOffersLoadingStatus{Status: Pending}, func(s State) bool { return s.Offers.Status == Pending }},
		{SetOffers{Offers: []sixcities.Offer{{ID: "1"}}}, func(s State) bool { return len(s.Offers.Offers) == 1 && s.Offers.Revision == 1 }},
		{SetOffers{Offers: nil}, func(s State) bool { return len(s.Offers.Offers) == 0 && s.Offers.Revision == 2 }},
		{SetNearbyOffers{Offers: []sixcities.Offer{{ID: "2"}}}, func(s State) bool { return len(s.Offers.Nearby) == 1 }},
		{SetOffer{Offer: full}, func(s State) bool { return s.Offer.Offer != nil && s.Offer.Offer.ID == "9" }},
		{SetOfferLoadingStatus{Status: Failure}, func(s State) bool { return s.Offer.Status == Failure }},
		{SetActiveOffer{ID: "9"}, func(s State) bool { return s.Offer.ActiveID == "9" }},
		{SetActiveOffer{}, func(s State) bool { return s.Offer.ActiveID == "" }},
		{SetAuthorization{Authorized: true}, func(s State) bool { return s.User.Authorized() }},
		{SetUser{User: user}, func(s State) bool { return s.User.User != nil && s.User.User.Token == "tok" }},
		{SetAuthorization{Authorized: false}, func(s State) bool { return s.User.Auth == AuthNoAuth }},
		{ClearUser{}, func(s State) bool { return s.User.User == nil }},
		{SetComments{Comments: []sixcities.Review{{ID: "r"}}}, func(s State) bool { return len(s.Comments.Comments) == 1 }},
		{SetCommentsLoadingStatus{Status: Success}, func(s State) bool { return s.Comments.Status == Success }},
		{SetFavorites{Favorites: []sixcities.Offer{{ID: "f"}}}, func(s State) bool { return len(s.Favorites.Favorites) == 1 }},
		{SetFavoritesLoadingStatus{Status: Success}, func(s State) bool { return s.Favorites.Status == Success }},
	}
	for _, step := range steps {
		s = Reduce(s, step.action)
		if !step.check(s) {
			t.Fatalf("after %s: unexpected state %#v", step.action.Type(), s)
		}
	}
}

func TestActions_TypesAreUniqueAndScoped(t *testing.T) {
	actions := []Action{
		ChangeCity{}, ChangeSort{},
		SetOffers{}, SetOffersLoadingStatus{}, RestoreOffersLoadingStatus{}, SetNearbyOffers{}, ClearNearbyOffers{},
		SetOffer{}, ClearOffer{}, SetOfferLoadingStatus{}, SetActiveOffer{},
		SetAuthorization{}, SetUser{}, ClearUser{},
		SetComments{}, ClearComments{}, SetCommentsLoadingStatus{}, RestoreCommentsLoadingStatus{},
		SetFavorites{}, SetFavoritesLoadingStatus{},
	}
	scopes := []string{"city/", "listing/", "offers/", "offer/", "user/", "comments/", "favorites/"}
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		name := a.Type()
		if seen[name] {
			t.Fatalf("duplicate action type %q", name)
		}
		seen[name] = true
		if !slices.ContainsFunc(scopes, func(p string) bool { return strings.HasPrefix(name, p) }) {
			t.Fatalf("action type %q has no slice prefix", name)
		}
	}
}

func TestReduce_RestoreLoadingStatusOnlyWhilePending(t *testing.T) {
	cases := []struct {
		name    string
		current LoadingStatus
		want    LoadingStatus
	}{
		{"pending is restored", Pending, Success},
		{"settled success is kept", Success, Success},
		{"settled failure is kept", Failure, Failure},
		{"idle is kept", Idle, Idle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Initial()
			s.Offers.Status = tc.current
			s.Comments.Status = tc.current
			s = Reduce(s, RestoreOffersLoadingStatus{Status: Success})
			s = Reduce(s, RestoreCommentsLoadingStatus{Status: Success})
			if s.Offers.Status != tc.want {
				t.Fatalf("offers status = %v, want %v", s.Offers.Status, tc.want)
			}
			if s.Comments.Status != tc.want {
				t.Fatalf("comments status = %v, want %v", s.Comments.Status, tc.want)
			}
		})
	}
}

func TestReduce_PayloadNotAliased(t *testing.T) {
	offers := []sixcities.Offer{{ID: "1"}}
	s := Reduce(Initial(), SetOffers{Offers: offers})
	offers[0].ID = "changed"
	if s.Offers.Offers[0].ID != "1" {
		t.Fatalf("state aliases the action payload")
	}
}

func TestStore_StateIsACopy(t *testing.T) {
	store := NewStore(Initial())
	store.Dispatch(SetFavorites{Favorites: []sixcities.Offer{{ID: "1"}}})
	store.Dispatch(SetOffer{Offer: sixcities.FullOffer{Offer: sixcities.Offer{ID: "x"}, Images: []string{"a"}}})

	snap := store.State()
	snap.Favorites.Favorites[0].ID = "999"
	snap.Offer.Offer.Images[0] = "b"

	again := store.State()
	if again.Favorites.Favorites[0].ID != "1" {
		t.Fatalf("State should clone favorites; got %q", again.Favorites.Favorites[0].ID)
	}
	if again.Offer.Offer.Images[0] != "a" {
		t.Fatalf("State should clone the full offer")
	}
}

func TestStore_SubscribeSeesEveryDispatchInOrder(t *testing.T) {
	store := NewStore(Initial())

	var got []string
	unsubscribe := store.Subscribe(func(a Action, s State) {
		got = append(got, a.Type()+":"+s.Offers.Status.String())
	})

	store.Dispatch(SetOffersLoadingStatus{Status: Pending})
	store.Dispatch(SetOffers{})
	store.Dispatch(SetOffersLoadingStatus{Status: Success})
	unsubscribe()
	store.Dispatch(SetOffersLoadingStatus{Status: Failure})

	want := []string{"offers/loading:pending", "offers/set:pending", "offers/loading:success"}
	if len(got) != len(want) {
		t.Fatalf("listener saw %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("listener saw %v, want %v", got, want)
		}
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := NewStore(Initial())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(SetOffers{Offers: []sixcities.Offer{{ID: "x"}}})
			_ = store.State()
		}()
	}
	wg.Wait()

	if rev := store.State().Offers.Revision; rev != 50 {
		t.Fatalf("Revision = %d, want 50", rev)
	}
}

func TestLoadingStatus(t *testing.T) {
	if Idle.Settled() || Pending.Settled() || !Success.Settled() || !Failure.Settled() {
		t.Fatalf("Settled mismatch")
	}
	if Failure.String() != "failure" || Idle.String() != "idle" {
		t.Fatalf("String mismatch")
	}
}
