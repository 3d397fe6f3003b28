package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Canal View  ", 20, "Canal View"},
		{"Canal View", 0, "Canal View"},
		{"Canal View", 3, "Can"},
		{"Beautiful & luxurious studio", 12, "Beautiful..."},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestFormatStars(t *testing.T) {
	cases := map[float64]string{
		0:   "☆☆☆☆☆",
		2.4: "★★☆☆☆",
		2.5: "★★★☆☆",
		4.8: "★★★★★",
		7:   "★★★★★",
		-1:  "☆☆☆☆☆",
	}
	for in, want := range cases {
		if got := formatStars(in); got != want {
			t.Fatalf("formatStars(%v) = %q, want %q", in, got, want)
		}
	}
	if got := formatRating(4.25); got != "★★★★☆ 4.2" && got != "★★★★☆ 4.3" {
		t.Fatalf("formatRating(4.25) = %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "bedroom"); got != "1 bedroom" {
		t.Fatalf("pluralize(1) = %q", got)
	}
	if got := pluralize(0, "adult"); got != "0 adults" {
		t.Fatalf("pluralize(0) = %q", got)
	}
	if got := pluralize(3, "place"); got != "3 places" {
		t.Fatalf("pluralize(3) = %q", got)
	}
}

func TestOfferTypeLabel(t *testing.T) {
	if got := offerTypeLabel(" apartment "); got != "Apartment" {
		t.Fatalf("offerTypeLabel = %q, want Apartment", got)
	}
}

func TestScrollOffset(t *testing.T) {
	cases := []struct {
		name                     string
		selected, total, visible int
		want                     int
	}{
		{"fits", 3, 5, 10, 0},
		{"top", 0, 50, 10, 0},
		{"middle", 25, 50, 10, 20},
		{"bottom", 49, 50, 10, 40},
		{"no room", 5, 50, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scrollOffset(tc.selected, tc.total, tc.visible); got != tc.want {
				t.Fatalf("scrollOffset(%d, %d, %d) = %d, want %d", tc.selected, tc.total, tc.visible, got, tc.want)
			}
		})
	}
}
