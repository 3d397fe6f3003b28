package ui

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// formatStars renders a rating as five stars, rounded to the nearest whole
// star.
func formatStars(rating float64) string {
	filled := int(math.Round(rating))
	filled = min(max(filled, 0), 5)
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// formatRating renders stars followed by the numeric rating.
func formatRating(rating float64) string {
	return fmt.Sprintf("%s %.1f", formatStars(rating), rating)
}

func formatPrice(price int) string {
	return fmt.Sprintf("€%d", price)
}

// pluralize renders "1 bedroom" or "3 bedrooms".
func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// offerTypeLabel turns API type names like "apartment" into "Apartment".
func offerTypeLabel(kind string) string {
	return cases.Title(language.English).String(strings.TrimSpace(kind))
}

// scrollOffset returns the first visible row so that selected stays within
// a window of visible rows.
func scrollOffset(selected, total, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	offset := selected - visible/2
	return min(max(offset, 0), total-visible)
}
