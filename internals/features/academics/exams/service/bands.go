package service

import "sort"

// ValidateBands checks a scale's prospective bands: each range must sit
// inside 0-100 with min <= max, and no two ranges may overlap.
func ValidateBands(bands []Band) error {
	for _, b := range bands {
		if b.MinScore > b.MaxScore {
			return precondition("band %s: min_score cannot be greater than max_score", b.Letter)
		}
		if b.MinScore < 0 || b.MaxScore > 100 {
			return precondition("band %s: scores must stay within 0-100", b.Letter)
		}
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinScore < sorted[j].MinScore })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.MinScore <= prev.MaxScore {
			return precondition("bands %s and %s overlap", prev.Letter, cur.Letter)
		}
	}
	return nil
}
