package feed

import "strings"

// Filter returns the items matching the given category and free-text query.
//
// This is the single authoritative definition of feed filtering. The /feeds
// page, the /api/feeds endpoint and the in-browser evaluator in
// templates/static/app.js all apply these exact rules, and must keep
// producing identical results for the same inputs:
//
//   - category matches exactly and case-sensitively; empty means no
//     category restriction
//   - query matches case-insensitively as a substring of the title or the
//     summary; empty means no text restriction
//   - both restrictions combine with AND
//   - relative item order is preserved; an empty result is a valid result
func Filter(items []Item, category, query string) []Item {
	query = strings.ToLower(query)

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Summary), query) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}
