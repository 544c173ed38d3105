package feed

import "sort"

// Item is a read-only catalog entry
type Item struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// catalog is the fixed demo data set. It never changes while the process
// runs, so it needs no synchronization.
var catalog = []Item{
	{ID: 1, Title: "Neighborhood Picnic", Category: "Community", Summary: "Join us Saturday at 1pm at the park."},
	{ID: 2, Title: "Tech Meetup", Category: "Technology", Summary: "Lightning talks on Python and JS."},
	{ID: 3, Title: "Yoga in the Park", Category: "Health", Summary: "Free session, all levels welcome."},
	{ID: 4, Title: "School Board Info Night", Category: "Civics", Summary: "Ask questions; learn what's new."},
}

// Catalog returns the full item list in catalog order.
// The returned slice is a copy; callers may not mutate the catalog.
func Catalog() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

// Categories returns the distinct categories present in the catalog, sorted
func Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, item := range catalog {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}

	sort.Strings(categories)
	return categories
}
