package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{"no filter returns all in order", "", "", []string{"Neighborhood Picnic", "Tech Meetup", "Yoga in the Park", "School Board Info Night"}},
		{"category only", "Technology", "", []string{"Tech Meetup"}},
		{"query only matches title", "", "yoga", []string{"Yoga in the Park"}},
		{"query matches summary", "", "lightning", []string{"Tech Meetup"}},
		{"query is case-insensitive", "", "YOGA", []string{"Yoga in the Park"}},
		{"query spans title and summary", "", "park", []string{"Neighborhood Picnic", "Yoga in the Park"}},
		{"category and query combine with AND", "Health", "park", []string{"Yoga in the Park"}},
		{"category and query with no overlap", "Civics", "yoga", []string{}},
		{"unknown category yields empty not all", "Sports", "", []string{}},
		{"category match is case-sensitive", "technology", "", []string{}},
		{"query with no match", "", "zzz", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(Catalog(), tc.category, tc.query)
			assert.Equal(t, tc.want, titles(got))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	got := Filter(Catalog(), "", "park")
	require.Len(t, got, 2)
	assert.Less(t, got[0].ID, got[1].ID)
}

// clientEvaluate mirrors what templates/static/app.js does with the card
// attributes: lowercase the query once, compare the category attribute
// exactly, and test substring containment against the lowercased title and
// summary. Keeping this model in sync with app.js is what the equivalence
// cases below check the server implementation against.
func clientEvaluate(items []Item, category, query string) []Item {
	q := strings.ToLower(query)
	var visible []Item
	for _, item := range items {
		matchesQ := q == "" ||
			strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Summary), q)
		matchesC := category == "" || item.Category == category
		if matchesQ && matchesC {
			visible = append(visible, item)
		}
	}
	return visible
}

func TestServerAndClientEvaluatorsAgree(t *testing.T) {
	t.Parallel()

	categories := append([]string{"", "Sports", "technology"}, Categories()...)
	queries := []string{"", "park", "PARK", "yoga", "talks", "a", "zzz", "school board", " "}

	for _, category := range categories {
		for _, query := range queries {
			server := Filter(Catalog(), category, query)
			client := clientEvaluate(Catalog(), category, query)

			assert.Equal(t, titles(client), titles(server),
				"evaluators diverged for category=%q query=%q", category, query)
		}
	}
}

func TestCategoriesAreDistinctAndSorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Civics", "Community", "Health", "Technology"}, Categories())
}

func TestCatalogReturnsACopy(t *testing.T) {
	t.Parallel()

	first := Catalog()
	first[0].Title = "mutated"

	assert.Equal(t, "Neighborhood Picnic", Catalog()[0].Title)
}
