package model

import "strings"

// Filter narrows an item list by optional criteria. An empty field matches
// everything, so the zero Filter is the identity.
type Filter struct {
	Search   string
	Category string
	Location string
	Status   string
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Location == "" && f.Status == ""
}

// Matches reports whether the item satisfies every set criterion. The
// search term matches case-insensitively against title or description;
// category, location and status compare exactly.
func (f Filter) Matches(item Item) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Title), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			return false
		}
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Location != "" && item.Location != f.Location {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the items matching the filter, preserving input order.
// With no criteria set it returns the input slice unchanged.
func (f Filter) Apply(items []Item) []Item {
	if f.IsZero() {
		return items
	}
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			matched = append(matched, item)
		}
	}
	return matched
}
