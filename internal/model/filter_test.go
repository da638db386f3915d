package model

import "testing"

func filterFixtures() []Item {
	return []Item{
		{ID: "7", Kind: KindLost, Title: "Car Keys with Blue Keychain", Description: "Lost my car keys in the parking lot.", Category: "Keys", Location: "Parking Lot", Status: StatusClaimed},
		{ID: "1", Kind: KindLost, Title: "Black MacBook Pro 16\"", Description: "Lost my MacBook Pro in the library.", Category: "Electronics", Location: "Library", Status: StatusPending},
		{ID: "3", Kind: KindLost, Title: "Blue North Face Backpack", Description: "Lost my backpack in the cafeteria.", Category: "Bags", Location: "Cafeteria", Status: StatusPending},
	}
}

func TestFilterIdentity(t *testing.T) {
	items := filterFixtures()
	got := Filter{}.Apply(items)

	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Errorf("position %d: expected id %q, got %q", i, items[i].ID, got[i].ID)
		}
	}
}

func TestFilterByStatus(t *testing.T) {
	got := Filter{Status: StatusClaimed}.Apply(filterFixtures())

	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("expected exactly item 7, got %+v", got)
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	items := filterFixtures()

	for _, term := range []string{"black", "MACBOOK", "mac"} {
		got := Filter{Search: term}.Apply(items)
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("search %q: expected item 1, got %+v", term, got)
		}
	}
}

func TestFilterSearchesDescription(t *testing.T) {
	got := Filter{Search: "parking lot"}.Apply(filterFixtures())

	if len(got) != 1 || got[0].ID != "7" {
		t.Fatalf("expected item 7 via description match, got %+v", got)
	}
}

func TestFilterCriteriaAreConjunctive(t *testing.T) {
	items := filterFixtures()

	got := Filter{Category: "Electronics", Search: "macbook"}.Apply(items)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected item 1, got %+v", got)
	}

	// Both criteria match items individually, but no single item satisfies both.
	got = Filter{Category: "Keys", Search: "macbook"}.Apply(items)
	if len(got) != 0 {
		t.Fatalf("expected no items, got %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := Filter{Status: StatusPending}
	once := f.Apply(filterFixtures())
	twice := f.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("expected %d items after refiltering, got %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d: expected id %q, got %q", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter{Status: StatusPending}.Apply(filterFixtures())

	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected items [1 3] in input order, got %+v", got)
	}
}
