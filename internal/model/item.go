package model

// Item kinds: whether the item was reported as lost or found.
const (
	KindLost  = "lost"
	KindFound = "found"
)

// Item statuses, tracking the resolution lifecycle of a report.
const (
	StatusPending  = "pending"
	StatusClaimed  = "claimed"
	StatusResolved = "resolved"
)

// DefaultImageURL is shown for items submitted without a photo.
const DefaultImageURL = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

// Item is a single lost/found report.
type Item struct {
	ID           string `json:"id"`
	Kind         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Date         string `json:"date"` // calendar date, YYYY-MM-DD
	Image        string `json:"image"`
	Status       string `json:"status"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// ValidKind reports whether kind is one of the two item kinds.
func ValidKind(kind string) bool {
	return kind == KindLost || kind == KindFound
}

// Categories is the fixed set of item categories offered by the forms.
// The repositories store whatever value they are handed; the enumeration
// is form vocabulary, not a storage constraint.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Accessories",
	"Books",
	"Keys",
	"ID Cards",
	"Wallets",
	"Bags",
	"Others",
}

// Locations is the fixed set of campus locations offered by the forms.
var Locations = []string{
	"Main Building",
	"Library",
	"Student Center",
	"Cafeteria",
	"Gym",
	"Dormitory A",
	"Dormitory B",
	"Science Building",
	"Arts Building",
	"Parking Lot",
}
