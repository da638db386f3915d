package store

import "github.com/campusfound/campusfound/internal/model"

// Fixtures returns the default demo collection served in mock mode.
func Fixtures() []model.Item {
	return []model.Item{
		{
			ID:           "1",
			Kind:         model.KindLost,
			Title:        "Black MacBook Pro 16\"",
			Description:  "Lost my MacBook Pro in the library. It has a sticker of a mountain on the back.",
			Category:     "Electronics",
			Location:     "Library",
			Date:         "2023-10-15",
			Image:        "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student1@abc.edu",
		},
		{
			ID:           "2",
			Kind:         model.KindFound,
			Title:        "Silver Apple AirPods Pro",
			Description:  "Found AirPods Pro in a white case near the Main Building entrance.",
			Category:     "Electronics",
			Location:     "Main Building",
			Date:         "2023-10-17",
			Image:        "https://images.unsplash.com/photo-1588423771073-b8903fbb85b5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student2@abc.edu",
		},
		{
			ID:           "3",
			Kind:         model.KindLost,
			Title:        "Blue North Face Backpack",
			Description:  "Lost my blue North Face backpack with all my textbooks in the cafeteria.",
			Category:     "Bags",
			Location:     "Cafeteria",
			Date:         "2023-10-16",
			Image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student3@abc.edu",
		},
		{
			ID:           "4",
			Kind:         model.KindFound,
			Title:        "Student ID Card",
			Description:  "Found a student ID card for Sarah Johnson near the Science Building.",
			Category:     "ID Cards",
			Location:     "Science Building",
			Date:         "2023-10-18",
			Image:        "https://images.unsplash.com/photo-1571867424488-4565932edb41?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student4@abc.edu",
		},
		{
			ID:           "5",
			Kind:         model.KindLost,
			Title:        "Red Textbook - Introduction to Psychology",
			Description:  "Lost my Psychology textbook somewhere in the library.",
			Category:     "Books",
			Location:     "Library",
			Date:         "2023-10-14",
			Image:        "https://images.unsplash.com/photo-1544947950-fa07a98d237f?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student5@abc.edu",
		},
		{
			ID:           "6",
			Kind:         model.KindFound,
			Title:        "Black Leather Wallet",
			Description:  "Found a black leather wallet with some cash and cards near the gym entrance.",
			Category:     "Wallets",
			Location:     "Gym",
			Date:         "2023-10-19",
			Image:        "https://images.unsplash.com/photo-1556656793-08538906a9f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student6@abc.edu",
		},
		{
			ID:           "7",
			Kind:         model.KindLost,
			Title:        "Car Keys with Blue Keychain",
			Description:  "Lost my car keys with a distinctive blue keychain in the parking lot.",
			Category:     "Keys",
			Location:     "Parking Lot",
			Date:         "2023-10-15",
			Image:        "https://images.unsplash.com/photo-1514316703755-dca7d7d9d882?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusClaimed,
			ContactEmail: "student7@abc.edu",
		},
		{
			ID:           "8",
			Kind:         model.KindFound,
			Title:        "Prescription Glasses",
			Description:  "Found prescription glasses with tortoise shell frames in the Arts Building.",
			Category:     "Accessories",
			Location:     "Arts Building",
			Date:         "2023-10-17",
			Image:        "https://images.unsplash.com/photo-1591076482161-42ce6da69f67?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Status:       model.StatusPending,
			ContactEmail: "student8@abc.edu",
		},
	}
}
