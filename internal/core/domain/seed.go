package domain

import "time"

// SeedListings returns the fixed initial listing set used when no persisted
// collection exists. Returned slices are fresh copies; callers may mutate.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:          "1",
			Title:       "LEGO Star Wars Imperial Star Destroyer",
			Description: "Complete set with all pieces and instructions. Barely played with.",
			Price:       "Free",
			Condition:   ConditionLikeNew,
			Category:    "Building Blocks",
			Images: []string{
				"https://images.unsplash.com/photo-1518946222227-364f22132616?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1609020697742-71fd6c1f8a4b?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			Location:  "Brooklyn, NY",
			CreatedAt: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
			UserID:    "1",
		},
		{
			ID:          "2",
			Title:       "Baby Doll Collection",
			Description: "Set of 3 dolls with clothes and accessories. My daughter has outgrown them.",
			Price:       "Free",
			Condition:   ConditionGood,
			Category:    "Dolls & Action Figures",
			Images: []string{
				"https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			Location:  "Manhattan, NY",
			CreatedAt: time.Date(2023, 10, 12, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 10, 12, 0, 0, 0, 0, time.UTC),
			UserID:    "2",
		},
		{
			ID:          "3",
			Title:       "Wooden Train Set",
			Description: "Beautiful wooden train set with tracks, bridges, and buildings. A few small scratches but otherwise perfect.",
			Price:       "Free",
			Condition:   ConditionGood,
			Category:    "Vehicles & RC",
			Images: []string{
				"https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
				"https://images.unsplash.com/photo-1618842676088-c4d48a6a7c9d?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			Location:  "Queens, NY",
			CreatedAt: time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC),
			UserID:    "1",
		},
		{
			ID:          "4",
			Title:       "Monopoly Board Game",
			Description: "Classic Monopoly game, complete with all pieces and money.",
			Price:       "Free",
			Condition:   ConditionGood,
			Category:    "Board Games",
			Images: []string{
				"https://images.unsplash.com/photo-1611371805429-8b5c1f0536a2?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			Location:  "Bronx, NY",
			CreatedAt: time.Date(2023, 10, 8, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 10, 8, 0, 0, 0, 0, time.UTC),
			UserID:    "2",
		},
		{
			ID:          "5",
			Title:       "Remote Control Car",
			Description: "Fast RC car with rechargeable battery. Great condition, barely used.",
			Price:       "Free",
			Condition:   ConditionLikeNew,
			Category:    "Vehicles & RC",
			Images: []string{
				"https://images.unsplash.com/photo-1584641911870-6196a92c1920?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
			},
			Location:  "Staten Island, NY",
			CreatedAt: time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC),
			UserID:    "1",
		},
	}
}

// SeedUsers returns the fixed login roster. Login matches these accounts by
// email; passwords are accepted but never checked.
func SeedUsers() []User {
	return []User{
		{
			ID:       "1",
			Name:     "John Doe",
			Email:    "john@example.com",
			Avatar:   "https://randomuser.me/api/portraits/men/1.jpg",
			Location: "New York",
			Bio:      "Father of two who loves trading toys!",
			Rating:   4.8,
			Role:     RoleUser,
		},
		{
			ID:       "2",
			Name:     "Admin User",
			Email:    "admin@example.com",
			Avatar:   "https://randomuser.me/api/portraits/women/1.jpg",
			Location: "San Francisco",
			Bio:      "Platform administrator",
			Rating:   5.0,
			Role:     RoleAdmin,
		},
	}
}
