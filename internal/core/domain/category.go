package domain

// Category is a static (id, display name, icon) triple. The set is fixed at
// process start and not user-editable.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var toyCategories = []Category{
	{ID: "building-blocks", Name: "Building Blocks", Icon: "🧱"},
	{ID: "dolls-figures", Name: "Dolls & Action Figures", Icon: "👧"},
	{ID: "board-games", Name: "Board Games", Icon: "🎲"},
	{ID: "vehicles", Name: "Vehicles & RC", Icon: "🚗"},
	{ID: "educational", Name: "Educational Toys", Icon: "📚"},
	{ID: "puzzles", Name: "Puzzles", Icon: "🧩"},
	{ID: "outdoor", Name: "Outdoor Toys", Icon: "🏈"},
	{ID: "stuffed-animals", Name: "Stuffed Animals", Icon: "🧸"},
	{ID: "infant-toys", Name: "Infant Toys", Icon: "👶"},
	{ID: "other", Name: "Other Toys", Icon: "🎁"},
}

// Categories returns the full category set in display order.
func Categories() []Category {
	out := make([]Category, len(toyCategories))
	copy(out, toyCategories)
	return out
}

// ResolveCategory maps a category identifier to its display name.
// Unknown identifiers are returned unchanged, so free-text categories
// entered directly still pass through.
func ResolveCategory(id string) string {
	for _, c := range toyCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// CategoryNameByID maps a category identifier to its display name and
// reports whether the identifier is part of the static set.
func CategoryNameByID(id string) (string, bool) {
	for _, c := range toyCategories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
