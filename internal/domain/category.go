package domain

import "fmt"

// Category classifies an expense for reporting. The set is closed: any
// value outside the nine enumerated categories is rejected at the boundary.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryHealthcare     Category = "healthcare"
	CategoryTravel         Category = "travel"
	CategoryEducation      Category = "education"
	CategoryOther          Category = "other"
)

var categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryOther,
}

var categoryDisplayNames = map[Category]string{
	CategoryFood:           "Food & Dining",
	CategoryTransportation: "Transportation",
	CategoryHousing:        "Housing & Utilities",
	CategoryEntertainment:  "Entertainment",
	CategoryShopping:       "Shopping",
	CategoryHealthcare:     "Healthcare",
	CategoryTravel:         "Travel",
	CategoryEducation:      "Education",
	CategoryOther:          "Other",
}

// Categories returns all valid categories in their canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// DisplayName returns the human-readable label for the category.
// The mapping is total over valid categories.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}
