package entity

import "slices"

// Category is the closed set of post categories.
type Category string

const (
	CategoryTech          Category = "Tech"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryEntertainment Category = "Entertainment"
)

var allCategories = []Category{
	CategoryTech,
	CategoryLifestyle,
	CategoryHealth,
	CategoryEducation,
	CategoryEntertainment,
}

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return slices.Clone(allCategories)
}

// IsValid reports whether c is one of the exact, case-sensitive labels.
func (c Category) IsValid() bool {
	return slices.Contains(allCategories, c)
}

func (c Category) String() string {
	return string(c)
}
