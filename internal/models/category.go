package models

type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryCareer     Category = "Career"
	CategoryLife       Category = "Life"
	CategoryTravel     Category = "Travel"
	CategoryHealth     Category = "Health"
	CategoryEducation  Category = "Education"
	CategorySoftware   Category = "Software"
)

var Categories = []Category{
	CategoryTechnology,
	CategoryCareer,
	CategoryLife,
	CategoryTravel,
	CategoryHealth,
	CategoryEducation,
	CategorySoftware,
}

var categoryColors = map[Category]string{
	CategoryTechnology: "primary",
	CategoryCareer:     "warning",
	CategoryLife:       "success",
	CategoryTravel:     "danger",
	CategoryHealth:     "info",
	CategoryEducation:  "secondary",
	CategorySoftware:   "dark",
}

func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the badge color class used when rendering the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "primary"
}
