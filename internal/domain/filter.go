package domain

import "strings"

type DietaryFilter string

const (
	FilterAll    DietaryFilter = "all"
	FilterVeg    DietaryFilter = "veg"
	FilterNonVeg DietaryFilter = "nonveg"
)

func (f DietaryFilter) Valid() bool {
	return f == FilterAll || f == FilterVeg || f == FilterNonVeg
}

// Matches applies the dietary rule: drinks count as veg, and the
// nonveg filter passes only NonVeg items.
func (f DietaryFilter) Matches(c Category) bool {
	switch f {
	case FilterVeg:
		return c == CategoryVeg || c == CategoryDrink
	case FilterNonVeg:
		return c == CategoryNonVeg
	default:
		return true
	}
}

func FilterMenu(items []MenuItem, f DietaryFilter) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if f.Matches(it.Category) {
			out = append(out, it)
		}
	}
	return out
}

// SearchMenu does a case-insensitive substring match over name,
// description and tags.
func SearchMenu(items []MenuItem, query string) []MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []MenuItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
			continue
		}
		for _, tag := range it.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
