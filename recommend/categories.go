package recommend

import "strings"

// Category is the closed vocabulary the scorer and artifact generators test
// against. Raw provider tags are classified once per candidate; tags outside
// the table are kept in TagSet.Unknown and match nothing.
type Category string

const (
	CategoryCafe          Category = "cafe"
	CategoryPark          Category = "park"
	CategoryMuseum        Category = "museum"
	CategoryRestaurant    Category = "restaurant"
	CategoryBar           Category = "bar"
	CategoryGym           Category = "gym"
	CategoryCulture       Category = "culture"
	CategorySights        Category = "sights"
	CategoryBooks         Category = "books"
	CategoryCoworking     Category = "coworking"
	CategoryEntertainment Category = "entertainment"
)

// tagTable maps Geoapify category strings to vocabulary entries.
var tagTable = map[string][]Category{
	"catering.cafe":               {CategoryCafe},
	"catering.restaurant":         {CategoryRestaurant},
	"catering.bar":                {CategoryBar},
	"catering.pub":                {CategoryBar},
	"leisure.park":                {CategoryPark},
	"entertainment.activity_park": {CategoryPark},
	"national_park":               {CategoryPark},
	"sport":                       {CategoryGym},
	"sport.fitness":               {CategoryGym},
	"entertainment.museum":        {CategoryMuseum},
	"entertainment.culture":       {CategoryCulture},
	"entertainment":               {CategoryEntertainment},
	"commercial.books":            {CategoryBooks},
	"tourism.sights":              {CategorySights},
	"office.coworking":            {CategoryCoworking},
}

// TagSet is the classified category membership of one candidate.
type TagSet struct {
	categories map[Category]struct{}
	Unknown    []string
}

// ClassifyTags builds a TagSet from raw provider tags.
func ClassifyTags(raw []string) TagSet {
	set := TagSet{categories: make(map[Category]struct{})}
	for _, tag := range raw {
		cats, ok := tagTable[strings.ToLower(strings.TrimSpace(tag))]
		if !ok {
			set.Unknown = append(set.Unknown, tag)
			continue
		}
		for _, c := range cats {
			set.categories[c] = struct{}{}
		}
	}
	return set
}

// Has reports membership of a single category.
func (t TagSet) Has(c Category) bool {
	_, ok := t.categories[c]
	return ok
}

// HasAny reports membership of at least one of the given categories.
func (t TagSet) HasAny(cs ...Category) bool {
	for _, c := range cs {
		if t.Has(c) {
			return true
		}
	}
	return false
}

// Free-tier fallback pair when the budget restriction empties the filter.
var freeTierFallback = []string{"leisure.park", "tourism.sights"}

// CategoriesForVibe maps a vibe label and budget tier to the provider
// category filter. The free tier keeps only park/culture/sights-like
// categories; the premium tier force-adds restaurants.
func CategoriesForVibe(vibe, budget string) []string {
	v := strings.ToLower(vibe)

	var categories []string
	switch {
	case strings.Contains(v, "active"), strings.Contains(v, "sport"):
		categories = []string{"sport", "leisure.park", "entertainment.activity_park"}
	case strings.Contains(v, "chill"), strings.Contains(v, "relax"):
		categories = []string{"catering.cafe", "commercial.books", "leisure.park"}
	case strings.Contains(v, "culture"), strings.Contains(v, "art"):
		categories = []string{"entertainment.museum", "entertainment.culture"}
	case strings.Contains(v, "night"), strings.Contains(v, "fun"):
		categories = []string{"entertainment", "catering.bar", "catering.restaurant"}
	case strings.Contains(v, "romantic"):
		categories = []string{"catering.restaurant", "leisure.park", "tourism.sights"}
	default:
		categories = []string{"catering.cafe", "leisure.park"}
	}

	switch NormalizeBudget(budget) {
	case BudgetFree:
		var kept []string
		for _, c := range categories {
			if ClassifyTags([]string{c}).HasAny(CategoryPark, CategoryCulture, CategorySights) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			kept = append(kept, freeTierFallback...)
		}
		categories = kept
	case BudgetPremium:
		hasRestaurant := false
		for _, c := range categories {
			if c == "catering.restaurant" {
				hasRestaurant = true
				break
			}
		}
		if !hasRestaurant {
			categories = append(categories, "catering.restaurant")
		}
	}

	return categories
}
