package recommend

import (
	"strings"

	"github.com/itsananyaaa/Pocket-Plans/models"
)

const (
	coldThresholdCelsius = 10
	hotThresholdCelsius  = 25
)

// PackingList derives the must-take items for a venue from the raw weather
// reading (temperature matters, not just the 3-way category), the vibe and
// the venue's categories. Set semantics with a deterministic order.
func PackingList(weather models.WeatherReading, vibe string, tags TagSet) []string {
	items := newItemSet("Smartphone", "Wallet")

	cond := strings.ToLower(weather.Condition)
	if strings.Contains(cond, "rain") || strings.Contains(cond, "drizzle") {
		items.add("Umbrella", "Rain Jacket")
	}
	if strings.Contains(cond, "clear") || strings.Contains(cond, "sun") {
		items.add("Sunglasses", "Sunscreen")
	}
	if weather.Temp < coldThresholdCelsius {
		items.add("Warm Coat", "Gloves")
	}
	if weather.Temp > hotThresholdCelsius {
		items.add("Water Bottle", "Deodorant")
	}

	v := strings.ToLower(vibe)
	if strings.Contains(v, "active") || tags.HasAny(CategoryGym, CategoryPark) {
		items.add("Walking Shoes", "Towel")
	}
	if strings.Contains(v, "chill") || tags.Has(CategoryCafe) {
		items.add("Book/Kindle", "Headphones")
	}
	if strings.Contains(v, "work") || tags.Has(CategoryCoworking) {
		items.add("Laptop", "Charger")
	}
	if strings.Contains(v, "romantic") {
		items.add("Mints")
	}
	if tags.Has(CategoryMuseum) {
		items.add("Student ID")
	}

	return items.list()
}

// itemSet collapses duplicates while keeping insertion order.
type itemSet struct {
	seen  map[string]struct{}
	items []string
}

func newItemSet(items ...string) *itemSet {
	s := &itemSet{seen: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *itemSet) add(items ...string) {
	for _, item := range items {
		if _, dup := s.seen[item]; dup {
			continue
		}
		s.seen[item] = struct{}{}
		s.items = append(s.items, item)
	}
}

func (s *itemSet) list() []string {
	return s.items
}
