package recommend

import "strings"

const musicListSize = 3

var musicFallbacks = []string{"Pop Essentials", "Daily Mix", "Top Hits"}

// MusicRecommendations picks exactly 3 genre labels for a venue: a
// weather-dominant base triple, an unconditional vibe override, then
// dedup and padding from the fixed fallback list.
func MusicRecommendations(condition, vibe string, tags TagSet) []string {
	w := strings.ToLower(condition)
	v := strings.ToLower(vibe)

	var recommendations []string

	// 1. Weather dominant.
	switch {
	case strings.Contains(w, "rain") || strings.Contains(w, "drizzle"):
		switch {
		case tags.Has(CategoryCafe):
			recommendations = []string{"Lo-fi Beats", "Jazz Piano", "Acoustic Rain"}
		case tags.Has(CategoryBar):
			recommendations = []string{"Smooth Jazz", "Blues", "Neo Soul"}
		default:
			recommendations = []string{"Melancholy Indie", "Ambient Electronic", "Chillstep"}
		}
	case strings.Contains(w, "clear") || strings.Contains(w, "sun"):
		switch {
		case tags.Has(CategoryPark):
			recommendations = []string{"Indie Pop", "Acoustic Folk", "Sunny Vibes"}
		case tags.Has(CategoryGym):
			recommendations = []string{"High Tempo pop", "Electronic Dance", "Workout Mix"}
		default:
			recommendations = []string{"Upbeat Pop", "Summer Hits", "Feel Good"}
		}
	default:
		recommendations = []string{"Chill Hop", "Modern Rock", "Alternative"}
	}

	// 2. Vibe overrides the whole triple on a strong match.
	switch {
	case strings.Contains(v, "party") || strings.Contains(v, "energetic"):
		recommendations = []string{"EDM", "Top 40 Remixes", "House"}
	case strings.Contains(v, "romantic"):
		recommendations = []string{"R&B", "Slow Jams", "Love Ballads"}
	case strings.Contains(v, "focus") || strings.Contains(v, "work"):
		recommendations = []string{"Classical", "Instrumental", "White Noise"}
	}

	// 3. Dedupe, pad with fallbacks, exactly 3 entries.
	final := newItemSet(recommendations...)
	for _, f := range musicFallbacks {
		if len(final.list()) >= musicListSize {
			break
		}
		final.add(f)
	}
	return final.list()[:musicListSize]
}
