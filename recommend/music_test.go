package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMusicRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		vibe      string
		tags      []string
		want      []string
	}{
		{
			name:      "rainy cafe",
			condition: "light rain",
			vibe:      "chill",
			tags:      []string{"catering.cafe"},
			want:      []string{"Lo-fi Beats", "Jazz Piano", "Acoustic Rain"},
		},
		{
			name:      "rainy bar",
			condition: "Rain",
			vibe:      "night",
			tags:      []string{"catering.bar"},
			want:      []string{"Smooth Jazz", "Blues", "Neo Soul"},
		},
		{
			name:      "rainy anywhere else",
			condition: "drizzle",
			vibe:      "chill",
			tags:      []string{"entertainment.museum"},
			want:      []string{"Melancholy Indie", "Ambient Electronic", "Chillstep"},
		},
		{
			name:      "sunny park",
			condition: "Clear",
			vibe:      "chill",
			tags:      []string{"leisure.park"},
			want:      []string{"Indie Pop", "Acoustic Folk", "Sunny Vibes"},
		},
		{
			name:      "sunny gym",
			condition: "sunny",
			vibe:      "active",
			tags:      []string{"sport.fitness"},
			want:      []string{"High Tempo pop", "Electronic Dance", "Workout Mix"},
		},
		{
			name:      "cloudy default",
			condition: "Clouds",
			vibe:      "chill",
			want:      []string{"Chill Hop", "Modern Rock", "Alternative"},
		},
		{
			name:      "party vibe overrides the weather triple",
			condition: "Rain",
			vibe:      "party",
			tags:      []string{"catering.bar"},
			want:      []string{"EDM", "Top 40 Remixes", "House"},
		},
		{
			name:      "romantic override",
			condition: "Clear",
			vibe:      "romantic",
			tags:      []string{"catering.restaurant"},
			want:      []string{"R&B", "Slow Jams", "Love Ballads"},
		},
		{
			name:      "work override",
			condition: "Clouds",
			vibe:      "work",
			tags:      []string{"office.coworking"},
			want:      []string{"Classical", "Instrumental", "White Noise"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MusicRecommendations(test.condition, test.vibe, ClassifyTags(test.tags))
			assert.Equal(t, test.want, got)
		})
	}
}

func TestMusicRecommendations_AlwaysExactlyThreeDistinct(t *testing.T) {
	conditions := []string{"Rain", "Clear", "Clouds", "Snow", ""}
	vibes := []string{"chill", "party", "romantic", "work", "mysterious", ""}

	for _, condition := range conditions {
		for _, vibe := range vibes {
			got := MusicRecommendations(condition, vibe, TagSet{})
			if len(got) != 3 {
				t.Fatalf("(%q, %q): expected 3 entries, got %v", condition, vibe, got)
			}
			seen := map[string]bool{}
			for _, entry := range got {
				if seen[entry] {
					t.Errorf("(%q, %q): duplicate entry %q", condition, vibe, entry)
				}
				seen[entry] = true
			}
		}
	}
}
