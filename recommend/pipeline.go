package recommend

import (
	"fmt"
	"sort"

	"github.com/itsananyaaa/Pocket-Plans/models"
)

const (
	// TopPicks is the maximum number of recommendations returned.
	TopPicks = 6
	// MaxSurfacedReasons caps the reasons surfaced to the caller.
	MaxSurfacedReasons = 2

	walkMetersPerMinute = 80
)

const (
	fallbackName   = "City Walk"
	fallbackScore  = 80
	fallbackReason = "Explore the area on foot!"
)

// Pipeline turns a context and a raw candidate list into the final ordered
// response records: normalize, score, stable sort, truncate to the top
// picks, then attach the derived artifacts.
type Pipeline struct {
	scorer *Scorer
}

func NewPipeline(scorer *Scorer) *Pipeline {
	return &Pipeline{scorer: scorer}
}

// Rank scores and orders the candidates and attaches the derived artifacts
// to the top picks. An empty candidate list yields the single fixed
// city-walk record instead of an empty response.
func (p *Pipeline) Rank(ctx Context, candidates []models.Candidate) []models.PlaceRecommendation {
	weather, budget := Normalize(ctx.Weather.Condition, ctx.Budget)

	if len(candidates) == 0 {
		return []models.PlaceRecommendation{p.record(ctx, fallbackCandidate())}
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, p.scorer.Score(ctx, weather, budget, candidate))
	}

	// Equal scores keep their input order; stability is part of the contract.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > TopPicks {
		scored = scored[:TopPicks]
	}

	records := make([]models.PlaceRecommendation, 0, len(scored))
	for _, pick := range scored {
		records = append(records, p.record(ctx, pick))
	}
	return records
}

// record attaches the derived artifacts and human-facing strings to one
// surviving candidate.
func (p *Pipeline) record(ctx Context, pick ScoredCandidate) models.PlaceRecommendation {
	tags := ClassifyTags(pick.Categories)

	reasons := pick.Reasons
	if len(reasons) > MaxSurfacedReasons {
		reasons = reasons[:MaxSurfacedReasons]
	}

	return models.PlaceRecommendation{
		Name:                 pick.Name,
		Distance:             fmt.Sprintf("%d min walk", int(pick.Distance/walkMetersPerMinute)),
		Duration:             fmt.Sprintf("%d Minutes", ctx.TimeAvailable),
		Reason:               reasons,
		Score:                pick.Score,
		Weather:              fmt.Sprintf("%s, %d°C", ctx.Weather.Condition, int(ctx.Weather.Temp)),
		MustTake:             PackingList(ctx.Weather, ctx.Vibe, tags),
		MusicRecommendations: MusicRecommendations(ctx.Weather.Condition, ctx.Vibe, tags),
		ImageURL:             ImageURL(tags),
	}
}

func fallbackCandidate() ScoredCandidate {
	return ScoredCandidate{
		Candidate: models.Candidate{Name: fallbackName},
		Score:     fallbackScore,
		Reasons:   []string{fallbackReason},
	}
}
