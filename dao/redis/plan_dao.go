package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/itsananyaaa/Pocket-Plans/db"
	"github.com/itsananyaaa/Pocket-Plans/models"
)

const FAVORITES_KEY_FORMAT_V1 = "favorites_v1:%s"
const HISTORY_KEY_V1 = "search_history_v1"
const HISTORY_MAX_ENTRIES = 100

const CANDIDATES_GEO_KEY_V1 = "candidates_geo_v1"
const CANDIDATES_GEO_MEMBER_FORMAT_V1 = "candidates_geo_place_v1:%s"

// PlanDAO handles favorites, search history and the candidate venue cache
// using Redis.
type PlanDAO struct {
	client db.RedisClient
}

// NewPlanDAO initializes a PlanDAO with the Redis client.
func NewPlanDAO(client db.RedisClient) *PlanDAO {
	return &PlanDAO{client: client}
}

// AddFavorite stores a favorite keyed by venue name. Duplicates are ignored.
func (dao *PlanDAO) AddFavorite(f models.Favorite) error {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, f.Name)
	if _, err := dao.client.Get(key); err == nil {
		log.Printf("[PlanDAO] Favorite %q already saved, skipping", f.Name)
		return nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal favorite %q: %w", f.Name, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set favorite in redis: %w", err)
	}
	return nil
}

// GetFavorites returns every saved favorite.
func (dao *PlanDAO) GetFavorites() ([]models.Favorite, error) {
	pattern := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite keys: %w", err)
	}

	favorites := make([]models.Favorite, 0, len(keys))
	for _, k := range keys {
		raw, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[PlanDAO] Missing favorite payload for %s, skipping", k)
			continue
		}
		var f models.Favorite
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal favorite JSON: %w", err)
		}
		favorites = append(favorites, f)
	}
	return favorites, nil
}

// AppendHistory records a search, newest first, capped at
// HISTORY_MAX_ENTRIES.
func (dao *PlanDAO) AppendHistory(entry models.HistoryEntry) error {
	if entry.Date == "" {
		entry.Date = time.Now().Format(time.RFC3339)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}
	if err := dao.client.LPush(HISTORY_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to push history entry: %w", err)
	}
	if err := dao.client.LTrim(HISTORY_KEY_V1, 0, HISTORY_MAX_ENTRIES-1); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}

// GetHistory returns up to limit entries, newest first.
func (dao *PlanDAO) GetHistory(limit int64) ([]models.HistoryEntry, error) {
	raw, err := dao.client.LRange(HISTORY_KEY_V1, 0, limit-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	entries := make([]models.HistoryEntry, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal([]byte(item), &entries[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
	}
	return entries, nil
}

// CacheCandidates upserts provider candidates into the geo index so repeat
// searches can survive a provider outage.
func (dao *PlanDAO) CacheCandidates(candidates []models.Candidate) error {
	ctx := dao.client.GetContext()
	for _, c := range candidates {
		memberKey := fmt.Sprintf(CANDIDATES_GEO_MEMBER_FORMAT_V1, candidateMember(c.Name))
		if err := dao.client.AddLocationWithJSON(ctx, CANDIDATES_GEO_KEY_V1, memberKey, c.Lat, c.Lon, c); err != nil {
			return fmt.Errorf("failed to cache candidate %q: %w", c.Name, err)
		}
	}
	return nil
}

// GetCachedCandidates retrieves cached candidates within radiusMeters.
func (dao *PlanDAO) GetCachedCandidates(lat, lon, radiusMeters float64) ([]models.Candidate, error) {
	payloads, err := dao.client.GetLocationsWithinRadius(CANDIDATES_GEO_KEY_V1, lat, lon, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached candidates: %w", err)
	}
	candidates := make([]models.Candidate, len(payloads))
	for i, payload := range payloads {
		if err := json.Unmarshal([]byte(payload), &candidates[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached candidate: %w", err)
		}
	}
	return candidates, nil
}

func candidateMember(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
