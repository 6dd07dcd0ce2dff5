package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient implements RedisClient on a real Redis connection, including
// the geo index used for the candidate venue cache.
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient wraps an already-configured go-redis client.
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis.
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis.
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// AddLocationWithJSON stores a geolocation member along with its JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %v", err)
	}

	// The JSON data lives under the same member key.
	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %v", err)
	}

	return nil
}

// GetLocationsWithinRadius finds all members within radiusMeters and returns
// their JSON data.
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lon, radiusMeters float64) ([]string, error) {
	results, err := r.client.GeoRadius(r.ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius:      radiusMeters,
		Unit:        "m",
		WithCoord:   false,
		WithDist:    false,
		WithGeoHash: false,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query geo radius: %v", err)
	}

	var payloads []string
	for _, loc := range results {
		data, err := r.client.Get(r.ctx, loc.Name).Result()
		if err != nil {
			log.Printf("[GeoRedisClient] No JSON data for member %s, skipping", loc.Name)
			continue
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}

// GetContext exposes the client's base context.
func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping checks the connection.
func (r *GeoRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Keys lists keys matching a pattern.
func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// LPush prepends a value to a list.
func (r *GeoRedisClient) LPush(key, value string) error {
	return r.client.LPush(r.ctx, key, value).Err()
}

// LRange reads a list slice.
func (r *GeoRedisClient) LRange(key string, start, stop int64) ([]string, error) {
	return r.client.LRange(r.ctx, key, start, stop).Result()
}

// LTrim trims a list to the given range.
func (r *GeoRedisClient) LTrim(key string, start, stop int64) error {
	return r.client.LTrim(r.ctx, key, start, stop).Err()
}
