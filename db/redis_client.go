package db

import "context"

// RedisClient defines the operations the DAOs need from Redis.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radiusMeters float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
	LPush(key, value string) error
	LRange(key string, start, stop int64) ([]string, error)
	LTrim(key string, start, stop int64) error
}
