package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
)

// MockRedisClient simulates a Redis client for testing and local runs
// without a Redis server.
type MockRedisClient struct {
	data    map[string]string
	lists   map[string][]string
	geoData map[string]map[string]GeoLoc
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		lists:   make(map[string][]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds a geolocation member with JSON data.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns JSON data for every member under the geo
// key. The mock skips the actual distance math.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radiusMeters float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	var results []string
	for memberKey := range geoMembers {
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// GetContext exposes the mock's base context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	return nil
}

// Keys lists keys matching a glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.data {
		matched, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if matched {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Del removes a key from both the value and geo stores.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	for _, members := range m.geoData {
		delete(members, key)
	}
	return nil
}

// LPush prepends a value to a list.
func (m *MockRedisClient) LPush(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append([]string{value}, m.lists[key]...)
	return nil
}

// LRange reads a list slice with Redis range semantics for negative stops.
func (m *MockRedisClient) LRange(key string, start, stop int64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.lists[key]
	n := int64(len(list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return nil, nil
	}
	out := make([]string, stop-start+1)
	copy(out, list[start:stop+1])
	return out, nil
}

// LTrim trims a list to the given range.
func (m *MockRedisClient) LTrim(key string, start, stop int64) error {
	trimmed, err := m.LRange(key, start, stop)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = trimmed
	return nil
}
