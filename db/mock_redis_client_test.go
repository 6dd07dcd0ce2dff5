package db

import (
	"context"
	"testing"
)

func TestMockRedisClient_SetGet(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if err := client.Set("key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := client.Get("key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "value" {
		t.Errorf("Expected value, got %q", value)
	}

	if _, err := client.Get("missing"); err == nil {
		t.Error("Expected an error for a missing key")
	}
}

func TestMockRedisClient_Keys(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	client.Set("favorites_v1:cafe", "a")
	client.Set("favorites_v1:park", "b")
	client.Set("other", "c")

	keys, err := client.Keys("favorites_v1:*")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 matching keys, got %v", keys)
	}
}

func TestMockRedisClient_Del(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	client.Set("key", "value")
	if err := client.Del("key"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, err := client.Get("key"); err == nil {
		t.Error("Expected the key to be gone")
	}
}

func TestMockRedisClient_GeoRoundTrip(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	payload := map[string]string{"name": "Corner Cafe"}
	if err := client.AddLocationWithJSON(client.GetContext(), "geo", "member1", 45.5, -73.56, payload); err != nil {
		t.Fatalf("AddLocationWithJSON: %v", err)
	}

	results, err := client.GetLocationsWithinRadius("geo", 45.5, -73.56, 5000)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	if results, _ := client.GetLocationsWithinRadius("empty", 0, 0, 100); len(results) != 0 {
		t.Errorf("Expected no results for an unknown geo key, got %v", results)
	}
}

func TestMockRedisClient_ListOps(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	for _, v := range []string{"a", "b", "c"} {
		if err := client.LPush("list", v); err != nil {
			t.Fatalf("LPush: %v", err)
		}
	}

	// Newest first.
	items, err := client.LRange("list", 0, -1)
	if err != nil {
		t.Fatalf("LRange: %v", err)
	}
	if len(items) != 3 || items[0] != "c" || items[2] != "a" {
		t.Errorf("Unexpected list contents: %v", items)
	}

	// Partial range.
	items, _ = client.LRange("list", 0, 1)
	if len(items) != 2 || items[1] != "b" {
		t.Errorf("Unexpected partial range: %v", items)
	}

	// Out-of-range start yields nothing.
	if items, _ := client.LRange("list", 5, 9); len(items) != 0 {
		t.Errorf("Expected empty range, got %v", items)
	}

	if err := client.LTrim("list", 0, 0); err != nil {
		t.Fatalf("LTrim: %v", err)
	}
	items, _ = client.LRange("list", 0, -1)
	if len(items) != 1 || items[0] != "c" {
		t.Errorf("Expected the trimmed list to keep the head, got %v", items)
	}
}

func TestMockRedisClient_Ping(t *testing.T) {
	if err := NewMockRedisClient(context.Background()).Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
