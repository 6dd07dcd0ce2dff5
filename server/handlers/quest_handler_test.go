package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsananyaaa/Pocket-Plans/models"
	services "github.com/itsananyaaa/Pocket-Plans/service"
)

func TestGenerateQuest_Handler(t *testing.T) {
	handler := NewQuestHandler(services.NewQuestService())

	body := `{
		"user_id": "user-1",
		"location": {"lat": 45.5, "lon": -73.56},
		"time_available": 90,
		"weather_condition": "Clear",
		"vibe_preference": "Adventure",
		"budget_tier": "budget"
	}`
	rr := httptest.NewRecorder()
	handler.GenerateQuest(rr, httptest.NewRequest("POST", "/v1/quests", strings.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var quest models.QuestNetwork
	if err := json.NewDecoder(rr.Body).Decode(&quest); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if quest.QuestID == "" {
		t.Error("Expected a quest id")
	}
	if len(quest.Steps) != 2 {
		t.Errorf("Expected 2 steps, got %d", len(quest.Steps))
	}
}

func TestGenerateQuest_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{"location": `},
		{"missing location", `{"time_available": 60}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewQuestHandler(services.NewQuestService())
			rr := httptest.NewRecorder()
			handler.GenerateQuest(rr, httptest.NewRequest("POST", "/v1/quests", strings.NewReader(test.body)))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
		})
	}
}
