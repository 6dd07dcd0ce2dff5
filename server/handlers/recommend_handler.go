package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/itsananyaaa/Pocket-Plans/models"
	services "github.com/itsananyaaa/Pocket-Plans/service"
)

// Recommender is the slice of RecommendationService the handler needs.
type Recommender interface {
	Recommend(req models.RecommendRequest) ([]models.PlaceRecommendation, error)
}

type RecommendHandler struct {
	recommender Recommender
}

func NewRecommendHandler(recommender Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

// Recommend handles POST /v1/recommend.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	// 1) Parse and validate the request body
	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Location == "" {
		http.Error(w, "Missing location", http.StatusBadRequest)
		return
	}

	// 2) Run the pipeline
	records, err := h.recommender.Recommend(req)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			http.Error(w, "Location not found", http.StatusNotFound)
			return
		}
		log.Println("Error computing recommendations:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		log.Println("Error encoding response:", err)
	}
}
