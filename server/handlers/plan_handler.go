package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/itsananyaaa/Pocket-Plans/models"
	services "github.com/itsananyaaa/Pocket-Plans/service"
)

type PlanHandler struct {
	planService *services.PlanService
}

func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetSuggestions handles GET /v1/suggestions.
func (h *PlanHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.planService.GetSuggestions())
}

// GetFavorites handles GET /v1/favorites.
func (h *PlanHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.planService.GetFavorites()
	if err != nil {
		log.Println("Error loading favorites:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	writeJSON(w, favorites)
}

// AddFavorite handles POST /v1/favorites.
func (h *PlanHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav models.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if fav.Name == "" {
		http.Error(w, "Missing name", http.StatusBadRequest)
		return
	}
	if err := h.planService.AddFavorite(fav); err != nil {
		log.Println("Error saving favorite:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Saved"})
}

// GetHistory handles GET /v1/history.
func (h *PlanHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.planService.GetHistory()
	if err != nil {
		log.Println("Error loading history:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}
	writeJSON(w, history)
}

// Ping handles GET /ping.
func (h *PlanHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
