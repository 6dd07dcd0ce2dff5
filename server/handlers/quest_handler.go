package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/itsananyaaa/Pocket-Plans/models"
	services "github.com/itsananyaaa/Pocket-Plans/service"
)

type QuestHandler struct {
	questService *services.QuestService
}

func NewQuestHandler(questService *services.QuestService) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// GenerateQuest handles POST /v1/quests.
func (h *QuestHandler) GenerateQuest(w http.ResponseWriter, r *http.Request) {
	var ctx models.QuestContext
	if err := json.NewDecoder(r.Body).Decode(&ctx); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if ctx.Location == nil {
		http.Error(w, "Missing location", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.questService.GenerateQuest(ctx))
}
