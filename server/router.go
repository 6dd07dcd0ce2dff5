package server

import (
	"github.com/gorilla/mux"

	"github.com/itsananyaaa/Pocket-Plans/server/handlers"
)

type Router struct {
	recommendHandler *handlers.RecommendHandler
	planHandler      *handlers.PlanHandler
	questHandler     *handlers.QuestHandler
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	recommendHandler *handlers.RecommendHandler,
	planHandler *handlers.PlanHandler,
	questHandler *handlers.QuestHandler,
	router *mux.Router) *Router {
	return &Router{
		recommendHandler: recommendHandler,
		planHandler:      planHandler,
		questHandler:     questHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON body {location, time, preference, budget}
	r.router.HandleFunc("/v1/recommend", r.recommendHandler.Recommend).Methods("POST")

	r.router.HandleFunc("/v1/suggestions", r.planHandler.GetSuggestions).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.planHandler.GetFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites", r.planHandler.AddFavorite).Methods("POST")
	r.router.HandleFunc("/v1/history", r.planHandler.GetHistory).Methods("GET")

	// expects a JSON body matching models.QuestContext
	r.router.HandleFunc("/v1/quests", r.questHandler.GenerateQuest).Methods("POST")

	r.router.HandleFunc("/ping", r.planHandler.Ping).Methods("GET")
}
