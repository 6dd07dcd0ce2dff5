package main

import (
	"fmt"
	"log"
	"os"

	"github.com/itsananyaaa/Pocket-Plans/di"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/util"
)

// runRecommendationDemo exercises the full pipeline against the fixture
// clients and renders the candidate map. Handy when poking at scoring
// changes without a Redis or API key.
func runRecommendationDemo(container *di.Container) {
	log.Println("Running: runRecommendationDemo")

	req := models.RecommendRequest{
		Location:   "Montreal",
		Time:       "90",
		Preference: "chill",
		Budget:     "budget",
	}
	records, err := container.RecommendationService.Recommend(req)
	if err != nil {
		log.Println("Error while running runRecommendationDemo: ", err)
		return
	}
	util.PrintRecommendationsPartially(records)

	plotDemoCandidates(container)
}

func plotDemoCandidates(container *di.Container) {
	geo, err := container.GeoapifyAPI.GeocodeSearch("Montreal")
	if err != nil || !geo.Found {
		log.Println("Demo geocode failed, skipping candidate map")
		return
	}
	candidates, err := container.GeoapifyAPI.GetPlacesNearby(geo.Lat, geo.Lon, []string{"catering.cafe", "leisure.park"})
	if err != nil {
		log.Println("Demo places lookup failed, skipping candidate map")
		return
	}
	util.PlotCandidateMap(geo.Lat, geo.Lon, candidates, "candidate_map.html")
}

func main() {
	env := os.Getenv("POCKET_PLANS_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)
	defer container.Close()

	if os.Getenv("POCKET_PLANS_DEMO") == "1" {
		runRecommendationDemo(container)
	}

	fmt.Println("starting server!")
	container.PocketPlansHttpServer.Start()
	fmt.Println("server stopped!")
}
