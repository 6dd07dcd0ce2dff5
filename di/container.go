package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/itsananyaaa/Pocket-Plans/api"
	"github.com/itsananyaaa/Pocket-Plans/api/geoapify"
	"github.com/itsananyaaa/Pocket-Plans/api/openweather"
	"github.com/itsananyaaa/Pocket-Plans/config"
	redisdao "github.com/itsananyaaa/Pocket-Plans/dao/redis"
	"github.com/itsananyaaa/Pocket-Plans/db"
	"github.com/itsananyaaa/Pocket-Plans/feedback"
	"github.com/itsananyaaa/Pocket-Plans/predictor"
	"github.com/itsananyaaa/Pocket-Plans/recommend"
	"github.com/itsananyaaa/Pocket-Plans/server"
	"github.com/itsananyaaa/Pocket-Plans/server/handlers"
	services "github.com/itsananyaaa/Pocket-Plans/service"
)

// Container holds all application dependencies.
type Container struct {
	Settings              config.Settings
	RedisClient           db.RedisClient
	PlanDao               *redisdao.PlanDAO
	Model                 *predictor.Model
	FeedbackRecorder      feedback.Recorder
	GeoapifyAPI           geoapify.GeoapifyAPI
	OpenWeatherAPI        openweather.OpenWeatherAPI
	Pipeline              *recommend.Pipeline
	RecommendationService *services.RecommendationService
	PlanService           *services.PlanService
	QuestService          *services.QuestService
	RecommendHandler      *handlers.RecommendHandler
	PlanHandler           *handlers.PlanHandler
	QuestHandler          *handlers.QuestHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	PocketPlansHttpServer *server.PocketPlansHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()
	settings := config.LoadSettings()

	// Initialize Redis client - the mock keeps everything in memory outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     settings.RedisAddress,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	planDao := redisdao.NewPlanDAO(redisClient)

	// Load the preference model once; an unloaded handle predicts nothing.
	model := predictor.Load(settings.ModelPath)

	// Feedback recording is best-effort: fall back to the noop recorder.
	var recorder feedback.Recorder
	sqliteRecorder, err := feedback.NewSQLiteRecorder(settings.FeedbackDBPath)
	if err != nil {
		log.Printf("Feedback store unavailable, samples will be dropped: %v", err)
		recorder = feedback.NewNoopRecorder()
	} else {
		recorder = sqliteRecorder
	}

	// Initialize external API clients - using mocks outside prod
	var geoapifyAPI geoapify.GeoapifyAPI
	var openWeatherAPI openweather.OpenWeatherAPI
	if env != "prod" {
		geoapifyAPI = geoapify.NewGeoapifyApiClientMock()
		openWeatherAPI = openweather.NewOpenWeatherApiClientMock()
		log.Printf("Using mock geoapify and openweather apis")
	} else {
		log.Printf("Using prod geoapify and openweather apis")
		geoapifyClient := geoapify.NewGeoapifyApiClient(api.NewHTTPClient(config.GEOAPIFY_ENDPOINT_BASE))
		geoapifyClient.SetAPIKey(settings.GeoapifyKey)
		geoapifyAPI = geoapifyClient

		openWeatherClient := openweather.NewOpenWeatherApiClient(api.NewHTTPClient(config.OPENWEATHER_ENDPOINT_BASE))
		openWeatherClient.SetAPIKey(settings.OpenWeatherKey)
		openWeatherAPI = openWeatherClient
	}

	// Core scoring pipeline
	scorer := recommend.NewScorer(model, recorder)
	pipeline := recommend.NewPipeline(scorer)

	// Service layer
	recommendationService := services.NewRecommendationService(geoapifyAPI, openWeatherAPI, pipeline, planDao)
	planService := services.NewPlanService(planDao)
	questService := services.NewQuestService()

	// Handlers
	recommendHandler := handlers.NewRecommendHandler(recommendationService)
	planHandler := handlers.NewPlanHandler(planService)
	questHandler := handlers.NewQuestHandler(questService)

	// Router and server
	muxRouter := mux.NewRouter()
	router := server.NewRouter(recommendHandler, planHandler, questHandler, muxRouter)
	httpServer := server.NewPocketPlansHttpServer(settings.ServerAddress, router, muxRouter)

	return &Container{
		Settings:              settings,
		RedisClient:           redisClient,
		PlanDao:               planDao,
		Model:                 model,
		FeedbackRecorder:      recorder,
		GeoapifyAPI:           geoapifyAPI,
		OpenWeatherAPI:        openWeatherAPI,
		Pipeline:              pipeline,
		RecommendationService: recommendationService,
		PlanService:           planService,
		QuestService:          questService,
		RecommendHandler:      recommendHandler,
		PlanHandler:           planHandler,
		QuestHandler:          questHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		PocketPlansHttpServer: httpServer,
	}
}

// Close releases resources that buffer work in the background.
func (c *Container) Close() {
	if r, ok := c.FeedbackRecorder.(*feedback.SQLiteRecorder); ok {
		if err := r.Close(); err != nil {
			log.Printf("Failed to close feedback store: %v", err)
		}
	}
}
