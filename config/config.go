package config

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Server config
const SERVER_ADDRESS = ":8080"

// Redis config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Geoapify (geocoding + places)
const GEOAPIFY_ENDPOINT_BASE = "https://api.geoapify.com"
const GEOAPIFY_API_KEY = "dd38f283afcf48e8a8ee8c1e81102a86"
const PLACES_SEARCH_RADIUS_METERS = 5000
const PLACES_SEARCH_LIMIT = 15

// OpenWeather
const OPENWEATHER_ENDPOINT_BASE = "https://api.openweathermap.org"
const OPENWEATHER_API_KEY = "0b095ed48ae02f8225c238988ebe108d"

// Predictor / feedback
const MODEL_RESOURCE = "model.json"
const FEEDBACK_DB_PATH = "feedback.db"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEOCODE_RESPONSE_RESOURCE = "geocode_response.json"
const PLACES_RESPONSE_RESOURCE = "places_response.json"
const WEATHER_RESPONSE_RESOURCE = "weather_response.json"

// CONFIG_FILE_ENV names an optional YAML file overriding the defaults.
const CONFIG_FILE_ENV = "POCKET_PLANS_CONFIG"

// Settings are the runtime knobs, defaulting to the constants above.
type Settings struct {
	ServerAddress  string `yaml:"server_address"`
	RedisAddress   string `yaml:"redis_address"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db"`
	GeoapifyKey    string `yaml:"geoapify_key"`
	OpenWeatherKey string `yaml:"openweather_key"`
	ModelPath      string `yaml:"model_path"`
	FeedbackDBPath string `yaml:"feedback_db_path"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ServerAddress:  SERVER_ADDRESS,
		RedisAddress:   REDIS_DB_ADDRESS,
		RedisPassword:  REDIS_DB_PASSWORD,
		RedisDB:        REDIS_DB,
		GeoapifyKey:    GEOAPIFY_API_KEY,
		OpenWeatherKey: OPENWEATHER_API_KEY,
		ModelPath:      GetResourcePath(MODEL_RESOURCE),
		FeedbackDBPath: FEEDBACK_DB_PATH,
	}
}

// LoadSettings merges the optional YAML file named by POCKET_PLANS_CONFIG
// over the defaults. A missing or unreadable file keeps the defaults.
func LoadSettings() Settings {
	settings := DefaultSettings()

	path := os.Getenv(CONFIG_FILE_ENV)
	if path == "" {
		return settings
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Printf("[Config] Could not read %s, using defaults: %v", path, err)
		return settings
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Printf("[Config] Could not parse %s, using defaults: %v", path, err)
		return DefaultSettings()
	}
	return settings
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

// GetResourcePath resolves a file under the resources directory.
func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
