package main

import (
	"log"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skysearch/internal/amadeus"
	"skysearch/internal/autocomplete"
	"skysearch/internal/cache"
	"skysearch/internal/handler"
	"skysearch/internal/ratelimit"
	"skysearch/internal/search"
	"skysearch/internal/store"
)

type Config struct {
	Port           string
	CacheEnabled   bool
	RedisHost      string
	RedisPort      string
	RedisTTL       time.Duration
	MemoryCacheCap int
	APIBaseURL     string
	APIKey         string
	APISecret      string
	APITimeout     time.Duration
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit(amadeus.EndpointToken, 1, 2)
	rateLimiter.SetEndpointLimit(amadeus.EndpointLocations, 5, 10)
	rateLimiter.SetEndpointLimit(amadeus.EndpointFlights, 2, 4)
	rateLimiter.SetEndpointLimit(amadeus.EndpointAirlines, 5, 10)

	clientCfg := amadeus.DefaultConfig()
	clientCfg.BaseURL = cfg.APIBaseURL
	clientCfg.ClientID = cfg.APIKey
	clientCfg.ClientSecret = cfg.APISecret
	clientCfg.Timeout = cfg.APITimeout
	clientCfg.RateLimiter = rateLimiter
	client := amadeus.NewClient(clientCfg)

	var flightCache cache.Cache
	var themePersister store.ThemePersister = store.NoOpThemePersister{}
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		flightCache = redisCache
		themePersister = store.NewRedisThemePersister(redisCache.Client())
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		flightCache = cache.NewMemoryCache(cfg.MemoryCacheCap, cfg.RedisTTL)
		log.Printf("In-memory cache enabled (capacity: %d, TTL: %v)", cfg.MemoryCacheCap, cfg.RedisTTL)
	}

	// Presentation flag: every response advertises the active theme.
	var themeFlag atomic.Value
	queryStore := store.New(themePersister, func(mode store.ThemeMode) {
		themeFlag.Store(string(mode))
	})
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if mode, ok := themeFlag.Load().(string); ok {
				c.Response().Header().Set("X-Theme", mode)
			}
			return next(c)
		}
	})

	controllers := map[string]*autocomplete.Controller{
		"origin": autocomplete.NewController(autocomplete.Config{
			Searcher: client,
			OnSelect: queryStore.SetOrigin,
		}),
		"destination": autocomplete.NewController(autocomplete.Config{
			Searcher: client,
			OnSelect: queryStore.SetDestination,
		}),
	}

	searchController := search.NewController(client, flightCache, queryStore)

	searchHandler := handler.NewSearchHandler(searchController, queryStore)
	formHandler := handler.NewFormHandler(queryStore)
	acHandler := handler.NewAutocompleteHandler(controllers)
	airlineHandler := handler.NewAirlineHandler(client)

	api := e.Group("/api/v1")

	api.POST("/flights/search", searchHandler.Submit)
	api.GET("/flights/results", searchHandler.Results)
	api.GET("/flights/summary", searchHandler.Summary)
	api.GET("/airlines/:code", airlineHandler.Lookup)

	api.GET("/search/form", formHandler.Get)
	api.PATCH("/search/form", formHandler.Update)
	api.POST("/search/form/trip-type/toggle", formHandler.ToggleTripType)
	api.POST("/search/form/swap", formHandler.SwapLocations)
	api.POST("/search/form/reset", formHandler.Reset)

	api.GET("/search/filters", formHandler.GetFilters)
	api.PATCH("/search/filters", formHandler.UpdateFilters)
	api.POST("/search/filters/reset", formHandler.ResetFilters)

	api.GET("/theme", formHandler.GetTheme)
	api.PUT("/theme", formHandler.SetTheme)
	api.POST("/theme/toggle", formHandler.ToggleTheme)

	api.GET("/autocomplete/:field", acHandler.State)
	api.POST("/autocomplete/:field/text", acHandler.Text)
	api.POST("/autocomplete/:field/select", acHandler.Select)
	api.POST("/autocomplete/:field/focus", acHandler.Focus)
	api.POST("/autocomplete/:field/dismiss", acHandler.Dismiss)

	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting skysearch server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", false),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisTTL:       getEnvDuration("CACHE_TTL", 5*time.Minute),
		MemoryCacheCap: getEnvInt("MEMORY_CACHE_CAPACITY", 32),
		APIBaseURL:     getEnv("AMADEUS_API_URL", "https://test.api.amadeus.com"),
		APIKey:         getEnv("AMADEUS_API_KEY", ""),
		APISecret:      getEnv("AMADEUS_API_SECRET", ""),
		APITimeout:     getEnvDuration("AMADEUS_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
