package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/MCKesav/PaletteLive-website/api"
	"github.com/MCKesav/PaletteLive-website/datastore"
	"github.com/MCKesav/PaletteLive-website/migrations"
	"github.com/MCKesav/PaletteLive-website/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseName:       getEnv("DB_NAME", "palettelive"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900),     // 15 minutes
		JwtRefreshDuration: getEnvInt("JWT_REFRESH_DURATION", 604800), // 7 days
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:            getEnvBool("DEV_MODE", true),
	}

	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(config.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}
	defer dbConn.Close()

	// Run database migrations
	fmt.Println("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create user repository
	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	// Create palette repository
	paletteRepo, paletteRepoErr := datastore.NewPaletteDatabase(dbConn)
	if paletteRepoErr != nil {
		log.Fatalf("Failed to create palette repository: %v", paletteRepoErr)
	}

	// Create preset repository
	presetRepo, presetRepoErr := datastore.NewPresetDatabase(dbConn)
	if presetRepoErr != nil {
		log.Fatalf("Failed to create preset repository: %v", presetRepoErr)
	}

	// Create share repository
	shareRepo, shareRepoErr := datastore.NewShareDatabase(dbConn)
	if shareRepoErr != nil {
		log.Fatalf("Failed to create share repository: %v", shareRepoErr)
	}

	// Create application
	app := &api.Application{
		Config:      config,
		UserRepo:    userRepo,
		PaletteRepo: paletteRepo,
		PresetRepo:  presetRepo,
		ShareRepo:   shareRepo,
	}

	// Start scheduler for daily maintenance
	maintenance := scheduler.NewScheduler(userRepo, shareRepo)
	maintenance.Start()

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("PaletteLive API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
