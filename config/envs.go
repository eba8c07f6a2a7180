package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth  int    // Number of logical columns of a generated maze
	MazeHeight int    // Number of logical rows of a generated maze
	MazeErode  int    // Percentage of remaining interior walls to open after generation
	PathGlyph  rune   // Glyph used to draw the solved route
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel   string // Minimum log level (debug, info, warning, error)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 6),
		MazeErode:  getEnvAsIntWithDefault("MAZE_ERODE", 0),
		PathGlyph:  getEnvAsRuneWithDefault("PATH_GLYPH", '.'),
		HostIP:     getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, or the default if not set.
// A value that is set but cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsRuneWithDefault retrieves a single character environment variable, or the default
// if not set. A value that is not exactly one character is fatal.
func getEnvAsRuneWithDefault(key string, defaultValue rune) rune {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	runes := []rune(valueStr)
	if len(runes) != 1 {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a single character, got %q", key, valueStr)
	}
	return runes[0]
}
