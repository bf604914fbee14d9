// Package config loads runtime settings from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	envServerURL    = "TABLETURF_SERVER_URL"
	envRoomCode     = "TABLETURF_ROOM_CODE"
	envBoardFlipped = "TABLETURF_BOARD_FLIPPED"
	envLogLevel     = "TABLETURF_LOG_LEVEL"
)

const defaultServerURL = "ws://localhost:8080/ws"

// Config holds the settings the client starts with.
type Config struct {
	// ServerURL is the websocket endpoint of the game server.
	ServerURL string
	// RoomCode joins an existing room when set; otherwise a new room is
	// opened.
	RoomCode string
	// BoardFlipped renders the board upside down, the way the bravo player
	// usually views it.
	BoardFlipped bool
	// LogLevel is a logrus level name.
	LogLevel logrus.Level
}

// Load reads the configuration from the environment. A .env file in the
// working directory is folded in first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		ServerURL: getString(envServerURL, defaultServerURL),
		RoomCode:  getString(envRoomCode, ""),
		LogLevel:  logrus.InfoLevel,
	}

	flipped, err := getBool(envBoardFlipped, false)
	if err != nil {
		return Config{}, err
	}
	cfg.BoardFlipped = flipped

	if raw := os.Getenv(envLogLevel); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return value, nil
}
