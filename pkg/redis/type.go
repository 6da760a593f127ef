package redis

import "time"

// Config holds Redis configuration
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

const (
	// DefaultConnectTimeout bounds the initial ping.
	DefaultConnectTimeout = 5 * time.Second
)
