package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string

	CONTENT_PATH string
	DATE_LOCALE  string
	PUBLIC_URL   string

	LOG_LEVEL string
	LOG_HUMAN bool

	RELOAD_DEBOUNCE     time.Duration
	VIEW_FLUSH_INTERVAL time.Duration

	WRITE_COOLDOWN  time.Duration
	MEMORY_MAX_KEYS int
)

// Config is the loaded environment as one value, for code that prefers not
// to read the package variables.
type Config struct {
	Port        string
	DBURL       string
	CORSOrigin  string
	ContentPath string
	DateLocale  string
	PublicURL   string
	LogLevel    string
	LogHuman    bool

	ReloadDebounce    time.Duration
	ViewFlushInterval time.Duration

	// WriteCooldown is the per-client gap between POST /contact or
	// PUT /preferences calls. MemoryMaxKeys caps in-memory storage when
	// DB_URL is unset.
	WriteCooldown time.Duration
	MemoryMaxKeys int
}

// LoadEnv reads .env (if any) and the process environment into the package
// variables. Nothing is required: without DB_URL the app keeps preferences
// in memory.
func LoadEnv() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = getEnv("DB_URL", "")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	CONTENT_PATH = getEnv("CONTENT_PATH", "content/portfolio.yaml")
	DATE_LOCALE = getEnv("DATE_LOCALE", "id-ID")
	PUBLIC_URL = getEnv("PUBLIC_URL", "http://localhost:"+PORT)

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_HUMAN = getBool("LOG_HUMAN", false)

	RELOAD_DEBOUNCE = getDuration("RELOAD_DEBOUNCE", 250*time.Millisecond)
	VIEW_FLUSH_INTERVAL = getDuration("VIEW_FLUSH_INTERVAL", 5*time.Second)

	WRITE_COOLDOWN = getDuration("WRITE_COOLDOWN", 2*time.Second)
	MEMORY_MAX_KEYS = getInt("MEMORY_MAX_KEYS", 10000)

	return Current()
}

// Current snapshots the package variables.
func Current() Config {
	return Config{
		Port:              PORT,
		DBURL:             DB_URL,
		CORSOrigin:        CORS_ORIGIN,
		ContentPath:       CONTENT_PATH,
		DateLocale:        DATE_LOCALE,
		PublicURL:         PUBLIC_URL,
		LogLevel:          LOG_LEVEL,
		LogHuman:          LOG_HUMAN,
		ReloadDebounce:    RELOAD_DEBOUNCE,
		ViewFlushInterval: VIEW_FLUSH_INTERVAL,
		WriteCooldown:     WRITE_COOLDOWN,
		MemoryMaxKeys:     MEMORY_MAX_KEYS,
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
