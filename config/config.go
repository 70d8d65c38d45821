package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Primary store config (server-level access point, no default schema)
	DBHost string
	DBPort int
	DBUser string
	DBPass string

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// Tenant resolution config
	SystemDatabases []string // Reserved database names skipped during discovery
	DBNameMaxLen    int      // Length cap for derived logical database names
	PrewarmOnBoot   bool     // Resolve every discoverable property at startup
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads and validates application configuration from .env file and environment variables.
func LoadConfig() error {
	// Load .env when present
	err := godotenv.Load()
	if err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBUser = getEnv("DB_USER", "root")
	Cfg.DBPass = getEnv("DB_PASS", "")

	portStr := getEnv("DB_PORT", "3306")
	portInt, _ := strconv.Atoi(portStr)
	Cfg.DBPort = portInt

	// Load logging config
	Cfg.LogLevel = getEnv("LOG_LEVEL", "DEBUG")
	Cfg.LogFile = getEnv("LOG_FILE", "/var/log/swiftin/swiftin-backend.log")

	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	// Reserved database names never probed during tenant discovery
	Cfg.SystemDatabases = getEnvStringSlice("SYSTEM_DATABASES", []string{
		"information_schema",
		"mysql",
		"performance_schema",
		"sys",
	})

	Cfg.DBNameMaxLen = getEnvInt("DB_NAME_MAX_LEN", 48)
	Cfg.PrewarmOnBoot = getEnvBool("PREWARM_ON_BOOT", false)

	log.Printf("[INFO] Config loaded - Store: %s@%s:%d, LogLevel: %s",
		Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.LogLevel)
	log.Printf("[INFO] System databases excluded from discovery: %v", Cfg.SystemDatabases)

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// getEnvStringSlice parses comma-separated environment variable into string slice
// Format: "item1,item2,item3" -> []string{"item1", "item2", "item3"}
func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		items := strings.Split(val, ",")
		result := make([]string, 0, len(items))
		for _, item := range items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultVal
}

// IsSystemDatabase checks if a database name is in the system exclusion list
func IsSystemDatabase(dbName string) bool {
	for _, sysDB := range Cfg.SystemDatabases {
		if dbName == sysDB {
			return true
		}
	}
	return false
}
