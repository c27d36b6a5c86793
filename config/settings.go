package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	AppVersion = "v1.2.0"
	AppPort    = "3000"
	AppDebug   = false

	McpPort = "8080"
	McpHost = "localhost"

	// Cache settings. TTL bounds how long fetched document text stays
	// addressable; the sweep interval drives active eviction (0 disables it
	// and leaves only lazy expiry on read).
	CacheTTLMins           = 30
	CacheSweepIntervalMins = 5

	// Maximum characters returned by any non-deferred (full mode) response.
	TruncateLimit = 25000

	GdriveAccessToken   string
	GdriveDocsBaseURL   = "https://docs.googleapis.com"
	GdriveSheetsBaseURL = "https://sheets.googleapis.com"
	GdriveDriveBaseURL  = "https://www.googleapis.com"
)

func init() {
	if v := strings.TrimSpace(os.Getenv("GDRIVE_ACCESS_TOKEN")); v != "" {
		GdriveAccessToken = v
	}
	if v := strings.TrimSpace(os.Getenv("GDRIVE_DOCS_BASE_URL")); v != "" {
		GdriveDocsBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GDRIVE_SHEETS_BASE_URL")); v != "" {
		GdriveSheetsBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GDRIVE_DRIVE_BASE_URL")); v != "" {
		GdriveDriveBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_MINS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			CacheTTLMins = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CACHE_SWEEP_INTERVAL_MINS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			CacheSweepIntervalMins = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("TRUNCATE_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			TruncateLimit = n
		}
	}
}
