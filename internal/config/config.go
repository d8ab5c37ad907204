package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerName  string
	LogLevel    string
	MetricsPort string

	SchleiermacherURL       string
	SchleiermacherAppPath   string
	SchleiermacherDataPath  string
	SchleiermacherCachePath string
	SchleiermacherUsername  string
	SchleiermacherPassword  string
	SchleiermacherLocal     bool

	ActaBorussicaURL      string
	ActaBorussicaAppPath  string
	ActaBorussicaDataPath string
	ActaBorussicaUsername string
	ActaBorussicaPassword string

	CorrespSearchURL string
	GNDAPIURL        string
	GeoNamesAPIURL   string
	GeoNamesUsername string
	WikidataAPIURL   string

	StoreTimeout     time.Duration
	AuthorityTimeout time.Duration
	AuthorityRPS     float64
}

func Load() Config {
	return Config{
		ServerName:  mustEnv("EDITIONS_SERVER_NAME", "Digital Editions"),
		LogLevel:    mustEnv("EDITIONS_LOG_LEVEL", "info"),
		MetricsPort: mustEnv("EDITIONS_METRICS_PORT", "9090"),

		SchleiermacherURL:       mustEnv("EDITIONS_SD_URL", "http://localhost:8080"),
		SchleiermacherAppPath:   mustEnv("EDITIONS_SD_DB_PATH", "/db/apps/schleiermacher"),
		SchleiermacherDataPath:  mustEnv("EDITIONS_SD_DATA_PATH", "/db/projects/schleiermacher/data"),
		SchleiermacherCachePath: mustEnv("EDITIONS_SD_CACHE_PATH", "/db/projects/schleiermacher/cache"),
		SchleiermacherUsername:  mustEnv("EDITIONS_SD_USERNAME", "admin"),
		SchleiermacherPassword:  mustEnv("EDITIONS_SD_PASSWORD", ""),
		SchleiermacherLocal:     mustEnvBool("EDITIONS_SD_LOCAL", true),

		ActaBorussicaURL:      mustEnv("EDITIONS_AB_URL", "https://actaborussica.bbaw.de"),
		ActaBorussicaAppPath:  mustEnv("EDITIONS_AB_DB_PATH", "/db/apps/actaborussica"),
		ActaBorussicaDataPath: mustEnv("EDITIONS_AB_DATA_PATH", "/db/projects/actaborussica/data"),
		ActaBorussicaUsername: mustEnv("EDITIONS_AB_USERNAME", ""),
		ActaBorussicaPassword: mustEnv("EDITIONS_AB_PASSWORD", ""),

		CorrespSearchURL: mustEnv("EDITIONS_CS_API_URL", "https://correspsearch.net/api/v2.0"),
		GNDAPIURL:        mustEnv("EDITIONS_GND_API_URL", "https://lobid.org/gnd"),
		GeoNamesAPIURL:   mustEnv("EDITIONS_GEONAMES_API_URL", "http://api.geonames.org"),
		GeoNamesUsername: mustEnv("EDITIONS_GEONAMES_USERNAME", ""),
		WikidataAPIURL:   mustEnv("EDITIONS_WIKIDATA_API_URL", "https://www.wikidata.org/w/api.php"),

		StoreTimeout:     mustEnvDuration("EDITIONS_STORE_TIMEOUT", 30*time.Second),
		AuthorityTimeout: mustEnvDuration("EDITIONS_AUTHORITY_TIMEOUT", 15*time.Second),
		AuthorityRPS:     mustEnvFloat("EDITIONS_AUTHORITY_RPS", 2.0),
	}
}

// localStoreURL is the developer eXist-db instance used when an edition
// runs in local mode.
const localStoreURL = "http://localhost:8080"

// SchleiermacherStore resolves the connection settings for the
// Schleiermacher backend. In local mode the configured URL is ignored
// and the client talks to the developer instance.
func (c Config) SchleiermacherStore() (baseURL, username, password string) {
	if c.SchleiermacherLocal {
		return localStoreURL, c.SchleiermacherUsername, c.SchleiermacherPassword
	}
	return c.SchleiermacherURL, c.SchleiermacherUsername, c.SchleiermacherPassword
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
