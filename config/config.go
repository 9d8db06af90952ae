package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	Attach1   string // land + crop workbook
	Attach2   string // 2023 plantings + stats workbook
	OutputDir string

	Horizon   int
	Restarts  int
	MaxPasses int
	MinPlots  int
	MaxPlots  int
	MinArea   float64
	Seed      int64

	RunBoth bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}

	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "agroplan.db"),
		Attach1:   get("ATTACH1_PATH", "data/attachment1.xlsx"),
		Attach2:   get("ATTACH2_PATH", "data/attachment2.xlsx"),
		OutputDir: get("OUTPUT_DIR", "data/results"),
		Horizon:   getInt("HORIZON", 7),
		Restarts:  getInt("RESTARTS", 10),
		MaxPasses: getInt("MAX_PASSES", 100),
		MinPlots:  getInt("MIN_PLOTS", 2),
		MaxPlots:  getInt("MAX_PLOTS", 8),
		MinArea:   getFloat("MIN_AREA", 0.5),
		Seed:      int64(getInt("SEED", 0)),
		RunBoth:   get("RUN_BOTH", "false") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
