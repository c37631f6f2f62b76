package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	CatalogPath string
	FontPath    string
}

// LoadEnv reads a .env file when one exists. Call before ParseFlags so
// env fallbacks see the file's values. A missing file is fine.
func LoadEnv() {
	_ = godotenv.Load()
}

// ParseFlags validates flags with environment-variable fallbacks.
// Nothing is mandatory: the tool must start even without a catalog file
// (it degrades to an empty catalog).
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mission-market", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.CatalogPath, "c", "", "Product catalog CSV path")
	fs.StringVar(&cfg.FontPath, "f", "", "TTF font for summary images (optional)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5022 // default
		}
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "products.csv"
	}

	if cfg.FontPath == "" {
		cfg.FontPath = os.Getenv("FONT_PATH")
	}

	return cfg, nil
}
