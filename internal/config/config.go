package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
	// Environment controls whether internal error messages reach clients;
	// anything other than "development" suppresses them.
	Environment string         `yaml:"environment"`
	Waitlist    WaitlistConfig `yaml:"waitlist"`
	// EstimatedReviewTime is the display string echoed to applicants.
	EstimatedReviewTime string `yaml:"estimated_review_time"`
}

type WaitlistConfig struct {
	// SocialProofBase is added to the real signup count in public stats.
	SocialProofBase int    `yaml:"social_proof_base"`
	EstimatedLaunch string `yaml:"estimated_launch"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("WC_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("WC_DATABASE_PATH", "database.json"),
		Environment:  getEnv("WC_ENVIRONMENT", "development"),
		Waitlist: WaitlistConfig{
			SocialProofBase: 247,
			EstimatedLaunch: "30 days",
		},
		EstimatedReviewTime: "48 hours",
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
