package cli

import "github.com/joeshaw/envdecode"

// Config holds the environment configuration for an interactive session.
// Seed 0 means "seed from the clock"; any other value makes the deal and
// first-seat selection reproducible.
type Config struct {
	LogFile string `env:"BLUFF_LOG_FILE,default=bluff_game.log"`
	Seed    int64  `env:"BLUFF_SEED,default=0"`
}

// ConfigFromEnv reads the session configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
