package cli

import (
	"testing"

	utils "github.com/bluffgame/bluff/internal"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// pin the environment: a stray exported variable must not leak in
		t.Setenv("BLUFF_LOG_FILE", "")
		t.Setenv("BLUFF_SEED", "")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.LogFile, "bluff_game.log")
		utils.AssertEqual(t, cfg.Seed, int64(0))
	})

	t.Run("overrides from the environment", func(t *testing.T) {
		t.Setenv("BLUFF_LOG_FILE", "/tmp/session.log")
		t.Setenv("BLUFF_SEED", "42")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.LogFile, "/tmp/session.log")
		utils.AssertEqual(t, cfg.Seed, int64(42))
	})
}
