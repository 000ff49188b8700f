package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix of every environment variable overriding a setting.
const EnvPrefix = "PATHREC_"

// ApplyEnv overrides settings with the values of PATHREC_* environment variables that are set,
// as named by the env tags of Settings. Settings without a variable set keep their value.
func ApplyEnv(s *Settings) error {
	if err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
