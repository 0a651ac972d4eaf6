package presence

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Config holds the presence module configuration.
type Config struct {
	// JoinProbability gates each join evaluation.
	JoinProbability float64 `env:"PRESENCE_JOIN_PROBABILITY" envDefault:"0.8" validate:"gte=0,lte=1"`

	// JoinDelayMin and JoinDelayMax bound the randomized delay before a
	// scheduled join fires.
	JoinDelayMin time.Duration `env:"PRESENCE_JOIN_DELAY_MIN" envDefault:"60s" validate:"gt=0"`
	JoinDelayMax time.Duration `env:"PRESENCE_JOIN_DELAY_MAX" envDefault:"5m"  validate:"gtefield=JoinDelayMin"`

	// MaxSessionEnabled bounds how long a single voice session may last.
	// When disabled, the bot stays joined until the channel empties out.
	MaxSessionEnabled bool `env:"PRESENCE_MAX_SESSION_ENABLED" envDefault:"true"`

	// MaxSessionMin and MaxSessionMax bound the randomized session duration.
	MaxSessionMin time.Duration `env:"PRESENCE_MAX_SESSION_MIN" envDefault:"3h" validate:"gt=0"`
	MaxSessionMax time.Duration `env:"PRESENCE_MAX_SESSION_MAX" envDefault:"8h" validate:"gtefield=MaxSessionMin"`
}

// Validate checks the configured bounds.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid presence configuration")
	}
	return nil
}
