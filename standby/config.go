package standby

import "fmt"

// Config holds the placement limits enforced by both the engine and manual
// placement validation.
type Config struct {
	// WeeklyQuota is the maximum standby assignments per person per week.
	WeeklyQuota int `json:"weekly_quota"`
	// DailyLoadLimit is the maximum combined teaching and standby periods
	// per person per day.
	DailyLoadLimit int `json:"daily_load_limit"`
}

// DefaultConfig returns the production limits: 3 slots per week, 7 periods
// per day.
func DefaultConfig() Config {
	return Config{WeeklyQuota: 3, DailyLoadLimit: 7}
}

// SetDefaults fills unset limits with the default values.
func (c *Config) SetDefaults() {
	def := DefaultConfig()
	if c.WeeklyQuota == 0 {
		c.WeeklyQuota = def.WeeklyQuota
	}
	if c.DailyLoadLimit == 0 {
		c.DailyLoadLimit = def.DailyLoadLimit
	}
}

// Validate checks that both limits are positive.
func (c Config) Validate() error {
	if c.WeeklyQuota <= 0 {
		return fmt.Errorf("weekly_quota must be positive, got %d", c.WeeklyQuota)
	}
	if c.DailyLoadLimit <= 0 {
		return fmt.Errorf("daily_load_limit must be positive, got %d", c.DailyLoadLimit)
	}
	return nil
}
