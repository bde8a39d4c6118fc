package see

import "flag"

// Config represents configuration for see.
type Config struct {
	Enabled bool
	W       float64
	H       float64
	// Trail is the max number of points kept per object trail,
	// 0 disables trails.
	Trail int
}

var defaultConfig = Config{
	W:     11.088889,
	H:     11.088889,
	Trail: 2000,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.BoolVar(&defaultConfig.Enabled, "see", defaultConfig.Enabled, "Stream visualization objects to stdout")
	flag.Float64Var(&defaultConfig.W, "see-w", defaultConfig.W, "Width of visualization area")
	flag.Float64Var(&defaultConfig.H, "see-h", defaultConfig.H, "Height of visualization area")
	flag.IntVar(&defaultConfig.Trail, "see-trail", defaultConfig.Trail, "Max points of a turtle trail, 0 to disable")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a default config.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewAdapter creates adapter from config.
func (c *Config) NewAdapter() *Adapter {
	return NewAdapter(c)
}
