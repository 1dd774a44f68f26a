package seamcarve

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the on-disk representation of the processor options.
//
//	width      = 320
//	percentage = false
//	debug      = true
//	seam_color = "#00ff00"
//	workers    = 4
type Config struct {
	Width      int    `toml:"width"`
	Percentage bool   `toml:"percentage"`
	Debug      bool   `toml:"debug"`
	SeamColor  string `toml:"seam_color"`
	EnergyFile string `toml:"energy_file"`
	Workers    int    `toml:"workers"`
}

// LoadConfig decodes a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{SeamColor: DefaultSeamColor}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode the config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Processor builds a Processor from the configuration.
func (c *Config) Processor() *Processor {
	return &Processor{
		NewWidth:   c.Width,
		Percentage: c.Percentage,
		Debug:      c.Debug,
		SeamColor:  c.SeamColor,
		EnergyFile: c.EnergyFile,
	}
}
