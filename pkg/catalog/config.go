package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the tunable layout parameters read from the config file.
type Settings struct {
	Tolerance   float64 `json:"tolerance" mapstructure:"tolerance"`
	AllowRotate bool    `json:"allowRotate" mapstructure:"allowRotate"`
	MeshCells   int     `json:"meshCells" mapstructure:"meshCells"`
}

// Load reads configuration from a YAML file and sets default values.
// configDir is the directory containing satellite.yaml.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName("satellite")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SetDefaults registers the default values without requiring a config
// file. Load calls this; defaults-only callers can call it directly.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("packing.tolerance", 0.002)
	viper.SetDefault("packing.allowRotate", true)

	viper.SetDefault("mesh.cells", 128)
	viper.SetDefault("mesh.panelThickness", 0.01)
}

// GetSettings returns the layout parameters, with config-file overrides
// applied over the defaults.
func GetSettings() Settings {
	return Settings{
		Tolerance:   viper.GetFloat64("packing.tolerance"),
		AllowRotate: viper.GetBool("packing.allowRotate"),
		MeshCells:   viper.GetInt("mesh.cells"),
	}
}

// applyOverrides layers per-preset config values over a built-in preset.
// Keys live under components.<name>: mass, power and cost are scalar
// overrides; the shape itself is fixed by the preset.
func applyOverrides(p Preset) Preset {
	prefix := "components." + p.Name + "."
	if key := prefix + "mass"; viper.IsSet(key) {
		p.Mass = viper.GetFloat64(key)
	}
	if key := prefix + "power"; viper.IsSet(key) {
		p.Power = viper.GetFloat64(key)
	}
	if key := prefix + "cost"; viper.IsSet(key) {
		p.Cost = viper.GetFloat64(key)
	}
	return p
}
