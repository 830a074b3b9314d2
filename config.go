package displace

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds displacement configuration.
type Config struct {
	// Amplitude scales the displacement field. For ModeBump it is the height
	// of each bump; for ModeRidge the trough depth, with the crest at twice
	// this value.
	Amplitude float64 `yaml:"amplitude"`

	// TessLevel is the number of stencil samples per unit of parametric
	// length. The stencil step is 1/TessLevel.
	TessLevel float64 `yaml:"tess_level"`

	// TileSize is the number of displacement cells across one patch.
	// Patch coordinates are multiplied by TileSize before evaluation.
	TileSize float64 `yaml:"tile_size"`

	// Mode selects the displacement field.
	Mode Mode `yaml:"mode"`

	// Logger receives debug traces of each evaluation. Defaults to a no-op
	// logger.
	Logger *zap.Logger `yaml:"-"`
}

// Mode enumerates the displacement fields.
type Mode int

const (
	// ModeNone leaves the surface undisplaced.
	ModeNone Mode = iota

	// ModeBump raises a smooth tent-shaped bump in every cell.
	ModeBump

	// ModeRidge carves troughs along cell edges and raises a crest plateau
	// in the middle of every cell.
	ModeRidge
)

var modeNames = map[Mode]string{
	ModeNone:  "none",
	ModeBump:  "bump",
	ModeRidge: "ridge",
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid displacement configuration")

	// ErrUnknownMode indicates a displacement mode name or number that is not defined.
	ErrUnknownMode = errors.New("unknown displacement mode")
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode looks up a mode by its configuration name.
func ParseMode(name string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == want {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// UnmarshalYAML accepts either a mode name or the renderer's integer
// displacement_mode.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		mode := Mode(n)
		if _, ok := modeNames[mode]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownMode, n)
		}
		*m = mode
		return nil
	}

	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("decoding mode: %w", err)
	}
	mode, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalYAML writes the mode by name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// DefaultConfig returns the default displacement settings.
func DefaultConfig() *Config {
	return &Config{
		Amplitude: defaultAmplitude,
		TessLevel: defaultTessLevel,
		TileSize:  defaultTileSize,
		Mode:      ModeBump,
	}
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Step returns the stencil spacing, 1/TessLevel.
func (c *Config) Step() float64 {
	return 1 / c.TessLevel
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isFinite(c.Amplitude) {
		return fmt.Errorf("%w: amplitude must be finite", ErrInvalidConfig)
	}

	if !isFinite(c.TessLevel) || c.TessLevel <= 0 {
		return fmt.Errorf("%w: tessellation level must be positive", ErrInvalidConfig)
	}

	if !isFinite(c.TileSize) || c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	}

	if _, ok := modeNames[c.Mode]; !ok {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownMode, int(c.Mode))
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
