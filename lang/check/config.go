package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory when no
// explicit configuration path is given.
const DefaultConfigFile = "declcheck.toml"

type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type CheckConfig struct {
	// Extensions selects the files checked when a directory is given.
	Extensions []string `toml:"extensions"`
}

type OutputConfig struct {
	Summary     bool `toml:"summary"`
	FileHeaders bool `toml:"file_headers"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

func DefaultConfig() Config {
	return Config{
		Check: CheckConfig{
			Extensions: []string{".mini"},
		},
		Output: OutputConfig{
			Summary:     true,
			FileHeaders: true,
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path means
// DefaultConfigFile, which may be absent.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := ParseConfig(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML text into cfg, keeping values the text does
// not mention.
func ParseConfig(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse config: unknown key %s", undecoded[0])
	}
	return nil
}
