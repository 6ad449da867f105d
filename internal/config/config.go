// Package config resolves nugraph settings.
//
// Settings are merged in increasing order of precedence:
//
//  1. Built-in defaults
//  2. The TOML config file
//  3. Environment variables, including those from a .env file in the
//     working directory
//  4. Command-line flags, applied with [Config.Override]
//
// The config file is read from $NUGRAPH_CONFIG, or else from
// $XDG_CONFIG_HOME/nugraph/config.toml (~/.config/nugraph/config.toml):
//
//	graphviz = "/usr/local/bin/dot"
//	renderer = "exec"
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/matzehuels/nugraph/pkg/errors"
	"github.com/matzehuels/nugraph/pkg/render"
)

const appName = "nugraph"

// Environment variables read by [Load].
const (
	EnvGraphviz = "NUGRAPH_GRAPHVIZ"
	EnvRenderer = "NUGRAPH_RENDERER"
	EnvConfig   = "NUGRAPH_CONFIG"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config holds the resolved settings.
type Config struct {
	// Graphviz is the layout binary run by the exec renderer.
	Graphviz string `toml:"graphviz" validate:"required_if=Renderer exec"`

	// Renderer selects how DOT is turned into an image.
	Renderer string `toml:"renderer" validate:"required,oneof=exec embedded"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Graphviz: render.DefaultTool,
		Renderer: render.KindExec,
	}
}

// Load returns the defaults overlaid with the config file and environment.
// A missing default config file is ignored; a missing file named by
// $NUGRAPH_CONFIG is an error. The result is not validated until flags have
// been applied, see [Config.Validate].
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path, explicit, err := Path()
	if err != nil {
		return nil, err
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// Path returns the config file location and whether it was set explicitly
// through $NUGRAPH_CONFIG.
func Path() (string, bool, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, true, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), false, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeInternal, err, "locate config directory")
	}
	return filepath.Join(home, ".config", appName, "config.toml"), false, nil
}

func (c *Config) loadFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvGraphviz)); v != "" {
		c.Graphviz = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRenderer)); v != "" {
		c.Renderer = v
	}
}

// Override replaces settings with the non-empty flag values.
func (c *Config) Override(graphviz, renderer string) {
	if graphviz != "" {
		c.Graphviz = graphviz
	}
	if renderer != "" {
		c.Renderer = renderer
	}
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failed rule using the TOML key.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate config")
	}

	e := verrs[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required", "required_if":
		return errors.New(errors.ErrCodeInvalidInput, "%s: value is required", field)
	case "oneof":
		return errors.New(errors.ErrCodeInvalidInput, "%s: %q is not one of [%s]", field, e.Value(), e.Param())
	default:
		return errors.New(errors.ErrCodeInvalidInput, "%s: failed %s validation", field, e.Tag())
	}
}
