// Package config loads and validates ubiquitous-gen settings from command
// line flags and an optional .ubiquitous.yml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied before flags and config file values.
const (
	DefaultOutput   = "ubiquitous.html"
	DefaultLanguage = "php"
	DefaultFileName = ".ubiquitous.yml"
)

// Flag names shared by the CLI and Merge.
const (
	FlagInput      = "input"
	FlagOutput     = "output"
	FlagLang       = "lang"
	FlagExclude    = "exclude"
	FlagAtomic     = "atomic"
	FlagEscapeHTML = "escape-html"
)

// Config holds the effective settings of a generate run.
type Config struct {
	Inputs     []string `yaml:"inputs" validate:"required,min=1,dive,required"`
	Output     string   `yaml:"output" validate:"required"`
	Language   string   `yaml:"lang" validate:"required,oneof=php go"`
	Exclude    []string `yaml:"exclude" validate:"dive,required"`
	Atomic     bool     `yaml:"atomic"`
	EscapeHTML bool     `yaml:"escape_html"`
	ConfigPath string   `yaml:"-"`
}

// FileConfig mirrors the layout of .ubiquitous.yml. Pointer fields tell an
// unset key apart from a zero value.
type FileConfig struct {
	Ubiquitous struct {
		Inputs     []string `yaml:"inputs"`
		Output     string   `yaml:"output"`
		Language   string   `yaml:"lang"`
		Exclude    []string `yaml:"exclude"`
		Atomic     *bool    `yaml:"atomic"`
		EscapeHTML *bool    `yaml:"escape_html"`
	} `yaml:"ubiquitous"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Inputs:   []string{"."},
		Output:   DefaultOutput,
		Language: DefaultLanguage,
	}
}

// LoadFile reads and parses a config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// Merge applies file values for every setting whose flag was not changed on
// the command line.
func (c *Config) Merge(fc FileConfig, changed func(flag string) bool) {
	f := fc.Ubiquitous

	if !changed(FlagInput) && len(f.Inputs) > 0 {
		c.Inputs = f.Inputs
	}
	if !changed(FlagOutput) && f.Output != "" {
		c.Output = f.Output
	}
	if !changed(FlagLang) && f.Language != "" {
		c.Language = f.Language
	}
	if !changed(FlagExclude) && len(f.Exclude) > 0 {
		c.Exclude = f.Exclude
	}
	if !changed(FlagAtomic) && f.Atomic != nil {
		c.Atomic = *f.Atomic
	}
	if !changed(FlagEscapeHTML) && f.EscapeHTML != nil {
		c.EscapeHTML = *f.EscapeHTML
	}
}

// Load merges the config file at c.ConfigPath, if any. When no path is set
// and DefaultFileName exists in the working directory it is used instead.
func (c *Config) Load(changed func(flag string) bool) error {
	path := c.ConfigPath
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return nil
		}
		path = DefaultFileName
	}

	fc, err := LoadFile(path)
	if err != nil {
		return err
	}
	c.Merge(fc, changed)
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear in .ubiquitous.yml.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the effective configuration.
func (c *Config) Validate() error {
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("field %s failed %s", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
