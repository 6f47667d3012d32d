// Package config defines the data structures related to configuration and
// includes functions for loading and interpreting the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/configprocessor"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override config keys,
// e.g. MORTGAGE_OUTPUT_LOCALE.
const EnvPrefix = "MORTGAGE"

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Quotes  []Quote       `yaml:"quotes,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output configuration options
type OutputConfig struct {
	Format    string `yaml:"format,omitempty"`    // pretty, csv, yaml
	Locale    string `yaml:"locale,omitempty"`    // BCP 47 tag, e.g. en-GB
	Precision string `yaml:"precision,omitempty"` // float, decimal
}

// Quote is one named set of loan parameters. Values are kept as text so
// that they go through the same validation as interactive input.
type Quote struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
	Rate   string `yaml:"rate"`
	Term   string `yaml:"term"`
	Type   string `yaml:"type"`
}

// NamedInput pairs a quote name with its validated parameters.
type NamedInput struct {
	Name  string
	Input mortgage.LoanInput
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Form converts the quote into validation form fields.
func (q Quote) Form() validation.Form {
	return validation.Form{
		Amount: q.Amount,
		Term:   q.Term,
		Rate:   q.Rate,
		Type:   q.Type,
	}
}

// QuoteName returns the quote's name, or a positional name when unset.
func (c *Configuration) QuoteName(i int) string {
	if name := strings.TrimSpace(c.Quotes[i].Name); name != "" {
		return name
	}
	return fmt.Sprintf("quote %d", i+1)
}

// Inputs validates every quote and returns them in configuration order.
func (c *Configuration) Inputs() ([]NamedInput, error) {
	inputs := make([]NamedInput, 0, len(c.Quotes))
	for i, quote := range c.Quotes {
		input, err := validation.ParseForm(quote.Form())
		if err != nil {
			return nil, fmt.Errorf("invalid quote %q: %w", c.QuoteName(i), err)
		}
		inputs = append(inputs, NamedInput{Name: c.QuoteName(i), Input: input})
	}
	return inputs, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	quotes := make([]configprocessor.QuoteInfo, 0, len(c.Quotes))
	for i, quote := range c.Quotes {
		info := configprocessor.QuoteInfo{Name: c.QuoteName(i)}
		// Unparseable values are reported by Inputs; only warn on what parses.
		if rate, err := validation.ParseRate(quote.Rate); err == nil {
			info.Rate = rate
		}
		if term, err := validation.ParseTerm(quote.Term); err == nil {
			info.Term = term
		}
		quotes = append(quotes, info)
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(quotes)
}
