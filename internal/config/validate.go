package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateURL("moedict.base_url", c.Moedict.BaseURL); err != nil {
		return err
	}
	if c.Moedict.Timeout <= 0 {
		return fmt.Errorf("moedict.timeout must be > 0 (got %v)", c.Moedict.Timeout)
	}

	if err := validateURL("jyutping.char_list_url", c.Jyutping.CharListURL); err != nil {
		return err
	}
	if c.Jyutping.Timeout <= 0 {
		return fmt.Errorf("jyutping.timeout must be > 0 (got %v)", c.Jyutping.Timeout)
	}

	if c.Console.Prompt == "" {
		return fmt.Errorf("console.prompt must not be empty")
	}

	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", name, raw)
	}
	return nil
}
