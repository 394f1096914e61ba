package config

import "time"

// Config is the root application configuration.
type Config struct {
	Moedict  MoedictConfig  `yaml:"moedict"`
	Jyutping JyutpingConfig `yaml:"jyutping"`
	Console  ConsoleConfig  `yaml:"console"`
	Log      LogConfig      `yaml:"log"`
}

// MoedictConfig holds moedict.tw API settings.
type MoedictConfig struct {
	BaseURL string        `yaml:"base_url" env:"MOEDICT_BASE_URL" env-default:"https://www.moedict.tw/a"`
	Timeout time.Duration `yaml:"timeout"  env:"MOEDICT_TIMEOUT"  env-default:"10s"`
}

// JyutpingConfig holds words.hk character list settings.
type JyutpingConfig struct {
	CharListURL string        `yaml:"char_list_url" env:"JYUTPING_CHAR_LIST_URL" env-default:"https://words.hk/faiman/analysis/charlist.json"`
	Timeout     time.Duration `yaml:"timeout"       env:"JYUTPING_TIMEOUT"       env-default:"30s"`
}

// ConsoleConfig holds interactive console settings.
type ConsoleConfig struct {
	Prompt      string `yaml:"prompt"       env:"CONSOLE_PROMPT"       env-default:"meowdict > "`
	HistoryFile string `yaml:"history_file" env:"CONSOLE_HISTORY_FILE"`
	NoColor     bool   `yaml:"no_color"     env:"CONSOLE_NO_COLOR"     env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
