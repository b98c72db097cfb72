package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/riobard/go-blowfish/blowfish"
)

// Config holds settings that may come from the config file, the environment
// or the command line, in increasing order of precedence.
type Config struct {
	Mode    string `mapstructure:"mode"`
	Key     string `mapstructure:"key"`
	IV      string `mapstructure:"iv"`
	Verbose bool   `mapstructure:"verbose"`

	source string // config file used, if any
}

var configKeys = []string{"mode", "key", "iv", "verbose"}

func loadConfig(c *cli.Context) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BFCRYPT")
	for _, k := range configKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bfcrypt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.bfcrypt")
		v.AddConfigPath("/etc/bfcrypt")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for _, k := range []string{"mode", "key", "iv"} {
		if c.IsSet(k) {
			v.Set(k, c.String(k))
		}
	}
	if c.IsSet("verbose") {
		v.Set("verbose", c.Bool("verbose"))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if f := v.ConfigFileUsed(); f != "" {
		cfg.source = f
	}
	return cfg, nil
}

// parseHex decodes a case-insensitive hex string. Every character must be a
// hex digit; an odd trailing digit is dropped.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("invalid hex digit %q at offset %d", s[i], i)
		}
	}
	return hex.DecodeString(s[:len(s)&^1])
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func parseKey(s string) ([]byte, error) {
	key, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	if len(key) < blowfish.MinKeySize || len(key) > blowfish.MaxKeySize {
		return nil, blowfish.KeySizeError(len(key))
	}
	return key, nil
}

func parseIV(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2*blowfish.BlockSize {
		return nil, fmt.Errorf("IV must be exactly %d hex digits", 2*blowfish.BlockSize)
	}
	return parseHex(s)
}
