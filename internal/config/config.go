package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Exchange ExchangeConfig
	Runtime  RuntimeConfig
}

type ExchangeConfig struct {
	BaseUrl    string
	BaseUrlV2  string
	StreamUrl  string
	StreamHubs []string
	ApiKey     string
	Secret     string
}

type RuntimeConfig struct {
	Verbose                  bool
	RequestTimeout           string
	InverseCallbackArguments *bool
	NonceWindow              int
	Log                      LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Load читает configs/config.yaml (или файл из path) и переменные BITTREX_*.
// Отсутствие файла по умолчанию не считается ошибкой.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("bittrex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("runtime.log.level", "info")
	v.SetDefault("runtime.log.format", "text")
	v.SetDefault("runtime.log.file", "stdout")
	v.SetDefault("runtime.log.max_size", 10)
	v.SetDefault("runtime.log.max_backups", 3)
	v.SetDefault("runtime.log.max_age", 7)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("Не удалось прочитать конфигурацию: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Exchange = ExchangeConfig{
		BaseUrl:    v.GetString("exchange.base_url"),
		BaseUrlV2:  v.GetString("exchange.base_url_v2"),
		StreamUrl:  v.GetString("exchange.stream_url"),
		StreamHubs: v.GetStringSlice("exchange.stream_hubs"),
		ApiKey:     envSub(v, "exchange.api_key"),
		Secret:     envSub(v, "exchange.secret"),
	}

	cfg.Runtime = RuntimeConfig{
		Verbose:        v.GetBool("runtime.verbose"),
		RequestTimeout: v.GetString("runtime.request_timeout"),
		NonceWindow:    v.GetInt("runtime.nonce_window"),
		Log: LogConfig{
			Level:      v.GetString("runtime.log.level"),
			Format:     v.GetString("runtime.log.format"),
			File:       v.GetString("runtime.log.file"),
			MaxSize:    v.GetInt("runtime.log.max_size"),
			MaxBackups: v.GetInt("runtime.log.max_backups"),
			MaxAge:     v.GetInt("runtime.log.max_age"),
			Compress:   v.GetBool("runtime.log.compress"),
		},
	}

	if v.IsSet("runtime.inverse_callback_arguments") {
		inverse := v.GetBool("runtime.inverse_callback_arguments")
		cfg.Runtime.InverseCallbackArguments = &inverse
	}

	return cfg, nil
}

// ClientOptions собирает только заданные значения, остальное клиент
// оставит по умолчанию.
func (c *Config) ClientOptions() map[string]any {
	opts := map[string]any{
		"verbose": c.Runtime.Verbose,
	}

	setString := func(key, value string) {
		if value != "" {
			opts[key] = value
		}
	}

	setString("base_url", c.Exchange.BaseUrl)
	setString("base_url_v2", c.Exchange.BaseUrlV2)
	setString("stream_url", c.Exchange.StreamUrl)
	setString("api_key", c.Exchange.ApiKey)
	setString("api_secret", c.Exchange.Secret)
	setString("request_timeout", c.Runtime.RequestTimeout)

	if len(c.Exchange.StreamHubs) > 0 {
		opts["stream_hubs"] = c.Exchange.StreamHubs
	}
	if c.Runtime.NonceWindow > 0 {
		opts["nonce_window"] = c.Runtime.NonceWindow
	}
	if c.Runtime.InverseCallbackArguments != nil {
		opts["inverse_callback_arguments"] = *c.Runtime.InverseCallbackArguments
	}

	return opts
}

var envPattern = regexp.MustCompile(`\$\{(\w+)\}`)

func envSub(v *viper.Viper, key string) string {
	val := v.GetString(key)
	if val == "" {
		return ""
	}

	return envPattern.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
