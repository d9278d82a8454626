package bittrex

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL   = "https://bittrex.com/api/v1.1"
	DefaultBaseURLV2 = "https://bittrex.com/Api/v2.0"
	DefaultStreamURL = "wss://socket.bittrex.com/signalr"
	DefaultUserAgent = "Mozilla/4.0 (compatible; Bittrex API Go)"
	DefaultTimeout   = 15 * time.Second
)

type Settings struct {
	APIKey                   string        `mapstructure:"api_key"`
	APISecret                string        `mapstructure:"api_secret"`
	BaseURL                  string        `mapstructure:"base_url"`
	BaseURLV2                string        `mapstructure:"base_url_v2"`
	StreamURL                string        `mapstructure:"stream_url"`
	StreamHubs               []string      `mapstructure:"stream_hubs"`
	RequestTimeout           time.Duration `mapstructure:"request_timeout"`
	Verbose                  bool          `mapstructure:"verbose"`
	InverseCallbackArguments bool          `mapstructure:"inverse_callback_arguments"`
	NonceWindow              int           `mapstructure:"nonce_window"`
	UserAgent                string        `mapstructure:"user_agent"`
}

func defaults() map[string]any {
	return map[string]any{
		"api_key":                    "API_KEY",
		"api_secret":                 "API_SECRET_KEY",
		"base_url":                   DefaultBaseURL,
		"base_url_v2":                DefaultBaseURLV2,
		"stream_url":                 DefaultStreamURL,
		"stream_hubs":                []string{"CoreHub"},
		"request_timeout":            DefaultTimeout,
		"verbose":                    false,
		"inverse_callback_arguments": true,
		"nonce_window":               50,
		"user_agent":                 DefaultUserAgent,
	}
}

// Store хранит настройки клиента. Merge накладывает частичный набор
// значений поверх текущего, незаданные ключи не меняются, неизвестные
// ключи сохраняются без проверки.
type Store struct {
	mu      sync.RWMutex
	v       *viper.Viper
	current Settings
}

func NewStore() *Store {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	s := &Store{v: v}
	if err := decodeSettings(v, &s.current); err != nil {
		panic(fmt.Sprintf("bittrex: настройки по умолчанию не разобраны: %v", err))
	}
	return s
}

func (s *Store) Merge(values map[string]any) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := viper.New()
	for key, value := range defaults() {
		next.SetDefault(key, value)
	}
	if err := next.MergeConfigMap(s.v.AllSettings()); err != nil {
		return s.current.clone(), fmt.Errorf("Не удалось перенести настройки: %w", err)
	}
	if err := next.MergeConfigMap(values); err != nil {
		return s.current.clone(), fmt.Errorf("Не удалось применить настройки: %w", err)
	}

	var merged Settings
	if err := decodeSettings(next, &merged); err != nil {
		return s.current.clone(), fmt.Errorf("Не удалось разобрать настройки: %w", err)
	}

	s.v = next
	s.current = merged

	return merged.clone(), nil
}

func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

// Get возвращает сырое значение по ключу, включая ключи, которых нет в Settings.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Get(key)
}

func (s Settings) clone() Settings {
	s.StreamHubs = slices.Clone(s.StreamHubs)
	return s
}

func (s Settings) baseURL(version Version) string {
	if version == V2 {
		return s.BaseURLV2
	}
	return s.BaseURL
}

func decodeSettings(v *viper.Viper, out *Settings) error {
	return v.Unmarshal(out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		durationHook,
		mapstructure.StringToSliceHookFunc(","),
	)))
}

var durationType = reflect.TypeOf(time.Duration(0))

// durationHook читает числа как секунды, строки как "15s" или "15".
func durationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != durationType || from == durationType {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return time.Duration(cast.ToFloat64(data) * float64(time.Second)), nil
	case reflect.String:
		if seconds, err := cast.ToFloat64E(data); err == nil {
			return time.Duration(seconds * float64(time.Second)), nil
		}
		return time.ParseDuration(cast.ToString(data))
	}

	return data, nil
}
