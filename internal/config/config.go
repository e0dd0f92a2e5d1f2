package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all server configuration
type Config struct {
	HTTPAddress string
	ShareOrigin string

	// Demo session signing
	SessionSecret string

	// Simulated delays, milliseconds
	SimulatedLatencyMS int
	ProgressTickMS     int
	SendDelayMS        int
	CheckoutDelayMS    int

	// Realtime simulation
	RealtimeEnabled        bool
	RealtimeIntervalMS     int
	RealtimeConnectDelayMS int
}

// Load reads configuration from files and environment variables
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":            "CLOUDNEST_HTTP_ADDRESS",
		"ShareOrigin":            "CLOUDNEST_SHARE_ORIGIN",
		"SessionSecret":          "CLOUDNEST_SESSION_SECRET",
		"SimulatedLatencyMS":     "CLOUDNEST_SIMULATED_LATENCY_MS",
		"ProgressTickMS":         "CLOUDNEST_PROGRESS_TICK_MS",
		"SendDelayMS":            "CLOUDNEST_SEND_DELAY_MS",
		"CheckoutDelayMS":        "CLOUDNEST_CHECKOUT_DELAY_MS",
		"RealtimeEnabled":        "CLOUDNEST_REALTIME_ENABLED",
		"RealtimeIntervalMS":     "CLOUDNEST_REALTIME_INTERVAL_MS",
		"RealtimeConnectDelayMS": "CLOUDNEST_REALTIME_CONNECT_DELAY_MS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("cloudnest_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.cloudnest")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("ShareOrigin", "https://cloudnest.app")
	v.SetDefault("SessionSecret", "cloudnest-demo-secret")
	v.SetDefault("SimulatedLatencyMS", 200)
	v.SetDefault("ProgressTickMS", 200)
	v.SetDefault("SendDelayMS", 1500)
	v.SetDefault("CheckoutDelayMS", 2000)
	v.SetDefault("RealtimeEnabled", true)
	v.SetDefault("RealtimeIntervalMS", 10000)
	v.SetDefault("RealtimeConnectDelayMS", 1000)
}

func (c *Config) SimulatedLatency() time.Duration {
	return time.Duration(c.SimulatedLatencyMS) * time.Millisecond
}

func (c *Config) ProgressTick() time.Duration {
	return time.Duration(c.ProgressTickMS) * time.Millisecond
}

func (c *Config) SendDelay() time.Duration {
	return time.Duration(c.SendDelayMS) * time.Millisecond
}

func (c *Config) CheckoutDelay() time.Duration {
	return time.Duration(c.CheckoutDelayMS) * time.Millisecond
}

func (c *Config) RealtimeInterval() time.Duration {
	return time.Duration(c.RealtimeIntervalMS) * time.Millisecond
}

func (c *Config) RealtimeConnectDelay() time.Duration {
	return time.Duration(c.RealtimeConnectDelayMS) * time.Millisecond
}
