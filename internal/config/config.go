package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultIntervalSecs is the collection interval used when none is
// configured.
const DefaultIntervalSecs = 10

// ConfIntervalKey is the host runtime configuration option that holds
// the collection interval in seconds.
const ConfIntervalKey = "scheduling.metrics.interval.secs"

// CollectorConfig holds the settings for periodic snapshot collection.
type CollectorConfig struct {
	IntervalSecs int `yaml:"interval_secs"`
}

// NATSConfig holds the connection settings for the snapshot transport.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// APIConfig holds the settings for the HTTP API server.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the top-level configuration struct for both daemons.
type Config struct {
	Collector CollectorConfig `yaml:"collector"`
	NATS      NATSConfig      `yaml:"nats"`
	API       APIConfig       `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a
// Config struct. An absent collector interval falls back to
// DefaultIntervalSecs; a negative one is rejected.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if cfg.Collector.IntervalSecs == 0 {
		cfg.Collector.IntervalSecs = DefaultIntervalSecs
	}
	if cfg.Collector.IntervalSecs < 0 {
		return nil, fmt.Errorf("collector interval must be positive, got %d", cfg.Collector.IntervalSecs)
	}

	return &cfg, nil
}

// IntervalFromConf extracts the collection interval from a host runtime
// configuration map. A missing option yields DefaultIntervalSecs; a
// present but non-integer or non-positive value is an error, not a
// silent fallback.
func IntervalFromConf(conf map[string]any) (int, error) {
	raw, ok := conf[ConfIntervalKey]
	if !ok {
		return DefaultIntervalSecs, nil
	}

	var secs int
	switch v := raw.(type) {
	case int:
		secs = v
	case int64:
		secs = int(v)
	case float64:
		// yaml and json decoders hand integers over as float64.
		if v != float64(int(v)) {
			return 0, fmt.Errorf("option %q must be an integer, got %v", ConfIntervalKey, v)
		}
		secs = int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("option %q must be an integer, got %q", ConfIntervalKey, v)
		}
		secs = n
	default:
		return 0, fmt.Errorf("option %q must be an integer, got %T", ConfIntervalKey, raw)
	}

	if secs <= 0 {
		return 0, fmt.Errorf("option %q must be positive, got %d", ConfIntervalKey, secs)
	}
	return secs, nil
}
