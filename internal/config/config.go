package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. SCANNER_LOG_LEVEL.
const EnvPrefix = "SCANNER"

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	DexScreenerURL   string
	CoinGeckoURL     string
	CoinGeckoAPIKey  string
	MetadataEnabled  bool
	MetadataPlatform string
	HTTPTimeout      time.Duration
	UserAgent        string
	Model            string
	Output           string
	LogLevel         string
	BreakerFailures  uint32
	BreakerTimeout   time.Duration
}

// Load merges .env, config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return Config{}, err
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		DexScreenerURL:   v.GetString("dexscreener-url"),
		CoinGeckoURL:     v.GetString("coingecko-url"),
		CoinGeckoAPIKey:  v.GetString("coingecko-api-key"),
		MetadataEnabled:  v.GetBool("metadata-enabled"),
		MetadataPlatform: v.GetString("metadata-platform"),
		HTTPTimeout:      v.GetDuration("http-timeout"),
		UserAgent:        v.GetString("user-agent"),
		Model:            v.GetString("model"),
		Output:           v.GetString("output"),
		LogLevel:         v.GetString("log-level"),
		BreakerFailures:  v.GetUint32("breaker-failures"),
		BreakerTimeout:   v.GetDuration("breaker-timeout"),
	}
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	envFile := ".env"
	if flags != nil {
		if f := flags.Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("dexscreener-url", "https://api.dexscreener.com")
	v.SetDefault("coingecko-url", "https://api.coingecko.com")
	v.SetDefault("metadata-enabled", true)
	v.SetDefault("metadata-platform", "solana")
	v.SetDefault("http-timeout", 15*time.Second)
	v.SetDefault("user-agent", "tokenscope-scanner/1.0")
	v.SetDefault("model", "standard")
	v.SetDefault("output", "table")
	v.SetDefault("log-level", "info")
	v.SetDefault("breaker-failures", 3)
	v.SetDefault("breaker-timeout", time.Minute)
	v.SetDefault("listen", ":8080")
	v.SetDefault("shutdown-timeout", 10*time.Second)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

// loadEnvFile exports variables from a dotenv file without overriding the
// real environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
