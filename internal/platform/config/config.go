package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string `mapstructure:"FRONTEND_BASE_URL"`
	PosthogAPIKey     string `mapstructure:"POSTHOG_API_KEY"`

	// Token ledger settings
	ChainRPCURL         string        `mapstructure:"CHAIN_RPC_URL"`
	TokenAddress        string        `mapstructure:"TOKEN_ADDRESS"`
	AccountAddress      string        `mapstructure:"ACCOUNT_ADDRESS"`
	TokenDecimals       uint8         `mapstructure:"TOKEN_DECIMALS"`
	BalancePollInterval time.Duration `mapstructure:"BALANCE_POLL_INTERVAL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "puffpay-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CHAIN_RPC_URL", "")
	viper.SetDefault("TOKEN_ADDRESS", "")
	viper.SetDefault("ACCOUNT_ADDRESS", "")
	viper.SetDefault("TOKEN_DECIMALS", 6)
	viper.SetDefault("BALANCE_POLL_INTERVAL", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.ChainRPCURL = viper.GetString("CHAIN_RPC_URL")
	if cfg.ChainRPCURL == "" {
		log.Println("Warning: CHAIN_RPC_URL environment variable not set. Ledger operations will fail.")
	}

	cfg.TokenAddress = viper.GetString("TOKEN_ADDRESS")
	if cfg.TokenAddress == "" {
		log.Println("Warning: TOKEN_ADDRESS environment variable not set. Ledger operations will fail.")
	}

	cfg.AccountAddress = viper.GetString("ACCOUNT_ADDRESS")
	if cfg.AccountAddress == "" {
		log.Println("Warning: ACCOUNT_ADDRESS environment variable not set. Balance polling will fail.")
	}

	cfg.TokenDecimals = uint8(viper.GetUint("TOKEN_DECIMALS"))

	pollIntervalStr := viper.GetString("BALANCE_POLL_INTERVAL")
	pollInterval, err := time.ParseDuration(pollIntervalStr)
	if err != nil || pollInterval <= 0 {
		pollInterval = 10 * time.Second
		log.Printf("Warning: Invalid value for BALANCE_POLL_INTERVAL ('%s'). Defaulting to %s.\n", pollIntervalStr, pollInterval.String())
	}
	cfg.BalancePollInterval = pollInterval

	return cfg, nil
}
