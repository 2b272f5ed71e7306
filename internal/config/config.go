// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Ethereum  EthereumConfig  `mapstructure:"ethereum"`
	Contracts ContractsConfig `mapstructure:"contracts"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// EthereumConfig holds Ethereum node configuration.
type EthereumConfig struct {
	HTTPURL           string        `mapstructure:"http_url"`
	ChainID           uint64        `mapstructure:"chain_id"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	CallTimeout       time.Duration `mapstructure:"call_timeout"`
}

// ContractsConfig holds per-version protocol contract addresses.
type ContractsConfig struct {
	V2Router          string `mapstructure:"v2_router"`
	V2Factory         string `mapstructure:"v2_factory"`
	V3PositionManager string `mapstructure:"v3_position_manager"`
	V3SwapRouter      string `mapstructure:"v3_swap_router"`
	V3Factory         string `mapstructure:"v3_factory"`
	V4PositionManager string `mapstructure:"v4_position_manager"`
	V4StateView       string `mapstructure:"v4_state_view"`
	UniversalRouter   string `mapstructure:"universal_router"`
	Permit2           string `mapstructure:"permit2"`
	WrappedNative     string `mapstructure:"wrapped_native"`
}

// V2RouterAddress returns the V2 router address as common.Address.
func (c *ContractsConfig) V2RouterAddress() common.Address {
	return common.HexToAddress(c.V2Router)
}

// V3PositionManagerAddress returns the V3 position manager address.
func (c *ContractsConfig) V3PositionManagerAddress() common.Address {
	return common.HexToAddress(c.V3PositionManager)
}

// V3SwapRouterAddress returns the V3 swap router address.
func (c *ContractsConfig) V3SwapRouterAddress() common.Address {
	return common.HexToAddress(c.V3SwapRouter)
}

// V4PositionManagerAddress returns the V4 position manager address.
func (c *ContractsConfig) V4PositionManagerAddress() common.Address {
	return common.HexToAddress(c.V4PositionManager)
}

// V4StateViewAddress returns the V4 state-view address.
func (c *ContractsConfig) V4StateViewAddress() common.Address {
	return common.HexToAddress(c.V4StateView)
}

// UniversalRouterAddress returns the universal router address.
func (c *ContractsConfig) UniversalRouterAddress() common.Address {
	return common.HexToAddress(c.UniversalRouter)
}

// Permit2Address returns the Permit2 address.
func (c *ContractsConfig) Permit2Address() common.Address {
	return common.HexToAddress(c.Permit2)
}

// EngineConfig holds deployment-tunable engine parameters.
type EngineConfig struct {
	// FeeTickSpacing overrides the fee-tier -> tick-spacing table.
	// Keys are fee tiers in hundredths of a bip.
	FeeTickSpacing map[string]int `mapstructure:"fee_tick_spacing"`

	// DynamicFeeSpacing is the tick spacing applied to the dynamic-fee
	// sentinel. Deployments differ here, so it is never hard-coded.
	DynamicFeeSpacing int `mapstructure:"dynamic_fee_spacing"`

	// V2 swap fee as numerator/denominator (997/1000 = 0.3%).
	V2FeeNumerator   int64 `mapstructure:"v2_fee_numerator"`
	V2FeeDenominator int64 `mapstructure:"v2_fee_denominator"`

	DefaultSlippageBps int           `mapstructure:"default_slippage_bps"`
	DeadlineWindow     time.Duration `mapstructure:"deadline_window"`
}

// TickSpacings returns the override table keyed by numeric fee tier.
// Malformed keys are skipped.
func (c *EngineConfig) TickSpacings() map[uint32]int32 {
	out := make(map[uint32]int32, len(c.FeeTickSpacing))
	for k, v := range c.FeeTickSpacing {
		fee, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			continue
		}
		out[uint32(fee)] = int32(v)
	}
	return out
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("DEXKIT")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Engine.V2FeeDenominator <= 0 {
		return fmt.Errorf("engine.v2_fee_denominator must be positive")
	}
	if c.Engine.V2FeeNumerator <= 0 || c.Engine.V2FeeNumerator > c.Engine.V2FeeDenominator {
		return fmt.Errorf("engine.v2_fee_numerator must be in (0, denominator]")
	}
	if c.Engine.DynamicFeeSpacing <= 0 {
		return fmt.Errorf("engine.dynamic_fee_spacing must be positive")
	}
	if c.Engine.DefaultSlippageBps < 0 || c.Engine.DefaultSlippageBps > 10_000 {
		return fmt.Errorf("engine.default_slippage_bps must be in [0, 10000]")
	}
	if c.Engine.DeadlineWindow <= 0 {
		return fmt.Errorf("engine.deadline_window must be positive")
	}
	for k, spacing := range c.Engine.FeeTickSpacing {
		if spacing <= 0 {
			return fmt.Errorf("engine.fee_tick_spacing[%s] must be positive", k)
		}
	}
	return nil
}

func bindEnvVars(v *viper.Viper) {
	bindings := []string{
		"app.name",
		"app.environment",
		"app.log_level",
		"ethereum.http_url",
		"ethereum.chain_id",
		"ethereum.requests_per_minute",
		"ethereum.call_timeout",
		"contracts.v2_router",
		"contracts.v2_factory",
		"contracts.v3_position_manager",
		"contracts.v3_swap_router",
		"contracts.v3_factory",
		"contracts.v4_position_manager",
		"contracts.v4_state_view",
		"contracts.universal_router",
		"contracts.permit2",
		"contracts.wrapped_native",
		"engine.dynamic_fee_spacing",
		"engine.v2_fee_numerator",
		"engine.v2_fee_denominator",
		"engine.default_slippage_bps",
		"engine.deadline_window",
		"telemetry.enabled",
		"telemetry.service_name",
		"telemetry.otlp_endpoint",
		"telemetry.prometheus_port",
	}
	for _, key := range bindings {
		_ = v.BindEnv(key)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dexkit")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("ethereum.chain_id", uint64(1))
	v.SetDefault("ethereum.requests_per_minute", 300)
	v.SetDefault("ethereum.call_timeout", 10*time.Second)

	v.SetDefault("engine.dynamic_fee_spacing", 200)
	v.SetDefault("engine.v2_fee_numerator", int64(997))
	v.SetDefault("engine.v2_fee_denominator", int64(1000))
	v.SetDefault("engine.default_slippage_bps", 50)
	v.SetDefault("engine.deadline_window", 20*time.Minute)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "dexkit")
	v.SetDefault("telemetry.prometheus_port", 9090)
}
