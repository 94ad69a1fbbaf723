package config

import (
	"fmt"
	"os"

	ouroboros "github.com/blinklabs-io/gouroboros"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the top-level configuration for the transaction-building
// engine and its demonstration CLI. It is loaded once at startup from an
// optional YAML file, then overlaid with environment variables.
type Config struct {
	Logging      LoggingConfig  `yaml:"logging"`
	Debug        DebugConfig    `yaml:"debug"`
	Storage      StorageConfig  `yaml:"storage"`
	Wallet       WalletConfig   `yaml:"wallet"`
	Selection    SelectionConfig `yaml:"selection"`
	Protocol     ProtocolConfig `yaml:"protocol"`
	Network      string         `yaml:"network" envconfig:"NETWORK"`
	NetworkMagic uint32
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

// DebugConfig holds a pprof listener address and port, in the same shape as
// shai's debug block. Nothing in this module starts a listener from it.
type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port" envconfig:"DEBUG_PORT"`
}

// StorageConfig points at the local badger directory backing internal/utxostore.
type StorageConfig struct {
	Directory string `yaml:"dir" envconfig:"STORAGE_DIR"`
}

// WalletConfig supplies the mnemonic for the bursa-backed internal/wallet.Wallet.
type WalletConfig struct {
	Mnemonic string `yaml:"mnemonic" envconfig:"MNEMONIC"`
}

// SelectionConfig mirrors the builder's per-call selectUtxosFrom options so a
// caller can set sane process-wide defaults once.
type SelectionConfig struct {
	DefaultStrategy          string `yaml:"defaultStrategy" envconfig:"SELECTION_STRATEGY"`
	DefaultThresholdLovelace uint64 `yaml:"defaultThresholdLovelace" envconfig:"SELECTION_THRESHOLD_LOVELACE"`
	IncludeTxFees            bool   `yaml:"includeTxFees" envconfig:"SELECTION_INCLUDE_TX_FEES"`
}

// ProtocolConfig holds a partial override of the chain's protocol
// parameters. Nothing in this module applies it to what a Provider's
// GetProtocolParameters returns. Field names and types mirror apollo's Base.ProtocolParameters directly
// (MinFeeConstant, MinFeeCoefficient, CoinsPerUtxoByte, CollateralPercent,
// MaxCollateralInuts) so an override can be copied onto that struct without
// a translation layer. All fields are pointers so "unset" is distinguishable
// from "zero".
type ProtocolConfig struct {
	MinFeeConstant     *int    `yaml:"minFeeConstant"`
	MinFeeCoefficient  *int    `yaml:"minFeeCoefficient"`
	CoinsPerUtxoByte   *int    `yaml:"coinsPerUtxoByte"`
	CollateralPercent  *int    `yaml:"collateralPercent"`
	MaxCollateralInuts *int    `yaml:"maxCollateralInuts"`
}

// Singleton config instance with default values.
var globalConfig = &Config{
	Network: "mainnet",
	Logging: LoggingConfig{
		Level: "info",
	},
	Debug: DebugConfig{
		ListenAddress: "localhost",
		ListenPort:    0,
	},
	Storage: StorageConfig{
		Directory: "./.txbuilder",
	},
	Selection: SelectionConfig{
		DefaultStrategy:          "experimental",
		DefaultThresholdLovelace: 1_000_000,
		IncludeTxFees:            true,
	},
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %s", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %s", err)
		}
	}
	// Load config values from environment variables. We use "dummy" as the
	// app name here to (mostly) prevent picking up env vars that weren't
	// explicitly annotated above.
	if err := envconfig.Process("dummy", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %s", err)
	}
	// Populate network magic from network name
	network := ouroboros.NetworkByName(globalConfig.Network)
	if network == ouroboros.NetworkInvalid {
		return nil, fmt.Errorf("unknown network name: %s", globalConfig.Network)
	}
	globalConfig.NetworkMagic = network.NetworkMagic
	return globalConfig, nil
}

// GetConfig returns the global config instance.
func GetConfig() *Config {
	return globalConfig
}
