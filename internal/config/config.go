package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the hardinfo tool configuration.
type Config struct {
	LshwPath    string        `mapstructure:"lshw_path"`
	LsblkPath   string        `mapstructure:"lsblk_path"`
	LscpuPath   string        `mapstructure:"lscpu_path"`
	UseSudo     bool          `mapstructure:"use_sudo"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Strict      bool          `mapstructure:"strict"`
	SnapshotDir string        `mapstructure:"snapshot_dir"`
	LogLevel    string        `mapstructure:"log_level"`

	// ExtraCPUFlags extends the recognized CPU capability schema without
	// a rebuild when vendors ship new feature flags.
	ExtraCPUFlags []string `mapstructure:"extra_cpu_flags"`
}

// Load reads configuration from file and environment.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hardinfo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/hardinfo")
	}

	viper.SetDefault("lshw_path", "lshw")
	viper.SetDefault("lsblk_path", "lsblk")
	viper.SetDefault("lscpu_path", "lscpu")
	viper.SetDefault("use_sudo", false)
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("strict", false)
	viper.SetDefault("snapshot_dir", "snapshots")
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("HARDINFO")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
