package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Files    FilesConfig    `mapstructure:"files"`
	Output   OutputConfig   `mapstructure:"output"`
	Template TemplateConfig `mapstructure:"template"`
}

// FilesConfig names the three export files looked up inside the input
// directory. Each is optional independently.
type FilesConfig struct {
	VPCs           string `mapstructure:"vpcs"`
	SecurityGroups string `mapstructure:"security_groups"`
	Instances      string `mapstructure:"instances"`
}

type OutputConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

type TemplateConfig struct {
	Description string `mapstructure:"description"`
}

// Load reads the configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".cfimport"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("cfimport")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CFIMPORT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("files.vpcs", "vpcs.json")
	viper.SetDefault("files.security_groups", "security-groups.json")
	viper.SetDefault("files.instances", "ec2-instances.json")
	viper.SetDefault("output.file", "cloudformation-template.json")
	viper.SetDefault("output.format", "json")
	viper.SetDefault("template.description", "Imported AWS Infrastructure")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
