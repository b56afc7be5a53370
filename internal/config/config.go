// Package config handles build tool configuration loading and management.
package config

import "github.com/Faultbox/gemtools/internal/deploy"

// Config holds all tool settings.
type Config struct {
	Embed   EmbedConfig   `yaml:"embed"`
	Deploy  DeployConfig  `yaml:"deploy"`
	Logging LoggingConfig `yaml:"logging"`
}

// EmbedConfig holds shader embedding settings.
type EmbedConfig struct {
	InputDir  string `yaml:"input_dir"`
	Output    string `yaml:"output"`
	Extension string `yaml:"extension"`
	Delimiter string `yaml:"delimiter"` // Raw string literal delimiter
}

// DeployConfig holds release staging settings.
type DeployConfig struct {
	SourceDir string   `yaml:"source_dir"`
	DestDir   string   `yaml:"dest_dir"`
	Files     []string `yaml:"files"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the layout of the web build.
func Default() *Config {
	return &Config{
		Embed: EmbedConfig{
			InputDir:  "./src",
			Output:    "./src/embedded/textfiles.cpp",
			Extension: ".glsl",
			Delimiter: "xxx",
		},
		Deploy: DeployConfig{
			SourceDir: "./build_web_release",
			DestDir:   "./",
			Files:     append([]string(nil), deploy.DefaultFiles...),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
