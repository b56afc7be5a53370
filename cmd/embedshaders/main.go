// embedshaders writes every GLSL source in the shader directory into a C++
// initializer list consumed by the web build.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gemtools/internal/config"
	"github.com/Faultbox/gemtools/internal/embedder"
	"github.com/Faultbox/gemtools/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg.Embed)

	n, err := embedder.Generate(embedder.Options{
		InputDir:   cfg.Embed.InputDir,
		Extension:  cfg.Embed.Extension,
		OutputPath: cfg.Embed.Output,
		Delimiter:  cfg.Embed.Delimiter,
	})
	if err != nil {
		logger.Error("embedding failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("embedded shaders",
		zap.Int("count", n),
		zap.String("output", cfg.Embed.Output))
}
