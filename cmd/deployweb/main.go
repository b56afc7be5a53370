// deployweb copies the web release build into the serving directory.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gemtools/internal/config"
	"github.com/Faultbox/gemtools/internal/deploy"
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

	c := &deploy.Copier{
		SrcDir: cfg.Deploy.SourceDir,
		DstDir: cfg.Deploy.DestDir,
		Files:  cfg.Deploy.Files,
	}

	copied, err := c.Run()
	if err != nil {
		logger.Error("deploy failed",
			zap.Strings("copied", copied),
			zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("deployed release",
		zap.Int("files", len(copied)),
		zap.String("dest", cfg.Deploy.DestDir))
}
