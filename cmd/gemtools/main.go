// gemtools bundles the web build helpers behind one binary and adds
// commands for inspecting a generated shader table.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gemtools/internal/config"
	"github.com/Faultbox/gemtools/internal/deploy"
	"github.com/Faultbox/gemtools/internal/embedder"
	"github.com/Faultbox/gemtools/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "embed":
		cmdEmbed(args)
	case "deploy":
		cmdDeploy(args)
	case "list", "ls":
		cmdList(args)
	case "show", "cat":
		cmdShow(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gemtools - web build helpers

Usage:
  gemtools <command> [options]

Commands:
  embed  [-config f] [-debug]         Embed shader sources into the C++ table
  deploy [-config f] [-debug]         Copy release artifacts to the serving dir
  list   <table.cpp> [pattern]        List names in a generated table
  show   <table.cpp> <name>           Print one embedded file

Examples:
  gemtools embed
  gemtools deploy -debug
  gemtools list src/embedded/textfiles.cpp "*frag*"
  gemtools show src/embedded/textfiles.cpp trace_frag.glsl`)
}

// setup loads config and logging for the commands that touch the build tree.
func setup(args []string) *config.Config {
	if err := config.ParseArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func fail(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
	logger.Sync()
	os.Exit(1)
}

func cmdEmbed(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	n, err := embedder.Generate(embedder.Options{
		InputDir:   cfg.Embed.InputDir,
		Extension:  cfg.Embed.Extension,
		OutputPath: cfg.Embed.Output,
		Delimiter:  cfg.Embed.Delimiter,
	})
	if err != nil {
		fail("embedding failed", zap.Error(err))
	}
	logger.Info("embedded shaders", zap.Int("count", n), zap.String("output", cfg.Embed.Output))
}

func cmdDeploy(args []string) {
	cfg := setup(args)
	defer logger.Sync()

	c := &deploy.Copier{
		SrcDir: cfg.Deploy.SourceDir,
		DstDir: cfg.Deploy.DestDir,
		Files:  cfg.Deploy.Files,
	}
	copied, err := c.Run()
	if err != nil {
		fail("deploy failed", zap.Strings("copied", copied), zap.Error(err))
	}
	logger.Info("deployed release", zap.Int("files", len(copied)), zap.String("dest", cfg.Deploy.DestDir))
}

func loadTable(fs *flag.FlagSet, path string) embedder.Table {
	delim := fs.Lookup("delim").Value.String()
	table, err := embedder.Load(path, delim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return table
}

// tableDelimiter returns the delimiter embed would write with, so tables
// produced under a custom config can be read back without -delim.
func tableDelimiter() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Embed.Delimiter, nil
}

func mustTableDelimiter() string {
	delim, err := tableDelimiter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	return delim
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.String("delim", mustTableDelimiter(), "Raw string delimiter used by the table")
	sizes := fs.Bool("s", false, "Show content size in bytes")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gemtools list <table.cpp> [pattern]")
		os.Exit(1)
	}

	table := loadTable(fs, fs.Arg(0))

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	pattern := ""
	if fs.NArg() > 1 {
		pattern = strings.ToLower(fs.Arg(1))
	}

	count := 0
	for _, name := range names {
		if pattern != "" && !matches(pattern, name) {
			continue
		}
		if *sizes {
			fmt.Printf("%8d  %s\n", len(table[name]), name)
		} else {
			fmt.Println(name)
		}
		count++
	}

	if pattern != "" {
		fmt.Fprintf(os.Stderr, "\n(%d files matched)\n", count)
	}
}

func cmdShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.String("delim", mustTableDelimiter(), "Raw string delimiter used by the table")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gemtools show <table.cpp> <name>")
		os.Exit(1)
	}

	table := loadTable(fs, fs.Arg(0))
	name := fs.Arg(1)
	if _, ok := table[name]; !ok {
		fmt.Fprintf(os.Stderr, "File not found: %s\n", name)
		os.Exit(1)
	}
	fmt.Print(table.Get(name))
}
