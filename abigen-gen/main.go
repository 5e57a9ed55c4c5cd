// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	abigen "github.com/attestkit/cairo-abigen"
	"github.com/attestkit/cairo-abigen/plugin"
)

// Config holds the command line configuration.
type Config struct {
	InputPath  string
	OutputDir  string
	ConfigFile string
	TypeNames  string
	Verbose    bool
}

func main() {
	cfg := Config{}
	flag.StringVar(&cfg.InputPath, "input", "", "Cairo source file or directory to scan")
	flag.StringVar(&cfg.OutputDir, "output", "", "Directory to write generated files to")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Optional yaml config with spec values and type overrides")
	flag.StringVar(&cfg.TypeNames, "types", "", "Comma-separated list of record names to generate (default: all)")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.DisableStacktrace = true
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(cfg Config, logger *zap.Logger) error {
	if cfg.InputPath == "" {
		return fmt.Errorf("input path is required (-input)")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output directory is required (-output)")
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}
	p := plugin.New(engine)

	filter := map[string]bool{}
	if cfg.TypeNames != "" {
		for _, name := range strings.Split(cfg.TypeNames, ",") {
			filter[strings.TrimSpace(name)] = true
		}
	}

	sources, err := collectSources(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no cairo sources found in %s", cfg.InputPath)
	}

	generated := 0
	diagCount := 0
	for _, source := range sources {
		logger.Debug("processing source", zap.String("file", source))

		data, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		files, diags, err := p.ProcessFile(string(data))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", source, err)
		}

		for _, diag := range diags {
			diagCount++
			logger.Error("diagnostic",
				zap.String("file", source),
				zap.Int("line", diag.Line),
				zap.String("severity", diag.Severity.String()),
				zap.String("message", diag.Message))
		}

		for _, generatedFile := range files {
			recordName := strings.TrimSuffix(generatedFile.Name, "_abi_provider.cairo")
			if len(filter) > 0 && !filter[recordName] {
				logger.Debug("skipping record not in -types filter", zap.String("record", recordName))
				continue
			}

			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
			}

			outPath := filepath.Join(cfg.OutputDir, generatedFile.Name)
			if err := os.WriteFile(outPath, []byte(generatedFile.Content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			logger.Debug("wrote generated file", zap.String("path", outPath))
			generated++
		}
	}

	if diagCount > 0 {
		return fmt.Errorf("%d diagnostic(s) reported", diagCount)
	}

	logger.Info("generation complete",
		zap.Int("sources", len(sources)),
		zap.Int("generated", generated))
	return nil
}

func buildEngine(cfg Config, logger *zap.Logger) (*abigen.Engine, error) {
	// classification fallbacks (unknown types, unresolvable width
	// expressions) surface as warnings
	opts := []abigen.Option{
		abigen.WithVerbose(),
		abigen.WithLogCb(logger.Sugar().Warnf),
	}

	specs := map[string]any{}
	if cfg.ConfigFile != "" {
		fileCfg, err := LoadGeneratorConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		for name, value := range fileCfg.Specs {
			specs[name] = value
		}
		for name, override := range fileCfg.Types {
			opts = append(opts, abigen.WithTypeOverride(name, abigen.TypeOverride{
				Size:     override.Size,
				SizeExpr: override.SizeExpr,
			}))
		}
	}

	return abigen.NewEngine(specs, opts...), nil
}

// collectSources returns the cairo files under the input path in a stable
// order, skipping previously generated provider files.
func collectSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var sources []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".cairo") && !strings.HasSuffix(p, "_abi_provider.cairo") {
			sources = append(sources, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sources)
	return sources, nil
}
