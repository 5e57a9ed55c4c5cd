// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig is the optional yaml configuration file: named constants
// for width expressions and custom fixed-size type registrations.
//
//	specs:
//	  FELT_WIDTH: 32
//	types:
//	  EthAddress:
//	    size: 20
//	  Signature:
//	    size_expr: FELT_WIDTH * 2
type GeneratorConfig struct {
	Specs map[string]uint64       `yaml:"specs"`
	Types map[string]TypeOverride `yaml:"types"`
}

type TypeOverride struct {
	Size     uint32 `yaml:"size"`
	SizeExpr string `yaml:"size_expr"`
}

func LoadGeneratorConfig(path string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &GeneratorConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
