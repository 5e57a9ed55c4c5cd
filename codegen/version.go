// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package codegen

import (
	"runtime/debug"
)

// Version contains the version string of the cairo-abigen library used for
// code generation. It is embedded in the header of generated files so the
// originating generator release can be traced back from any artifact.
//
// The value is populated from the build information at initialization. When
// the module is built from source without version information, it stays
// "unknown".
var Version = "unknown"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/attestkit/cairo-abigen" {
				Version = dep.Version
				break
			}
		}
	}
}
