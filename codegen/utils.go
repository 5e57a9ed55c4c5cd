// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package codegen

import (
	"strconv"
	"strings"
)

// escapeString escapes a raw type or field name for embedding inside a
// double-quoted Cairo string literal. Recognized type names never need
// escaping, but unknown types keep their raw source text, which may contain
// arbitrary characters.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\") {
		return s
	}
	quoted := strconv.Quote(s)
	return quoted[1 : len(quoted)-1]
}
