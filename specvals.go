// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package abigen

import (
	"fmt"

	"github.com/casbin/govaluate"
)

type cachedSizeValue struct {
	resolved bool
	value    uint64
}

// resolveSizeExpr evaluates a width expression against the engine's spec
// values. Parse and evaluation results are cached per expression, so
// repeated classification of the same override type stays a map lookup.
func (e *Engine) resolveSizeExpr(expr string) (bool, uint64, error) {
	e.sizeExprMux.RLock()
	cachedValue := e.sizeExprCache[expr]
	e.sizeExprMux.RUnlock()
	if cachedValue != nil {
		return cachedValue.resolved, cachedValue.value, nil
	}

	cachedValue = &cachedSizeValue{}
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return false, 0, fmt.Errorf("error parsing size expression: %v", err)
	}

	result, err := expression.Evaluate(e.specValues)
	if err == nil {
		value, ok := result.(float64)
		if ok {
			cachedValue.resolved = true
			cachedValue.value = uint64(value)
			if float64(cachedValue.value) < value {
				// rounding issue - always round up to full bytes as we can't have partial bytes
				cachedValue.value++
			}
		}
	}

	e.sizeExprMux.Lock()
	e.sizeExprCache[expr] = cachedValue
	e.sizeExprMux.Unlock()
	return cachedValue.resolved, cachedValue.value, nil
}
