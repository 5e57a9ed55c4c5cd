// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package cairo

// ItemKind classifies a parsed top-level type item.
type ItemKind uint8

const (
	ItemStruct ItemKind = iota
	ItemEnum
	ItemAlias
)

// Attribute is one `#[name]` or `#[name(args)]` annotation attached to an
// item. Args keep the raw source text of each top-level argument, so
// `#[derive(Drop, Serde, Attestation)]` yields Name "derive" and Args
// ["Drop", "Serde", "Attestation"].
type Attribute struct {
	Name string
	Args []string
}

// Member is one field of a struct item. Type keeps the trimmed source text
// of the type expression with generic parameters intact. Positional struct
// members have an empty Name.
type Member struct {
	Name string
	Type string
}

// Item is one parsed top-level type definition.
type Item struct {
	Kind       ItemKind
	Name       string
	Attributes []Attribute
	Members    []Member // struct items only
	Positional bool     // struct declared with a parenthesized body

	Line   int
	Column int
}

// HasDerive reports whether the item carries a `#[derive(...)]` attribute
// naming the given capability.
func (i Item) HasDerive(name string) bool {
	for _, attr := range i.Attributes {
		if attr.Name != "derive" {
			continue
		}
		for _, arg := range attr.Args {
			if arg == name {
				return true
			}
		}
	}
	return false
}
