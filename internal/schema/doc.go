// Package schema holds the parsed message schema that msgc compiles.
//
// This package contains plain data only. Loaders in internal/loader and
// internal/template produce a Schema; internal/compiler consumes it. schema
// imports nothing internal, so it stays the foundation layer.
//
// Key conventions:
//   - Messages, blocks and fields keep schema order, which is wire order
//   - Frequency numbers stay strings (decimal or 0x-prefixed hex)
//   - All JSON/YAML keys use snake_case
package schema
