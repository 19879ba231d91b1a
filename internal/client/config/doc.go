// Package config loads runtime configuration for the bookshop demo client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the bookshop server
//	-t int      request timeout (seconds)
//	-review     run the register/login/review scenario
//
// # File schema
//
//	server_url: http://localhost:3000
//	request_timeout: 10s
//	isbn: "9780143127741"
//	title: Sapiens
//	author: Harari
//	review: true
package config
