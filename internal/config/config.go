// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// listdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, the result is normalized for sequential, positional consumers before it's returned.
	BatchUpdates bool

	// If set, the result is validated against the inputs and a violation panics. This is meant
	// for tests and debugging, it roughly doubles the cost of a diff.
	Check bool

	// KeySeparator splits a line into identity key and content for textdiff.KeyedLines. If empty,
	// the whole line is the key.
	KeySeparator string
}

// Default is the default configuration.
var Default = Config{
	BatchUpdates: false,
	Check:        false,
	KeySeparator: "\t",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	BatchUpdates Flag = 1 << iota
	Check
	KeySeparator
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case BatchUpdates:
		return "listdiff.BatchUpdates"
	case Check:
		return "listdiff.Check"
	case KeySeparator:
		return "textdiff.KeySeparator"
	default:
		panic("never reached")
	}
}
