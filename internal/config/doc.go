// SPDX-License-Identifier: EPL-2.0

// Package config builds the explicit configuration value passed to every
// command.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// an optional .env file, then the process environment. API keys are only
// ever read from the environment or .env and are never printed.
package config
