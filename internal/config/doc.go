// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Every field is optional: defaults reproduce the stock two-league report, and
// command-line flags override whatever the file sets.
package config
