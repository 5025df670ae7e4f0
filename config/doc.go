// Package config loads SDK settings from a YAML file and environment
// variables. It defines the logging configuration host applications feed
// into the logger package.
package config
