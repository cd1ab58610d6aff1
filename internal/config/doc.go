// Package config loads the fieldcheck command's settings from environment
// variables prefixed with FIELDCHECK_.
package config
