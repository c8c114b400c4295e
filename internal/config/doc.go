// Package config assembles all component configurations from the process
// environment, with an optional .env file for local development.
package config
