// Package configs manages Flowkit's scheduler connection settings.
//
// Settings resolve in three layers, later layers winning:
//
//  1. Built-in defaults (an Azkaban solo-server on localhost)
//  2. The user config file at <user config dir>/flowkit/config.toml
//  3. FLOWKIT_* environment variables
//
// The recognized keys are server_url, username, password, failure_email,
// and timeout_seconds, with matching FLOWKIT_SERVER_URL, FLOWKIT_USERNAME,
// FLOWKIT_PASSWORD, FLOWKIT_FAILURE_EMAIL, and FLOWKIT_TIMEOUT_SECONDS
// environment overrides.
package configs
