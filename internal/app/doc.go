// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the logger, the snapshot
// store for the configured backend, the credential policy and the account
// service, exposing them via the Wire struct for commands to use.
package app
