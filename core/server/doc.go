// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for the listener, the API key and the client cache
// lifetime of availability responses.
//
// # Cache lifetime
//
// Inventory is refreshed every MaxAge (five minutes by default). Lists are served with
// that max-age; single levels use RemainingMaxAge so clients revalidate right after the
// next expected refresh.
package server
