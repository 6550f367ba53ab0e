// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure for server settings such as the listen
// port and the identity (title, description) presented to connecting clients.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serving feature to build the server info document.
package server
