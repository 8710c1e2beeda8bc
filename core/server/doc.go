// Package server holds the HTTP server configuration and error handler.
//
// The start command reads Port to build the listen address and passes ApiKey
// to the auth middleware. An empty ApiKey leaves the API open.
// ErrorHandler turns handler errors into JSON bodies.
package server
