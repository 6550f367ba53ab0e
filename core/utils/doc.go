// Package utils provides common utility functions for the Score Sync server.
// It includes tolerant scalar coercion helpers for hand-edited JSON documents
// and local network address discovery for the connect link.
package utils
