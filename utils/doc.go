// Package utils provides internal utility functions shared by the HTTP
// server, the GTFS-RT annotator and the CLI.
// This package is not intended to be imported by external code.
//
// It contains time formatting helpers for JSON payloads.
package utils
