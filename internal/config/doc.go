// Package config provides configuration loading, merging, and validation
// facilities for the wallet gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The resulting value is built
// once at process start; request-handling code receives it by reference and
// never consults the environment directly.
package config
