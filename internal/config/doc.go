// Package config provides configuration loading, merging, and validation
// facilities for the node and its hosts.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetStructuredConfig]; hosts call
// [StructuredConfig.ValidateServer] or [StructuredConfig.ValidateNode] for
// their own requirements.
package config
