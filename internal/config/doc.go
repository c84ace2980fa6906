// Package config loads and merges application configuration for both the
// metadata KV server and the wallet client.
//
// Configuration is assembled from three sources — environment variables,
// command-line flags, and an optional JSON file — folded together with
// mergo so that the first non-zero value for a field wins. The server
// consumes the merged [StructuredConfig] directly; the client uses the
// narrowed [ClientConfig] view produced by [GetClientConfig].
package config
