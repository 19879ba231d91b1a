package config

import "os"

// parseEnv applies PORT, if set, as the listening port on all interfaces.
func parseEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddr = ":" + port
	}
}
