package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infof("env var %s is empty, using default %q", env, def)
		return def
	}
	return value
}

// Must return the value of an env var, logging an error when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Errorf("required env var %s is not set", env)
	}
	return value
}
