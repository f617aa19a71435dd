package echoclient

import (
	"fmt"
	"os"
	"strings"
)

// CollectorEnvVar is the environment variable consulted by CollectorURLFromEnv.
const CollectorEnvVar = "ECHO_COLLECTOR_ENV"

// CollectorURLFromEnv selects a collector endpoint from the process environment. The
// variable named by CollectorEnvVar must be set to "stage" or "prod" (case-insensitive;
// "production" is also accepted). A missing or unrecognized value yields an error of kind
// ErrorKindEnvironment, with StageCollectorURL as the returned fallback.
func CollectorURLFromEnv() (CollectorURL, error) {
	value, ok := os.LookupEnv(CollectorEnvVar)
	if !ok {
		return StageCollectorURL, environmentError(fmt.Sprintf("%s is not set", CollectorEnvVar))
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "stage":
		return StageCollectorURL, nil
	case "prod", "production":
		return ProdCollectorURL, nil
	default:
		return StageCollectorURL, environmentError(fmt.Sprintf("%s has unrecognized value %q", CollectorEnvVar, value))
	}
}
