package copilot

import (
	"fmt"
	"os"
)

const defaultServiceName = "movies"

// App returns the Copilot application name, or "" outside a Copilot
// deployment.
func App() string {
	return os.Getenv("COPILOT_APPLICATION_NAME")
}

// Environment returns the Copilot environment name, or "".
func Environment() string {
	return os.Getenv("COPILOT_ENVIRONMENT_NAME")
}

// QueueURI returns the URI of the SQS queue Copilot provisioned for this
// service, or "".
func QueueURI() string {
	return os.Getenv("COPILOT_QUEUE_URI")
}

// ServiceName composes the app-env-service name used to identify this
// service in traces. Outside a Copilot deployment it returns fallback, or
// "movies" when fallback is empty.
func ServiceName(fallback string) string {
	if fallback == "" {
		fallback = defaultServiceName
	}

	app, ok := os.LookupEnv("COPILOT_APPLICATION_NAME")
	if !ok {
		return fallback
	}

	env, ok := os.LookupEnv("COPILOT_ENVIRONMENT_NAME")
	if !ok {
		return fallback
	}

	svc, ok := os.LookupEnv("COPILOT_SERVICE_NAME")
	if !ok {
		return fallback
	}

	return fmt.Sprintf("%s-%s-%s", app, env, svc)
}
