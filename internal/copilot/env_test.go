package copilot

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetCopilotEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COPILOT_APPLICATION_NAME",
		"COPILOT_ENVIRONMENT_NAME",
		"COPILOT_SERVICE_NAME",
		"COPILOT_QUEUE_URI",
	} {
		// t.Setenv registers the restore; Unsetenv makes the var truly absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestServiceName(t *testing.T) {
	unsetCopilotEnv(t)

	assert.Equal(t, "movies-api", ServiceName("movies-api"))
	assert.Equal(t, "movies", ServiceName(""))

	t.Setenv("COPILOT_APPLICATION_NAME", "catalog")
	assert.Equal(t, "movies-api", ServiceName("movies-api"), "partial copilot env falls back")

	t.Setenv("COPILOT_ENVIRONMENT_NAME", "test")
	t.Setenv("COPILOT_SERVICE_NAME", "movies")
	assert.Equal(t, "catalog-test-movies", ServiceName("movies-api"))
}

func TestQueueURI(t *testing.T) {
	unsetCopilotEnv(t)
	assert.Equal(t, "", QueueURI())

	t.Setenv("COPILOT_QUEUE_URI", "https://sqs.us-west-2.amazonaws.com/12345/catalog-test-movieIngest")
	assert.Equal(t, "https://sqs.us-west-2.amazonaws.com/12345/catalog-test-movieIngest", QueueURI())
}

func TestAppAndEnvironment(t *testing.T) {
	unsetCopilotEnv(t)
	assert.Equal(t, "", App())
	assert.Equal(t, "", Environment())

	t.Setenv("COPILOT_APPLICATION_NAME", "catalog")
	t.Setenv("COPILOT_ENVIRONMENT_NAME", "test")
	assert.Equal(t, "catalog", App())
	assert.Equal(t, "test", Environment())
}
