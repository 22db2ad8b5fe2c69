package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dannyrandall/moviecatalog/internal/copilot"
	"github.com/dannyrandall/moviecatalog/internal/dynamo"
	"github.com/dannyrandall/moviecatalog/internal/moviequeue"
	"github.com/dannyrandall/moviecatalog/internal/otel"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

func main() {
	_ = godotenv.Load(".env.local")

	moviesTable, ok := os.LookupEnv("MOVIES_NAME")
	if !ok {
		log.Fatalf("MOVIES_NAME is not set")
	}
	log.Printf("Using %q as the DynamoDB movies table", moviesTable)

	ctx := context.Background()

	svcName := copilot.ServiceName("movie-processor")
	if err := otel.SetupTracer(ctx, svcName); err != nil {
		log.Fatalf("unable to setup otel tracer: %s", err)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load aws config: %s", err)
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions)

	store := &dynamo.Store{
		Client: dynamodb.NewFromConfig(cfg),
		Table:  moviesTable,
	}

	queueName := fmt.Sprintf("%s-%s-movieIngest", copilot.App(), copilot.Environment())
	q, err := moviequeue.New(ctx, cfg, queueName, copilot.QueueURI(), store)
	if err != nil {
		log.Fatalf("unable to setup movie queue: %s", err)
	}

	log.Printf("Waiting for events from %s", q.QueueURL)

	if err := q.ReceiveAndProcess(ctx); err != nil {
		log.Fatalf("unable to receive and process: %s", err)
	}
}
