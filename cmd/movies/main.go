package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dannyrandall/moviecatalog/internal/copilot"
	"github.com/dannyrandall/moviecatalog/internal/dynamo"
	"github.com/dannyrandall/moviecatalog/internal/handlers"
	"github.com/dannyrandall/moviecatalog/internal/httpx"
	"github.com/dannyrandall/moviecatalog/internal/otel"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	_ = godotenv.Load(".env.local")

	moviesTable, ok := os.LookupEnv("MOVIES_NAME")
	if !ok {
		log.Fatalf("MOVIES_NAME is not set")
	}
	log.Printf("Using %q as the DynamoDB movies table", moviesTable)

	// Timeout for setup functions
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	svcName := copilot.ServiceName("movies")
	if err := otel.SetupTracer(ctx, svcName); err != nil {
		log.Fatalf("unable to setup otel tracer: %s", err)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load aws config: %s", err)
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions)

	catalog := &handlers.Movies{
		Store: &dynamo.Store{
			Client: dynamodb.NewFromConfig(cfg),
			Table:  moviesTable,
		},
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	// Each route names its projection; see internal/handlers.
	mux.Handle("/movies", otelhttp.NewHandler(http.HandlerFunc(catalog.List), "listMovies"))
	mux.Handle("/movies/", otelhttp.NewHandler(http.HandlerFunc(catalog.Get), "getMovie"))
	mux.Handle("/movie_summaries", otelhttp.NewHandler(http.HandlerFunc(catalog.ListSummaries), "listMovieSummaries"))

	handler := httpx.RequestID(httpx.AccessLog(mux))

	log.Printf("Starting server on :8080")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("error serving: %s", err)
	}
}
