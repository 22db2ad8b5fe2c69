package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/dannyrandall/moviecatalog/internal/copilot"
	"github.com/dannyrandall/moviecatalog/internal/dynamov1"
	"github.com/dannyrandall/moviecatalog/internal/handlers"
	"github.com/dannyrandall/moviecatalog/internal/httpx"
	"github.com/joho/godotenv"
)

// Same catalog API as cmd/movies, instrumented with X-Ray over the v1 SDK
// instead of OpenTelemetry over v2.
func main() {
	_ = godotenv.Load(".env.local")

	svcName := copilot.ServiceName("movies-xray")

	moviesTable, ok := os.LookupEnv("MOVIES_NAME")
	if !ok {
		log.Fatalf("MOVIES_NAME is not set")
	}
	log.Printf("Using %q as the movies table", moviesTable)

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	ddb := dynamodb.New(sess)
	xray.AWS(ddb.Client)

	catalog := &handlers.Movies{
		Store: &dynamov1.Store{
			Client: ddb,
			Table:  moviesTable,
		},
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("No handler registered for path %q", r.URL.String())
		http.NotFound(w, r)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	namer := xray.NewFixedSegmentNamer(svcName)
	mux.Handle("/movies", xray.Handler(namer, http.HandlerFunc(catalog.List)))
	mux.Handle("/movies/", xray.Handler(namer, http.HandlerFunc(catalog.Get)))
	mux.Handle("/movie_summaries", xray.Handler(namer, http.HandlerFunc(catalog.ListSummaries)))

	handler := httpx.RequestID(httpx.AccessLog(mux))

	log.Printf("Starting server on :8080")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("error serving: %s", err)
	}
}
