package moviequeue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/dannyrandall/moviecatalog/internal/movies"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

// Store is the slice of the catalog the ingest path needs.
type Store interface {
	Put(ctx context.Context, m movies.Movie) error
}

// Queue consumes movie records published as JSON to an SQS queue and writes
// them into the catalog store. It is the only write path into the catalog
// besides the seeder; the HTTP API stays read-only.
type Queue struct {
	SQS    *sqs.Client
	Store  Store
	Tracer trace.Tracer

	QueueName string
	QueueURL  string
}

// New builds a consumer for the named queue. A non-empty queueURI skips the
// GetQueueUrl lookup (Copilot injects the URI directly).
func New(ctx context.Context, cfg aws.Config, queueName, queueURI string, store Store) (*Queue, error) {
	q := &Queue{
		SQS:       sqs.NewFromConfig(cfg),
		Store:     store,
		Tracer:    otel.Tracer(""),
		QueueName: queueName,
		QueueURL:  queueURI,
	}

	if q.QueueURL == "" {
		res, err := q.SQS.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
			QueueName: aws.String(queueName),
		})
		if err != nil {
			return nil, fmt.Errorf("get queue url: %w", err)
		}
		q.QueueURL = aws.ToString(res.QueueUrl)
	}

	return q, nil
}

// ReceiveAndProcess long-polls the queue until ctx is canceled. A message
// that cannot be ingested is logged and left on the queue for redelivery.
func (q *Queue) ReceiveAndProcess(ctx context.Context) error {
	recvAndProcess := func(ctx context.Context) error {
		ctx, span := q.Tracer.Start(ctx, "recvAndProcess",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(semconv.MessagingSystemKey.String("AmazonSQS")),
			trace.WithAttributes(semconv.MessagingDestinationKey.String(q.QueueName)),
			trace.WithAttributes(semconv.MessagingDestinationKindQueue))
		defer span.End()

		msgs, err := q.recieveMessages(ctx)
		if err != nil {
			return spanErrorf(span, "receive message: %w", err)
		}

		for _, msg := range msgs {
			if err := q.processMessage(ctx, msg); err != nil {
				return spanErrorf(span, "process message %q: %w", aws.ToString(msg.MessageId), err)
			}
		}

		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := recvAndProcess(ctx); err != nil {
			log.Printf("error: %s", err)
		}
	}
}

func spanErrorf(span trace.Span, format string, a ...any) error {
	err := fmt.Errorf(format, a...)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (q *Queue) recieveMessages(ctx context.Context) ([]types.Message, error) {
	res, err := q.SQS.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.QueueURL),
		MaxNumberOfMessages: 1,
		WaitTimeSeconds:     20,
	})
	if err != nil {
		return nil, err
	}

	return res.Messages, nil
}

func (q *Queue) processMessage(ctx context.Context, msg types.Message) error {
	ctx, span := q.Tracer.Start(ctx, "processMessage", trace.WithAttributes(semconv.MessagingMessageIDKey.String(aws.ToString(msg.MessageId))))
	defer span.End()

	movie, err := q.ingest(ctx, aws.ToString(msg.Body))
	if err != nil {
		return spanErrorf(span, "ingest movie: %w", err)
	}

	if err := q.deleteMessage(ctx, msg.ReceiptHandle); err != nil {
		return spanErrorf(span, "delete message: %w", err)
	}

	log.Printf("Ingested movie %d (%s)", movie.ID, movie.Title)
	return nil
}

// ingest decodes one message body and writes it through the store.
func (q *Queue) ingest(ctx context.Context, body string) (movies.Movie, error) {
	var movie movies.Movie
	if err := json.Unmarshal([]byte(body), &movie); err != nil {
		return movies.Movie{}, fmt.Errorf("unmarshal movie: %w", err)
	}

	if err := q.Store.Put(ctx, movie); err != nil {
		return movies.Movie{}, fmt.Errorf("store movie %d: %w", movie.ID, err)
	}

	return movie, nil
}

func (q *Queue) deleteMessage(ctx context.Context, receiptHandle *string) error {
	_, err := q.SQS.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.QueueURL),
		ReceiptHandle: receiptHandle,
	})

	return err
}
