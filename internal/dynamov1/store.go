package dynamov1

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/dannyrandall/moviecatalog/internal/movies"
)

// Store is the aws-sdk-go v1 twin of dynamo.Store. The X-Ray server variant
// uses it so the xray-instrumented v1 client can be compared against the
// otel-instrumented v2 one. Both read and write the same table format.
type Store struct {
	Client *dynamodb.DynamoDB
	Table  string
}

func (s *Store) FindAll(ctx context.Context) ([]movies.Movie, error) {
	var all []movies.Movie
	var pageErr error

	err := s.Client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Table),
	}, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var ms []movies.Movie
		if pageErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &ms); pageErr != nil {
			return false
		}
		all = append(all, ms...)
		return true
	})
	switch {
	case err != nil:
		return nil, fmt.Errorf("scan movies: %w", err)
	case pageErr != nil:
		return nil, fmt.Errorf("unmarshal movies: %w", pageErr)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (movies.Movie, error) {
	result, err := s.Client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Table),
		Key:       movieKey(id),
	})
	switch {
	case err != nil:
		return movies.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	case result.Item == nil:
		return movies.Movie{}, movies.ErrNotFound
	}

	var m movies.Movie
	if err := dynamodbattribute.UnmarshalMap(result.Item, &m); err != nil {
		return movies.Movie{}, fmt.Errorf("unmarshal movie %d: %w", id, err)
	}

	return m, nil
}

// Put writes a movie, stamping UpdatedAt and, for new records, CreatedAt.
func (s *Store) Put(ctx context.Context, m movies.Movie) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	av, err := dynamodbattribute.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal movie: %w", err)
	}

	_, err = s.Client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.Table),
	})
	if err != nil {
		return fmt.Errorf("put movie %d: %w", m.ID, err)
	}

	return nil
}

func movieKey(id int64) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"id": {N: aws.String(strconv.FormatInt(id, 10))},
	}
}
