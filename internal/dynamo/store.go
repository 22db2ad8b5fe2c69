package dynamo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dannyrandall/moviecatalog/internal/movies"
)

// Store reads and writes movies in a DynamoDB table whose partition key is
// the numeric movie id. It implements movies.Store.
type Store struct {
	Client *dynamodb.Client
	Table  string
}

func (s *Store) FindAll(ctx context.Context) ([]movies.Movie, error) {
	p := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{
		TableName: aws.String(s.Table),
	})

	var all []movies.Movie
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan movies: %w", err)
		}

		var ms []movies.Movie
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &ms); err != nil {
			return nil, fmt.Errorf("unmarshal movies: %w", err)
		}
		all = append(all, ms...)
	}

	// Scan order is arbitrary; keep list responses stable.
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (movies.Movie, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
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
	if err := attributevalue.UnmarshalMap(result.Item, &m); err != nil {
		return movies.Movie{}, fmt.Errorf("unmarshal movie %d: %w", id, err)
	}

	return m, nil
}

// Put writes a movie, stamping UpdatedAt and, for new records, CreatedAt.
// The HTTP surface never calls this; it exists for the ingest worker and
// the seeder.
func (s *Store) Put(ctx context.Context, m movies.Movie) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	av, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal movie: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.Table),
	})
	if err != nil {
		return fmt.Errorf("put movie %d: %w", m.ID, err)
	}

	return nil
}

func movieKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}
