package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"movielookup/movie"
)

const (
	movieKey     = "id"
	castMovieKey = "movieId"
)

// MovieRepository implements movie.Repository on top of a Movies table keyed
// by "id" and a MovieCast table partitioned by "movieId".
type MovieRepository struct {
	client     API
	movieTable string
	castTable  string
}

func NewMovieRepository(client API, movieTable, castTable string) *MovieRepository {
	return &MovieRepository{
		client:     client,
		movieTable: movieTable,
		castTable:  castTable,
	}
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Record, error) {
	if err := validateTable(r.movieTable); err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.movieTable,
		Key: map[string]types.AttributeValue{
			movieKey: &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb: get movie: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, movie.ErrInvalidMovieID
	}

	var item map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}

	return movie.Record(item), nil
}

func (r *MovieRepository) MovieCast(ctx context.Context, movieID int64) ([]movie.Record, error) {
	if err := validateTable(r.castTable); err != nil {
		return nil, err
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(castMovieKey).Equal(expression.Value(movieID))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("dynamodb: build cast key condition: %w", err)
	}

	cast := []movie.Record{}
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 &r.castTable,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: query movie cast: %w", err)
		}

		var items []map[string]any
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal movie cast: %w", err)
		}
		for _, item := range items {
			cast = append(cast, movie.Record(item))
		}
	}

	return cast, nil
}
