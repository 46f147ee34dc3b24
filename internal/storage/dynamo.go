package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"github.com/aws/aws-sdk-go/aws"                                //nolint:staticcheck // TODO: Migrate to aws-sdk-go-v2
	"github.com/aws/aws-sdk-go/aws/awserr"                         //nolint:staticcheck
	"github.com/aws/aws-sdk-go/aws/session"                        //nolint:staticcheck
	"github.com/aws/aws-sdk-go/service/dynamodb"                   //nolint:staticcheck
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute" //nolint:staticcheck
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"     //nolint:staticcheck
)

// DefaultDynamoTable is the songs table used when DYNAMODB_TABLE is unset
const DefaultDynamoTable = "ikovsky-songs"

const attrSongID = "song-id"

// dynamoSong is the item layout of the songs table
type dynamoSong struct {
	ID         string `dynamodbav:"song-id"`
	Name       string `dynamodbav:"song-name"`
	MidiBase64 string `dynamodbav:"midi-value"`
	Saved      bool   `dynamodbav:"saved"`
	Seed       string `dynamodbav:"seed,omitempty"`
	Key        string `dynamodbav:"key,omitempty"`
	Tempo      int    `dynamodbav:"tempo,omitempty"`
	TimeSig    string `dynamodbav:"time-sig,omitempty"`
	Parts      int    `dynamodbav:"parts,omitempty"`
	Bars       int    `dynamodbav:"bars,omitempty"`
	CreatedAt  int64  `dynamodbav:"created-at"`
}

// DynamoStore keeps songs in a DynamoDB table keyed by song-id
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// NewDynamoStore creates a store using credentials from the environment
func NewDynamoStore(region, table string) *DynamoStore {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	return NewDynamoStoreWithClient(dynamodb.New(sess), table)
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	if table == "" {
		table = DefaultDynamoTable
	}
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) key(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		attrSongID: {S: aws.String(id)},
	}
}

func (s *DynamoStore) Create(ctx context.Context, song *models.Song) error {
	now := time.Now()
	song.CreatedAt, song.UpdatedAt = now, now

	item, err := dynamodbattribute.MarshalMap(dynamoSong{
		ID:         song.ID,
		Name:       song.Name,
		MidiBase64: song.MidiBase64,
		Saved:      song.Saved,
		Seed:       song.Seed,
		Key:        song.Key,
		Tempo:      song.Tempo,
		TimeSig:    song.TimeSig,
		Parts:      song.Parts,
		Bars:       song.Bars,
		CreatedAt:  now.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal song: %w", err)
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]*string{
			"#id": aws.String(attrSongID),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put song: %w", err)
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (*models.Song, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}

	var item dynamoSong
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal song: %w", err)
	}
	created := time.Unix(item.CreatedAt, 0)
	return &models.Song{
		ID:         item.ID,
		CreatedAt:  created,
		UpdatedAt:  created,
		Name:       item.Name,
		MidiBase64: item.MidiBase64,
		Seed:       item.Seed,
		Key:        item.Key,
		Tempo:      item.Tempo,
		TimeSig:    item.TimeSig,
		Parts:      item.Parts,
		Bars:       item.Bars,
		Saved:      item.Saved,
	}, nil
}

func (s *DynamoStore) MarkSaved(ctx context.Context, id string) error {
	_, err := s.client.UpdateItemWithContext(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 s.key(id),
		UpdateExpression:    aws.String("SET saved = :saved"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]*string{
			"#id": aws.String(attrSongID),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":saved": {BOOL: aws.Bool(true)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("%w: %s", ErrSongNotFound, id)
		}
		return fmt.Errorf("failed to save song: %w", err)
	}
	return nil
}

func isConditionFailed(err error) bool {
	var aerr awserr.Error
	return errors.As(err, &aerr) && aerr.Code() == dynamodb.ErrCodeConditionalCheckFailedException
}
