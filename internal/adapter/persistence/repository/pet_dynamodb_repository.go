package repository

import (
	"context"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPetsTableName = "pets"
	petsTutorIDIndex     = "tutor_id-index"
)

type petItem struct {
	ID      string `dynamodbav:"id"`
	TutorID string `dynamodbav:"tutor_id"`
	Name    string `dynamodbav:"name"`
	Type    string `dynamodbav:"type,omitempty"`
}

// PetDynamoRepository backs the ownership checks and the tutor pet lookups.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (tutor_id-index): tutor_id
type PetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPetRepository = (*PetDynamoRepository)(nil)

func NewPetDynamoRepository(ddb *dynamodb.Client) *PetDynamoRepository {
	return &PetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PETS_TABLE", defaultPetsTableName),
	}
}

func (r *PetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Pet{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pet{}, nil
	}

	var it petItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pet{}, err
	}
	return entities.Pet{ID: it.ID, TutorID: it.TutorID, Name: it.Name, Type: it.Type}, nil
}

func (r *PetDynamoRepository) ListByTutor(ctx context.Context, tutorID string) ([]entities.Pet, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(petsTutorIDIndex),
		KeyConditionExpression: aws.String("tutor_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tutorID},
		},
	})
	if err != nil {
		return nil, err
	}

	pets := make([]entities.Pet, 0, len(out.Items))
	for _, raw := range out.Items {
		var it petItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pets = append(pets, entities.Pet{ID: it.ID, TutorID: it.TutorID, Name: it.Name, Type: it.Type})
	}
	return pets, nil
}
