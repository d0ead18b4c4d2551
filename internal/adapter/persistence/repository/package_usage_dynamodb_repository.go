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
	defaultPackageUsagesTableName = "package_usages"
	usagesTutorIDIndex            = "tutor_id-index"
)

type packageUsageItem struct {
	UsageKey          string `dynamodbav:"usage_key"`
	PackageID         string `dynamodbav:"package_id"`
	TutorID           string `dynamodbav:"tutor_id"`
	ServiceID         string `dynamodbav:"service_id"`
	RemainingQuantity int    `dynamodbav:"remaining_quantity"`
}

// PackageUsageDynamoRepository reads the usage ledger.
//
// Table requirements:
//   - PK: usage_key (string, "<package_id>#<tutor_id>#<service_id>")
//   - GSI1 (tutor_id-index): tutor_id
//
// Writes to this table only ever happen inside the transactions owned by
// AppointmentDynamoRepository (consume/restore) and
// CatalogDynamoRepository.AssignTutor (seed).
type PackageUsageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageUsageRepository = (*PackageUsageDynamoRepository)(nil)

func NewPackageUsageDynamoRepository(ddb *dynamodb.Client) *PackageUsageDynamoRepository {
	return &PackageUsageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGE_USAGES_TABLE", defaultPackageUsagesTableName),
	}
}

func (r *PackageUsageDynamoRepository) Get(ctx context.Context, packageID, tutorID, serviceID string) (entities.PackageUsage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usage_key": &types.AttributeValueMemberS{Value: entities.UsageKey(packageID, tutorID, serviceID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PackageUsage{}, err
	}
	if len(out.Item) == 0 {
		return entities.PackageUsage{}, nil
	}

	var it packageUsageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PackageUsage{}, err
	}
	return fromPackageUsageItem(it), nil
}

func (r *PackageUsageDynamoRepository) ListByTutor(ctx context.Context, tutorID string) ([]entities.PackageUsage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usagesTutorIDIndex),
		KeyConditionExpression: aws.String("tutor_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tutorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PackageUsage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it packageUsageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPackageUsageItem(it))
	}
	return items, nil
}

func toPackageUsageItem(u entities.PackageUsage) packageUsageItem {
	return packageUsageItem{
		UsageKey:          u.Key(),
		PackageID:         u.PackageID,
		TutorID:           u.TutorID,
		ServiceID:         u.ServiceID,
		RemainingQuantity: u.RemainingQuantity,
	}
}

func fromPackageUsageItem(it packageUsageItem) entities.PackageUsage {
	return entities.PackageUsage{
		PackageID:         it.PackageID,
		TutorID:           it.TutorID,
		ServiceID:         it.ServiceID,
		RemainingQuantity: it.RemainingQuantity,
	}
}
