package repository

import (
	"context"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultServicesTableName      = "services"
	defaultPackagesTableName      = "packages"
	defaultPackageTutorsTableName = "package_tutors"
	packageTutorsTutorIDIndex     = "tutor_id-index"
)

type serviceItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
}

type packageItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	ServiceID        string `dynamodbav:"service_id"`
	Quantity         int    `dynamodbav:"quantity"`
	PromotionalPrice string `dynamodbav:"promotional_price"`
	CreatedAt        string `dynamodbav:"created_at"`
}

type packageTutorItem struct {
	AssociationKey string `dynamodbav:"association_key"`
	PackageID      string `dynamodbav:"package_id"`
	TutorID        string `dynamodbav:"tutor_id"`
	AssignedAt     string `dynamodbav:"assigned_at"`
}

// CatalogDynamoRepository persists services, packages and package-tutor
// associations.
//
// Table requirements:
//   - services: PK id
//   - packages: PK id
//   - package_tutors: PK association_key, GSI1 (tutor_id-index): tutor_id
//
// Prices travel as decimal strings to stay exact.
type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	servicesTable string
	packagesTable string
	assocTable    string
	usageTable    string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		servicesTable: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		packagesTable: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
		assocTable:    getenvDefault("PACKAGE_TUTORS_TABLE", defaultPackageTutorsTableName),
		usageTable:    getenvDefault("PACKAGE_USAGES_TABLE", defaultPackageUsagesTableName),
	}
}

func (r *CatalogDynamoRepository) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(serviceItem{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price.String(),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.servicesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *CatalogDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.servicesTable),
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

func (r *CatalogDynamoRepository) CreatePackage(ctx context.Context, p entities.GroomingPackage) (entities.GroomingPackage, error) {
	av, err := attributevalue.MarshalMap(packageItem{
		ID:               p.ID,
		Name:             p.Name,
		ServiceID:        p.ServiceID,
		Quantity:         p.Quantity,
		PromotionalPrice: p.PromotionalPrice.String(),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.GroomingPackage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.packagesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.GroomingPackage{}, err
	}
	return p, nil
}

func (r *CatalogDynamoRepository) GetPackage(ctx context.Context, id string) (entities.GroomingPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.packagesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.GroomingPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.GroomingPackage{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GroomingPackage{}, err
	}
	return fromPackageItem(it), nil
}

func (r *CatalogDynamoRepository) ListPackages(ctx context.Context) ([]entities.GroomingPackage, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.packagesTable),
	})
	if err != nil {
		return nil, err
	}

	packages := make([]entities.GroomingPackage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it packageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		packages = append(packages, fromPackageItem(it))
	}
	return packages, nil
}

// AssignTutor writes the association row and the initial usage ledger entry
// in one transaction. The condition on the association key makes double
// assignment a conflict instead of a silent balance reset.
func (r *CatalogDynamoRepository) AssignTutor(ctx context.Context, assoc entities.PackageTutor, usage entities.PackageUsage) error {
	assocAV, err := attributevalue.MarshalMap(packageTutorItem{
		AssociationKey: entities.AssociationKey(assoc.PackageID, assoc.TutorID),
		PackageID:      assoc.PackageID,
		TutorID:        assoc.TutorID,
		AssignedAt:     assoc.AssignedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	usageAV, err := attributevalue.MarshalMap(toPackageUsageItem(usage))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.assocTable),
					Item:                assocAV,
					ConditionExpression: aws.String("attribute_not_exists(association_key)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.usageTable),
					Item:      usageAV,
				},
			},
		},
	})
	return err
}

func (r *CatalogDynamoRepository) IsTutorAssociated(ctx context.Context, packageID, tutorID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.assocTable),
		Key: map[string]types.AttributeValue{
			"association_key": &types.AttributeValueMemberS{Value: entities.AssociationKey(packageID, tutorID)},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *CatalogDynamoRepository) ListPackagesByTutor(ctx context.Context, tutorID string) ([]entities.GroomingPackage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.assocTable),
		IndexName:              aws.String(packageTutorsTutorIDIndex),
		KeyConditionExpression: aws.String("tutor_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tutorID},
		},
	})
	if err != nil {
		return nil, err
	}

	packages := make([]entities.GroomingPackage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it packageTutorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pkg, err := r.GetPackage(ctx, it.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg.ID != "" {
			packages = append(packages, pkg)
		}
	}
	return packages, nil
}

func fromServiceItem(it serviceItem) entities.Service {
	price, _ := decimal.NewFromString(it.Price)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Service{
		ID:        it.ID,
		Name:      it.Name,
		Price:     price,
		CreatedAt: createdAt,
	}
}

func fromPackageItem(it packageItem) entities.GroomingPackage {
	price, _ := decimal.NewFromString(it.PromotionalPrice)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.GroomingPackage{
		ID:               it.ID,
		Name:             it.Name,
		ServiceID:        it.ServiceID,
		Quantity:         it.Quantity,
		PromotionalPrice: price,
		CreatedAt:        createdAt,
	}
}
