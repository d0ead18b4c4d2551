package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAppointmentsTableName = "appointments"
	appointmentsTutorIDIndex     = "tutor_id-index"
)

type appointmentItem struct {
	ID          string `dynamodbav:"id"`
	TutorID     string `dynamodbav:"tutor_id"`
	PetID       string `dynamodbav:"pet_id"`
	ServiceID   string `dynamodbav:"service_id,omitempty"`
	ServiceName string `dynamodbav:"service_name,omitempty"`
	TaxiDog     bool   `dynamodbav:"taxi_dog"`
	PackageID   string `dynamodbav:"package_id,omitempty"`
	ScheduledAt string `dynamodbav:"scheduled_at"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (tutor_id-index): tutor_id
//
// CreateConsumingUsage and DeleteRestoringUsage span the appointments and
// package_usages tables in one TransactWriteItems call, so the appointment
// write and the ledger mutation commit together or not at all.
type AppointmentDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	usageTable string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
		usageTable: getenvDefault("PACKAGE_USAGES_TABLE", defaultPackageUsagesTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) CreateConsumingUsage(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
	}

	usageKey := entities.UsageKey(a.PackageID, a.TutorID, a.ServiceID)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.usageTable),
					Key: map[string]types.AttributeValue{
						"usage_key": &types.AttributeValueMemberS{Value: usageKey},
					},
					UpdateExpression:    aws.String("SET remaining_quantity = remaining_quantity - :one"),
					ConditionExpression: aws.String("attribute_exists(usage_key) AND remaining_quantity > :zero"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one":  &types.AttributeValueMemberN{Value: "1"},
						":zero": &types.AttributeValueMemberN{Value: "0"},
					},
				},
			},
		},
	})
	if err != nil {
		// A cancellation on the usage update is the "no remaining
		// quantity" case, reported as a zero value per repository
		// convention. Anything else is a storage failure, and the
		// transaction has already been rolled back.
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && transactionConditionFailedAt(tce, 1) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) UpdateFields(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	expr := "SET tutor_id = :tutor_id, pet_id = :pet_id, scheduled_at = :scheduled_at, taxi_dog = :taxi_dog, updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":tutor_id":     &types.AttributeValueMemberS{Value: a.TutorID},
		":pet_id":       &types.AttributeValueMemberS{Value: a.PetID},
		":scheduled_at": &types.AttributeValueMemberS{Value: a.ScheduledAt.UTC().Format(time.RFC3339Nano)},
		":taxi_dog":     &types.AttributeValueMemberBOOL{Value: a.TaxiDog},
		":updated_at":   &types.AttributeValueMemberS{Value: a.UpdatedAt.UTC().Format(time.RFC3339Nano)},
	}

	set := func(attr string, value string) {
		if value == "" {
			expr += ", " + attr + " = :empty_" + attr
			vals[":empty_"+attr] = &types.AttributeValueMemberNULL{Value: true}
			return
		}
		expr += ", " + attr + " = :" + attr
		vals[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	set("service_id", a.ServiceID)
	set("service_name", a.ServiceName)
	set("package_id", a.PackageID)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: a.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Appointment{}, nil
	}
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Appointment{}, nil
	}
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *AppointmentDynamoRepository) DeleteRestoringUsage(ctx context.Context, a entities.Appointment) error {
	usageKey := entities.UsageKey(a.PackageID, a.TutorID, a.ServiceID)
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.usageTable),
					Key: map[string]types.AttributeValue{
						"usage_key": &types.AttributeValueMemberS{Value: usageKey},
					},
					UpdateExpression:    aws.String("SET remaining_quantity = remaining_quantity + :one"),
					ConditionExpression: aws.String("attribute_exists(usage_key)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one": &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("delete with usage restore failed: %w", err)
	}
	return nil
}

func (r *AppointmentDynamoRepository) ListByTutor(ctx context.Context, tutorID string) ([]entities.Appointment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(appointmentsTutorIDIndex),
		KeyConditionExpression: aws.String("tutor_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tutorID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Appointment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAppointmentItem(it))
	}
	return items, nil
}

// Filter scans with a filter expression. The admin tool's data volume is a
// single shop's bookings, so a scan is acceptable here.
func (r *AppointmentDynamoRepository) Filter(ctx context.Context, f interfaces.AppointmentFilter) ([]entities.Appointment, error) {
	expr := ""
	vals := map[string]types.AttributeValue{}
	names := map[string]string{}

	and := func(clause string) {
		if expr != "" {
			expr += " AND "
		}
		expr += clause
	}

	if !f.From.IsZero() && !f.To.IsZero() {
		and("scheduled_at BETWEEN :from AND :to")
		vals[":from"] = &types.AttributeValueMemberS{Value: f.From.UTC().Format(time.RFC3339Nano)}
		vals[":to"] = &types.AttributeValueMemberS{Value: f.To.UTC().Format(time.RFC3339Nano)}
	}
	if f.Status != "" {
		and("#status = :status")
		vals[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
		names["#status"] = "status"
	}
	if f.TutorID != "" {
		and("tutor_id = :tid")
		vals[":tid"] = &types.AttributeValueMemberS{Value: f.TutorID}
	}

	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeValues = vals
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
	}

	var results []entities.Appointment
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			results = append(results, fromAppointmentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return results, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:          a.ID,
		TutorID:     a.TutorID,
		PetID:       a.PetID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		TaxiDog:     a.TaxiDog,
		PackageID:   a.PackageID,
		ScheduledAt: a.ScheduledAt.UTC().Format(time.RFC3339Nano),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Appointment{
		ID:          it.ID,
		TutorID:     it.TutorID,
		PetID:       it.PetID,
		ServiceID:   it.ServiceID,
		ServiceName: it.ServiceName,
		TaxiDog:     it.TaxiDog,
		PackageID:   it.PackageID,
		ScheduledAt: scheduledAt,
		Status:      entities.AppointmentStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// transactionConditionFailedAt reports whether the cancellation reason at
// the given transact-item index was a failed condition check.
func transactionConditionFailedAt(tce *types.TransactionCanceledException, idx int) bool {
	if tce == nil || idx >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[idx].Code
	return code != nil && *code == "ConditionalCheckFailed"
}
