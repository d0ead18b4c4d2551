package repository

import (
	"context"
	"sort"
	"time"

	"petslove_booking/internal/domain/entities"
	"petslove_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditLogsTableName = "audit_logs"

type auditEntryItem struct {
	ID        string `dynamodbav:"id"`
	Action    string `dynamodbav:"action"`
	Details   string `dynamodbav:"details"`
	ActorID   string `dynamodbav:"actor_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository is the append-only audit sink.
//
// Table requirements:
//   - PK: id (string)
type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(auditEntryItem{
		ID:        e.ID,
		Action:    e.Action,
		Details:   e.Details,
		ActorID:   e.ActorID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// ListRecent scans and sorts in memory; the trail of a single shop stays
// small enough for that.
func (r *AuditLogDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		entries = append(entries, entities.AuditEntry{
			ID:        it.ID,
			Action:    it.Action,
			Details:   it.Details,
			ActorID:   it.ActorID,
			CreatedAt: createdAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
