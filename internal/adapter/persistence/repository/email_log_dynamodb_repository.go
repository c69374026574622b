package repository

import (
	"context"
	"time"

	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmailLogTableName = "email_send_log"
	emailLogCUITIndex        = "cuit-index"
)

type emailLogItem struct {
	ID          string   `dynamodbav:"id"`
	CreatedAt   string   `dynamodbav:"created_at"`
	CUIT        string   `dynamodbav:"cuit"`
	Insurer     string   `dynamodbav:"insurer,omitempty"`
	Contract    string   `dynamodbav:"contract,omitempty"`
	Recipients  []string `dynamodbav:"recipients,omitempty"`
	Subject     string   `dynamodbav:"subject,omitempty"`
	BodySummary string   `dynamodbav:"body_summary,omitempty"`
	Status      string   `dynamodbav:"status"`
	Error       string   `dynamodbav:"error,omitempty"`
	MessageID   string   `dynamodbav:"message_id,omitempty"`
	LotID       string   `dynamodbav:"lot_id,omitempty"`
}

// EmailLogDynamoRepository persists the per-CUIT send log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cuit-index (PK: cuit)

type EmailLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmailLogRepository = (*EmailLogDynamoRepository)(nil)

func NewEmailLogDynamoRepository(ddb *dynamodb.Client) *EmailLogDynamoRepository {
	return &EmailLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMAIL_LOG_TABLE", defaultEmailLogTableName),
	}
}

func (r *EmailLogDynamoRepository) Create(ctx context.Context, entry entities.EmailSendLog) (entities.EmailSendLog, error) {
	av, err := attributevalue.MarshalMap(toEmailLogItem(entry))
	if err != nil {
		return entities.EmailSendLog{}, err
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
		return entities.EmailSendLog{}, err
	}
	return entry, nil
}

func (r *EmailLogDynamoRepository) ListByCUIT(ctx context.Context, cuit string) ([]entities.EmailSendLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(emailLogCUITIndex),
		KeyConditionExpression: aws.String("cuit = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: cuit},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.EmailSendLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it emailLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromEmailLogItem(it))
	}
	return entries, nil
}

func toEmailLogItem(e entities.EmailSendLog) emailLogItem {
	return emailLogItem{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		CUIT:        e.CUIT,
		Insurer:     e.Insurer,
		Contract:    e.Contract,
		Recipients:  e.Recipients,
		Subject:     e.Subject,
		BodySummary: e.BodySummary,
		Status:      string(e.Status),
		Error:       e.Error,
		MessageID:   e.MessageID,
		LotID:       e.LotID,
	}
}

func fromEmailLogItem(it emailLogItem) entities.EmailSendLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EmailSendLog{
		ID:          it.ID,
		CreatedAt:   createdAt,
		CUIT:        it.CUIT,
		Insurer:     it.Insurer,
		Contract:    it.Contract,
		Recipients:  it.Recipients,
		Subject:     it.Subject,
		BodySummary: it.BodySummary,
		Status:      entities.EmailSendStatus(it.Status),
		Error:       it.Error,
		MessageID:   it.MessageID,
		LotID:       it.LotID,
	}
}
