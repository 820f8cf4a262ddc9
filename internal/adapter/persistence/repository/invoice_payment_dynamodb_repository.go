package repository

import (
	"context"
	"strconv"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicePaymentsTableName = "invoice_payments"
	invoicePaymentsJobIDIndex       = "job_id-index"
)

type invoicePaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	JobID        string                 `dynamodbav:"job_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists invoice payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type InvoicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb *dynamodb.Client) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICE_PAYMENTS_TABLE", defaultInvoicePaymentsTableName),
	}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	it := toInvoicePaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.InvoicePayment{}, err
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
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvoicePayment{}, nil
	}

	var it invoicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoicePayment{}, err
	}
	return fromInvoicePaymentItem(it), nil
}

func (r *InvoicePaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.InvoicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicePaymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoicePaymentItem(it))
	}
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:           p.ID,
		JobID:        p.JobID,
		Amount:       floatToString(p.Amount),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) entities.InvoicePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.InvoicePayment{
		ID:           it.ID,
		JobID:        it.JobID,
		Amount:       amount,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
