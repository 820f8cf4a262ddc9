package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                string `dynamodbav:"id"`
	VehicleID         string `dynamodbav:"vehicle_id,omitempty"`
	Status            string `dynamodbav:"status"`
	CustomerComplaint string `dynamodbav:"customer_complaint,omitempty"`
	TechDiagnosis     string `dynamodbav:"tech_diagnosis,omitempty"`
	AssignedTechID    string `dynamodbav:"assigned_tech_id,omitempty"`
	IsArchived        bool   `dynamodbav:"is_archived"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// List returns all jobs on one side of the archive divide, newest first.
// The jobs table stays small (open work orders), so a filtered scan is fine;
// a sparse GSI can replace it if volume ever demands.
func (r *JobDynamoRepository) List(ctx context.Context, archived bool) ([]entities.Job, error) {
	var jobs []entities.Job
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#is_archived = :is_archived"),
			ExpressionAttributeNames: map[string]string{
				"#is_archived": "is_archived",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":is_archived": &types.AttributeValueMemberBOOL{Value: archived},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *JobDynamoRepository) UpdateStatusAndDiagnosis(ctx context.Context, id string, status entities.JobStatus, diagnosis string) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #tech_diagnosis = :tech_diagnosis, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":tech_diagnosis": &types.AttributeValueMemberS{Value: diagnosis},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":         "status",
			"#tech_diagnosis": "tech_diagnosis",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) UpdateAssignedTech(ctx context.Context, id, techID string) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #assigned_tech_id = :assigned_tech_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":assigned_tech_id": &types.AttributeValueMemberS{Value: techID},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#assigned_tech_id": "assigned_tech_id",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) SetArchived(ctx context.Context, id string, archived bool) (entities.Job, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_archived = :is_archived, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_archived": &types.AttributeValueMemberBOOL{Value: archived},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_archived": "is_archived",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *JobDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:                it.ID,
		VehicleID:         it.VehicleID,
		Status:            entities.JobStatus(it.Status),
		CustomerComplaint: it.CustomerComplaint,
		TechDiagnosis:     it.TechDiagnosis,
		AssignedTechID:    it.AssignedTechID,
		IsArchived:        it.IsArchived,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
