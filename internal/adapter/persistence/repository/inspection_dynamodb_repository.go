package repository

import (
	"context"
	"encoding/json"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInspectionsTableName = "inspections"

// Checklist and recommendations are stored as JSON text blobs, matching the
// shape the data has always had. The recommendations blob co-locates the
// service job array under its "service_lines" key (see
// entities.RecommendationsDocument).
type inspectionItem struct {
	JobID           string `dynamodbav:"job_id"`
	Checklist       string `dynamodbav:"checklist,omitempty"`
	Recommendations string `dynamodbav:"recommendations,omitempty"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository persists per-job inspection records in DynamoDB.
//
// Table requirements:
//   - PK: job_id (string)
//
// One record per job; Put is an upsert.

type InspectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
	}
}

func (r *InspectionDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) Put(ctx context.Context, insp entities.Inspection) (entities.Inspection, error) {
	it, err := toInspectionItem(insp)
	if err != nil {
		return entities.Inspection{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Inspection{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	return insp, nil
}

func toInspectionItem(insp entities.Inspection) (inspectionItem, error) {
	it := inspectionItem{
		JobID:     insp.JobID,
		UpdatedAt: insp.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if len(insp.Checklist) > 0 {
		b, err := json.Marshal(insp.Checklist)
		if err != nil {
			return inspectionItem{}, err
		}
		it.Checklist = string(b)
	}

	doc := entities.RecommendationsDocument{
		Points:       insp.Recommendations,
		ServiceLines: insp.ServiceLines,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return inspectionItem{}, err
	}
	it.Recommendations = string(b)
	return it, nil
}

func fromInspectionItem(it inspectionItem) entities.Inspection {
	insp := entities.Inspection{JobID: it.JobID}
	insp.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)

	if it.Checklist != "" {
		// A malformed blob reads as an empty checklist; the merge layer
		// rebuilds template defaults.
		var checklist entities.ChecklistMap
		if err := json.Unmarshal([]byte(it.Checklist), &checklist); err == nil {
			insp.Checklist = checklist
		}
	}
	if it.Recommendations != "" {
		var doc entities.RecommendationsDocument
		if err := json.Unmarshal([]byte(it.Recommendations), &doc); err == nil {
			insp.Recommendations = doc.Points
			insp.ServiceLines = doc.ServiceLines
		}
	}
	return insp
}
