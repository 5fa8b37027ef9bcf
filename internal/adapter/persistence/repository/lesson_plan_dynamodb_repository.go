package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLessonPlansTableName = "lesson_plans"
	fieldIndexName              = "field-index"
)

type lessonPlanItem struct {
	StudentID       string `dynamodbav:"student_id"`
	ID              string `dynamodbav:"id"`
	Field           string `dynamodbav:"field"`
	Status          string `dynamodbav:"status"`
	LessonCount     int    `dynamodbav:"lesson_count"`
	Schedule        string `dynamodbav:"schedule,omitempty"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	ApprovedAt      string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy      string `dynamodbav:"approved_by,omitempty"`
	Version         int64  `dynamodbav:"version"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// LessonPlanDynamoRepository persists LessonPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: student_id (string) — guarantees 1 plan per student
//   - GSI: field-index on field (string)
//
// Mutations are conditional puts on the version attribute; a version
// mismatch surfaces as interfaces.ErrVersionConflict so the usecase can
// tell a lost race apart from a missing plan.

type LessonPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILessonPlanRepository = (*LessonPlanDynamoRepository)(nil)

func NewLessonPlanDynamoRepository(ddb *dynamodb.Client) *LessonPlanDynamoRepository {
	return &LessonPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LESSON_PLANS_TABLE", defaultLessonPlansTableName),
	}
}

func (r *LessonPlanDynamoRepository) Create(ctx context.Context, plan entities.LessonPlan) (entities.LessonPlan, error) {
	av, err := attributevalue.MarshalMap(toLessonPlanItem(plan))
	if err != nil {
		return entities.LessonPlan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "student_id",
		},
	})
	if err != nil {
		return entities.LessonPlan{}, err
	}
	return plan, nil
}

func (r *LessonPlanDynamoRepository) GetByStudentID(ctx context.Context, studentID string) (entities.LessonPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"student_id": &types.AttributeValueMemberS{Value: studentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LessonPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.LessonPlan{}, nil
	}

	var it lessonPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LessonPlan{}, err
	}
	return fromLessonPlanItem(it), nil
}

func (r *LessonPlanDynamoRepository) UpdateWithVersion(ctx context.Context, plan entities.LessonPlan, expectedVersion int64) (entities.LessonPlan, error) {
	plan.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toLessonPlanItem(plan))
	if err != nil {
		return entities.LessonPlan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#sid) AND #version = :v"),
		ExpressionAttributeNames: map[string]string{
			"#sid":     "student_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.LessonPlan{}, nil
			}
			return entities.LessonPlan{}, interfaces.ErrVersionConflict
		}
		return entities.LessonPlan{}, err
	}
	return plan, nil
}

func (r *LessonPlanDynamoRepository) ListByField(ctx context.Context, field string) ([]entities.LessonPlan, error) {
	var plans []entities.LessonPlan
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(fieldIndexName),
			KeyConditionExpression: aws.String("#field = :field"),
			ExpressionAttributeNames: map[string]string{
				"#field": "field",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":field": &types.AttributeValueMemberS{Value: field},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []lessonPlanItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			plans = append(plans, fromLessonPlanItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return plans, nil
}

func toLessonPlanItem(p entities.LessonPlan) lessonPlanItem {
	it := lessonPlanItem{
		StudentID:       p.StudentID,
		ID:              p.ID,
		Field:           p.Field,
		Status:          string(p.Status),
		LessonCount:     p.LessonCount,
		Schedule:        string(p.Schedule),
		RejectionReason: p.RejectionReason,
		ApprovedBy:      p.ApprovedBy,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.ApprovedAt != nil {
		it.ApprovedAt = p.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromLessonPlanItem(it lessonPlanItem) entities.LessonPlan {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.LessonPlan{
		ID:              it.ID,
		StudentID:       it.StudentID,
		Field:           it.Field,
		Status:          entities.PlanStatus(it.Status),
		LessonCount:     it.LessonCount,
		RejectionReason: it.RejectionReason,
		ApprovedBy:      it.ApprovedBy,
		Version:         it.Version,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.Schedule != "" {
		p.Schedule = json.RawMessage(it.Schedule)
	}
	if it.ApprovedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ApprovedAt); err == nil {
			p.ApprovedAt = &t
		}
	}
	return p
}
