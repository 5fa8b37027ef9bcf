package repository

import (
	"context"
	"time"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFieldSettingsTableName = "field_budget_settings"

type fieldSettingItem struct {
	Field           string `dynamodbav:"field"`
	PerLessonAmount int64  `dynamodbav:"per_lesson_amount"`
	MaxBudget       int64  `dynamodbav:"max_budget"`
	Active          bool   `dynamodbav:"active"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// FieldSettingsDynamoRepository persists FieldBudgetSetting rows.
//
// Table requirements:
//   - PK: field (string)
//
// The row is a per-field singleton with no history: Upsert overwrites
// whatever is there ("last change wins").

type FieldSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFieldSettingsRepository = (*FieldSettingsDynamoRepository)(nil)

func NewFieldSettingsDynamoRepository(ddb *dynamodb.Client) *FieldSettingsDynamoRepository {
	return &FieldSettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FIELD_SETTINGS_TABLE", defaultFieldSettingsTableName),
	}
}

func (r *FieldSettingsDynamoRepository) Upsert(ctx context.Context, s entities.FieldBudgetSetting) (entities.FieldBudgetSetting, error) {
	av, err := attributevalue.MarshalMap(toFieldSettingItem(s))
	if err != nil {
		return entities.FieldBudgetSetting{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.FieldBudgetSetting{}, err
	}
	return s, nil
}

func (r *FieldSettingsDynamoRepository) GetByField(ctx context.Context, field string) (entities.FieldBudgetSetting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"field": &types.AttributeValueMemberS{Value: field},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FieldBudgetSetting{}, err
	}
	if len(out.Item) == 0 {
		return entities.FieldBudgetSetting{}, nil
	}

	var it fieldSettingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FieldBudgetSetting{}, err
	}
	return fromFieldSettingItem(it), nil
}

func toFieldSettingItem(s entities.FieldBudgetSetting) fieldSettingItem {
	return fieldSettingItem{
		Field:           s.Field,
		PerLessonAmount: s.PerLessonAmount,
		MaxBudget:       s.MaxBudget,
		Active:          s.Active,
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFieldSettingItem(it fieldSettingItem) entities.FieldBudgetSetting {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FieldBudgetSetting{
		Field:           it.Field,
		PerLessonAmount: it.PerLessonAmount,
		MaxBudget:       it.MaxBudget,
		Active:          it.Active,
		UpdatedAt:       updatedAt,
	}
}
