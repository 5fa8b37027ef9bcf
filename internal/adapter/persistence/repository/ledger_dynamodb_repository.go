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

const defaultBudgetLedgerTableName = "budget_ledger"

type ledgerItem struct {
	StudentID    string `dynamodbav:"student_id"`
	Field        string `dynamodbav:"field"`
	Allocated    int64  `dynamodbav:"allocated"`
	Used         int64  `dynamodbav:"used"`
	SourcePlanID string `dynamodbav:"source_plan_id"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// LedgerDynamoRepository persists BudgetLedgerEntry rows in DynamoDB.
//
// Table requirements:
//   - PK: student_id (string) — at most one ledger row per student
//   - GSI: field-index on field (string)
//
// Put is a plain overwrite: the approve transition and the recalculation
// engine both rewrite the whole row, which is what keeps the table free
// of duplicates.

type LedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGET_LEDGER_TABLE", defaultBudgetLedgerTableName),
	}
}

func (r *LedgerDynamoRepository) Put(ctx context.Context, e entities.BudgetLedgerEntry) (entities.BudgetLedgerEntry, error) {
	av, err := attributevalue.MarshalMap(toLedgerItem(e))
	if err != nil {
		return entities.BudgetLedgerEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BudgetLedgerEntry{}, err
	}
	return e, nil
}

func (r *LedgerDynamoRepository) GetByStudentID(ctx context.Context, studentID string) (entities.BudgetLedgerEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"student_id": &types.AttributeValueMemberS{Value: studentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetLedgerEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetLedgerEntry{}, nil
	}

	var it ledgerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetLedgerEntry{}, err
	}
	return fromLedgerItem(it), nil
}

func (r *LedgerDynamoRepository) ListByField(ctx context.Context, field string) ([]entities.BudgetLedgerEntry, error) {
	var entries []entities.BudgetLedgerEntry
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

		var items []ledgerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromLedgerItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func (r *LedgerDynamoRepository) ListAll(ctx context.Context) ([]entities.BudgetLedgerEntry, error) {
	var entries []entities.BudgetLedgerEntry
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []ledgerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromLedgerItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func toLedgerItem(e entities.BudgetLedgerEntry) ledgerItem {
	return ledgerItem{
		StudentID:    e.StudentID,
		Field:        e.Field,
		Allocated:    e.Allocated,
		Used:         e.Used,
		SourcePlanID: e.SourcePlanID,
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLedgerItem(it ledgerItem) entities.BudgetLedgerEntry {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.BudgetLedgerEntry{
		StudentID:    it.StudentID,
		Field:        it.Field,
		Allocated:    it.Allocated,
		Used:         it.Used,
		SourcePlanID: it.SourcePlanID,
		UpdatedAt:    updatedAt,
	}
}
