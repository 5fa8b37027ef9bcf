package repository

import (
	"context"

	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStudentsTableName = "students"

type studentItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Field string `dynamodbav:"field"`
}

// StudentDynamoRepository reads the student directory maintained by the
// enrollment system. This service never writes to it.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: field-index on field (string)

type StudentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStudentDirectory = (*StudentDynamoRepository)(nil)

func NewStudentDynamoRepository(ddb *dynamodb.Client) *StudentDynamoRepository {
	return &StudentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STUDENTS_TABLE", defaultStudentsTableName),
	}
}

func (r *StudentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Student, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Item) == 0 {
		return entities.Student{}, nil
	}

	var it studentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Student{}, err
	}
	return entities.Student(it), nil
}

func (r *StudentDynamoRepository) ListByField(ctx context.Context, field string) ([]entities.Student, error) {
	var students []entities.Student
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

		var items []studentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			students = append(students, entities.Student(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return students, nil
}
