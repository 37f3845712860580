package repository

import (
	"context"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "usuarios"

type userItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"nome"`
	Active bool   `dynamodbav:"ativo"`
}

// UserDynamoRepository reads staff accounts owned by the auth service. The
// notification fan-out and the policy sweep only need the active set.
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USUARIOS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) ListActive(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#ativo = :ativo"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ativo": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExpressionAttributeNames: map[string]string{
				"#ativo": "ativo",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []userItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			users = append(users, entities.User{ID: it.ID, Name: it.Name, Active: it.Active})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return users, nil
}
