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

const defaultClientsTableName = "clientes"

type clientItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"nome"`
	Phone  string `dynamodbav:"telefone,omitempty"`
	Email  string `dynamodbav:"email,omitempty"`
	Active bool   `dynamodbav:"ativo"`
}

// ClientDynamoRepository reads Client records owned by the registration
// service. The service-order core never writes to this table.
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return entities.Client{ID: it.ID, Name: it.Name, Phone: it.Phone, Email: it.Email, Active: it.Active}, nil
}

// GetNamesByIDs resolves display names for the listing join in chunks of the
// BatchGetItem key limit.
func (r *ClientDynamoRepository) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	const batchGetMaxKeys = 100

	names := make(map[string]string, len(ids))
	for start := 0; start < len(ids); start += batchGetMaxKeys {
		end := start + batchGetMaxKeys
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: request,
			})
			if err != nil {
				return nil, err
			}

			var items []clientItem
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.tableName], &items); err != nil {
				return nil, err
			}
			for _, it := range items {
				names[it.ID] = it.Name
			}

			request = out.UnprocessedKeys
		}
	}
	return names, nil
}
