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

const defaultStockTableName = "produtos_estoque"

type stockItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"nome"`
	Quantity    int    `dynamodbav:"quantidade"`
	MinQuantity int    `dynamodbav:"estoque_minimo"`
}

// StockDynamoRepository reads inventory owned by the stock service; the
// policy sweep consumes only the critical slice.
type StockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUTOS_ESTOQUE_TABLE", defaultStockTableName),
	}
}

func (r *StockDynamoRepository) ListCritical(ctx context.Context) ([]entities.StockItem, error) {
	var critical []entities.StockItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#quantidade <= #estoque_minimo"),
			ExpressionAttributeNames: map[string]string{
				"#quantidade":     "quantidade",
				"#estoque_minimo": "estoque_minimo",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []stockItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			critical = append(critical, entities.StockItem{
				ID:          it.ID,
				Name:        it.Name,
				Quantity:    it.Quantity,
				MinQuantity: it.MinQuantity,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return critical, nil
}
