package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "ordens_servico"
	serviceOrderListIndex         = "list-index"

	// All orders share this constant partition on the list index so a single
	// Query returns them newest-first.
	serviceOrderEntity = "os"

	// The number counter lives in the orders table under a fixed id, outside
	// the list index (it carries no entity attribute).
	orderNumberCounterID = "numero_os_counter"
	orderNumberPrefix    = "#OS"
)

type serviceOrderItem struct {
	ID            string  `dynamodbav:"id"`
	Entity        string  `dynamodbav:"entity"`
	Number        string  `dynamodbav:"numero_os"`
	ClientID      string  `dynamodbav:"cliente_id"`
	DeviceType    string  `dynamodbav:"tipo_aparelho"`
	BrandModel    string  `dynamodbav:"marca_modelo"`
	SerialIMEI    string  `dynamodbav:"imei_serial,omitempty"`
	DeviceColor   string  `dynamodbav:"cor_aparelho,omitempty"`
	ReportedIssue string  `dynamodbav:"problema_relatado"`
	Diagnosis     string  `dynamodbav:"diagnostico_tecnico,omitempty"`
	EstimatedDays int     `dynamodbav:"prazo_estimado"`
	BudgetValue   float64 `dynamodbav:"valor_orcamento"`
	Status        string  `dynamodbav:"status"`
	Priority      string  `dynamodbav:"prioridade"`
	Notes         string  `dynamodbav:"observacoes,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI list-index: entity (string) / created_at (string)

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDENS_SERVICO_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// Update replaces the whole item; partial-update semantics are resolved by
// the usecase before it hands over the mutated entity.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) UpdateDiagnosis(ctx context.Context, id, diagnosis, notes string) (entities.ServiceOrder, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #diagnosis = :diagnosis, #notes = :notes, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":diagnosis":  &types.AttributeValueMemberS{Value: diagnosis},
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#diagnosis": "diagnostico_tecnico",
			"#notes":     "observacoes",
		}, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.queryList(ctx, nil, nil, nil)
}

func (r *ServiceOrderDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.OSStatus) ([]entities.ServiceOrder, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := make([]string, 0, len(statuses))
	values := map[string]types.AttributeValue{}
	for i, s := range statuses {
		p := fmt.Sprintf(":status%d", i)
		placeholders = append(placeholders, p)
		values[p] = &types.AttributeValueMemberS{Value: string(s)}
	}
	filter := fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", "))

	return r.queryList(ctx, aws.String(filter), values, map[string]string{"#status": "status"})
}

func (r *ServiceOrderDynamoRepository) queryList(
	ctx context.Context,
	filter *string,
	extraValues map[string]types.AttributeValue,
	extraNames map[string]string,
) ([]entities.ServiceOrder, error) {
	values := map[string]types.AttributeValue{
		":entity": &types.AttributeValueMemberS{Value: serviceOrderEntity},
	}
	for k, v := range extraValues {
		values[k] = v
	}

	var orders []entities.ServiceOrder
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(serviceOrderListIndex),
			KeyConditionExpression:    aws.String("#entity = :entity"),
			FilterExpression:          filter,
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  mergeNames(extraNames, map[string]string{"#entity": "entity"}),
			ScanIndexForward:          aws.Bool(false),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

// NextOrderNumber allocates the next sequential "#OS####" number through an
// atomic counter item, so two concurrent creations never share a number.
// On first use the counter is seeded from the newest pre-existing order; both
// racers may attempt the seed but the conditional put lets exactly one win.
func (r *ServiceOrderDynamoRepository) NextOrderNumber(ctx context.Context) (string, error) {
	if err := r.ensureCounter(ctx); err != nil {
		return "", err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	var counter struct {
		Seq int `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return "", err
	}
	return FormatOrderNumber(counter.Seq), nil
}

func (r *ServiceOrderDynamoRepository) ensureCounter(ctx context.Context) error {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(out.Item) > 0 {
		return nil
	}

	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	seed := 0
	if len(orders) > 0 {
		seed = ParseOrderNumber(orders[0].Number)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":  &types.AttributeValueMemberS{Value: orderNumberCounterID},
			"seq": &types.AttributeValueMemberN{Value: strconv.Itoa(seed)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			// Lost the seeding race; the counter exists now.
			return nil
		}
		return err
	}
	return nil
}

// ParseOrderNumber extracts the trailing digits of a number like "#OS0042".
// Malformed input yields 0 so allocation restarts the sequence.
func ParseOrderNumber(number string) int {
	digits := number
	if i := strings.LastIndexFunc(number, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = number[i+1:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func FormatOrderNumber(seq int) string {
	return fmt.Sprintf("%s%04d", orderNumberPrefix, seq)
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:            o.ID,
		Entity:        serviceOrderEntity,
		Number:        o.Number,
		ClientID:      o.ClientID,
		DeviceType:    o.DeviceType,
		BrandModel:    o.BrandModel,
		SerialIMEI:    o.SerialIMEI,
		DeviceColor:   o.DeviceColor,
		ReportedIssue: o.ReportedIssue,
		Diagnosis:     o.Diagnosis,
		EstimatedDays: o.EstimatedDays,
		BudgetValue:   o.BudgetValue,
		Status:        string(o.Status),
		Priority:      string(o.Priority),
		Notes:         o.Notes,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            it.ID,
		Number:        it.Number,
		ClientID:      it.ClientID,
		DeviceType:    it.DeviceType,
		BrandModel:    it.BrandModel,
		SerialIMEI:    it.SerialIMEI,
		DeviceColor:   it.DeviceColor,
		ReportedIssue: it.ReportedIssue,
		Diagnosis:     it.Diagnosis,
		EstimatedDays: it.EstimatedDays,
		BudgetValue:   it.BudgetValue,
		Status:        entities.OSStatus(it.Status),
		Priority:      entities.Priority(it.Priority),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
