package repository

import (
	"context"
	"sort"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notificacoes"
	notificationUserIndex         = "usuario_id-index"
	notificationDedupIndex        = "dedup_key-index"

	// TransactWriteItems accepts at most 100 items per call.
	transactMaxItems = 100
)

type notificationRefItem struct {
	OSID      string `dynamodbav:"os_id,omitempty"`
	ClientID  string `dynamodbav:"cliente_id,omitempty"`
	ProductID string `dynamodbav:"produto_id,omitempty"`
}

type notificationItem struct {
	ID        string              `dynamodbav:"id"`
	UserID    string              `dynamodbav:"usuario_id"`
	Type      string              `dynamodbav:"tipo"`
	Title     string              `dynamodbav:"titulo"`
	Message   string              `dynamodbav:"mensagem"`
	Reference notificationRefItem `dynamodbav:"dados_referencia"`
	DedupKey  string              `dynamodbav:"dedup_key"`
	Read      bool                `dynamodbav:"lida"`
	Priority  string              `dynamodbav:"prioridade"`
	CreatedAt string              `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI usuario_id-index: usuario_id (string) / created_at (string)
//   - GSI dedup_key-index: dedup_key (string)
//
// dedup_key materializes the composite (type, user, reference) identity, so
// the at-most-one-outstanding check is a single index lookup instead of a
// structural match on the reference payload.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICACOES_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

// CreateBatch writes all notifications transactionally: within each
// TransactWriteItems call either every put lands or none does. Batches above
// the 100-item API limit are split; callers dedup-check candidates first, so
// a rerun after a partial failure is idempotent.
func (r *NotificationDynamoRepository) CreateBatch(ctx context.Context, ns []entities.Notification) error {
	for start := 0; start < len(ns); start += transactMaxItems {
		end := start + transactMaxItems
		if end > len(ns) {
			end = len(ns)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, n := range ns[start:end] {
			av, err := attributevalue.MarshalMap(toNotificationItem(n))
			if err != nil {
				return err
			}
			items = append(items, types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationDynamoRepository) GetByIDForUser(ctx context.Context, userID, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	if it.UserID != userID {
		// Owned by someone else: behaves as absent.
		return entities.Notification{}, nil
	}
	return fromNotificationItem(it), nil
}

// ListByUser reads the user's full index before ordering: the limit applies
// after unread notifications are moved ahead, so old unread items are never
// crowded out of the page by newer read ones.
func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	var ns []entities.Notification
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationUserIndex),
			KeyConditionExpression: aws.String("#usuario_id = :usuario_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":usuario_id": &types.AttributeValueMemberS{Value: userID},
			},
			ExpressionAttributeNames: map[string]string{
				"#usuario_id": "usuario_id",
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			ns = append(ns, fromNotificationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return unreadFirst(ns, limit), nil
}

// unreadFirst moves unread notifications ahead of read ones, keeping the
// newest-first order within each read state, then cuts to limit.
func unreadFirst(ns []entities.Notification, limit int) []entities.Notification {
	sort.SliceStable(ns, func(i, j int) bool {
		return !ns[i].Read && ns[j].Read
	})
	if limit > 0 && len(ns) > limit {
		ns = ns[:limit]
	}
	return ns
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	n, err := r.GetByIDForUser(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if n.ID == "" {
		return false, nil
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #lida = :lida"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lida": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#lida": "lida",
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

// MarkAllRead flips every unread notification of the user in transactional
// chunks, so a failing chunk leaves no half-applied flags behind.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string) error {
	ids, err := r.unreadIDs(ctx, userID)
	if err != nil {
		return err
	}

	for start := 0; start < len(ids); start += transactMaxItems {
		end := start + transactMaxItems
		if end > len(ids) {
			end = len(ids)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, id := range ids[start:end] {
			items = append(items, types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression: aws.String("SET #lida = :lida"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":lida": &types.AttributeValueMemberBOOL{Value: true},
					},
					ExpressionAttributeNames: map[string]string{
						"#lida": "lida",
					},
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationDynamoRepository) DeleteForUser(ctx context.Context, userID, id string) (bool, error) {
	n, err := r.GetByIDForUser(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if n.ID == "" {
		return false, nil
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationUserIndex),
			KeyConditionExpression: aws.String("#usuario_id = :usuario_id"),
			FilterExpression:       aws.String("#lida = :lida"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":usuario_id": &types.AttributeValueMemberS{Value: userID},
				":lida":       &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{
				"#usuario_id": "usuario_id",
				"#lida":       "lida",
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

func (r *NotificationDynamoRepository) ExistsByDedupKey(ctx context.Context, dedupKey string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationDedupIndex),
		KeyConditionExpression: aws.String("#dedup_key = :dedup_key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dedup_key": &types.AttributeValueMemberS{Value: dedupKey},
		},
		ExpressionAttributeNames: map[string]string{
			"#dedup_key": "dedup_key",
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *NotificationDynamoRepository) unreadIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(notificationUserIndex),
			KeyConditionExpression: aws.String("#usuario_id = :usuario_id"),
			FilterExpression:       aws.String("#lida = :lida"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":usuario_id": &types.AttributeValueMemberS{Value: userID},
				":lida":       &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{
				"#usuario_id": "usuario_id",
				"#lida":       "lida",
				"#id":         "id",
			},
			ProjectionExpression: aws.String("#id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:      n.ID,
		UserID:  n.UserID,
		Type:    string(n.Type),
		Title:   n.Title,
		Message: n.Message,
		Reference: notificationRefItem{
			OSID:      n.Reference.OSID,
			ClientID:  n.Reference.ClientID,
			ProductID: n.Reference.ProductID,
		},
		DedupKey:  n.DedupKey(),
		Read:      n.Read,
		Priority:  string(n.Priority),
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:      it.ID,
		UserID:  it.UserID,
		Type:    entities.NotificationType(it.Type),
		Title:   it.Title,
		Message: it.Message,
		Reference: entities.NotificationRef{
			OSID:      it.Reference.OSID,
			ClientID:  it.Reference.ClientID,
			ProductID: it.Reference.ProductID,
		},
		Read:      it.Read,
		Priority:  entities.Priority(it.Priority),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
