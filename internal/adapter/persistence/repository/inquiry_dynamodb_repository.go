package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInquiriesTableName = "inquiries"
	defaultClientIDIndex      = "clientId-index"
)

type statusChangeItem struct {
	Status    string `dynamodbav:"status"`
	ChangedBy string `dynamodbav:"changedBy"`
	ChangedAt string `dynamodbav:"changedAt"`
	Note      string `dynamodbav:"note,omitempty"`
}

type inquiryItem struct {
	ID                string             `dynamodbav:"id"`
	ClientID          string             `dynamodbav:"clientId"`
	ServiceName       string             `dynamodbav:"serviceName"`
	PackageName       string             `dynamodbav:"packageName,omitempty"`
	PackagePrice      string             `dynamodbav:"packagePrice,omitempty"`
	Message           string             `dynamodbav:"message"`
	TotalAmount       string             `dynamodbav:"totalAmount"`
	InvoiceNumber     string             `dynamodbav:"invoiceNumber"`
	Status            string             `dynamodbav:"status"`
	PaymentStatus     string             `dynamodbav:"paymentStatus"`
	PaymentScreenshot string             `dynamodbav:"paymentScreenshot,omitempty"`
	PaymentMethod     string             `dynamodbav:"paymentMethod,omitempty"`
	TransactionID     string             `dynamodbav:"transactionId,omitempty"`
	Notes             string             `dynamodbav:"notes,omitempty"`
	AdminNotes        string             `dynamodbav:"adminNotes,omitempty"`
	StatusHistory     []statusChangeItem `dynamodbav:"statusHistory"`
	CreatedAt         string             `dynamodbav:"createdAt"`
	UpdatedAt         string             `dynamodbav:"updatedAt"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: clientId-index (PK: clientId)
//
// Ownership is part of every request: reads filter on clientId and writes
// carry it in the ConditionExpression, so there is no gap between the
// authorization check and the mutation.

type InquiryDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	clientIDIndex string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb dynamoAPI, tableName, clientIDIndex string) *InquiryDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = defaultInquiriesTableName
	}
	if strings.TrimSpace(clientIDIndex) == "" {
		clientIDIndex = defaultClientIDIndex
	}
	return &InquiryDynamoRepository{ddb: ddb, tableName: tableName, clientIDIndex: clientIDIndex}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, inq entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(inq))
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	if inq.StatusHistory == nil {
		inq.StatusHistory = []entities.StatusChange{}
	}
	return inq, nil
}

func (r *InquiryDynamoRepository) GetOwned(ctx context.Context, id, clientID string) (entities.Inquiry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#id = :id"),
		FilterExpression:       aws.String("#clientId = :clientId"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#clientId": "clientId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":       &types.AttributeValueMemberS{Value: id},
			":clientId": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Items) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

// ListByClientID returns the client's inquiries, newest first.
func (r *InquiryDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Inquiry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.clientIDIndex),
		KeyConditionExpression: aws.String("#clientId = :clientId"),
		ExpressionAttributeNames: map[string]string{
			"#clientId": "clientId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":clientId": &types.AttributeValueMemberS{Value: clientID},
		},
	})

	items := make([]entities.Inquiry, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it inquiryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInquiryItem(it))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *InquiryDynamoRepository) UpdateOwned(ctx context.Context, id, clientID string, patch entities.InquiryPatch, updatedAt time.Time) (entities.Inquiry, error) {
	expr, values, names := buildPatchUpdate(patch, updatedAt)
	return r.update(ctx, id, clientID, expr, "", values, names)
}

func (r *InquiryDynamoRepository) AppendStatusOwned(ctx context.Context, id, clientID string, entry entities.StatusChange, expectedHistoryLen int) (entities.Inquiry, error) {
	entryAV, err := attributevalue.Marshal([]statusChangeItem{toStatusChangeItem(entry)})
	if err != nil {
		return entities.Inquiry{}, err
	}

	expr, cond, values, names := buildStatusAppend(entry, entryAV, expectedHistoryLen)
	return r.update(ctx, id, clientID, expr, cond, values, names)
}

// update runs a conditional UpdateItem scoped to (id, clientID). A failed
// condition yields a zero Inquiry and nil error.
func (r *InquiryDynamoRepository) update(
	ctx context.Context,
	id, clientID string,
	updateExpr string,
	extraCondition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Inquiry, error) {
	condition := "attribute_exists(#id) AND #clientId = :clientId"
	if extraCondition != "" {
		condition += " AND " + extraCondition
	}
	values[":clientId"] = &types.AttributeValueMemberS{Value: clientID}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#clientId": "clientId"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Inquiry{}, nil
		}
		return entities.Inquiry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inquiry{}, nil
	}
	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

// buildPatchUpdate sets updatedAt plus every non-nil whitelisted field.
func buildPatchUpdate(patch entities.InquiryPatch, updatedAt time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#updatedAt = :updatedAt"}
	values := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
	}
	names := map[string]string{"#updatedAt": "updatedAt"}

	add := func(attr string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, "#"+attr+" = :"+attr)
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
		names["#"+attr] = attr
	}
	add("notes", patch.Notes)
	add("paymentScreenshot", patch.PaymentScreenshot)
	add("paymentMethod", patch.PaymentMethod)
	add("transactionId", patch.TransactionID)

	return "SET " + strings.Join(sets, ", "), values, names
}

func buildStatusAppend(entry entities.StatusChange, entryAV types.AttributeValue, expectedHistoryLen int) (string, string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #status = :status, #updatedAt = :updatedAt, #history = list_append(if_not_exists(#history, :empty), :entry)"

	historyCond := "size(#history) = :historyLen"
	if expectedHistoryLen == 0 {
		historyCond = "(attribute_not_exists(#history) OR size(#history) = :historyLen)"
	}
	cond := "NOT (#status IN (:completed, :cancelled)) AND " + historyCond

	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(entry.Status)},
		":updatedAt":  &types.AttributeValueMemberS{Value: formatTime(entry.ChangedAt)},
		":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":entry":      entryAV,
		":completed":  &types.AttributeValueMemberS{Value: string(entities.InquiryStatusCompleted)},
		":cancelled":  &types.AttributeValueMemberS{Value: string(entities.InquiryStatusCancelled)},
		":historyLen": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedHistoryLen)},
	}
	names := map[string]string{
		"#status":    "status",
		"#updatedAt": "updatedAt",
		"#history":   "statusHistory",
	}
	return expr, cond, values, names
}

func toStatusChangeItem(c entities.StatusChange) statusChangeItem {
	return statusChangeItem{
		Status:    string(c.Status),
		ChangedBy: c.ChangedBy,
		ChangedAt: formatTime(c.ChangedAt),
		Note:      c.Note,
	}
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	history := make([]statusChangeItem, 0, len(i.StatusHistory))
	for _, c := range i.StatusHistory {
		history = append(history, toStatusChangeItem(c))
	}
	return inquiryItem{
		ID:                i.ID,
		ClientID:          i.ClientID,
		ServiceName:       i.ServiceName,
		PackageName:       i.PackageName,
		PackagePrice:      i.PackagePrice,
		Message:           i.Message,
		TotalAmount:       i.TotalAmount,
		InvoiceNumber:     i.InvoiceNumber,
		Status:            string(i.Status),
		PaymentStatus:     string(i.PaymentStatus),
		PaymentScreenshot: i.PaymentScreenshot,
		PaymentMethod:     string(i.PaymentMethod),
		TransactionID:     i.TransactionID,
		Notes:             i.Notes,
		AdminNotes:        i.AdminNotes,
		StatusHistory:     history,
		CreatedAt:         formatTime(i.CreatedAt),
		UpdatedAt:         formatTime(i.UpdatedAt),
	}
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	history := make([]entities.StatusChange, 0, len(it.StatusHistory))
	for _, c := range it.StatusHistory {
		history = append(history, entities.StatusChange{
			Status:    entities.InquiryStatus(c.Status),
			ChangedBy: c.ChangedBy,
			ChangedAt: parseTime(c.ChangedAt),
			Note:      c.Note,
		})
	}
	return entities.Inquiry{
		ID:                it.ID,
		ClientID:          it.ClientID,
		ServiceName:       it.ServiceName,
		PackageName:       it.PackageName,
		PackagePrice:      it.PackagePrice,
		Message:           it.Message,
		TotalAmount:       it.TotalAmount,
		InvoiceNumber:     it.InvoiceNumber,
		Status:            entities.InquiryStatus(it.Status),
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentScreenshot: it.PaymentScreenshot,
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		TransactionID:     it.TransactionID,
		Notes:             it.Notes,
		AdminNotes:        it.AdminNotes,
		StatusHistory:     history,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
