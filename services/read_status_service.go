package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversationLister is the slice of the conversation registry the unread
// engine needs for its batch variant.
type ConversationLister interface {
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
}

// ReadStatusService is the read-cursor / unread-count engine. Read state is
// a single watermark per (user, conversation); unread counts are derived by
// comparing message timestamps against it, never stored.
type ReadStatusService struct {
	Dynamo        DynamoAPI
	Conversations ConversationLister
}

// MarkAsRead moves the user's cursor for the conversation to now.
func (rs *ReadStatusService) MarkAsRead(ctx context.Context, userID, conversationID string) error {
	status := models.ReadStatus{
		UserID:         userID,
		ConversationID: conversationID,
		LastReadTime:   time.Now().UnixMilli(),
	}
	if err := rs.Dynamo.PutItem(ctx, models.ReadStatusTable, status); err != nil {
		return fmt.Errorf("failed to mark conversation as read: %w", err)
	}
	return nil
}

// GetUnreadCount counts messages newer than the user's cursor that the user
// did not send. A missing cursor counts from the epoch, so a user who never
// opened the conversation sees every non-own message as unread.
func (rs *ReadStatusService) GetUnreadCount(ctx context.Context, userID, conversationID string) (int, error) {
	lastRead, err := rs.lastReadTime(ctx, userID, conversationID)
	if err != nil {
		return 0, err
	}

	keyCondition := "conversationId = :conversationId AND createdAt > :lastRead"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		":lastRead":       &types.AttributeValueMemberN{Value: strconv.FormatInt(lastRead, 10)},
		":senderId":       &types.AttributeValueMemberS{Value: userID},
	}

	items, err := rs.Dynamo.QueryItemsWithFilters(ctx, models.MessagesTable, keyCondition, expressionValues, nil, "senderId <> :senderId")
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return len(items), nil
}

// GetAllUnreadCounts returns the unread count for every conversation the
// user belongs to, keyed by conversation id.
func (rs *ReadStatusService) GetAllUnreadCounts(ctx context.Context, userID string) (map[string]int, error) {
	conversations, err := rs.Conversations.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(conversations))
	for _, conversation := range conversations {
		count, err := rs.GetUnreadCount(ctx, userID, conversation.ConversationID)
		if err != nil {
			return nil, err
		}
		counts[conversation.ConversationID] = count
	}
	return counts, nil
}

func (rs *ReadStatusService) lastReadTime(ctx context.Context, userID, conversationID string) (int64, error) {
	key := map[string]types.AttributeValue{
		"userId":         &types.AttributeValueMemberS{Value: userID},
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	item, err := rs.Dynamo.GetItem(ctx, models.ReadStatusTable, key)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch read cursor: %w", err)
	}
	if item == nil {
		return 0, nil
	}

	var status models.ReadStatus
	if err := attributevalue.UnmarshalMap(item, &status); err != nil {
		return 0, fmt.Errorf("failed to parse read cursor: %w", err)
	}
	return status.LastReadTime, nil
}
