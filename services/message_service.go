package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ImageResolver resolves a stored image key to a fetchable URL. URLs are
// short-lived, so they are re-resolved on every read and never persisted.
type ImageResolver interface {
	ResolveReadURL(key string) (string, error)
}

// MessageService is the append-only (plus soft-delete) message log.
type MessageService struct {
	Dynamo DynamoAPI
	Images ImageResolver
}

// SendMessage appends a message to the conversation log. At least one of
// content (non-empty after trim) or imageKey is required. The sender is not
// checked against the participant list; that trust boundary sits with the
// caller.
func (ms *MessageService) SendMessage(ctx context.Context, conversationID, senderID, content, imageKey string) error {
	content = strings.TrimSpace(content)
	if conversationID == "" || senderID == "" {
		return errors.New("conversationId and senderId are required")
	}
	if content == "" && imageKey == "" {
		return errors.New("a message needs text content or an image")
	}

	message := models.Message{
		ConversationID: conversationID,
		CreatedAt:      time.Now().UnixMilli(),
		MessageID:      newID(),
		SenderID:       senderID,
		Content:        content,
		ImageKey:       imageKey,
	}

	log.Printf("📩 Storing message %s in conversation %s", message.MessageID, conversationID)
	if err := ms.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// GetMessages returns the conversation's messages in ascending creation
// order, with image keys resolved to fetchable URLs. limit <= 0 means no
// limit.
func (ms *MessageService) GetMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := ms.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), false)
	if err != nil {
		log.Printf("❌ Error querying messages: %v", err)
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	for i := range messages {
		if messages[i].ImageKey == "" {
			continue
		}
		url, err := ms.Images.ResolveReadURL(messages[i].ImageKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve image URL: %w", err)
		}
		messages[i].ImageURL = url
	}

	log.Printf("✅ Found %d messages for conversation %s", len(messages), conversationID)
	return messages, nil
}

// DeleteMessage soft-deletes a message. Only the sender may delete; the
// content stays in storage and only the isDeleted flag flips.
func (ms *MessageService) DeleteMessage(ctx context.Context, messageID, requesterID string) error {
	message, err := ms.getByMessageID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.SenderID != requesterID {
		return ErrUnauthorized
	}

	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: message.ConversationID},
		"createdAt":      &types.AttributeValueMemberN{Value: strconv.FormatInt(message.CreatedAt, 10)},
	}
	updateExpression := "SET isDeleted = :true"
	expressionValues := map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
	}

	if _, err := ms.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
		log.Printf("❌ Failed to soft-delete message %s: %v", messageID, err)
		return fmt.Errorf("failed to delete message: %w", err)
	}

	log.Printf("🗑️ Message %s soft-deleted by sender %s", messageID, requesterID)
	return nil
}

// GetLastMessages returns, per conversation id, the most recent message
// summary for roster previews. One query per conversation, no join;
// conversations with no messages are omitted from the map.
func (ms *MessageService) GetLastMessages(ctx context.Context, conversationIDs []string) (map[string]models.LastMessage, error) {
	result := make(map[string]models.LastMessage, len(conversationIDs))

	for _, conversationID := range conversationIDs {
		keyCondition := "conversationId = :conversationId"
		expressionValues := map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		}

		items, err := ms.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, 1, true)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch last message for conversation '%s': %w", conversationID, err)
		}
		if len(items) == 0 {
			continue
		}

		var message models.Message
		if err := attributevalue.UnmarshalMap(items[0], &message); err != nil {
			return nil, fmt.Errorf("failed to parse last message: %w", err)
		}
		result[conversationID] = models.LastMessage{
			Content:   message.Content,
			SenderID:  message.SenderID,
			IsDeleted: message.IsDeleted,
		}
	}

	return result, nil
}

// getByMessageID looks a message up through the messageId GSI.
func (ms *MessageService) getByMessageID(ctx context.Context, messageID string) (*models.Message, error) {
	keyCondition := "messageId = :messageId"
	expressionValues := map[string]types.AttributeValue{
		":messageId": &types.AttributeValueMemberS{Value: messageID},
	}

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, models.MessageIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to look up message '%s': %w", messageID, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var message models.Message
	if err := attributevalue.UnmarshalMap(items[0], &message); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &message, nil
}
