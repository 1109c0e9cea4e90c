package services

import (
	"context"
	"fmt"
	"time"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TypingService tracks the ephemeral "is typing" signal. Expiry is purely a
// read-time comparison against TypingExpiryMillis; nothing ever reaps rows,
// so a client that crashes mid-typing self-heals after the threshold.
type TypingService struct {
	Dynamo DynamoAPI
}

// SetTyping refreshes the caller's typing row while isTyping is true and
// deletes it outright on an explicit stop.
func (ts *TypingService) SetTyping(ctx context.Context, conversationID, userID, userName string, isTyping bool) error {
	if !isTyping {
		key := map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: conversationID},
			"userId":         &types.AttributeValueMemberS{Value: userID},
		}
		if err := ts.Dynamo.DeleteItem(ctx, models.TypingIndicatorsTable, key); err != nil {
			return fmt.Errorf("failed to clear typing indicator: %w", err)
		}
		return nil
	}

	indicator := models.TypingIndicator{
		ConversationID: conversationID,
		UserID:         userID,
		UserName:       userName,
		UpdatedAt:      time.Now().UnixMilli(),
	}
	if err := ts.Dynamo.PutItem(ctx, models.TypingIndicatorsTable, indicator); err != nil {
		return fmt.Errorf("failed to set typing indicator: %w", err)
	}
	return nil
}

// GetTypingUsers returns everyone currently typing in the conversation,
// excluding the caller and anything older than the staleness threshold.
func (ts *TypingService) GetTypingUsers(ctx context.Context, conversationID, excludingUserID string) ([]models.TypingIndicator, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := ts.Dynamo.QueryItems(ctx, models.TypingIndicatorsTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch typing indicators: %w", err)
	}

	var indicators []models.TypingIndicator
	if err := attributevalue.UnmarshalListOfMaps(items, &indicators); err != nil {
		return nil, fmt.Errorf("failed to parse typing indicators: %w", err)
	}

	now := time.Now().UnixMilli()
	active := []models.TypingIndicator{}
	for _, indicator := range indicators {
		if indicator.UserID == excludingUserID {
			continue
		}
		if now-indicator.UpdatedAt >= models.TypingExpiryMillis {
			continue
		}
		active = append(active, indicator)
	}
	return active, nil
}
