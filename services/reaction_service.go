package services

import (
	"context"
	"fmt"
	"log"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReactionService implements the per-(message, user) reaction state machine:
// no reaction -> insert, same emoji -> delete (toggle off), different emoji
// -> replace in place. The (messageId, userId) table key makes more than one
// reaction per user per message unrepresentable.
type ReactionService struct {
	Dynamo DynamoAPI
}

// ToggleReaction applies one press of an emoji button. An emoji outside the
// allowed set is a silent no-op.
func (rs *ReactionService) ToggleReaction(ctx context.Context, messageID, userID, emoji string) error {
	if !models.IsAllowedEmoji(emoji) {
		return nil
	}

	key := map[string]types.AttributeValue{
		"messageId": &types.AttributeValueMemberS{Value: messageID},
		"userId":    &types.AttributeValueMemberS{Value: userID},
	}

	item, err := rs.Dynamo.GetItem(ctx, models.ReactionsTable, key)
	if err != nil {
		return fmt.Errorf("failed to look up reaction: %w", err)
	}

	if item == nil {
		reaction := models.Reaction{MessageID: messageID, UserID: userID, Emoji: emoji}
		if err := rs.Dynamo.PutItem(ctx, models.ReactionsTable, reaction); err != nil {
			return fmt.Errorf("failed to add reaction: %w", err)
		}
		log.Printf("✅ Reaction %s added for message %s by %s", emoji, messageID, userID)
		return nil
	}

	var existing models.Reaction
	if err := attributevalue.UnmarshalMap(item, &existing); err != nil {
		return fmt.Errorf("failed to parse reaction: %w", err)
	}

	if existing.Emoji == emoji {
		// Same emoji pressed again: toggle off.
		if err := rs.Dynamo.DeleteItem(ctx, models.ReactionsTable, key); err != nil {
			return fmt.Errorf("failed to remove reaction: %w", err)
		}
		log.Printf("✅ Reaction %s removed for message %s by %s", emoji, messageID, userID)
		return nil
	}

	// Different emoji: replace the value, keeping the row identity.
	updateExpression := "SET emoji = :emoji"
	expressionValues := map[string]types.AttributeValue{
		":emoji": &types.AttributeValueMemberS{Value: emoji},
	}
	if _, err := rs.Dynamo.UpdateItem(ctx, models.ReactionsTable, updateExpression, key, expressionValues, nil); err != nil {
		return fmt.Errorf("failed to replace reaction: %w", err)
	}
	log.Printf("✅ Reaction replaced with %s for message %s by %s", emoji, messageID, userID)
	return nil
}

// GetReactionsForMessages batch-reads reactions for a list of message ids,
// one query per message. Every requested id gets an entry, empty when the
// message has no reactions.
func (rs *ReactionService) GetReactionsForMessages(ctx context.Context, messageIDs []string) (map[string][]models.Reaction, error) {
	result := make(map[string][]models.Reaction, len(messageIDs))

	for _, messageID := range messageIDs {
		keyCondition := "messageId = :messageId"
		expressionValues := map[string]types.AttributeValue{
			":messageId": &types.AttributeValueMemberS{Value: messageID},
		}

		items, err := rs.Dynamo.QueryItems(ctx, models.ReactionsTable, keyCondition, expressionValues, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reactions for message '%s': %w", messageID, err)
		}

		reactions := []models.Reaction{}
		if err := attributevalue.UnmarshalListOfMaps(items, &reactions); err != nil {
			return nil, fmt.Errorf("failed to parse reactions: %w", err)
		}
		result[messageID] = reactions
	}

	return result, nil
}
