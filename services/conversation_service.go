package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ripple_server/models"
	"ripple_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversationService is the conversation registry. DM uniqueness is
// enforced by the DirectConversations table: the canonical sorted pair key
// is inserted with a conditional put, so two first-contact calls racing from
// both sides of a new DM converge on a single conversation.
type ConversationService struct {
	Dynamo DynamoAPI
}

// GetOrCreateDirect returns the id of the unique DM for the unordered pair
// {userA, userB}, creating it on first contact. Safe to call repeatedly and
// concurrently from either side.
func (cs *ConversationService) GetOrCreateDirect(ctx context.Context, userA, userB string) (string, error) {
	if userA == "" || userB == "" || userA == userB {
		return "", errors.New("a direct conversation needs two distinct users")
	}

	directKey := models.DirectConversationKey(userA, userB)
	conversationID := newID()

	mapping := models.DirectConversation{
		DirectKey:      directKey,
		ConversationID: conversationID,
	}
	err := cs.Dynamo.PutItemWithCondition(ctx, models.DirectConversationsTable, mapping, "attribute_not_exists(directKey)")
	if errors.Is(err, ErrConditionFailed) {
		// Lost the insert race or the DM already existed; read the winner.
		return cs.ResolveDirectID(ctx, userA, userB)
	}
	if err != nil {
		return "", fmt.Errorf("failed to register direct conversation: %w", err)
	}

	conversation := models.Conversation{
		ConversationID: conversationID,
		ParticipantIDs: []string{userA, userB},
		IsGroup:        false,
		CreatedAt:      time.Now().UnixMilli(),
	}
	if err := cs.Dynamo.PutItem(ctx, models.ConversationsTable, conversation); err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}

	log.Printf("Created direct conversation %s for pair %s", conversationID, directKey)
	return conversationID, nil
}

// ResolveDirectID is the read-only lookup: it returns the existing DM id for
// the pair, or "" when none exists yet.
func (cs *ConversationService) ResolveDirectID(ctx context.Context, userA, userB string) (string, error) {
	key := map[string]types.AttributeValue{
		"directKey": &types.AttributeValueMemberS{Value: models.DirectConversationKey(userA, userB)},
	}

	item, err := cs.Dynamo.GetItem(ctx, models.DirectConversationsTable, key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve direct conversation: %w", err)
	}
	if item == nil {
		return "", nil
	}
	return utils.ExtractString(item, "conversationId"), nil
}

// CreateGroup inserts a group conversation. The creator is always a member;
// beyond that the caller is trusted, matching the rest of the write surface.
func (cs *ConversationService) CreateGroup(ctx context.Context, participantIDs []string, groupName, createdBy string) (string, error) {
	members := make([]string, 0, len(participantIDs)+1)
	seen := map[string]bool{}
	for _, id := range append(participantIDs, createdBy) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, id)
	}

	conversation := models.Conversation{
		ConversationID: newID(),
		ParticipantIDs: members,
		IsGroup:        true,
		GroupName:      groupName,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UnixMilli(),
	}
	if err := cs.Dynamo.PutItem(ctx, models.ConversationsTable, conversation); err != nil {
		return "", fmt.Errorf("failed to create group conversation: %w", err)
	}

	log.Printf("Created group conversation %s (%q) with %d members", conversation.ConversationID, groupName, len(members))
	return conversation.ConversationID, nil
}

// ListForUser returns every conversation, DM or group, the user belongs to.
func (cs *ConversationService) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	filter := func(item map[string]types.AttributeValue) bool {
		return utils.StringListContains(item, "participantIds", userID)
	}

	if err := cs.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, filter, nil, &conversations); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// ListGroupsForUser is the group-only variant of ListForUser.
func (cs *ConversationService) ListGroupsForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	filter := func(item map[string]types.AttributeValue) bool {
		return utils.ExtractBool(item, "isGroup") && utils.StringListContains(item, "participantIds", userID)
	}

	if err := cs.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, filter, nil, &conversations); err != nil {
		return nil, fmt.Errorf("failed to list group conversations: %w", err)
	}
	return conversations, nil
}
