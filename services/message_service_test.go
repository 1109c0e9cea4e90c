package services

import (
	"context"
	"testing"
	"time"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) ResolveReadURL(key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		imageKey    string
		expectError bool
	}{
		{name: "text only", content: "hi"},
		{name: "image only", imageKey: "chat-images/pic.png"},
		{name: "text and image", content: "look", imageKey: "chat-images/pic.png"},
		{name: "empty message", expectError: true},
		{name: "whitespace-only content", content: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDynamo{}
			service := &MessageService{Dynamo: stub, Images: stubResolver{}}

			err := service.SendMessage(context.Background(), "c1", "alice", tt.content, tt.imageKey)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, stub.puts)
				return
			}
			require.NoError(t, err)

			require.Len(t, stub.puts, 1)
			item := stub.puts[0].item
			assert.Equal(t, models.MessagesTable, stub.puts[0].table)
			assert.Equal(t, "alice", attrString(t, item, "senderId"))
			assert.NotEmpty(t, attrString(t, item, "messageId"), "server assigns the message id")

			createdAt, ok := item["createdAt"].(*types.AttributeValueMemberN)
			require.True(t, ok, "createdAt must be stored as a number")
			assert.NotEmpty(t, createdAt.Value)
		})
	}
}

func TestGetMessagesResolvesImages(t *testing.T) {
	now := time.Now().UnixMilli()
	stored := []models.Message{
		{ConversationID: "c1", CreatedAt: now - 2000, MessageID: "m1", SenderID: "alice", Content: "hi"},
		{ConversationID: "c1", CreatedAt: now - 1000, MessageID: "m2", SenderID: "bob", ImageKey: "chat-images/pic.png"},
	}

	stub := &stubDynamo{
		queryWithOptionsFn: func(table, _ string, _ map[string]types.AttributeValue, _ int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
			assert.Equal(t, models.MessagesTable, table)
			assert.False(t, latestFirst, "message list reads in ascending order")
			var items []map[string]types.AttributeValue
			for _, message := range stored {
				items = append(items, mustMarshal(t, message))
			}
			return items, nil
		},
	}
	service := &MessageService{Dynamo: stub, Images: stubResolver{}}

	messages, err := service.GetMessages(context.Background(), "c1", 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Empty(t, messages[0].ImageURL)
	assert.Equal(t, "https://cdn.test/chat-images/pic.png", messages[1].ImageURL)
	assert.False(t, messages[0].IsDeleted)
}

func TestDeleteMessage(t *testing.T) {
	stored := models.Message{
		ConversationID: "c1",
		CreatedAt:      1700000000000,
		MessageID:      "m1",
		SenderID:       "alice",
		Content:        "hi",
	}

	lookup := func(found bool) func(string, string, string, map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
		return func(table, index, _ string, _ map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
			assert.Equal(t, models.MessagesTable, table)
			assert.Equal(t, models.MessageIDIndex, index)
			if !found {
				return nil, nil
			}
			return []map[string]types.AttributeValue{mustMarshal(t, stored)}, nil
		}
	}

	t.Run("unknown message is NotFound", func(t *testing.T) {
		stub := &stubDynamo{queryWithIndexFn: lookup(false)}
		service := &MessageService{Dynamo: stub, Images: stubResolver{}}

		err := service.DeleteMessage(context.Background(), "missing", "alice")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, stub.updates)
	})

	t.Run("non-sender is Unauthorized and nothing changes", func(t *testing.T) {
		stub := &stubDynamo{queryWithIndexFn: lookup(true)}
		service := &MessageService{Dynamo: stub, Images: stubResolver{}}

		err := service.DeleteMessage(context.Background(), "m1", "bob")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, stub.updates)
	})

	t.Run("sender soft-deletes", func(t *testing.T) {
		stub := &stubDynamo{queryWithIndexFn: lookup(true)}
		service := &MessageService{Dynamo: stub, Images: stubResolver{}}

		err := service.DeleteMessage(context.Background(), "m1", "alice")
		require.NoError(t, err)

		require.Len(t, stub.updates, 1)
		assert.Equal(t, "SET isDeleted = :true", stub.updates[0].expression)
		assert.Equal(t, "c1", stub.updates[0].key["conversationId"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "1700000000000", stub.updates[0].key["createdAt"].(*types.AttributeValueMemberN).Value)
	})
}

func TestGetLastMessages(t *testing.T) {
	latest := map[string]*models.Message{
		"c1": {ConversationID: "c1", CreatedAt: 2000, MessageID: "m2", SenderID: "alice", Content: "hi"},
		"c2": nil, // empty conversation
		"c3": {ConversationID: "c3", CreatedAt: 900, MessageID: "m9", SenderID: "bob", Content: "gone", IsDeleted: true},
	}

	var queried []string
	stub := &stubDynamo{
		queryWithOptionsFn: func(_ string, _ string, values map[string]types.AttributeValue, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
			conversationID := values[":conversationId"].(*types.AttributeValueMemberS).Value
			queried = append(queried, conversationID)
			assert.EqualValues(t, 1, limit)
			assert.True(t, latestFirst)
			if latest[conversationID] == nil {
				return nil, nil
			}
			return []map[string]types.AttributeValue{mustMarshal(t, *latest[conversationID])}, nil
		},
	}
	service := &MessageService{Dynamo: stub, Images: stubResolver{}}

	previews, err := service.GetLastMessages(context.Background(), []string{"c1", "c2", "c3"})
	require.NoError(t, err)

	assert.Len(t, queried, 3, "one lookup per conversation")
	require.Len(t, previews, 2)
	assert.Equal(t, models.LastMessage{Content: "hi", SenderID: "alice"}, previews["c1"])
	assert.True(t, previews["c3"].IsDeleted)
	_, ok := previews["c2"]
	assert.False(t, ok, "empty conversations are omitted")
}
