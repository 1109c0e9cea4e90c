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

func TestUpdatePresence(t *testing.T) {
	stub := &stubDynamo{}
	service := &PresenceService{Dynamo: stub}

	require.NoError(t, service.UpdatePresence(context.Background(), "u1"))

	require.Len(t, stub.puts, 1)
	assert.Equal(t, models.PresenceTable, stub.puts[0].table)
	online, ok := stub.puts[0].item["isOnline"].(*types.AttributeValueMemberBOOL)
	require.True(t, ok)
	assert.True(t, online.Value)
}

func TestSetOffline(t *testing.T) {
	stub := &stubDynamo{}
	service := &PresenceService{Dynamo: stub}

	require.NoError(t, service.SetOffline(context.Background(), "u1"))

	require.Len(t, stub.puts, 1)
	online, ok := stub.puts[0].item["isOnline"].(*types.AttributeValueMemberBOOL)
	require.True(t, ok)
	assert.False(t, online.Value)
}

func TestGetAllPresence(t *testing.T) {
	now := time.Now().UnixMilli()
	rows := []models.Presence{
		{UserID: "fresh", LastSeen: now - 5000, IsOnline: true},
		// Online flag still set but the heartbeat died 21s ago.
		{UserID: "crashed", LastSeen: now - 21000, IsOnline: true},
		{UserID: "left", LastSeen: now - 1000, IsOnline: false},
	}

	stub := &stubDynamo{}
	for _, row := range rows {
		stub.scanItems = append(stub.scanItems, mustMarshal(t, row))
	}
	service := &PresenceService{Dynamo: stub}

	statuses, err := service.GetAllPresence(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	online := map[string]bool{}
	for _, status := range statuses {
		online[status.UserID] = status.Online
	}
	assert.True(t, online["fresh"])
	assert.False(t, online["crashed"], "stale heartbeat must read as offline")
	assert.False(t, online["left"])
}
