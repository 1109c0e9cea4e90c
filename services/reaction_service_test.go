package services

import (
	"context"
	"testing"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleReaction(t *testing.T) {
	existing := models.Reaction{MessageID: "m1", UserID: "u1", Emoji: "👍"}

	tests := []struct {
		name         string
		emoji        string
		stored       *models.Reaction
		wantPuts     int
		wantDeletes  int
		wantUpdates  int
	}{
		{
			name:     "no existing reaction inserts",
			emoji:    "👍",
			stored:   nil,
			wantPuts: 1,
		},
		{
			name:        "same emoji toggles off",
			emoji:       "👍",
			stored:      &existing,
			wantDeletes: 1,
		},
		{
			name:        "different emoji replaces in place",
			emoji:       "❤️",
			stored:      &existing,
			wantUpdates: 1,
		},
		{
			name:   "disallowed emoji is a silent no-op",
			emoji:  "🤷",
			stored: &existing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDynamo{}
			if tt.stored != nil {
				item := mustMarshal(t, *tt.stored)
				stub.getItemFn = func(table string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
					assert.Equal(t, models.ReactionsTable, table)
					return item, nil
				}
			}
			service := &ReactionService{Dynamo: stub}

			err := service.ToggleReaction(context.Background(), "m1", "u1", tt.emoji)
			require.NoError(t, err)

			assert.Len(t, stub.puts, tt.wantPuts)
			assert.Len(t, stub.deletes, tt.wantDeletes)
			assert.Len(t, stub.updates, tt.wantUpdates)
		})
	}
}

// reactionStore is a stateful fake: writes mutate an in-memory row map so
// toggle sequences run against real state transitions.
type reactionStore struct {
	stubDynamo
	rows map[string]models.Reaction
}

func newReactionStore() *reactionStore {
	return &reactionStore{rows: map[string]models.Reaction{}}
}

func storeKey(key map[string]types.AttributeValue) string {
	message := key["messageId"].(*types.AttributeValueMemberS).Value
	user := key["userId"].(*types.AttributeValueMemberS).Value
	return message + "|" + user
}

func (s *reactionStore) GetItem(_ context.Context, _ string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	reaction, ok := s.rows[storeKey(key)]
	if !ok {
		return nil, nil
	}
	return attributevalue.MarshalMap(reaction)
}

func (s *reactionStore) PutItem(_ context.Context, _ string, item interface{}) error {
	reaction := item.(models.Reaction)
	s.rows[reaction.MessageID+"|"+reaction.UserID] = reaction
	return nil
}

func (s *reactionStore) DeleteItem(_ context.Context, _ string, key map[string]types.AttributeValue) error {
	delete(s.rows, storeKey(key))
	return nil
}

func (s *reactionStore) UpdateItem(_ context.Context, _ string, _ string, key, values map[string]types.AttributeValue, _ map[string]string) (map[string]types.AttributeValue, error) {
	reaction := s.rows[storeKey(key)]
	reaction.Emoji = values[":emoji"].(*types.AttributeValueMemberS).Value
	s.rows[storeKey(key)] = reaction
	return map[string]types.AttributeValue{}, nil
}

func TestToggleReactionSequences(t *testing.T) {
	tests := []struct {
		name      string
		sequence  []string
		wantState string // "" means no reaction
	}{
		{
			name:      "add then replace twice ends on last emoji",
			sequence:  []string{"👍", "❤️", "👍"},
			wantState: "👍",
		},
		{
			name:      "same emoji twice returns to no reaction",
			sequence:  []string{"😂", "😂"},
			wantState: "",
		},
		{
			name:      "replace never stacks a second reaction",
			sequence:  []string{"👍", "❤️"},
			wantState: "❤️",
		},
		{
			name:      "add toggle add ends reacted",
			sequence:  []string{"😮", "😮", "😮"},
			wantState: "😮",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newReactionStore()
			service := &ReactionService{Dynamo: store}

			for _, emoji := range tt.sequence {
				require.NoError(t, service.ToggleReaction(context.Background(), "m1", "u1", emoji))
			}

			reaction, reacted := store.rows["m1|u1"]
			if tt.wantState == "" {
				assert.False(t, reacted, "expected no reaction to remain")
			} else {
				require.True(t, reacted, "expected a reaction to remain")
				assert.Equal(t, tt.wantState, reaction.Emoji)
			}
			// Never more than one row per (message, user).
			assert.LessOrEqual(t, len(store.rows), 1)
		})
	}
}

func TestGetReactionsForMessages(t *testing.T) {
	byMessage := map[string][]models.Reaction{
		"m1": {
			{MessageID: "m1", UserID: "u1", Emoji: "👍"},
			{MessageID: "m1", UserID: "u2", Emoji: "👍"},
		},
		"m2": {},
	}

	stub := &stubDynamo{
		queryFn: func(_ string, _ string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
			messageID := values[":messageId"].(*types.AttributeValueMemberS).Value
			var items []map[string]types.AttributeValue
			for _, reaction := range byMessage[messageID] {
				items = append(items, mustMarshal(t, reaction))
			}
			return items, nil
		},
	}
	service := &ReactionService{Dynamo: stub}

	result, err := service.GetReactionsForMessages(context.Background(), []string{"m1", "m2"})
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Len(t, result["m1"], 2)
	assert.Empty(t, result["m2"], "a message with no reactions still gets an entry")
}
