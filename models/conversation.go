package models

// Conversation is a DM or group chat. A non-group conversation always has
// exactly two distinct participants; group conversations additionally carry
// a name, an optional image and the creator.
type Conversation struct {
	ConversationID string   `dynamodbav:"conversationId" json:"conversationId"`
	ParticipantIDs []string `dynamodbav:"participantIds" json:"participantIds"`
	IsGroup        bool     `dynamodbav:"isGroup" json:"isGroup"`
	GroupName      string   `dynamodbav:"groupName,omitempty" json:"groupName,omitempty"`
	GroupImage     string   `dynamodbav:"groupImage,omitempty" json:"groupImage,omitempty"`
	CreatedBy      string   `dynamodbav:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      int64    `dynamodbav:"createdAt" json:"createdAt"`
}

// DirectConversation maps the canonical key of an unordered user pair to its
// one DM conversation. The key itself enforces DM uniqueness: creation is a
// conditional insert on directKey, never a scan-then-insert.
type DirectConversation struct {
	DirectKey      string `dynamodbav:"directKey" json:"directKey"`
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
}

// DirectConversationKey canonicalizes an unordered user pair. Both argument
// orders produce the same key.
func DirectConversationKey(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

const (
	// ConversationsTable is the DynamoDB table name for conversations
	ConversationsTable = "Conversations"
	// DirectConversationsTable holds the pair-key -> conversationId mapping
	DirectConversationsTable = "DirectConversations"
)
