package models

// TypingIndicator is the ephemeral "is typing" signal for one user in one
// conversation. UserName is denormalized so readers never join against the
// Users table. Rows are never reaped; readers drop anything older than
// TypingExpiryMillis.
type TypingIndicator struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	UserID         string `dynamodbav:"userId" json:"userId"`
	UserName       string `dynamodbav:"userName" json:"userName"`
	UpdatedAt      int64  `dynamodbav:"updatedAt" json:"updatedAt"`
}

// TypingIndicatorsTable is the DynamoDB table name for typing indicators
const TypingIndicatorsTable = "TypingIndicators"

// TypingExpiryMillis is the staleness threshold shared by the write cadence
// and the read-time filter. Clients refresh faster than this while typing.
const TypingExpiryMillis int64 = 2000
