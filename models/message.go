package models

// Message is one entry in a conversation's append-only log. CreatedAt is
// server-assigned epoch milliseconds and doubles as the sort key. Deleted
// messages keep their content; only IsDeleted flips.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	CreatedAt      int64  `dynamodbav:"createdAt" json:"createdAt"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	Content        string `dynamodbav:"content" json:"content"`
	ImageKey       string `dynamodbav:"imageKey,omitempty" json:"imageKey,omitempty"`
	IsDeleted      bool   `dynamodbav:"isDeleted" json:"isDeleted"`

	// ImageURL is resolved from ImageKey at read time and never persisted.
	ImageURL string `dynamodbav:"-" json:"imageUrl,omitempty"`
}

// LastMessage is the roster-preview summary of a conversation's most recent
// message.
type LastMessage struct {
	Content   string `json:"content"`
	SenderID  string `json:"senderId"`
	IsDeleted bool   `json:"isDeleted"`
}

const (
	// MessagesTable is the DynamoDB table name for messages
	MessagesTable = "Messages"
	// MessageIDIndex is the GSI used to look a message up by messageId
	MessageIDIndex = "messageId-index"
)
