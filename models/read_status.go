package models

// ReadStatus is the per-user per-conversation read cursor: a single
// watermark, not per-message flags.
type ReadStatus struct {
	UserID         string `dynamodbav:"userId" json:"userId"`
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	LastReadTime   int64  `dynamodbav:"lastReadTime" json:"lastReadTime"`
}

// ReadStatusTable is the DynamoDB table name for read cursors
const ReadStatusTable = "ReadStatus"
