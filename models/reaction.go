package models

// Reaction is keyed by (messageId, userId): a user holds at most one
// reaction per message, whatever the emoji.
type Reaction struct {
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	Emoji     string `dynamodbav:"emoji" json:"emoji"`
}

// ReactionsTable is the DynamoDB table name for message reactions
const ReactionsTable = "Reactions"

// AllowedEmojis is the fixed set of reactions the engine accepts.
var AllowedEmojis = []string{"👍", "❤️", "😂", "😮", "😢"}

// IsAllowedEmoji reports whether emoji is in the fixed allowed set.
func IsAllowedEmoji(emoji string) bool {
	for _, e := range AllowedEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}
