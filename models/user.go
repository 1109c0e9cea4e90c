package models

// User is the profile stored for every signed-in user. The userId is the
// external auth subject id and is treated as an opaque string.
type User struct {
	UserID   string `dynamodbav:"userId" json:"userId"`
	Name     string `dynamodbav:"name" json:"name"`
	Email    string `dynamodbav:"email" json:"email"`
	ImageURL string `dynamodbav:"imageUrl" json:"imageUrl"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
