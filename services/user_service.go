package services

import (
	"context"
	"fmt"

	"ripple_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserService is the identity directory: it maps the external auth subject
// id to a stored profile.
type UserService struct {
	Dynamo DynamoAPI
}

// UpsertUser stores the profile, overwriting any previous row for the same
// userId. Called on every login.
func (us *UserService) UpsertUser(ctx context.Context, user models.User) error {
	if err := us.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user profile by its external id.
func (us *UserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetAllUsers returns every profile except the requester's own, for the
// roster view.
func (us *UserService) GetAllUsers(ctx context.Context, excludingUserID string) ([]models.User, error) {
	var users []models.User
	excludeFields := map[string]string{}
	if excludingUserID != "" {
		excludeFields["userId"] = excludingUserID
	}

	if err := us.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, excludeFields, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
