package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractBool safely extracts a boolean from a DynamoDB attribute map
func ExtractBool(item map[string]types.AttributeValue, field string) bool {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberBOOL); ok {
			return v.Value
		}
	}
	return false
}

// StringListContains reports whether a list-of-strings attribute contains
// value. Works with both list and string-set attribute encodings.
func StringListContains(item map[string]types.AttributeValue, field, value string) bool {
	attr, ok := item[field]
	if !ok {
		return false
	}
	switch list := attr.(type) {
	case *types.AttributeValueMemberL:
		for _, member := range list.Value {
			if s, ok := member.(*types.AttributeValueMemberS); ok && s.Value == value {
				return true
			}
		}
	case *types.AttributeValueMemberSS:
		for _, s := range list.Value {
			if s == value {
				return true
			}
		}
	}
	return false
}
