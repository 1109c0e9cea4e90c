package services

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	table string
	item  map[string]types.AttributeValue
}

type deleteCall struct {
	table string
	key   map[string]types.AttributeValue
}

type updateCall struct {
	table      string
	expression string
	key        map[string]types.AttributeValue
	values     map[string]types.AttributeValue
}

// stubDynamo is a programmable DynamoAPI. Reads delegate to the configured
// functions (empty results when unset); writes are recorded for assertions.
type stubDynamo struct {
	puts       []putCall
	putErr     error
	condPuts   []putCall
	condPutErr error
	deletes    []deleteCall
	deleteErr  error
	updates    []updateCall
	updateErr  error

	getItemFn          func(table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	queryFn            func(table, keyCondition string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error)
	queryWithIndexFn   func(table, index, keyCondition string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error)
	queryWithOptionsFn func(table, keyCondition string, values map[string]types.AttributeValue, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error)
	queryWithFiltersFn func(table, keyCondition string, values map[string]types.AttributeValue, filter string) ([]map[string]types.AttributeValue, error)
	scanItems          []map[string]types.AttributeValue
	scanErr            error
}

var _ DynamoAPI = (*stubDynamo)(nil)

func (s *stubDynamo) PutItem(_ context.Context, table string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	s.puts = append(s.puts, putCall{table: table, item: marshaled})
	return s.putErr
}

func (s *stubDynamo) PutItemWithCondition(_ context.Context, table string, item interface{}, _ string) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	s.condPuts = append(s.condPuts, putCall{table: table, item: marshaled})
	return s.condPutErr
}

func (s *stubDynamo) GetItem(_ context.Context, table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if s.getItemFn == nil {
		return nil, nil
	}
	return s.getItemFn(table, key)
}

func (s *stubDynamo) UpdateItem(_ context.Context, table, expression string, key, values map[string]types.AttributeValue, _ map[string]string) (map[string]types.AttributeValue, error) {
	s.updates = append(s.updates, updateCall{table: table, expression: expression, key: key, values: values})
	return map[string]types.AttributeValue{}, s.updateErr
}

func (s *stubDynamo) DeleteItem(_ context.Context, table string, key map[string]types.AttributeValue) error {
	s.deletes = append(s.deletes, deleteCall{table: table, key: key})
	return s.deleteErr
}

func (s *stubDynamo) QueryItems(_ context.Context, table, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	if s.queryFn == nil {
		return nil, nil
	}
	return s.queryFn(table, keyCondition, values)
}

func (s *stubDynamo) QueryItemsWithIndex(_ context.Context, table, index, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, _ int32) ([]map[string]types.AttributeValue, error) {
	if s.queryWithIndexFn == nil {
		return nil, nil
	}
	return s.queryWithIndexFn(table, index, keyCondition, values)
}

func (s *stubDynamo) QueryItemsWithOptions(_ context.Context, table, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, limit int32, latestFirst bool) ([]map[string]types.AttributeValue, error) {
	if s.queryWithOptionsFn == nil {
		return nil, nil
	}
	return s.queryWithOptionsFn(table, keyCondition, values, limit, latestFirst)
}

func (s *stubDynamo) QueryItemsWithFilters(_ context.Context, table, keyCondition string, values map[string]types.AttributeValue, _ map[string]string, filter string) ([]map[string]types.AttributeValue, error) {
	if s.queryWithFiltersFn == nil {
		return nil, nil
	}
	return s.queryWithFiltersFn(table, keyCondition, values, filter)
}

func (s *stubDynamo) ScanWithFilter(_ context.Context, _ string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	if s.scanErr != nil {
		return s.scanErr
	}
	var filtered []map[string]types.AttributeValue
	for _, item := range s.scanItems {
		excluded := false
		for field, value := range excludeFields {
			if attr, ok := item[field].(*types.AttributeValueMemberS); ok && attr.Value == value {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return item
}

func attrString(t *testing.T, item map[string]types.AttributeValue, field string) string {
	t.Helper()
	attr, ok := item[field].(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %s is not a string", field)
	return attr.Value
}
