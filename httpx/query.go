package httpx

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// queryJSON decodes numbers as json.Number so values survive the round trip
// through StructToQuery without being turned into floats. HTML is not escaped
// so system predicates like "system:width > 100" are sent as written.
var queryJSON = jsoniter.Config{
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// EncodeQuery serializes query parameters the way the Hydrus Client API
// expects them.
//
// Scalars are sent as their plain string form. Composite values (slices,
// arrays, maps and structs) are JSON encoded into a single parameter, so
// []string{"a", "b"} becomes ["a","b"] before URL escaping. Nil values are
// left out. Keys are emitted in sorted order.
func EncodeQuery(query map[string]any) (string, error) {
	values := make(url.Values, len(query))
	for key, value := range query {
		s, ok, err := queryValue(value)
		if err != nil {
			return "", fmt.Errorf("failed to encode query parameter %q: %w", key, err)
		}
		if !ok {
			continue
		}
		values.Set(key, s)
	}
	return values.Encode(), nil
}

func queryValue(value any) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true, nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		b, err := queryJSON.Marshal(v.Interface())
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	default:
		return "", false, fmt.Errorf("unsupported query value type %s", v.Type())
	}
}

// StructToQuery turns an options struct into query parameters using the same
// field names and omitempty rules as its JSON encoding.
func StructToQuery(options any) (map[string]any, error) {
	if options == nil {
		return map[string]any{}, nil
	}
	b, err := queryJSON.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query options: %w", err)
	}
	query := map[string]any{}
	if err := queryJSON.Unmarshal(b, &query); err != nil {
		return nil, fmt.Errorf("query options must encode to a JSON object: %w", err)
	}
	return query, nil
}
