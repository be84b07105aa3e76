package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields holds the untyped part of a stored document. Keys are kept as
// given by the client and written back unchanged.
type Fields = bson.M

// marshalDocument renders fields and the typed keys as one JSON object.
// Typed keys win over same-named entries in fields.
func marshalDocument(fields Fields, typed map[string]any) ([]byte, error) {
	out := make(map[string]any, len(fields)+len(typed))
	for k, v := range fields {
		out[k] = v
	}
	for k, v := range typed {
		out[k] = v
	}
	return json.Marshal(out)
}

// unmarshalDocument decodes a JSON object. Numbers stay json.Number so
// integers are not widened to doubles on their way to the store.
func unmarshalDocument(data []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// takeID removes "_id" from fields and returns it if it is an ObjectID hex.
func takeID(fields Fields) primitive.ObjectID {
	raw, ok := fields["_id"]
	if !ok {
		return primitive.NilObjectID
	}
	delete(fields, "_id")

	s, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// takeString removes key from fields and returns its string value.
func takeString(fields Fields, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		delete(fields, key)
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	delete(fields, key)
	return s, nil
}

func idKey(id primitive.ObjectID) map[string]any {
	if id.IsZero() {
		return map[string]any{}
	}
	return map[string]any{"_id": id.Hex()}
}
