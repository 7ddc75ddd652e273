package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// indexSchema describes the todo index file: an ordered array of todo
// summaries. Extra fields are tolerated so older or newer frontends can
// round-trip data they understand and we do not.
const indexSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Todo index",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status", "folder_name"],
    "properties": {
      "id": {"type": "string"},
      "title": {"type": "string"},
      "status": {"type": "string"},
      "folder_name": {"type": "string"}
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("todos.schema.json", strings.NewReader(indexSchema)); err != nil {
			schemaErr = fmt.Errorf("add index schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("todos.schema.json")
	})
	return schema, schemaErr
}

// ValidateIndex checks raw index JSON against the embedded schema.
func ValidateIndex(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse index: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("validate index: %w", err)
	}
	return nil
}
