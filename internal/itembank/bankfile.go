package itembank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema every bank file must satisfy before
// any item reaches a pool. Structural problems fail here; semantic
// checks (positive discrimination, answer index range) happen in
// Item.Validate.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Human-readable bank name",
		},
		"language": map[string]any{
			"type":        "string",
			"description": "BCP 47 tag of the assessed language, e.g. 'es' or 'fr-CA'",
		},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"difficulty":     map[string]any{"type": "number"},
					"discrimination": map[string]any{"type": "number", "exclusiveMinimum": 0},
					"content":        map[string]any{"type": "object"},
				},
				"required": []any{"id", "difficulty", "discrimination", "content"},
			},
		},
	},
	"required": []any{"items"},
}

var (
	compileBankSchemaOnce sync.Once
	compiledBankSchema    *jsonschema.Schema
	compileBankSchemaErr  error
)

// Bank is a named collection of calibrated items as stored on disk.
type Bank struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Items    []Item `json:"items"`
}

// LoadBank reads and validates a bank file, returning a ready pool.
func LoadBank(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("parse bank file %s: %w", path, err)
	}
	return NewPool(bank.Items...)
}

// ParseBank validates raw JSON against the bank schema and decodes it.
func ParseBank(data []byte) (*Bank, error) {
	schema, err := getBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidItem, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidItem, err)
	}
	return &bank, nil
}

func getBankSchema() (*jsonschema.Schema, error) {
	compileBankSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileBankSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileBankSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://item-bank.json", defParsed); err != nil {
			compileBankSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledBankSchema, compileBankSchemaErr = c.Compile("schema://item-bank.json")
	})
	return compiledBankSchema, compileBankSchemaErr
}
