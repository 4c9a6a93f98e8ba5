package restock

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/config_schema.json
var configSchema string

// documentSchema is the declared shape of the strict tuple-root document,
// compiled once at startup.
var documentSchema = jsonschema.MustCompileString("config_schema.json", configSchema)

// ValidateDocument checks raw document bytes against the declared schema.
// It passes only the strict tuple-root shape; a strict store must refuse to
// proceed on any error, the legacy normalizer is not a fallback there.
func ValidateDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := documentSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
