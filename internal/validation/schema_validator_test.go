package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"quest_id": {"type": "integer", "minimum": 1},
			"title": {"type": "string"},
			"type": {"type": "string", "enum": ["play_games", "earn_xp"]}
		},
		"required": ["quest_id", "type"]
	}`)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid document",
			data: `{"quest_id": 1, "title": "Play Games", "type": "play_games"}`,
		},
		{
			name: "valid without optional field",
			data: `{"quest_id": 2, "type": "earn_xp"}`,
		},
		{
			name:      "missing required field",
			data:      `{"title": "No ID"}`,
			wantError: true,
			errorMsg:  "validation failed",
		},
		{
			name:      "wrong type",
			data:      `{"quest_id": "one", "type": "play_games"}`,
			wantError: true,
			errorMsg:  "quest_id",
		},
		{
			name:      "enum violation",
			data:      `{"quest_id": 1, "type": "not_a_quest"}`,
			wantError: true,
		},
		{
			name:      "constraint violation",
			data:      `{"quest_id": 0, "type": "earn_xp"}`,
			wantError: true,
		},
		{
			name:      "malformed JSON",
			data:      `{"quest_id": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error to contain %q, got: %v", tt.errorMsg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {"type": "integer"}
	}`)

	dataPath := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(dataPath, []byte(`[1, 2, 3]`), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	if err := v.ValidateFile(dataPath, schemaPath); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := v.ValidateFile("nonexistent.json", schemaPath)
	if err == nil || !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("expected read error for missing data file, got: %v", err)
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("expected load error for missing schema, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeSchema(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object"
	}`)

	for i := 0; i < 2; i++ {
		if err := v.ValidateBytes([]byte(`{"k": "v"}`), schemaPath); err != nil {
			t.Fatalf("validation %d failed: %v", i+1, err)
		}
		if len(v.schemas) != 1 {
			t.Errorf("expected 1 cached schema after validation %d, got %d", i+1, len(v.schemas))
		}
	}
}
