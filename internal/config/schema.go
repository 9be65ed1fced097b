package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/viper"
)

//go:embed schema.json
var schemaJSON []byte

var fileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("mem://hoot/config.schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("mem://hoot/config.schema.json")
})

// validateFile checks the keys and values of the config file at path,
// before defaults and environment variables are merged in.
func validateFile(path string) error {
	fv := viper.New()
	fv.SetConfigFile(path)
	fv.SetConfigType("yaml")
	if err := fv.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// YAML decodes to Go ints and nested maps; re-decode as JSON values.
	b, err := json.Marshal(fv.AllSettings())
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	sch, err := fileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}
