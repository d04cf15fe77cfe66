package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/lambda-feedback/tandem/util"
)

var ErrInvalidConfig = errors.New("invalid config")

//go:embed config.schema.json
var configSchema []byte
var configSchemaLoader = gojsonschema.NewBytesLoader(configSchema)

var schema = util.Must(gojsonschema.NewSchema(configSchemaLoader))

// Validate checks the config against the config schema.
func Validate(c Config) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(c))
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
