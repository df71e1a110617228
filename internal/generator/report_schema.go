package generator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const reportSchemaURL = "https://flowery.uno/schemas/pipeline_report.schema.json"

//go:embed pipeline_report.schema.json
var reportSchemaSource string

var (
	reportSchemaOnce sync.Once
	reportSchema     *jsonschema.Schema
	reportSchemaErr  error
)

func compiledReportSchema() (*jsonschema.Schema, error) {
	reportSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(reportSchemaURL, strings.NewReader(reportSchemaSource)); err != nil {
			reportSchemaErr = err
			return
		}
		reportSchema, reportSchemaErr = compiler.Compile(reportSchemaURL)
	})
	return reportSchema, reportSchemaErr
}

// Validate checks the report against the embedded JSON schema so consumers
// of pipeline_report.json can rely on its shape.
func (r *PipelineReport) Validate() error {
	schema, err := compiledReportSchema()
	if err != nil {
		return fmt.Errorf("failed to compile pipeline report schema: %w", err)
	}

	var v any
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline report for schema validation: %w", err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to normalize pipeline report for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("pipeline report schema validation failed: %w", err)
	}
	return nil
}
