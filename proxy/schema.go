// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package proxy

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/skillproxy/frontmatter"
)

//go:embed data/proxy-skill.schema.json
var embeddedSchemaFS embed.FS

// ValidateRecord validates a rendered proxy record's frontmatter against
// the embedded proxy skill schema. It is the generation-time safety net:
// a builder or serialization bug that drops a snapshot field fails here
// rather than surfacing later as an unverifiable record.
func ValidateRecord(content []byte) error {
	fm, _, err := frontmatter.Split(content)
	if err != nil {
		return fmt.Errorf("isolating record frontmatter: %w", err)
	}

	// gojsonschema consumes JSON; re-encode the YAML block.
	var doc map[string]any
	if err := yaml.Unmarshal(fm, &doc); err != nil {
		return fmt.Errorf("decoding record frontmatter: %w", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing record frontmatter: %w", err)
	}

	return validateAgainstSchema(data, "data/proxy-skill.schema.json", "proxy record schema validation failed")
}

// validateAgainstSchema validates data against a named embedded schema file.
func validateAgainstSchema(data []byte, schemaFile, errPrefix string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errPrefix, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors(errPrefix, msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(":")
	for i, msg := range msgs {
		b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, msg))
	}
	return fmt.Errorf("%s", b.String())
}
