package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

//go:embed schema.json
var schemaDocument []byte

const (
	schemaURL      = "schema://foodverse/dataset.json"
	supportedMajor = "v1"
)

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Parse validates raw dataset JSON and builds a Store from it.
// All structural problems are reported together in one error.
func Parse(data []byte) (*Store, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidDataset, err)
	}

	sch, err := datasetSchema()
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	schemaErr := sch.Validate(raw)

	// A document that breaks the schema may still decode; its remaining
	// problems are reported alongside the schema ones.
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		if schemaErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, schemaErr)
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidDataset, err)
	}

	if err := errors.Join(schemaErr, validateDocument(doc)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return newStore(doc), nil
}

// datasetSchema compiles the embedded schema once.
func datasetSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaDocument, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument performs the checks a schema cannot express.
func validateDocument(doc document) error {
	var errs []string

	if !semver.IsValid(doc.Version) {
		errs = append(errs, fmt.Sprintf("version %q is not a semantic version", doc.Version))
	} else if semver.Major(doc.Version) != supportedMajor {
		errs = append(errs, fmt.Sprintf("version %q is not supported (want %s.x.y)", doc.Version, supportedMajor))
	}

	diseaseIDs := make(map[string]bool, len(doc.Diseases))
	for _, d := range doc.Diseases {
		if diseaseIDs[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate disease ID: %q", d.ID))
		}
		diseaseIDs[d.ID] = true

		foodIDs := make(map[string]bool, len(d.Foods))
		for _, f := range d.Foods {
			if foodIDs[f.ID] {
				errs = append(errs, fmt.Sprintf("disease %q has duplicate food ID %q", d.ID, f.ID))
			}
			foodIDs[f.ID] = true
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}
