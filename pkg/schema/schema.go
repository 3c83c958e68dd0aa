// Package schema validates the portfolio content documents against embedded JSON Schemas.
package schema

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Document names a content document kind
type Document string

const (
	Projects Document = "projects"
	Gallery  Document = "gallery"
)

var (
	compiled   map[Document]*jsonschema.Schema
	compileErr error
	compileMu  sync.Once
	printer    = message.NewPrinter(language.English)
)

// Issue is one schema violation
type Issue struct {
	Path    string // Instance location, e.g. "/gallery/2/type"
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Document Document
	Issues   []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("%s document is invalid: %s", e.Document, strings.Join(parts, "; "))
}

func compileAll() (map[Document]*jsonschema.Schema, error) {
	compileMu.Do(func() {
		c := jsonschema.NewCompiler()
		out := make(map[Document]*jsonschema.Schema, 2)
		for _, doc := range []Document{Projects, Gallery} {
			name := string(doc) + ".schema.json"
			raw, err := schemaFS.ReadFile("schemas/" + name)
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", name, err)
				return
			}
			parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, parsed); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", name, err)
				return
			}
			s, err := c.Compile(name)
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", name, err)
				return
			}
			out[doc] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

// Validate checks raw JSON against the schema of doc.
// Malformed JSON and schema violations are both returned as errors;
// violations are a *ValidationError.
func Validate(doc Document, data []byte) error {
	schemas, err := compileAll()
	if err != nil {
		return err
	}
	s, ok := schemas[doc]
	if !ok {
		return fmt.Errorf("unknown document %q", doc)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s document: %w", doc, err)
	}

	err = s.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating %s document: %w", doc, err)
	}
	return &ValidationError{Document: doc, Issues: collectIssues(ve)}
}

func collectIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	walk(ve, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return issues
}

// walk gathers leaf errors; container keywords only group their causes
func walk(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			walk(cause, issues)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	switch keyword {
	case "", "allOf", "oneOf", "$ref", "if", "then", "else":
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, Issue{
		Path:    path,
		Keyword: keyword,
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}
