package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Prefix marks a comment as a scopegen annotation
const Prefix = "scope::"

// annotationLine is the participle grammar for everything after the prefix:
//
//	<kind> [<Name>] [-Param=Value]... [-Flag]...
type annotationLine struct {
	Kind  string      `parser:"@Ident"`
	Name  string      `parser:"@Ident?"`
	Items []paramItem `parser:"@@*"`
}

// paramItem is a single -Key=Value parameter or bare -Flag
type paramItem struct {
	Key   string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(Ident (Comma Ident)*))?"`
}

var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Parser parses annotation comments into schema-validated ParsedAnnotations
type Parser struct {
	line      *participle.Parser[annotationLine]
	registry  AnnotationRegistry
	validator *SchemaValidator
}

// NewParser creates a parser backed by the given schema registry
func NewParser(registry AnnotationRegistry) *Parser {
	line := participle.MustBuild[annotationLine](
		participle.Lexer(annotationLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		line:      line,
		registry:  registry,
		validator: NewSchemaValidator(registry),
	}
}

// IsAnnotation reports whether a comment line is a scopegen annotation
func IsAnnotation(comment string) bool {
	content := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(content, Prefix)
}

// ParseAnnotation parses a single annotation comment. The returned
// annotation has typed parameters with schema defaults applied and has
// passed schema validation.
func (p *Parser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	content := strings.TrimSpace(comment)
	if !strings.HasPrefix(content, "//") {
		return nil, &ParseError{
			Message:  "annotation must be a line comment",
			Location: location,
		}
	}
	content = strings.TrimSpace(strings.TrimPrefix(content, "//"))

	if !strings.HasPrefix(content, Prefix) {
		return nil, &ParseError{
			Message:    fmt.Sprintf("annotation must start with %q", Prefix),
			Location:   location,
			Suggestion: fmt.Sprintf("write //%s<kind> ...", Prefix),
		}
	}
	content = strings.TrimPrefix(content, Prefix)

	line, err := p.line.ParseString(location.File, content)
	if err != nil {
		return nil, &ParseError{
			Message:    fmt.Sprintf("malformed annotation: %v", err),
			Location:   location,
			Suggestion: "expected <kind> [Name] [-Param=Value] [-Flag]",
		}
	}

	annotationType, err := ParseAnnotationType(line.Kind)
	if err != nil {
		return nil, &ParseError{
			Message:    err.Error(),
			Location:   location,
			Suggestion: "valid kinds are flow, module and service",
		}
	}
	if !p.registry.IsRegistered(annotationType) {
		return nil, &ParseError{
			Message:  fmt.Sprintf("annotation kind %q has no registered schema", line.Kind),
			Location: location,
		}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        comment,
	}

	if line.Name != "" {
		parsed.Parameters["Name"] = line.Name
	}

	for _, item := range line.Items {
		if err := p.applyItem(parsed, item); err != nil {
			return nil, err
		}
	}

	if err := p.validator.TransformParameters(parsed); err != nil {
		return nil, err
	}
	if err := p.validator.Validate(parsed); err != nil {
		return nil, err
	}
	if err := p.validator.ApplyDefaults(parsed); err != nil {
		return nil, err
	}

	return parsed, nil
}

// applyItem records one -Param=Value or bare -Flag on the annotation
func (p *Parser) applyItem(parsed *ParsedAnnotation, item paramItem) error {
	if _, dup := parsed.Parameters[item.Key]; dup && item.Key != "Name" {
		return &ParseError{
			Message:  fmt.Sprintf("parameter %q given more than once", item.Key),
			Location: parsed.Location,
		}
	}

	if item.Value != nil {
		parsed.Parameters[item.Key] = *item.Value
		return nil
	}

	// A bare flag means true for bool parameters and the schema default
	// for anything else that has one. Unknown keys fall through as true
	// so schema validation can report them.
	schema, err := p.registry.GetSchema(parsed.Type)
	if err == nil {
		if spec, exists := schema.Parameters[item.Key]; exists {
			switch {
			case spec.Type == BoolType:
				parsed.Parameters[item.Key] = true
			case spec.DefaultValue != nil:
				parsed.Parameters[item.Key] = spec.DefaultValue
			default:
				return &ParseError{
					Message:    fmt.Sprintf("parameter %q requires a value", item.Key),
					Location:   parsed.Location,
					Suggestion: fmt.Sprintf("write -%s=<%s>", item.Key, spec.Type.String()),
				}
			}
			return nil
		}
	}

	parsed.Parameters[item.Key] = true
	return nil
}
