package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGoCodeString formats generated Go source: goimports first, so
// unused imports get pruned, plain gofmt as fallback.
func FormatGoCodeString(filename, source string) (string, error) {
	formatted, err := imports.Process(filename, []byte(source), nil)
	if err == nil {
		return string(formatted), nil
	}

	gofmted, fmtErr := format.Source([]byte(source))
	if fmtErr == nil {
		return string(gofmted), nil
	}

	// Neither formatter accepted the source, report whether it parses at all
	fset := token.NewFileSet()
	if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
		return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
	}
	return source, err
}

// FormatAndWriteGoFile formats Go code and writes it to a file. When
// formatting fails the raw code is still written so the failure can be
// inspected.
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGoCodeString(filename, code)
	if err != nil {
		if writeErr := os.WriteFile(filename, []byte(code), 0o644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted code to %s: %w (format error: %v)", filename, writeErr, err)
		}
		return WrapGenerateError(fmt.Sprintf("formatted output %s", filename), err)
	}

	return os.WriteFile(filename, []byte(formatted), 0o644)
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
