package parser

import (
	"os"
	"path/filepath"
)

// ReadSource reads an assembly source file and returns its parsed lines.
// This is the recommended entry point for parsing a file: it handles file
// I/O and delegates to ParseProgram for the line-by-line classification.
func ReadSource(path string) ([]*SourceLine, *ErrorList, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, nil, err
	}

	filename := filepath.Base(path)
	lines, errs := ParseProgram(string(content), filename)
	return lines, errs, nil
}
