package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog loads a catalog document from disk, validates it, and returns the resulting model.
func ParseCatalog(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vitrineerrors.NewParseError(path, 0, err)
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(filepath.Dir(path)); err == nil {
		doc.BaseDir = abs
	} else {
		doc.BaseDir = filepath.Dir(path)
	}

	return doc, nil
}

// Parse decodes and validates a catalog document held in memory. name is
// only used in error messages.
func Parse(name string, data []byte) (*Document, error) {
	doc := Document{
		Viewer:  DefaultViewerOptions(),
		Overlay: DefaultOverlayOptions(),
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, vitrineerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
