package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// convertValidationError normalizes validator errors into catalog validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return vitrineerrors.NewValidationError(field, msg, err)
	}

	return vitrineerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName turns "Document.Items[1].Video.Source" into
// "items[1].source": the document root and variant wrappers are dropped and
// names are snake_cased.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var out []string
	for _, part := range parts {
		switch part {
		case "Image", "Video", "Map", "Embedded":
			continue
		}
		out = append(out, snakeCase(part))
	}
	return strings.Join(out, ".")
}

func snakeCase(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
