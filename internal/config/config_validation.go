package config

import (
	"fmt"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on a catalog document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return vitrineerrors.NewValidationError("catalog", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, item := range doc.Items {
		if err := validateItem(item, i); err != nil {
			return err
		}
	}

	if doc.Viewer.InitialIndex >= len(doc.Items) {
		return vitrineerrors.NewValidationError(
			"viewer.initial_index",
			fmt.Sprintf("initial index %d is out of range for %d items", doc.Viewer.InitialIndex, len(doc.Items)),
			nil,
		)
	}

	if doc.Viewer.AutoPlay && doc.Viewer.AutoPlayInterval == 0 {
		return vitrineerrors.NewValidationError("viewer.auto_play_interval", "auto_play requires a positive interval", nil)
	}

	return nil
}

// validateItem checks that the variant selected by kind was decoded.
func validateItem(item Item, index int) error {
	switch item.Kind {
	case "image":
		if item.Image == nil {
			return vitrineerrors.NewValidationError(fieldForItem(index, "source"), "source is required", nil)
		}
	case "video":
		if item.Video == nil {
			return vitrineerrors.NewValidationError(fieldForItem(index, "source"), "source is required", nil)
		}
	case "map":
		if item.Map == nil {
			return vitrineerrors.NewValidationError(fieldForItem(index, "source"), "source is required", nil)
		}
	case "embedded":
		if item.Embedded == nil {
			return vitrineerrors.NewValidationError(fieldForItem(index, "text"), "text is required", nil)
		}
	default:
		return vitrineerrors.NewValidationError(fieldForItem(index, "kind"), fmt.Sprintf("unknown media kind %q", item.Kind), nil)
	}

	return nil
}
