package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/vitrine/internal/media"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	durationLabelPattern = regexp.MustCompile(`^(?:\d{1,2}:)?\d{1,2}:\d{2}$`)
	opaqueSchemes        = map[string]struct{}{"geo": {}, "data": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("media_kind", func(fl validator.FieldLevel) bool {
			_, ok := media.ParseKind(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("duration_label", func(fl validator.FieldLevel) bool {
			return durationLabelPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("media_source", func(fl validator.FieldLevel) bool {
			return isValidSource(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidSource accepts http(s) URLs with a host, geo: and data: URIs, and
// syntactically valid file paths. It never touches the filesystem.
func isValidSource(source string) bool {
	if strings.TrimSpace(source) == "" {
		return false
	}
	if strings.Contains(source, "\x00") {
		return false
	}

	if parsed, err := url.Parse(source); err == nil && parsed.Scheme != "" {
		scheme := strings.ToLower(parsed.Scheme)
		switch {
		case scheme == "http" || scheme == "https":
			return parsed.Host != ""
		case len(scheme) == 1:
			// Windows drive letter, treat as a path.
		default:
			_, ok := opaqueSchemes[scheme]
			return ok && parsed.Opaque != ""
		}
	}

	return isValidFilePath(source)
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if strings.HasSuffix(path, "/") {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if strings.TrimSpace(part) != part {
			return false
		}
	}
	return true
}
