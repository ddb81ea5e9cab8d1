// Package validators holds the custom validator tags used by ETREE entities
// and a helper that runs struct validation with them registered.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)
	versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)+$`)
	loginPattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._@-]*$`)
)

// NameValidation accepts ETREE object names: alphanumerics followed by
// alphanumerics, dots, dashes, underscores or plus signs.
func NameValidation(fl validator.FieldLevel) bool {
	return namePattern.MatchString(fl.Field().String())
}

// VersionValidation accepts dotted numeric versions such as 14.1 or 14.1.6.
func VersionValidation(fl validator.FieldLevel) bool {
	return versionPattern.MatchString(fl.Field().String())
}

// LoginValidation accepts intranet ids and e-mail style logins.
func LoginValidation(fl validator.FieldLevel) bool {
	return loginPattern.MatchString(fl.Field().String())
}

// ToolKitReleaseValidation checks that a tool kit name belongs to the release
// named by the sibling ReleaseName field, e.g. 14.1.6 belongs to 14.1.
func ToolKitReleaseValidation(fl validator.FieldLevel) bool {
	release := fl.Parent().FieldByName("ReleaseName").String()
	name := fl.Field().String()
	if release == "" {
		return false
	}
	return strings.HasPrefix(name, release+".")
}

// New returns a validator with every custom ETREE tag registered.
func New() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("etreename", NameValidation)
	_ = validate.RegisterValidation("version", VersionValidation)
	_ = validate.RegisterValidation("login", LoginValidation)
	_ = validate.RegisterValidation("tkrelease", ToolKitReleaseValidation)
	return validate
}

// Struct validates s and converts field errors into an INVALID_INPUT error
// listing each failing field and tag.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return apperr.InvalidInput("validation failed: %v", messages)
	}
	return apperr.Wrap(apperr.CodeInvalidInput, err, "validation error")
}
