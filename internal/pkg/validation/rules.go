// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone numbers: digits with optional leading + and separators
	PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
)

// Register adds the custom tags to v and makes errors report the JSON field name
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)
	rules := map[string]validator.Func{
		"notblank": notBlank,
		"link":     link,
		"phone":    phone,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// RegisterWithGin adds the custom tags to gin's default validator engine
func RegisterWithGin() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return Register(v)
	}
	return nil
}

// fieldName prefers the json tag, then the form tag, then the Go name
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// notBlank rejects strings made only of whitespace
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// link accepts an absolute http(s) URL or a site-relative path such as /placements/register
func link(fl validator.FieldLevel) bool {
	v := strings.TrimSpace(fl.Field().String())
	if v == "" {
		return true
	}
	if strings.HasPrefix(v, "/") {
		return !strings.HasPrefix(v, "//")
	}
	u, err := url.Parse(v)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func phone(fl validator.FieldLevel) bool {
	v := strings.TrimSpace(fl.Field().String())
	return v == "" || PhonePattern.MatchString(v)
}
