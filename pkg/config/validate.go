// SPDX-License-Identifier: Apache-2.0
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	wererrors "github.com/wer-build/wer/pkg/errors"
)

// clang-format's predefined styles, compared case-insensitively.
var clangFormatStyles = map[string]bool{
	"llvm":                true,
	"gnu":                 true,
	"google":              true,
	"chromium":            true,
	"microsoft":           true,
	"mozilla":             true,
	"webkit":              true,
	"inheritparentconfig": true,
	"file":                true,
}

// IsClangFormatStyle reports whether style is something clang-format's
// -style flag accepts: a predefined name, file, file:<path>, or an inline {..} map.
func IsClangFormatStyle(style string) bool {
	style = strings.TrimSpace(style)
	if strings.HasPrefix(style, "file:") && len(style) > len("file:") {
		return true
	}
	if strings.HasPrefix(style, "{") && strings.HasSuffix(style, "}") {
		return true
	}
	return clangFormatStyles[strings.ToLower(style)]
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their TOML key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("clangstyle", func(fl validator.FieldLevel) bool {
		return IsClangFormatStyle(fl.Field().String())
	})
	return v
}

// Validate checks the document's structure and returns every violation,
// joined and wrapped in ErrInvalidConfig. Loading never calls this; accessors
// report missing keys lazily on their own.
func (d *Document) Validate() error {
	err := newValidator().Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", wererrors.ErrInvalidConfig, err)
	}

	problems := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w:\n%w", wererrors.ErrInvalidConfig, errors.Join(problems...))
}

// describe turns a field error into a message keyed by the dotted TOML path.
func describe(fe validator.FieldError) error {
	key := fe.Namespace()
	if i := strings.Index(key, "."); i >= 0 {
		key = key[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("  %s: is required", key)
	case "min":
		return fmt.Errorf("  %s: must not be empty", key)
	case "clangstyle":
		return fmt.Errorf("  %s: %q is not a clang-format style", key, fe.Value())
	}
	return fmt.Errorf("  %s: failed %q check", key, fe.Tag())
}
