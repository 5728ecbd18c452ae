package http

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/abdul-hamid-achik/hitpart/packages/multipart"
)

type FieldType int

const (
	FieldText FieldType = iota
	FieldFile
)

// Field is one form field: a text value or a file path.
type Field struct {
	Type  FieldType
	Name  string
	Value string
	Path  string // for FieldFile, relative paths resolve against the base directory
}

// BuildMultipartBody creates an assembly from form fields, in order. File
// fields are referenced, not read; their contents are copied when the
// assembly is encoded.
func BuildMultipartBody(fields []*Field, baseDir string, opts ...multipart.Option) (*multipart.Assembly, error) {
	a := multipart.New(opts...)

	for _, field := range fields {
		var (
			part multipart.Part
			err  error
		)
		if field.Type == FieldFile {
			filePath := field.Path
			if !filepath.IsAbs(filePath) && baseDir != "" {
				filePath = filepath.Join(baseDir, filePath)
			}

			// Validate path doesn't escape base directory (prevent path traversal)
			if err := validatePathWithinBase(filePath, baseDir); err != nil {
				return nil, err
			}

			part, err = multipart.NewFilePart(field.Name, filePath)
		} else {
			part, err = multipart.NewFieldPart(field.Name, field.Value)
		}
		if err != nil {
			return nil, err
		}
		a.Append(part)
	}

	return a, nil
}

// validatePathWithinBase checks that the resolved path stays within the base directory
func validatePathWithinBase(path, baseDir string) error {
	if baseDir == "" {
		return nil
	}

	cleanBase, err := filepath.Abs(baseDir)
	if err != nil {
		return errors.Wrap(err, "failed to resolve base directory")
	}

	cleanPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "failed to resolve path")
	}

	if !strings.HasPrefix(cleanPath, cleanBase+string(filepath.Separator)) && cleanPath != cleanBase {
		return errors.Errorf("path traversal detected: %s is outside allowed directory %s", path, baseDir)
	}

	return nil
}
