package upload

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// Input holds one base64-encoded file.
type Input struct {
	// File is standard base64, optionally prefixed with a data URL header.
	File     string
	FileName string
	FileType string
	Folder   string
}

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-/]*$`)

// Validate validates the upload input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.File) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "required"})
	} else if len(i.FileName) > 255 {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "too long"})
	}
	if i.Folder != "" && (!folderPattern.MatchString(i.Folder) || strings.Contains(i.Folder, "..")) {
		errs = append(errs, domain.FieldError{Field: "folder", Message: "invalid folder"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result describes a stored file.
type Result struct {
	URL      string
	FileName string
	Key      string
}
