package core

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestRead is returned when the manifest file exists but cannot be read.
	ErrManifestRead = zerr.New("manifest unreadable")

	// ErrManifestParse is returned when the manifest is not valid JSON or decodes to an empty value.
	ErrManifestParse = zerr.New("manifest invalid")

	// ErrMissingEntry is returned when the mandatory default script is absent from the manifest.
	ErrMissingEntry = zerr.New("manifest entry missing")
)

const (
	DefaultPackageManager = "yarn"
	defaultManifestLabel  = "manifest.json"
)

// BuildHint carries what an operator needs to fix a broken manifest: where it
// lives and which package manager rebuilds it.
type BuildHint struct {
	ManifestPath   string
	PackageManager string
}

func (h BuildHint) manifest() string {
	if h.ManifestPath == "" {
		return defaultManifestLabel
	}
	return h.ManifestPath
}

func (h BuildHint) command() string {
	pm := h.PackageManager
	if pm == "" {
		pm = DefaultPackageManager
	}
	return pm + " build"
}

func (h BuildHint) NotFound() error {
	msg := fmt.Sprintf("%s does not exist. Please run `%s`", h.manifest(), h.command())
	return zerr.With(zerr.Wrap(ErrManifestNotFound, msg), "path", h.manifest())
}

func (h BuildHint) ReadFailed(cause error) error {
	msg := fmt.Sprintf("%s could not be read. Please run `%s`", h.manifest(), h.command())
	err := zerr.With(zerr.Wrap(ErrManifestRead, msg), "path", h.manifest())
	if cause != nil {
		err = zerr.With(err, "cause", cause.Error())
	}
	return err
}

func (h BuildHint) Invalid(cause error) error {
	msg := fmt.Sprintf("%s is not valid JSON. Please run `%s`", h.manifest(), h.command())
	err := zerr.With(zerr.Wrap(ErrManifestParse, msg), "path", h.manifest())
	if cause != nil {
		err = zerr.With(err, "cause", cause.Error())
	}
	return err
}

func (h BuildHint) MissingEntry(entry string) error {
	msg := fmt.Sprintf("%s is missing from %s. Please run `%s`", entry, h.manifest(), h.command())
	return zerr.With(zerr.Wrap(ErrMissingEntry, msg), "entry", entry)
}
