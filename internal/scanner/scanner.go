// Package scanner finds documented classes and types in source trees and
// hands their doc comments to the glossary extractor.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/ubiquitous-gen/internal/glossary"
	"github.com/example/ubiquitous-gen/internal/logging"
	"github.com/example/ubiquitous-gen/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "scanner")

// Scanner extracts documented declarations from one source file.
type Scanner interface {
	// Lang is the language name used on the command line.
	Lang() string
	// Accept reports whether the file at path should be scanned.
	Accept(path string) bool
	// ScanFile returns one RawDoc per declaration found in src.
	ScanFile(path string, src []byte) ([]glossary.RawDoc, error)
}

// New returns the scanner for lang.
func New(lang string) (Scanner, error) {
	switch strings.ToLower(lang) {
	case "php":
		return NewPHPScanner(), nil
	case "go", "golang":
		return NewGoScanner(), nil
	default:
		return nil, fmt.Errorf("unsupported language %q (use php or go)", lang)
	}
}

// Walk scans every root with s. Roots may be files or directories;
// directories are walked recursively in lexical order, skipping vendor,
// hidden directories and any directory named in exclude. Files that fail to
// parse are logged and skipped.
func Walk(roots []string, s Scanner, exclude []string) ([]glossary.RawDoc, error) {
	skip := map[string]bool{"vendor": true}
	for _, name := range exclude {
		skip[name] = true
	}

	var docs []glossary.RawDoc
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}

		if !info.IsDir() {
			found, err := scanPath(root, s)
			if err != nil {
				return nil, err
			}
			docs = append(docs, found...)
			continue
		}

		err = filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if de.IsDir() {
				if path != root && (skip[de.Name()] || strings.HasPrefix(de.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !s.Accept(path) {
				return nil
			}
			found, err := scanPath(path, s)
			if err != nil {
				return err
			}
			docs = append(docs, found...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
		}
	}

	log.WithFields(logrus.Fields{
		logfields.Lang:  s.Lang(),
		logfields.Count: len(docs),
	}).Debug("Scan finished")

	return docs, nil
}

func scanPath(path string, s Scanner) ([]glossary.RawDoc, error) {
	src, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	docs, err := s.ScanFile(path, src)
	if err != nil {
		log.WithError(err).WithField(logfields.File, path).Warn("Skipping file that failed to parse")
		return nil, nil
	}

	log.WithFields(logrus.Fields{
		logfields.File:  path,
		logfields.Count: len(docs),
	}).Debug("Scanned file")

	return docs, nil
}
