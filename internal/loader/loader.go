// Package loader walks a quiz corpus directory, validates every content
// file and produces the ordered (relative path, TopicFile) pairs the tree
// builder consumes.
//
// Validation is fail-fast: the first offending file aborts the whole batch
// with a structured error naming the path and the violation. No partial
// results are ever returned.
package loader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"git.home.luguber.info/inful/quizbuilder/internal/logfields"
	"git.home.luguber.info/inful/quizbuilder/internal/quiz"
	"gopkg.in/yaml.v3"
)

// ValidatedFile is one validated content file together with its
// slash-separated path relative to the corpus root.
type ValidatedFile struct {
	RelPath string
	File    *quiz.TopicFile
}

// ParseFile parses and validates a single yaml content file.
func ParseFile(path string) (*quiz.TopicFile, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, qerrors.NewValidationError(path, "file not found")
	}
	if err != nil {
		return nil, qerrors.NewFileSystemError(fmt.Sprintf("stat %s", path), err)
	}
	if info.IsDir() {
		return nil, qerrors.NewValidationError(path, "not a file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.NewFileSystemError(fmt.Sprintf("read %s", path), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, qerrors.NewValidationError(path, "file is empty")
	}

	var file quiz.TopicFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, qerrors.NewValidationError(path, fmt.Sprintf("YAML syntax error: %v", err))
	}
	if err := file.Validate(); err != nil {
		return nil, qerrors.NewValidationError(path, err.Error())
	}

	return &file, nil
}

// LoadDir recursively validates all .yaml files under dir and returns them
// ordered by relative slash path. It fails on the first invalid file and on
// a corpus that contains no yaml files at all.
func LoadDir(dir string) ([]ValidatedFile, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, qerrors.NewValidationError(dir, "directory not found")
	}
	if err != nil {
		return nil, qerrors.NewFileSystemError(fmt.Sprintf("stat %s", dir), err)
	}
	if !info.IsDir() {
		return nil, qerrors.NewValidationError(dir, "not a directory")
	}

	var relPaths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, qerrors.NewFileSystemError(fmt.Sprintf("walk %s", dir), err)
	}
	if len(relPaths) == 0 {
		return nil, qerrors.NewValidationError(dir, "no .yaml files found")
	}
	// Walk order is already lexical per directory; sorting the joined
	// relative paths pins the cross-platform corpus order the navigation
	// tree depends on.
	sort.Strings(relPaths)

	files := make([]ValidatedFile, 0, len(relPaths))
	for _, rel := range relPaths {
		file, err := ParseFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		slog.Debug("Validated topic file", logfields.Path(rel), logfields.Questions(file.QuestionCount()))
		files = append(files, ValidatedFile{RelPath: rel, File: file})
	}

	return files, nil
}

// QuestionCount returns the total number of questions across validated files.
func QuestionCount(files []ValidatedFile) int {
	total := 0
	for _, vf := range files {
		total += vf.File.QuestionCount()
	}
	return total
}
