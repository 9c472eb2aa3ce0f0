// Package manifest assembles the compiled quiz document: the navigation
// forest plus a flat list of every question instance, serialized as pretty
// JSON for the web app to consume.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"git.home.luguber.info/inful/quizbuilder/internal/identity"
	"git.home.luguber.info/inful/quizbuilder/internal/loader"
	"git.home.luguber.info/inful/quizbuilder/internal/navtree"
	"git.home.luguber.info/inful/quizbuilder/internal/quiz"
)

// FlatAnswer is one answer row in the compiled question list.
type FlatAnswer struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Category    string `json:"category"`
}

// FlatQuestion is one question instance in the compiled manifest. Subtopic
// is null for bare questions. Questions are not deduplicated: identical
// text appearing twice yields two records with the same id.
type FlatQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Tags     []string     `json:"tags"`
	Answers  []FlatAnswer `json:"answers"`
	TopicID  string       `json:"topicId"`
	Subtopic *string      `json:"subtopic"`
}

// Manifest is the single output document of a quiz build.
type Manifest struct {
	QuizName  string          `json:"quizName"`
	Tree      []*navtree.Node `json:"tree"`
	Questions []FlatQuestion  `json:"questions"`
}

// Build assembles the manifest for a validated corpus: the navigation
// forest plus a flat re-traversal of the same files emitting one record per
// question instance, in file order with grouped questions in group order.
func Build(files []loader.ValidatedFile, quizName string) *Manifest {
	questions := []FlatQuestion{}
	for _, vf := range files {
		topicID := navtree.TopicID(vf.RelPath)
		for _, item := range vf.File.Items {
			if item.Group != nil {
				name := item.Group.Subtopic
				for i := range item.Group.Questions {
					questions = append(questions, flatten(&item.Group.Questions[i], topicID, &name))
				}
				continue
			}
			questions = append(questions, flatten(item.Question, topicID, nil))
		}
	}

	return &Manifest{
		QuizName:  quizName,
		Tree:      navtree.Build(files),
		Questions: questions,
	}
}

// flatten converts one question into its manifest record, expanding the
// categorized answer set into per-answer rows in canonical category order.
func flatten(q *quiz.Question, topicID string, subtopic *string) FlatQuestion {
	answers := []FlatAnswer{}
	for _, ca := range q.Answers.Categorized() {
		for _, a := range ca.Answers {
			answers = append(answers, FlatAnswer{
				Text:        a.Text,
				Explanation: a.Explanation,
				Category:    ca.Category,
			})
		}
	}

	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return FlatQuestion{
		ID:       identity.QuestionID(q.Question),
		Question: q.Question,
		Tags:     tags,
		Answers:  answers,
		TopicID:  topicID,
		Subtopic: subtopic,
	}
}

// Write serializes the manifest to <quizName>.json inside outputDir,
// creating the directory if absent. Output is 2-space indented JSON with a
// trailing newline and no HTML escaping. Returns the written path.
func (m *Manifest) Write(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", qerrors.NewFileSystemError(fmt.Sprintf("create output directory %s", outputDir), err)
	}

	outPath := filepath.Join(outputDir, m.QuizName+".json")
	f, err := os.Create(outPath)
	if err != nil {
		return "", qerrors.NewFileSystemError(fmt.Sprintf("create %s", outPath), err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		_ = f.Close()
		return "", qerrors.NewFileSystemError(fmt.Sprintf("encode %s", outPath), err)
	}
	if err := f.Close(); err != nil {
		return "", qerrors.NewFileSystemError(fmt.Sprintf("close %s", outPath), err)
	}

	return outPath, nil
}
