// Package quiz defines the typed model for quiz content files and the
// validation rules the rest of the pipeline relies on.
//
// A content file is a yaml mapping with menu metadata and a questions list
// whose entries are either bare questions or named subtopic groups. The two
// shapes share no mandatory keys except that groups carry "subtopic", which
// is what the decoder discriminates on.
package quiz

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Answer is a single answer option with display text and an explanation.
type Answer struct {
	Text        string `yaml:"text"`
	Explanation string `yaml:"explanation"`
}

// Answer category names as they appear in the compiled manifest.
const (
	CategoryCorrect          = "correct"
	CategoryPartiallyCorrect = "partially_correct"
	CategoryIncorrect        = "incorrect"
	CategoryRidiculous       = "ridiculous"
)

// AnswerSet is the categorized answer collection of a single question.
// Every category must hold at least one answer and the set at least five
// in total.
type AnswerSet struct {
	Correct          []Answer `yaml:"correct"`
	PartiallyCorrect []Answer `yaml:"partially_correct"`
	Incorrect        []Answer `yaml:"incorrect"`
	Ridiculous       []Answer `yaml:"ridiculous"`
}

// CategoryAnswers pairs a category name with its answers, used when the
// manifest flattens a question into per-answer rows.
type CategoryAnswers struct {
	Category string
	Answers  []Answer
}

// Categorized returns the answer lists in canonical category order.
func (s *AnswerSet) Categorized() []CategoryAnswers {
	return []CategoryAnswers{
		{CategoryCorrect, s.Correct},
		{CategoryPartiallyCorrect, s.PartiallyCorrect},
		{CategoryIncorrect, s.Incorrect},
		{CategoryRidiculous, s.Ridiculous},
	}
}

// Total returns the number of answers across all categories.
func (s *AnswerSet) Total() int {
	return len(s.Correct) + len(s.PartiallyCorrect) + len(s.Incorrect) + len(s.Ridiculous)
}

// Question is a single quiz question with categorized answers.
type Question struct {
	Question string    `yaml:"question"`
	Tags     []string  `yaml:"tags"`
	Answers  AnswerSet `yaml:"answers"`
}

// SubtopicGroup is a named group of questions within a topic file.
type SubtopicGroup struct {
	Subtopic  string     `yaml:"subtopic"`
	Questions []Question `yaml:"questions"`
}

// Item is one entry of a topic file's questions list: either a bare
// Question or a SubtopicGroup. Exactly one of the fields is non-nil after
// decoding.
type Item struct {
	Question *Question
	Group    *SubtopicGroup
}

// UnmarshalYAML decodes an item, discriminating on the presence of the
// "subtopic" key.
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("questions entry must be a mapping, got %s", kindName(value.Kind))
	}
	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "subtopic" {
			var g SubtopicGroup
			if err := value.Decode(&g); err != nil {
				return err
			}
			it.Group = &g
			return nil
		}
	}
	var q Question
	if err := value.Decode(&q); err != nil {
		return err
	}
	it.Question = &q
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// TopicFile is the top-level model for one quiz content file: menu metadata
// plus an ordered list of questions and subtopic groups.
type TopicFile struct {
	MenuName        string `yaml:"menu_name"`
	MenuDescription string `yaml:"menu_description"`
	QuizDescription string `yaml:"quiz_description"`
	Items           []Item `yaml:"questions"`
}

// QuestionCount returns the total number of questions in the file,
// including those inside subtopic groups.
func (f *TopicFile) QuestionCount() int {
	total := 0
	for _, item := range f.Items {
		if item.Group != nil {
			total += len(item.Group.Questions)
		} else {
			total++
		}
	}
	return total
}
