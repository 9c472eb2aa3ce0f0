package quiz

import (
	"fmt"
	"strings"
)

// Validate checks an answer against the content rules.
func (a *Answer) Validate() error {
	if strings.TrimSpace(a.Text) == "" {
		return fmt.Errorf("text must not be empty or blank")
	}
	if strings.TrimSpace(a.Explanation) == "" {
		return fmt.Errorf("explanation must not be empty or blank")
	}
	return nil
}

// Validate checks the categorized answer constraints: at least one answer
// per category and at least five in total.
func (s *AnswerSet) Validate() error {
	for _, ca := range s.Categorized() {
		if len(ca.Answers) < 1 {
			return fmt.Errorf("must have at least 1 %s answer", ca.Category)
		}
		for i := range ca.Answers {
			if err := ca.Answers[i].Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", ca.Category, i, err)
			}
		}
	}
	if total := s.Total(); total < 5 {
		return fmt.Errorf("must have at least 5 answers total, got %d", total)
	}
	return nil
}

// Validate checks the question text, normalizes tags in place
// (trim + lower-case) and validates the answer set.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question must not be empty or blank")
	}
	for i, tag := range q.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must be non-empty strings")
		}
		q.Tags[i] = strings.ToLower(strings.TrimSpace(tag))
	}
	return q.Answers.Validate()
}

// Validate checks the group name and every contained question.
func (g *SubtopicGroup) Validate() error {
	if strings.TrimSpace(g.Subtopic) == "" {
		return fmt.Errorf("subtopic must not be empty or blank")
	}
	if len(g.Questions) == 0 {
		return fmt.Errorf("subtopic %q must contain at least 1 question", g.Subtopic)
	}
	for i := range g.Questions {
		if err := g.Questions[i].Validate(); err != nil {
			return fmt.Errorf("subtopic %q, question %d: %w", g.Subtopic, i, err)
		}
	}
	return nil
}

// Validate checks the file metadata and every item.
func (f *TopicFile) Validate() error {
	if strings.TrimSpace(f.MenuName) == "" {
		return fmt.Errorf("menu_name must not be empty or blank")
	}
	if len(f.Items) == 0 {
		return fmt.Errorf("quiz file must contain at least 1 question or subtopic group")
	}
	for i, item := range f.Items {
		switch {
		case item.Group != nil:
			if err := item.Group.Validate(); err != nil {
				return fmt.Errorf("questions[%d]: %w", i, err)
			}
		case item.Question != nil:
			if err := item.Question.Validate(); err != nil {
				return fmt.Errorf("questions[%d]: %w", i, err)
			}
		default:
			return fmt.Errorf("questions[%d]: empty entry", i)
		}
	}
	return nil
}
