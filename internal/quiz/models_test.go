package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validTopicYAML = `
menu_name: Basics
menu_description: Getting started
questions:
  - question: What is Go?
    tags: [" Lang ", "BASICS"]
    answers:
      correct:
        - text: A programming language
          explanation: Yes.
        - text: A language from Google
          explanation: Also yes.
      partially_correct:
        - text: A compiler
          explanation: The toolchain includes one.
      incorrect:
        - text: A database
          explanation: No.
      ridiculous:
        - text: A sandwich
          explanation: No.
  - subtopic: Syntax
    questions:
      - question: What declares a variable?
        answers:
          correct:
            - text: var
              explanation: Yes.
          partially_correct:
            - text: ":="
              explanation: Short form, inside functions only.
          incorrect:
            - text: def
              explanation: Wrong language.
          ridiculous:
            - text: abracadabra
              explanation: No.
            - text: please
              explanation: Still no.
`

func TestTopicFile_DecodeUnion(t *testing.T) {
	var f TopicFile
	require.NoError(t, yaml.Unmarshal([]byte(validTopicYAML), &f))

	require.Equal(t, "Basics", f.MenuName)
	require.Equal(t, "Getting started", f.MenuDescription)
	require.Len(t, f.Items, 2)

	require.NotNil(t, f.Items[0].Question)
	require.Nil(t, f.Items[0].Group)
	require.Equal(t, "What is Go?", f.Items[0].Question.Question)

	require.Nil(t, f.Items[1].Question)
	require.NotNil(t, f.Items[1].Group)
	require.Equal(t, "Syntax", f.Items[1].Group.Subtopic)
	require.Len(t, f.Items[1].Group.Questions, 1)
}

func TestTopicFile_ValidateNormalizesTags(t *testing.T) {
	var f TopicFile
	require.NoError(t, yaml.Unmarshal([]byte(validTopicYAML), &f))
	require.NoError(t, f.Validate())

	require.Equal(t, []string{"lang", "basics"}, f.Items[0].Question.Tags)
}

func TestTopicFile_QuestionCount(t *testing.T) {
	var f TopicFile
	require.NoError(t, yaml.Unmarshal([]byte(validTopicYAML), &f))
	require.Equal(t, 2, f.QuestionCount())
}

func TestItem_ScalarEntryFails(t *testing.T) {
	var f TopicFile
	err := yaml.Unmarshal([]byte("menu_name: X\nquestions:\n  - just a string\n"), &f)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mapping")
}

func validQuestion() Question {
	return Question{
		Question: "q?",
		Answers: AnswerSet{
			Correct:          []Answer{{Text: "c", Explanation: "e"}},
			PartiallyCorrect: []Answer{{Text: "p", Explanation: "e"}},
			Incorrect:        []Answer{{Text: "i", Explanation: "e"}},
			Ridiculous:       []Answer{{Text: "r1", Explanation: "e"}, {Text: "r2", Explanation: "e"}},
		},
	}
}

func TestQuestion_Validate(t *testing.T) {
	q := validQuestion()
	require.NoError(t, q.Validate())

	blank := validQuestion()
	blank.Question = "   "
	require.ErrorContains(t, blank.Validate(), "question must not be empty or blank")

	badTag := validQuestion()
	badTag.Tags = []string{"ok", "  "}
	require.ErrorContains(t, badTag.Validate(), "tags must be non-empty strings")
}

func TestAnswerSet_Validate(t *testing.T) {
	missing := validQuestion().Answers
	missing.Incorrect = nil
	require.ErrorContains(t, missing.Validate(), "at least 1 incorrect answer")

	tooFew := AnswerSet{
		Correct:          []Answer{{Text: "c", Explanation: "e"}},
		PartiallyCorrect: []Answer{{Text: "p", Explanation: "e"}},
		Incorrect:        []Answer{{Text: "i", Explanation: "e"}},
		Ridiculous:       []Answer{{Text: "r", Explanation: "e"}},
	}
	require.ErrorContains(t, tooFew.Validate(), "at least 5 answers total, got 4")

	blankText := validQuestion().Answers
	blankText.Correct[0].Text = " "
	require.ErrorContains(t, blankText.Validate(), "text must not be empty or blank")

	blankExplanation := validQuestion().Answers
	blankExplanation.Ridiculous[1].Explanation = ""
	require.ErrorContains(t, blankExplanation.Validate(), "explanation must not be empty or blank")
}

func TestSubtopicGroup_Validate(t *testing.T) {
	g := SubtopicGroup{Subtopic: "S", Questions: []Question{validQuestion()}}
	require.NoError(t, g.Validate())

	g.Subtopic = "  "
	require.ErrorContains(t, g.Validate(), "subtopic must not be empty or blank")

	empty := SubtopicGroup{Subtopic: "S"}
	require.ErrorContains(t, empty.Validate(), "must contain at least 1 question")
}

func TestTopicFile_Validate(t *testing.T) {
	f := TopicFile{MenuName: "M", Items: []Item{{Question: ptr(validQuestion())}}}
	require.NoError(t, f.Validate())

	f.MenuName = ""
	require.ErrorContains(t, f.Validate(), "menu_name must not be empty or blank")

	noItems := TopicFile{MenuName: "M"}
	require.ErrorContains(t, noItems.Validate(), "at least 1 question or subtopic group")
}

func TestAnswerSet_CategorizedOrder(t *testing.T) {
	s := validQuestion().Answers
	categorized := s.Categorized()
	require.Equal(t, []string{
		CategoryCorrect, CategoryPartiallyCorrect, CategoryIncorrect, CategoryRidiculous,
	}, []string{
		categorized[0].Category, categorized[1].Category, categorized[2].Category, categorized[3].Category,
	})
	require.Equal(t, 5, s.Total())
}

func ptr(q Question) *Question { return &q }
