package navtree

import (
	"encoding/json"
	"testing"

	"git.home.luguber.info/inful/quizbuilder/internal/identity"
	"git.home.luguber.info/inful/quizbuilder/internal/loader"
	"git.home.luguber.info/inful/quizbuilder/internal/quiz"
	"github.com/stretchr/testify/require"
)

func question(text string) quiz.Item {
	return quiz.Item{Question: &quiz.Question{Question: text}}
}

func group(name string, texts ...string) quiz.Item {
	g := &quiz.SubtopicGroup{Subtopic: name}
	for _, text := range texts {
		g.Questions = append(g.Questions, quiz.Question{Question: text})
	}
	return quiz.Item{Group: g}
}

func topicFile(menuName string, items ...quiz.Item) *quiz.TopicFile {
	return &quiz.TopicFile{MenuName: menuName, Items: items}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	forest := Build(nil)
	require.NotNil(t, forest)
	require.Empty(t, forest)
}

func TestBuild_RootLevelTopic(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "topic.yaml", File: topicFile("Basics", question("What is Go?"))},
	}

	forest := Build(files)
	require.Len(t, forest, 1)

	topic := forest[0]
	require.Equal(t, KindTopic, topic.Kind)
	require.Equal(t, "topic", topic.ID)
	require.Equal(t, "Basics", topic.Label)
	require.Empty(t, topic.Children)
	require.Equal(t, []string{identity.QuestionID("What is Go?")}, topic.QuestionIDs)
}

func TestBuild_SubtopicGroup(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "advanced.yaml", File: topicFile("Advanced",
			group("Group A", "first question", "second question"))},
	}

	forest := Build(files)
	require.Len(t, forest, 1)

	topic := forest[0]
	require.Len(t, topic.Children, 1)

	sub := topic.Children[0]
	require.Equal(t, KindSubtopic, sub.Kind)
	require.Equal(t, "advanced/group-a", sub.ID)
	require.Equal(t, "Group A", sub.Label)
	require.Empty(t, sub.Children)

	want := []string{identity.QuestionID("first question"), identity.QuestionID("second question")}
	require.Equal(t, want, sub.QuestionIDs)
	require.Equal(t, want, topic.QuestionIDs)
}

func TestBuild_SharedDirectoryCollapses(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "subdir/a.yaml", File: topicFile("A", question("qa"))},
		{RelPath: "subdir/b.yaml", File: topicFile("B", question("qb"))},
	}

	forest := Build(files)
	require.Len(t, forest, 1)

	dir := forest[0]
	require.Equal(t, KindDirectory, dir.Kind)
	require.Equal(t, "subdir", dir.ID)
	require.Equal(t, "subdir", dir.Label)
	require.Len(t, dir.Children, 2)
	require.Equal(t, "subdir/a", dir.Children[0].ID)
	require.Equal(t, "subdir/b", dir.Children[1].ID)

	want := []string{identity.QuestionID("qa"), identity.QuestionID("qb")}
	require.Equal(t, want, dir.QuestionIDs)
}

func TestBuild_NestedDirectoriesAggregate(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "a/b/deep.yaml", File: topicFile("Deep", question("only"))},
	}

	forest := Build(files)
	require.Len(t, forest, 1)

	dirA := forest[0]
	require.Equal(t, KindDirectory, dirA.Kind)
	require.Equal(t, "a", dirA.ID)
	require.Len(t, dirA.Children, 1)

	dirB := dirA.Children[0]
	require.Equal(t, KindDirectory, dirB.Kind)
	require.Equal(t, "a/b", dirB.ID)
	require.Equal(t, "b", dirB.Label)
	require.Len(t, dirB.Children, 1)

	topic := dirB.Children[0]
	require.Equal(t, "a/b/deep", topic.ID)

	want := []string{identity.QuestionID("only")}
	require.Equal(t, want, topic.QuestionIDs)
	require.Equal(t, want, dirB.QuestionIDs)
	require.Equal(t, want, dirA.QuestionIDs)
}

func TestBuild_BareAndGroupedInterleaveInSourceOrder(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "mix.yaml", File: topicFile("Mixed",
			question("bare first"),
			group("Grouped", "grouped second"))},
	}

	forest := Build(files)
	topic := forest[0]

	require.Equal(t, []string{
		identity.QuestionID("bare first"),
		identity.QuestionID("grouped second"),
	}, topic.QuestionIDs)
	// The bare question produced no child node.
	require.Len(t, topic.Children, 1)
}

func TestBuild_ForestPreservesInputOrder(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "z.yaml", File: topicFile("Z", question("zq"))},
		{RelPath: "dir/x.yaml", File: topicFile("X", question("xq"))},
		{RelPath: "a.yaml", File: topicFile("A", question("aq"))},
	}

	forest := Build(files)
	require.Len(t, forest, 3)
	require.Equal(t, "z", forest[0].ID)
	require.Equal(t, "dir", forest[1].ID)
	require.Equal(t, "a", forest[2].ID)
}

func TestBuild_DuplicateQuestionTextNotDeduplicated(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "dup/one.yaml", File: topicFile("One", question("same text"))},
		{RelPath: "dup/two.yaml", File: topicFile("Two", question("same text"))},
	}

	forest := Build(files)
	dir := forest[0]
	id := identity.QuestionID("same text")
	require.Equal(t, []string{id, id}, dir.QuestionIDs)
}

func TestBuild_DirectoryQuestionIDsEqualChildConcatenation(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "d/a.yaml", File: topicFile("A", question("a1"), group("G", "a2", "a3"))},
		{RelPath: "d/b.yaml", File: topicFile("B", question("b1"))},
		{RelPath: "d/sub/c.yaml", File: topicFile("C", question("c1"))},
	}

	forest := Build(files)
	dir := forest[0]

	var concat []string
	for _, child := range dir.Children {
		concat = append(concat, child.QuestionIDs...)
	}
	require.Equal(t, concat, dir.QuestionIDs)
}

func TestBuild_Deterministic(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "a/one.yaml", File: topicFile("One", question("q1"), group("G A", "q2"))},
		{RelPath: "a/b/two.yaml", File: topicFile("Two", question("q3"))},
		{RelPath: "three.yaml", File: topicFile("Three", question("q4"))},
	}

	first, err := json.Marshal(Build(files))
	require.NoError(t, err)
	second, err := json.Marshal(Build(files))
	require.NoError(t, err)
	require.JSONEq(t, string(first), string(second))
	require.Equal(t, first, second)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Group A":          "group-a",
		"  Padded Name  ":  "padded-name",
		"already-sluggish": "already-sluggish",
		"Many  Spaces":     "many--spaces",
		"UPPER":            "upper",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugify_CollidingNamesProduceDuplicateSiblingIDs(t *testing.T) {
	files := []loader.ValidatedFile{
		{RelPath: "t.yaml", File: topicFile("T",
			group("Group A", "q1"),
			group("group a", "q2"))},
	}

	forest := Build(files)
	topic := forest[0]
	require.Len(t, topic.Children, 2)
	require.Equal(t, topic.Children[0].ID, topic.Children[1].ID)
}

func TestTopicID(t *testing.T) {
	require.Equal(t, "topic", TopicID("topic.yaml"))
	require.Equal(t, "a/b/deep", TopicID("a/b/deep.yaml"))
	require.Equal(t, "noext", TopicID("noext"))
}
