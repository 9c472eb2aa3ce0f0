package navtree

import (
	"git.home.luguber.info/inful/quizbuilder/internal/identity"
	"git.home.luguber.info/inful/quizbuilder/internal/quiz"
)

// buildTopicNode builds a topic node and its subtopic children from one
// validated file. Bare questions contribute their identifier to the topic's
// questionIds but produce no child node; only subtopic groups produce
// children. Grouped and bare identifiers interleave in the topic aggregate
// exactly as items appear in the source.
func buildTopicNode(relPath string, file *quiz.TopicFile) *Node {
	topicID := TopicID(relPath)
	allIDs := []string{}
	children := []*Node{}

	for _, item := range file.Items {
		if item.Group != nil {
			subIDs := make([]string, 0, len(item.Group.Questions))
			for _, q := range item.Group.Questions {
				subIDs = append(subIDs, identity.QuestionID(q.Question))
			}
			allIDs = append(allIDs, subIDs...)
			children = append(children, &Node{
				Kind:        KindSubtopic,
				ID:          topicID + "/" + Slugify(item.Group.Subtopic),
				Label:       item.Group.Subtopic,
				QuestionIDs: subIDs,
				Children:    []*Node{},
			})
			continue
		}
		allIDs = append(allIDs, identity.QuestionID(item.Question.Question))
	}

	return &Node{
		Kind:        KindTopic,
		ID:          topicID,
		Label:       file.MenuName,
		Description: file.MenuDescription,
		QuestionIDs: allIDs,
		Children:    children,
	}
}
