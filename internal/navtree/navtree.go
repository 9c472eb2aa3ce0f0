// Package navtree builds the navigation forest for a validated quiz corpus.
//
// Every content file becomes a topic node; subtopic groups inside a file
// become subtopic children; the directory layout of the corpus becomes
// directory nodes. Each node carries the ordered question identifiers
// reachable under it. Ordering is load-bearing throughout: the forest
// preserves input file order, children preserve first-insertion order, and
// questionIds preserve source traversal order without deduplication, so
// children live in slices, never maps.
package navtree

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/quizbuilder/internal/loader"
)

// Kind discriminates the three node variants.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindTopic     Kind = "topic"
	KindSubtopic  Kind = "subtopic"
)

// Node is one entry of the navigation forest. The three kinds share the
// same shape; directories and topics derive QuestionIDs by aggregation
// while subtopics own theirs directly. Subtopic nodes never have children
// and only topics carry a description.
type Node struct {
	Kind        Kind     `json:"type"`
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	QuestionIDs []string `json:"questionIds"`
	Children    []*Node  `json:"children"`
}

// Slugify converts a subtopic display name to a URL-safe slug: surrounding
// whitespace trimmed, lower-cased, interior spaces replaced with hyphens.
// Two names that slugify identically under one topic produce duplicate
// sibling ids; ids are only guaranteed unique among siblings.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// TopicID derives a topic id from a relative slash path by stripping the
// file extension: "concurrency/channels.yaml" -> "concurrency/channels".
func TopicID(relPath string) string {
	return strings.TrimSuffix(relPath, path.Ext(relPath))
}

// Build constructs the navigation forest from validated files, in the order
// they are supplied. An empty input yields an empty forest.
func Build(files []loader.ValidatedFile) []*Node {
	forest := []*Node{}
	for _, vf := range files {
		topic := buildTopicNode(vf.RelPath, vf.File)
		insert(&forest, dirSegments(vf.RelPath), topic)
	}
	aggregate(forest)
	return forest
}

// dirSegments returns the directory segments of a relative slash path, or
// nil for a root-level file.
func dirSegments(relPath string) []string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "" {
		return nil
	}
	return strings.Split(dir, "/")
}

// insert descends the forest level by level, looking up or creating the
// directory node for each segment, and appends the topic node at the final
// level. Root-level topics attach straight to the forest. Sibling lookup is
// a linear scan; fan-out per level is small and insertion order must be
// preserved.
func insert(level *[]*Node, segments []string, topic *Node) {
	prefix := ""
	for _, seg := range segments {
		if prefix == "" {
			prefix = seg
		} else {
			prefix = prefix + "/" + seg
		}

		var dir *Node
		for _, n := range *level {
			if n.Kind == KindDirectory && n.ID == prefix {
				dir = n
				break
			}
		}
		if dir == nil {
			dir = &Node{
				Kind:        KindDirectory,
				ID:          prefix,
				Label:       seg,
				QuestionIDs: []string{},
				Children:    []*Node{},
			}
			*level = append(*level, dir)
		}
		level = &dir.Children
	}
	*level = append(*level, topic)
}

// aggregate walks the forest post-order and fills each directory's
// QuestionIDs with the concatenation of its children's, in child order.
// Topic and subtopic ids were fixed at construction time and are not
// touched.
func aggregate(level []*Node) {
	for _, n := range level {
		if n.Kind != KindDirectory {
			continue
		}
		aggregate(n.Children)
		agg := []string{}
		for _, child := range n.Children {
			agg = append(agg, child.QuestionIDs...)
		}
		n.QuestionIDs = agg
	}
}
