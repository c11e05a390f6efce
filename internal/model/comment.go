package model

import (
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 2000

type Comment struct {
	ID        uuid.UUID  `json:"id"`
	PostID    uuid.UUID  `json:"post_id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Comment) IsEdited() bool {
	return !c.UpdatedAt.Equal(c.CreatedAt)
}

type FullComment struct {
	Comment Comment `json:"comment"`
	Author  Author  `json:"author"`
}

// CommentNode is a comment plus its direct replies in chronological order.
// It is derived on every read and never stored.
type CommentNode struct {
	FullComment
	Replies []*CommentNode `json:"replies"`
}

// BuildCommentTree assembles a reply forest from the flat comment list.
// The input must be ordered ascending by created_at; sibling order at every
// level then matches input order. Comments whose parent is not present in
// the input (orphans, including a self-referential parent_id) are dropped;
// the number of dropped comments is returned so callers can log it.
//
// Two passes: register every node first, then link, so the result does not
// depend on id ordering within the input.
func BuildCommentTree(comments []*FullComment) ([]*CommentNode, int) {
	nodes := make(map[uuid.UUID]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.Comment.ID] = &CommentNode{FullComment: *c, Replies: []*CommentNode{}}
	}

	roots := []*CommentNode{}
	dropped := 0
	for _, c := range comments {
		node := nodes[c.Comment.ID]
		if c.Comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.Comment.ParentID]
		if !ok || *c.Comment.ParentID == c.Comment.ID {
			dropped++
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	return roots, dropped
}

// FlattenCommentTree is the inverse of BuildCommentTree: a pre-order walk
// back to the flat list.
func FlattenCommentTree(roots []*CommentNode) []*FullComment {
	var flat []*FullComment
	var walk func(n *CommentNode)
	walk = func(n *CommentNode) {
		fc := n.FullComment
		flat = append(flat, &fc)
		for _, r := range n.Replies {
			walk(r)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return flat
}

// CanEditComment: only the author may edit, admins included.
func CanEditComment(userID uuid.UUID, isAuthenticated bool, c *Comment) bool {
	return isAuthenticated && userID == c.AuthorID
}

// CanDeleteComment: the author or an admin.
func CanDeleteComment(userID uuid.UUID, isAuthenticated bool, isAdmin bool, c *Comment) bool {
	return isAuthenticated && (userID == c.AuthorID || isAdmin)
}
