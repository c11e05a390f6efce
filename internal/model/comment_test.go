package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComment(id uuid.UUID, parentID *uuid.UUID, createdAt time.Time) *FullComment {
	return &FullComment{
		Comment: Comment{
			ID:        id,
			PostID:    uuid.MustParse("00000000-0000-0000-0000-00000000aaaa"),
			AuthorID:  uuid.New(),
			ParentID:  parentID,
			Content:   "content",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
}

func TestBuildCommentTree_Empty(t *testing.T) {
	roots, dropped := BuildCommentTree(nil)
	assert.Empty(t, roots)
	assert.Zero(t, dropped)
}

func TestBuildCommentTree_AllRoots(t *testing.T) {
	base := time.Now()
	var flat []*FullComment
	for i := 0; i < 4; i++ {
		flat = append(flat, newTestComment(uuid.New(), nil, base.Add(time.Duration(i)*time.Minute)))
	}

	roots, dropped := BuildCommentTree(flat)
	require.Len(t, roots, 4)
	assert.Zero(t, dropped)
	for i, root := range roots {
		assert.Equal(t, flat[i].Comment.ID, root.Comment.ID)
		assert.Empty(t, root.Replies)
	}
}

func TestBuildCommentTree_Nesting(t *testing.T) {
	// C1(parent=nil, t=1), C2(parent=C1, t=2), C3(parent=nil, t=3), C4(parent=C2, t=4)
	base := time.Now()
	c1 := newTestComment(uuid.New(), nil, base.Add(1*time.Minute))
	c2 := newTestComment(uuid.New(), &c1.Comment.ID, base.Add(2*time.Minute))
	c3 := newTestComment(uuid.New(), nil, base.Add(3*time.Minute))
	c4 := newTestComment(uuid.New(), &c2.Comment.ID, base.Add(4*time.Minute))

	roots, dropped := BuildCommentTree([]*FullComment{c1, c2, c3, c4})
	require.Len(t, roots, 2)
	assert.Zero(t, dropped)

	assert.Equal(t, c1.Comment.ID, roots[0].Comment.ID)
	assert.Equal(t, c3.Comment.ID, roots[1].Comment.ID)
	assert.Empty(t, roots[1].Replies)

	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, c2.Comment.ID, roots[0].Replies[0].Comment.ID)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, c4.Comment.ID, roots[0].Replies[0].Replies[0].Comment.ID)
}

func TestBuildCommentTree_SiblingOrderMatchesInput(t *testing.T) {
	base := time.Now()
	root := newTestComment(uuid.New(), nil, base)
	var flat []*FullComment
	flat = append(flat, root)
	var replyIDs []uuid.UUID
	for i := 1; i <= 5; i++ {
		r := newTestComment(uuid.New(), &root.Comment.ID, base.Add(time.Duration(i)*time.Second))
		replyIDs = append(replyIDs, r.Comment.ID)
		flat = append(flat, r)
	}

	roots, _ := BuildCommentTree(flat)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Replies, 5)
	for i, reply := range roots[0].Replies {
		assert.Equal(t, replyIDs[i], reply.Comment.ID)
	}
}

func TestBuildCommentTree_DropsOrphans(t *testing.T) {
	base := time.Now()
	missing := uuid.New()
	c1 := newTestComment(uuid.New(), nil, base)
	orphan := newTestComment(uuid.New(), &missing, base.Add(time.Second))

	roots, dropped := BuildCommentTree([]*FullComment{c1, orphan})
	require.Len(t, roots, 1)
	assert.Equal(t, c1.Comment.ID, roots[0].Comment.ID)
	assert.Equal(t, 1, dropped)
}

func TestBuildCommentTree_SelfReferenceDropped(t *testing.T) {
	base := time.Now()
	id := uuid.New()
	self := newTestComment(id, &id, base)
	c1 := newTestComment(uuid.New(), nil, base.Add(time.Second))

	roots, dropped := BuildCommentTree([]*FullComment{self, c1})
	require.Len(t, roots, 1)
	assert.Equal(t, c1.Comment.ID, roots[0].Comment.ID)
	assert.Equal(t, 1, dropped)
	assert.Empty(t, roots[0].Replies)
}

func TestBuildCommentTree_ReplyBeforeParentInInput(t *testing.T) {
	// The two-pass build must not depend on id ordering within the input.
	base := time.Now()
	parentID := uuid.New()
	reply := newTestComment(uuid.New(), &parentID, base)
	parent := newTestComment(parentID, nil, base.Add(time.Second))

	roots, dropped := BuildCommentTree([]*FullComment{reply, parent})
	require.Len(t, roots, 1)
	assert.Zero(t, dropped)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, reply.Comment.ID, roots[0].Replies[0].Comment.ID)
}

func TestBuildCommentTree_RoundTrip(t *testing.T) {
	base := time.Now()
	c1 := newTestComment(uuid.New(), nil, base.Add(1*time.Minute))
	c2 := newTestComment(uuid.New(), &c1.Comment.ID, base.Add(2*time.Minute))
	c3 := newTestComment(uuid.New(), nil, base.Add(3*time.Minute))
	c4 := newTestComment(uuid.New(), &c2.Comment.ID, base.Add(4*time.Minute))
	c5 := newTestComment(uuid.New(), &c1.Comment.ID, base.Add(5*time.Minute))
	flat := []*FullComment{c1, c2, c3, c4, c5}

	first, dropped := BuildCommentTree(flat)
	require.Zero(t, dropped)

	second, dropped := BuildCommentTree(FlattenCommentTree(first))
	require.Zero(t, dropped)
	assert.Equal(t, first, second)
}

func TestCommentIsEdited(t *testing.T) {
	now := time.Now()
	c := Comment{CreatedAt: now, UpdatedAt: now}
	assert.False(t, c.IsEdited())

	c.UpdatedAt = now.Add(time.Minute)
	assert.True(t, c.IsEdited())
}

func TestCommentPermissions(t *testing.T) {
	author := uuid.New()
	other := uuid.New()
	comment := &Comment{ID: uuid.New(), AuthorID: author}

	tests := []struct {
		name      string
		userID    uuid.UUID
		authed    bool
		admin     bool
		canEdit   bool
		canDelete bool
	}{
		{"author", author, true, false, true, true},
		{"other user", other, true, false, false, false},
		{"admin non-author", other, true, true, false, true},
		{"admin author", author, true, true, true, true},
		{"unauthenticated", author, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canEdit, CanEditComment(tt.userID, tt.authed, comment))
			assert.Equal(t, tt.canDelete, CanDeleteComment(tt.userID, tt.authed, tt.admin, comment))
		})
	}
}
