// Package community contains community feed use cases.
package community

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// ListPostsOutput represents the output of listing the feed.
type ListPostsOutput struct {
	Posts []entity.CommunityPost
}

// ListPostsUseCase handles feed listing logic.
type ListPostsUseCase struct {
	engine *engine.Engine
}

// NewListPostsUseCase creates a new ListPostsUseCase instance.
func NewListPostsUseCase(eng *engine.Engine) *ListPostsUseCase {
	return &ListPostsUseCase{engine: eng}
}

// Execute returns the feed, newest first.
func (uc *ListPostsUseCase) Execute(_ context.Context) (*ListPostsOutput, error) {
	return &ListPostsOutput{Posts: uc.engine.Community()}, nil
}

// LikePostInput represents the input for liking a post.
type LikePostInput struct {
	PostID string
}

// LikePostOutput represents the output of liking a post.
type LikePostOutput struct {
	Changed bool
	Post    *entity.CommunityPost
}

// LikePostUseCase handles post likes.
type LikePostUseCase struct {
	engine *engine.Engine
}

// NewLikePostUseCase creates a new LikePostUseCase instance.
func NewLikePostUseCase(eng *engine.Engine) *LikePostUseCase {
	return &LikePostUseCase{engine: eng}
}

// Execute increments the likes of a post. Unknown ids report Changed false.
func (uc *LikePostUseCase) Execute(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	post, ok := uc.engine.LikePost(ctx, input.PostID)
	if !ok {
		return &LikePostOutput{}, nil
	}
	return &LikePostOutput{Changed: true, Post: &post}, nil
}
