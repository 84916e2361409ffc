package engine

import (
	"context"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// post narrates an event into the feed, newest first, keeping FeedLimit posts.
func (e *Engine) post(m *mutation, ev entity.FeedEvent) {
	ev.At = m.now
	p := entity.NewUserPost(e.st.user.Name, ev.Message, m.now)

	feed := make([]entity.CommunityPost, 0, FeedLimit)
	feed = append(feed, p)
	for _, existing := range e.st.community {
		if len(feed) == FeedLimit {
			break
		}
		feed = append(feed, existing)
	}
	e.st.community = feed

	m.events = append(m.events, ev)
	m.touch(valueobject.SliceCommunity)
}

// LikePost increments the like counter of a post. Unknown ids are ignored.
func (e *Engine) LikePost(ctx context.Context, id string) (entity.CommunityPost, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.st.community {
		if e.st.community[i].ID != id {
			continue
		}
		e.st.community[i].Likes++
		m := e.begin(false)
		m.touch(valueobject.SliceCommunity)
		e.commit(ctx, m)
		return e.st.community[i], true
	}
	return entity.CommunityPost{}, false
}
