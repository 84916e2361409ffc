package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReactionType is the icon shown next to a post's like counter.
type ReactionType string

const (
	ReactionClap  ReactionType = "clap"
	ReactionFire  ReactionType = "fire"
	ReactionHeart ReactionType = "heart"
)

// CommunityPost is an entry of the locally synthesized activity feed.
type CommunityPost struct {
	ID           string       `json:"id"`
	UserName     string       `json:"userName"`
	Action       string       `json:"action"`
	Timestamp    time.Time    `json:"timestamp"`
	Likes        int          `json:"likes"`
	ReactionType ReactionType `json:"reactionType"`
	IsUserPost   bool         `json:"isUserPost,omitempty"`
}

// NewUserPost creates a feed post narrating something the local user did.
func NewUserPost(userName, action string, at time.Time) CommunityPost {
	return CommunityPost{
		ID:           uuid.NewString(),
		UserName:     userName,
		Action:       action,
		Timestamp:    at,
		Likes:        0,
		ReactionType: ReactionFire,
		IsUserPost:   true,
	}
}

// FeedEventKind classifies engine-generated feed events.
type FeedEventKind string

const (
	FeedEventLevelUp         FeedEventKind = "level_up"
	FeedEventBadgeUnlocked   FeedEventKind = "badge_unlocked"
	FeedEventStreakMilestone FeedEventKind = "streak_milestone"
)

// FeedEvent describes a milestone the engine narrated into the feed
// during a single operation.
type FeedEvent struct {
	Kind      FeedEventKind
	Message   string
	Level     int
	BadgeID   string
	BadgeName string
	Streak    int
	At        time.Time
}
