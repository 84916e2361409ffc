package dto

import (
	"time"

	"github.com/contacomigo/backend/internal/application/usecase/community"
	"github.com/contacomigo/backend/internal/application/usecase/mission"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// MissionResponse represents a mission in API responses.
type MissionResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	XP          int        `json:"xp"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// MissionListResponse represents the missions split by kind.
type MissionListResponse struct {
	Daily []MissionResponse `json:"daily"`
	Path  []MissionResponse `json:"path"`
}

// CompleteMissionResponse represents the result of completing a mission.
type CompleteMissionResponse struct {
	Changed   bool             `json:"changed"`
	Mission   *MissionResponse `json:"mission,omitempty"`
	XPAwarded int              `json:"xp_awarded"`
	User      UserResponse     `json:"user"`
}

// ChangedResponse reports whether a transition took effect.
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

// PostResponse represents a community post in API responses.
type PostResponse struct {
	ID           string    `json:"id"`
	UserName     string    `json:"user_name"`
	Action       string    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
	Likes        int       `json:"likes"`
	ReactionType string    `json:"reaction_type"`
	IsUserPost   bool      `json:"is_user_post"`
}

// PostListResponse represents the community feed.
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// LikePostResponse represents the result of liking a post.
type LikePostResponse struct {
	Changed bool          `json:"changed"`
	Post    *PostResponse `json:"post,omitempty"`
}

// ToMissionResponse converts a mission to its DTO.
func ToMissionResponse(m entity.Mission) MissionResponse {
	return MissionResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		XP:          m.XP,
		Status:      string(m.Status),
		Type:        string(m.Type),
		CompletedAt: m.CompletedAt,
	}
}

func toMissionResponses(missions []entity.Mission) []MissionResponse {
	out := make([]MissionResponse, len(missions))
	for i, m := range missions {
		out[i] = ToMissionResponse(m)
	}
	return out
}

// ToMissionListResponse converts the mission listing to its DTO.
func ToMissionListResponse(output *mission.ListMissionsOutput) MissionListResponse {
	return MissionListResponse{
		Daily: toMissionResponses(output.Daily),
		Path:  toMissionResponses(output.Path),
	}
}

// ToCompleteMissionResponse converts a completion result to its DTO.
func ToCompleteMissionResponse(output *mission.CompleteMissionOutput) CompleteMissionResponse {
	resp := CompleteMissionResponse{
		Changed:   output.Changed,
		XPAwarded: output.XPAwarded,
		User:      ToUserResponse(output.User),
	}
	if output.Mission != nil {
		m := ToMissionResponse(*output.Mission)
		resp.Mission = &m
	}
	return resp
}

// ToPostResponse converts a community post to its DTO.
func ToPostResponse(p entity.CommunityPost) PostResponse {
	return PostResponse{
		ID:           p.ID,
		UserName:     p.UserName,
		Action:       p.Action,
		Timestamp:    p.Timestamp,
		Likes:        p.Likes,
		ReactionType: string(p.ReactionType),
		IsUserPost:   p.IsUserPost,
	}
}

// ToPostListResponse converts the feed to its DTO.
func ToPostListResponse(output *community.ListPostsOutput) PostListResponse {
	posts := make([]PostResponse, len(output.Posts))
	for i, p := range output.Posts {
		posts[i] = ToPostResponse(p)
	}
	return PostListResponse{Posts: posts}
}

// ToLikePostResponse converts a like result to its DTO.
func ToLikePostResponse(output *community.LikePostOutput) LikePostResponse {
	resp := LikePostResponse{Changed: output.Changed}
	if output.Post != nil {
		p := ToPostResponse(*output.Post)
		resp.Post = &p
	}
	return resp
}
