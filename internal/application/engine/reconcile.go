package engine

import (
	"time"

	"github.com/contacomigo/backend/internal/domain/entity"
)

func seedCommunity(now time.Time) []entity.CommunityPost {
	return []entity.CommunityPost{
		{ID: "c1", UserName: "Maria", Action: "subiu para o nível 5!", Timestamp: now.Add(-2 * time.Hour), Likes: 12, ReactionType: entity.ReactionClap},
		{ID: "c2", UserName: "João", Action: "completou sua primeira missão!", Timestamp: now.Add(-5 * time.Hour), Likes: 24, ReactionType: entity.ReactionFire},
	}
}

// reconcileUser restores the badge catalog on a stored user, keeping only
// the unlocked flag of each stored badge, and repairs out of range fields.
// Stored xp at or above the threshold is rolled over into levels without
// feed events.
func reconcileUser(u *entity.User) *entity.User {
	unlocked := make(map[string]bool, len(u.Badges))
	for _, b := range u.Badges {
		if b.Unlocked {
			unlocked[b.ID] = true
		}
	}
	badges := BadgeCatalog()
	for i := range badges {
		badges[i].Unlocked = unlocked[badges[i].ID]
	}
	u.Badges = badges

	if u.Level < 1 {
		u.Level = 1
	}
	if u.XPToNextLevel <= 0 {
		u.XPToNextLevel = LevelCurve(u.Level)
	}
	if u.XP < 0 {
		u.XP = 0
	}
	for u.XP >= u.XPToNextLevel {
		u.XP -= u.XPToNextLevel
		u.Level++
		u.XPToNextLevel = LevelCurve(u.Level)
	}
	if u.Streak < 0 {
		u.Streak = 0
	}
	return u
}

// reconcileMissions lays stored missions over the catalog. Known missions
// keep their stored status, new catalog entries get their default, and the
// path chain is normalized so only its first non-completed mission is
// available.
func reconcileMissions(stored []entity.Mission) []entity.Mission {
	byID := make(map[string]entity.Mission, len(stored))
	for _, m := range stored {
		byID[m.ID] = m
	}

	missions := MissionCatalog()
	for i := range missions {
		saved, ok := byID[missions[i].ID]
		if !ok {
			continue
		}
		switch saved.Status {
		case entity.MissionStatusAvailable, entity.MissionStatusCompleted, entity.MissionStatusLocked:
			missions[i].Status = saved.Status
			missions[i].CompletedAt = saved.CompletedAt
		}
		if missions[i].Type == entity.MissionTypeDaily && missions[i].Status == entity.MissionStatusLocked {
			missions[i].Status = entity.MissionStatusAvailable
		}
		if missions[i].Status != entity.MissionStatusCompleted {
			missions[i].CompletedAt = nil
		}
	}

	headSet := false
	for i := range missions {
		if missions[i].Type != entity.MissionTypePath || missions[i].Status == entity.MissionStatusCompleted {
			continue
		}
		if !headSet {
			missions[i].Status = entity.MissionStatusAvailable
			headSet = true
			continue
		}
		missions[i].Status = entity.MissionStatusLocked
	}
	return missions
}
