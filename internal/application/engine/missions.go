package engine

import (
	"context"

	"github.com/contacomigo/backend/internal/domain/entity"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// MissionResult reports the effects of a mission completion.
type MissionResult struct {
	Completed bool
	Mission   entity.Mission
	XPAwarded int
	Events    []entity.FeedEvent
}

// CompleteMission completes an available mission. Unknown, locked and
// already completed missions are ignored and reported with Completed false.
func (e *Engine) CompleteMission(ctx context.Context, id string) MissionResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(true)
	xp, ok := e.completeMission(m, id)
	if ok {
		e.evaluateBadges(m)
	}
	e.commit(ctx, m)

	res := MissionResult{Completed: ok, XPAwarded: xp, Events: m.events}
	if i := e.missionIndex(id); i >= 0 {
		res.Mission = e.st.missions[i]
	}
	return res
}

// ResetDailyMissions runs the daily sweep. It reports whether anything changed.
func (e *Engine) ResetDailyMissions(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(false)
	changed := e.resetDaily(m)
	e.commit(ctx, m)
	return changed
}

func (e *Engine) missionIndex(id string) int {
	for i := range e.st.missions {
		if e.st.missions[i].ID == id {
			return i
		}
	}
	return -1
}

// completeMission applies the completion effects and returns the XP awarded.
func (e *Engine) completeMission(m *mutation, id string) (int, bool) {
	i := e.missionIndex(id)
	if i < 0 || !e.st.missions[i].IsAvailable() {
		return 0, false
	}

	mission := &e.st.missions[i]
	mission.Complete(m.now)

	xp := XPDailyMission
	if mission.Type == entity.MissionTypePath {
		xp = XPPathMission
		e.unlockNextPath(id)
	}
	m.touch(valueobject.SliceMissions)

	e.addXP(m, xp)
	e.st.progress.CompletedMissions++
	e.recordActivity(m)
	e.recorder.MissionCompleted(mission.Type)
	return xp, true
}

// unlockNextPath makes the path mission after id available if it is locked.
func (e *Engine) unlockNextPath(id string) {
	found := false
	for i := range e.st.missions {
		if e.st.missions[i].Type != entity.MissionTypePath {
			continue
		}
		if found {
			if e.st.missions[i].Status == entity.MissionStatusLocked {
				e.st.missions[i].Status = entity.MissionStatusAvailable
			}
			return
		}
		if e.st.missions[i].ID == id {
			found = true
		}
	}
}

// resetDaily reopens daily missions once per calendar day.
func (e *Engine) resetDaily(m *mutation) bool {
	p := e.st.progress
	if p.LastDailyReset.Equal(m.today) {
		return false
	}
	for i := range e.st.missions {
		if e.st.missions[i].Type == entity.MissionTypeDaily {
			e.st.missions[i].Reopen()
		}
	}
	p.LastDailyReset = m.today
	m.touch(valueobject.SliceMissions, valueobject.SliceProgress)
	return true
}
