// Package engine implements the progression engine of ContaComigo.
//
// The engine owns six state slices (transactions, user, missions, community,
// progress, settings). Every mutating operation runs to completion under a
// single lock, applies its dependent checks (daily sweep, streak breakage,
// badge evaluation) explicitly and writes each touched slice through to the
// state store. Store failures are logged and never surfaced to the caller.
package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/domain/valueobject"
)

// Recorder observes engine activity. Implemented by the metrics layer.
type Recorder interface {
	TransactionRecorded(t entity.TransactionType)
	XPAwarded(amount int)
	LevelReached(level int)
	BadgeUnlocked(id string)
	MissionCompleted(t entity.MissionType)
}

type noopRecorder struct{}

func (noopRecorder) TransactionRecorded(entity.TransactionType) {}
func (noopRecorder) XPAwarded(int)                              {}
func (noopRecorder) LevelReached(int)                           {}
func (noopRecorder) BadgeUnlocked(string)                       {}
func (noopRecorder) MissionCompleted(entity.MissionType)        {}

// Options configures an Engine.
type Options struct {
	Namespace valueobject.Namespace
	Location  *time.Location
	Leagues   []valueobject.League
	Recorder  Recorder
}

// Engine is the single per-process application state object.
type Engine struct {
	mu       sync.Mutex
	store    adapter.StateStore
	clock    adapter.Clock
	ns       valueobject.Namespace
	loc      *time.Location
	leagues  []valueobject.League
	recorder Recorder
	st       state
}

type state struct {
	transactions []entity.Transaction
	user         *entity.User
	missions     []entity.Mission
	community    []entity.CommunityPost
	progress     *entity.UserProgress
	settings     *entity.AppSettings
}

// New creates an engine holding default state. Call Load to read the store.
func New(store adapter.StateStore, clock adapter.Clock, opts Options) *Engine {
	if opts.Namespace == "" {
		opts.Namespace = valueobject.DefaultNamespace
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if len(opts.Leagues) == 0 {
		opts.Leagues = valueobject.DefaultLeagues
	}
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}

	e := &Engine{
		store:    store,
		clock:    clock,
		ns:       opts.Namespace,
		loc:      opts.Location,
		leagues:  opts.Leagues,
		recorder: opts.Recorder,
	}
	now := e.now()
	e.st = defaultState(now, valueobject.DayOf(now, e.loc))
	return e
}

func defaultState(now time.Time, today valueobject.CalendarDay) state {
	return state{
		transactions: []entity.Transaction{},
		user:         entity.NewUser(DefaultUserName, LevelCurve(1), BadgeCatalog()),
		missions:     MissionCatalog(),
		community:    seedCommunity(now),
		progress:     entity.NewUserProgress(now, today),
		settings:     entity.NewAppSettings(),
	}
}

// Location returns the time zone that defines calendar days.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Namespace returns the key namespace the engine writes under.
func (e *Engine) Namespace() valueobject.Namespace {
	return e.ns
}

func (e *Engine) now() time.Time {
	return e.clock.Now().In(e.loc)
}

// mutation collects the effects of one operation until commit.
type mutation struct {
	now     time.Time
	today   valueobject.CalendarDay
	touched map[valueobject.StateSlice]bool
	events  []entity.FeedEvent
}

func (m *mutation) touch(slices ...valueobject.StateSlice) {
	for _, s := range slices {
		m.touched[s] = true
	}
}

// begin starts a mutation. With rollover set, the daily sweep and the
// streak check are applied first so the operation sees the current day.
func (e *Engine) begin(rollover bool) *mutation {
	now := e.now()
	m := &mutation{
		now:     now,
		today:   valueobject.DayOf(now, e.loc),
		touched: make(map[valueobject.StateSlice]bool),
	}
	if rollover {
		e.resetDaily(m)
		e.checkStreak(m)
	}
	return m
}

// commit writes every touched slice through to the store.
func (e *Engine) commit(ctx context.Context, m *mutation) {
	for _, s := range valueobject.EngineSlices {
		if m.touched[s] {
			e.save(ctx, s)
		}
	}
}

func (e *Engine) sliceValue(s valueobject.StateSlice) any {
	switch s {
	case valueobject.SliceTransactions:
		return e.st.transactions
	case valueobject.SliceUser:
		return e.st.user
	case valueobject.SliceMissions:
		return e.st.missions
	case valueobject.SliceCommunity:
		return e.st.community
	case valueobject.SliceProgress:
		return e.st.progress
	case valueobject.SliceSettings:
		return e.st.settings
	}
	return nil
}

func (e *Engine) save(ctx context.Context, s valueobject.StateSlice) {
	key := e.ns.Key(s)
	data, err := json.Marshal(e.sliceValue(s))
	if err != nil {
		slog.Warn("Failed to encode state slice", "key", key, "error", err)
		return
	}
	if err := e.store.Set(ctx, key, data); err != nil {
		slog.Warn("Failed to persist state slice",
			"key", key,
			"error", domainerror.NewStateError(domainerror.ErrCodeStateWrite, key, err),
		)
	}
}

// Load reads every slice from the store and merges it against defaults.
// A missing, unreadable or corrupt slice falls back to its default without
// affecting the others.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	today := valueobject.DayOf(now, e.loc)
	defaults := defaultState(now, today)
	m := &mutation{now: now, today: today, touched: make(map[valueobject.StateSlice]bool)}

	next := defaults

	var transactions []entity.Transaction
	if e.read(ctx, valueobject.SliceTransactions, &transactions) && transactions != nil {
		next.transactions = transactions
	} else {
		m.touch(valueobject.SliceTransactions)
	}

	user := entity.NewUser(DefaultUserName, LevelCurve(1), nil)
	if e.read(ctx, valueobject.SliceUser, user) {
		next.user = reconcileUser(user)
	} else {
		m.touch(valueobject.SliceUser)
	}

	var missions []entity.Mission
	if e.read(ctx, valueobject.SliceMissions, &missions) && missions != nil {
		next.missions = reconcileMissions(missions)
	} else {
		m.touch(valueobject.SliceMissions)
	}

	var community []entity.CommunityPost
	if e.read(ctx, valueobject.SliceCommunity, &community) && community != nil {
		if len(community) > FeedLimit {
			community = community[:FeedLimit]
		}
		next.community = community
	} else {
		m.touch(valueobject.SliceCommunity)
	}

	progress := entity.NewUserProgress(now, today)
	if e.read(ctx, valueobject.SliceProgress, progress) {
		next.progress = progress
	} else {
		m.touch(valueobject.SliceProgress)
	}

	settings := entity.NewAppSettings()
	if e.read(ctx, valueobject.SliceSettings, settings) {
		next.settings = settings
	} else {
		m.touch(valueobject.SliceSettings)
	}

	e.st = next
	e.resetDaily(m)
	e.checkStreak(m)
	e.evaluateBadges(m)
	e.commit(ctx, m)

	slog.Info("Engine state loaded",
		"namespace", string(e.ns),
		"transactions", len(e.st.transactions),
		"level", e.st.user.Level,
		"streak", e.st.user.Streak,
	)
}

// read decodes a slice into dst, which must already hold the defaults.
// It returns false when the slice is missing or could not be used.
func (e *Engine) read(ctx context.Context, s valueobject.StateSlice, dst any) bool {
	key := e.ns.Key(s)
	data, found, err := e.store.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read state slice, using defaults",
			"key", key,
			"error", domainerror.NewStateError(domainerror.ErrCodeStateRead, key, err),
		)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("Corrupt state slice, using defaults",
			"key", key,
			"error", domainerror.NewStateError(domainerror.ErrCodeCorruptSlice, key, err),
		)
		return false
	}
	return true
}

// Reset erases the six slices and reinitializes defaults in memory.
// Memory is reset even when the store could not be cleared.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	keys := make([]string, 0, len(valueobject.EngineSlices))
	for _, s := range valueobject.EngineSlices {
		keys = append(keys, e.ns.Key(s))
	}

	now := e.now()
	e.st = defaultState(now, valueobject.DayOf(now, e.loc))

	if err := e.store.Delete(ctx, keys...); err != nil {
		return domainerror.NewStateError(domainerror.ErrCodeStateDelete, string(e.ns), err)
	}
	slog.Info("Engine state reset", "namespace", string(e.ns))
	return nil
}

// RolloverResult reports what a rollover changed.
type RolloverResult struct {
	MissionsReset bool
	StreakBroken  bool
}

// Rollover applies the day-boundary checks: the daily mission sweep and
// streak breakage. Both are idempotent within a calendar day.
func (e *Engine) Rollover(ctx context.Context) RolloverResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.begin(false)
	res := RolloverResult{
		MissionsReset: e.resetDaily(m),
		StreakBroken:  e.checkStreak(m),
	}
	e.commit(ctx, m)
	return res
}
