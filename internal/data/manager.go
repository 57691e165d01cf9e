// Package data owns the domain collections. Every load picks between
// the live backend and the static demo dataset based on connectivity
// and fails open: a collection is never left empty because a request
// failed.
package data

import (
	"context"
	"slices"
	"sync"

	"github.com/lamdoan/classdesk/internal/demo"
	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
)

// Connectivity reports whether the backend is currently reachable.
// Satisfied by *health.Probe.
type Connectivity interface {
	Online() bool
}

// Notifier surfaces user-facing warnings. Each failed load emits
// exactly one warning.
type Notifier interface {
	Warn(message string)
}

// LogNotifier is the default Notifier, writing warnings to the log.
type LogNotifier struct {
	Logger *logger.Logger
}

func (n LogNotifier) Warn(message string) {
	n.Logger.Warn(message)
}

type scoreKey struct {
	StudentID string
	Type      model.ScoreType
}

// Manager loads and filters the domain collections. State is replaced
// wholesale on each load; last write wins.
type Manager struct {
	api      model.CatalogAPI
	conn     Connectivity
	notifier Notifier
	logger   *logger.Logger

	mu       sync.RWMutex
	students []model.Student
	users    []model.User
	classes  []model.Class
	scores   map[scoreKey]model.Score
}

// NewManager creates a data manager.
func NewManager(catalogAPI model.CatalogAPI, conn Connectivity, notifier Notifier, logger *logger.Logger) *Manager {
	return &Manager{
		api:      catalogAPI,
		conn:     conn,
		notifier: notifier,
		logger:   logger,
		scores:   make(map[scoreKey]model.Score),
	}
}

// resolve is the two-variant data source: the live fetch when the
// backend is reachable, the static demo dataset otherwise or on any
// fetch failure. A live failure surfaces one user-facing warning.
func resolve[T any](ctx context.Context, m *Manager, name string, live func(context.Context) ([]T, error), static func() []T) []T {
	if !m.conn.Online() {
		m.logger.Debug("Data manager: offline, loading demo dataset", "collection", name)
		return static()
	}

	items, err := live(ctx)
	if err != nil {
		m.logger.Error("Data manager: failed to load collection, falling back to demo data",
			"collection", name,
			"error", err.Error())
		m.notifier.Warn("Could not load " + name + " from the server; showing demo data instead.")
		return static()
	}

	m.logger.Debug("Data manager: collection loaded", "collection", name, "count", len(items))

	return items
}

// LoadStudents replaces the student collection.
func (m *Manager) LoadStudents(ctx context.Context) {
	students := resolve(ctx, m, "students", m.api.Students, demo.Students)

	m.mu.Lock()
	m.students = students
	m.mu.Unlock()
}

// LoadUsers replaces the account collection.
func (m *Manager) LoadUsers(ctx context.Context) {
	users := resolve(ctx, m, "users", m.api.Users, demo.Users)

	m.mu.Lock()
	m.users = users
	m.mu.Unlock()
}

// LoadClasses replaces the class collection.
func (m *Manager) LoadClasses(ctx context.Context) {
	classes := resolve(ctx, m, "classes", m.api.Classes, demo.Classes)

	m.mu.Lock()
	m.classes = classes
	m.mu.Unlock()
}

// LoadScores replaces the score collection. Scores are keyed by
// (studentId, scoreType); later entries win.
func (m *Manager) LoadScores(ctx context.Context) {
	scores := resolve(ctx, m, "scores", m.api.Scores, demo.Scores)

	indexed := make(map[scoreKey]model.Score, len(scores))
	for _, s := range scores {
		indexed[scoreKey{StudentID: s.StudentID, Type: s.Type}] = s
	}

	m.mu.Lock()
	m.scores = indexed
	m.mu.Unlock()
}

// LoadAll loads every collection concurrently and returns when all
// four are done.
func (m *Manager) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup

	for _, load := range []func(context.Context){
		m.LoadStudents,
		m.LoadUsers,
		m.LoadClasses,
		m.LoadScores,
	} {
		wg.Add(1)
		go func(load func(context.Context)) {
			defer wg.Done()
			load(ctx)
		}(load)
	}

	wg.Wait()
}

// Students returns a copy of the loaded student collection.
func (m *Manager) Students() []model.Student {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.students)
}

// Users returns a copy of the loaded account collection.
func (m *Manager) Users() []model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.users)
}

// Classes returns a copy of the loaded class collection.
func (m *Manager) Classes() []model.Class {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.classes)
}

// ScoresFor returns the scores recorded for a student.
func (m *Manager) ScoresFor(studentID string) []model.Score {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Score
	for _, s := range m.scores {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}

	slices.SortFunc(out, func(a, b model.Score) int {
		switch {
		case a.Type < b.Type:
			return -1
		case a.Type > b.Type:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Score returns the score for (studentID, scoreType), if recorded.
func (m *Manager) Score(studentID string, scoreType model.ScoreType) (model.Score, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.scores[scoreKey{StudentID: studentID, Type: scoreType}]
	return s, ok
}

// ClassName resolves a class id to its display name, falling back to
// the raw id for dangling references.
func (m *Manager) ClassName(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.classes {
		if c.ID == id {
			return c.Name
		}
	}

	return id
}
