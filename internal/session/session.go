// Package session holds the single active session of the tracker: the
// process-wide profile list, the selected user's collections, and every
// operation presentation is allowed to call. All state flows through an
// explicit Session value; there are no package-level globals. Each mutation
// writes the full affected collection back to storage immediately.
package session

import (
	"context"
	"fmt"
	"time"

	"moneytracker/internal/cache"
	"moneytracker/internal/config"
	"moneytracker/internal/core"
	"moneytracker/internal/log"
	"moneytracker/internal/storage"
)

const (
	totalsCacheSize = 32
	totalsCacheTTL  = 30 * time.Second
)

// AlertFunc receives every user-facing failure message. It is the session's
// only side channel; presentation renders it as a generic alert.
type AlertFunc func(message string)

type Session struct {
	repo   *storage.Repository
	cfg    *config.Config
	logger *log.Logger
	alert  AlertFunc
	now    func() time.Time

	users    []core.User
	mainUser string

	current      string
	transactions core.TransactionsByMonth
	templates    []core.Template
	tags         []core.Tag

	selectedYear  int
	selectedMonth int
	filter        string

	lastID int64

	totals *cache.LRUCache[core.Totals]
}

// Option configures a Session.
type Option func(*Session)

// WithAlert routes user-facing failure messages to fn.
func WithAlert(fn AlertFunc) Option {
	return func(s *Session) { s.alert = fn }
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New loads the process-wide state and lands on the persisted selected
// user, falling back to the main user when none is recorded.
func New(ctx context.Context, repo *storage.Repository, cfg *config.Config, logger *log.Logger, opts ...Option) (*Session, error) {
	s := &Session{
		repo:         repo,
		cfg:          cfg,
		logger:       logger.WithComponent(log.ComponentSession),
		now:          time.Now,
		transactions: core.TransactionsByMonth{},
		totals:       cache.NewLRUCache[core.Totals](totalsCacheSize, totalsCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}

	users, err := repo.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	s.users = users

	main, err := repo.MainUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("load main user: %w", err)
	}
	s.mainUser = main

	today := s.now()
	s.selectedYear = today.Year()
	s.selectedMonth = int(today.Month())

	selected, err := repo.SelectedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("load selected user: %w", err)
	}
	if selected == "" {
		selected = s.mainUser
	}
	if selected != "" && s.findUser(selected) >= 0 {
		if err := s.SelectUser(ctx, selected); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Session started",
		log.FieldOperation, log.OpStartup,
		log.FieldUser, s.current,
		"users", len(s.users))
	return s, nil
}

// Labels returns the reserved built-in type labels in effect.
func (s *Session) Labels() core.Labels {
	return s.cfg.Labels()
}

// CurrentUser returns the selected user's record.
func (s *Session) CurrentUser() (core.User, bool) {
	i := s.findUser(s.current)
	if i < 0 {
		return core.User{}, false
	}
	return s.users[i], true
}

// SelectedUserName returns the name of the selected user, empty when none.
func (s *Session) SelectedUserName() string {
	return s.current
}

func (s *Session) findUser(name string) int {
	if name == "" {
		return -1
	}
	for i, u := range s.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

func (s *Session) requireUser() error {
	if s.current == "" {
		return fmt.Errorf("%w: no user selected", core.ErrInvariant)
	}
	return nil
}

// report passes a user-facing failure through the alert channel and
// returns it unchanged.
func (s *Session) report(err error) error {
	if err == nil {
		return nil
	}
	if s.alert != nil {
		s.alert(err.Error())
	}
	return err
}

// nextID issues a strictly increasing transaction id seeded from the
// creation timestamp, so rapid successive creations never collide.
func (s *Session) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
