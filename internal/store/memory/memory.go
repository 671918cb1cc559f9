// Package memory keeps every record in process memory behind a single
// RWMutex. It backs tests and runs the API when no database is configured.
package memory

import (
	"sync"
	"time"

	"vibewealth/internal/models"
)

type state struct {
	mu           sync.RWMutex
	users        map[int64]models.User
	emails       map[string]int64
	accounts     map[int64]models.Account
	transactions map[int64]models.Transaction
	goals        map[int64]models.Goal
	seq          map[string]int64
	now          func() time.Time
}

// Store groups the repositories that share one state.
type Store struct {
	Users        *UserStore
	Accounts     *AccountStore
	Transactions *TransactionStore
	Goals        *GoalStore
}

func New() *Store {
	s := &state{
		users:        make(map[int64]models.User),
		emails:       make(map[string]int64),
		accounts:     make(map[int64]models.Account),
		transactions: make(map[int64]models.Transaction),
		goals:        make(map[int64]models.Goal),
		seq:          make(map[string]int64),
		now:          func() time.Time { return time.Now().UTC() },
	}
	return &Store{
		Users:        &UserStore{s: s},
		Accounts:     &AccountStore{s: s},
		Transactions: &TransactionStore{s: s},
		Goals:        &GoalStore{s: s},
	}
}

// nextID must be called with mu held for writing.
func (s *state) nextID(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

// claimID reserves a caller-chosen id so generated ids never collide with it.
func (s *state) claimID(kind string, id int64) {
	if id > s.seq[kind] {
		s.seq[kind] = id
	}
}
