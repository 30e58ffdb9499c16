package database

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

type State int

const (
	StateDisconnected State = iota
	StateConnected
)

func (s State) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "disconnected"
}

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// RetryPolicy bounds the startup connection loop. Sleep is injectable so
// tests can observe the backoff without waiting it out.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Sleep     func(time.Duration)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  10,
		BaseDelay: 5 * time.Second,
		MaxDelay:  30 * time.Second,
	}
}

// Manager owns the database handle and its connection state. The health
// probe reads the state through the accessor rather than a shared flag.
type Manager struct {
	mu      sync.RWMutex
	db      *gorm.DB
	state   State
	connect func(string) (*gorm.DB, error)
}

func NewManager() *Manager {
	return &Manager{connect: Connect}
}

func (m *Manager) DB() *gorm.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) Connected() bool {
	return m.State() == StateConnected
}

// ConnectWithRetry dials the store until it answers or the policy is
// exhausted, doubling the delay between attempts up to MaxDelay.
func (m *Manager) ConnectWithRetry(dsn string, policy RetryPolicy) error {
	sleep := policy.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	delay := policy.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		db, err := m.connect(dsn)
		if err == nil {
			m.mu.Lock()
			m.db = db
			m.state = StateConnected
			m.mu.Unlock()
			log.Println("database connected")
			return nil
		}

		lastErr = err
		if attempt == policy.Attempts {
			break
		}
		log.Printf("database connection failed (attempt %d/%d), retrying in %s: %v",
			attempt, policy.Attempts, delay, err)
		sleep(delay)
		delay *= 2
		if delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}
	return fmt.Errorf("connect database: %w", lastErr)
}
