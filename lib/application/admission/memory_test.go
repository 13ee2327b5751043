package admission

import (
	"context"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
	"strconv"
	"sync"
)

// memLedger emulates row locks and read-committed counts of the database.
type memLedger struct {
	mu           sync.Mutex
	rowLocks     map[string]*sync.Mutex
	jobs         map[string]dbmodels.Job
	users        map[string]struct{}
	applications []dbmodels.Application
	seq          int
	txCount      int
}

func newMemLedger() *memLedger {
	return &memLedger{
		rowLocks: map[string]*sync.Mutex{},
		jobs:     map[string]dbmodels.Job{},
		users:    map[string]struct{}{},
	}
}

func (m *memLedger) addJob(id, recruiterID string, maxApplicants int) {
	job := dbmodels.Job{RecruiterID: recruiterID, MaxApplicants: maxApplicants}
	job.ID = id
	m.jobs[id] = job
}

func (m *memLedger) addUser(id string) {
	m.users[id] = struct{}{}
}

func (m *memLedger) addApplication(userID, jobID string, status models.ApplicationStatus) {
	m.applications = append(m.applications, dbmodels.Application{UserID: userID, JobID: jobID, Status: status})
}

func (m *memLedger) rowLock(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.rowLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.rowLocks[key] = lock
	}
	return lock
}

func (m *memLedger) InTx(ctx context.Context, fn func(store Store) error) error {
	m.mu.Lock()
	m.txCount++
	m.mu.Unlock()

	tx := &memTx{ledger: m}
	defer tx.release()
	if err := fn(tx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications = append(m.applications, tx.pending...)
	return nil
}

type memTx struct {
	ledger  *memLedger
	held    []*sync.Mutex
	pending []dbmodels.Application
}

func (t *memTx) lock(key string) {
	lock := t.ledger.rowLock(key)
	lock.Lock()
	t.held = append(t.held, lock)
}

func (t *memTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
}

func (t *memTx) count(match func(rec dbmodels.Application) bool) int64 {
	t.ledger.mu.Lock()
	defer t.ledger.mu.Unlock()
	var count int64
	for _, list := range [][]dbmodels.Application{t.ledger.applications, t.pending} {
		for _, rec := range list {
			if match(rec) {
				count++
			}
		}
	}
	return count
}

func (t *memTx) GetJobForUpdate(_ context.Context, jobID string) (*dbmodels.Job, error) {
	t.ledger.mu.Lock()
	job, ok := t.ledger.jobs[jobID]
	t.ledger.mu.Unlock()
	if !ok {
		return nil, nil
	}
	t.lock("job:" + jobID)
	return &job, nil
}

func (t *memTx) LockApplicant(_ context.Context, userID string) (bool, error) {
	t.ledger.mu.Lock()
	_, ok := t.ledger.users[userID]
	t.ledger.mu.Unlock()
	if !ok {
		return false, nil
	}
	t.lock("user:" + userID)
	return true, nil
}

func (t *memTx) CountActiveByJob(_ context.Context, jobID string) (int64, error) {
	return t.count(func(rec dbmodels.Application) bool {
		return rec.JobID == jobID && rec.Status.IsActive()
	}), nil
}

func (t *memTx) CountActiveByApplicant(_ context.Context, userID string) (int64, error) {
	return t.count(func(rec dbmodels.Application) bool {
		return rec.UserID == userID && rec.Status.IsActive()
	}), nil
}

func (t *memTx) CountByApplicantAndStatus(_ context.Context, userID string, status models.ApplicationStatus) (int64, error) {
	return t.count(func(rec dbmodels.Application) bool {
		return rec.UserID == userID && rec.Status == status
	}), nil
}

func (t *memTx) ActiveJobIDs(_ context.Context, userID string, jobIDs []string) (map[string]struct{}, error) {
	result := map[string]struct{}{}
	for _, jobID := range jobIDs {
		id := jobID
		if t.count(func(rec dbmodels.Application) bool {
			return rec.UserID == userID && rec.JobID == id && rec.Status.IsActive()
		}) > 0 {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

func (t *memTx) CreateApplication(_ context.Context, rec dbmodels.Application) (string, error) {
	t.ledger.mu.Lock()
	t.ledger.seq++
	rec.ID = "app-" + strconv.Itoa(t.ledger.seq)
	t.ledger.mu.Unlock()
	t.pending = append(t.pending, rec)
	return rec.ID, nil
}
