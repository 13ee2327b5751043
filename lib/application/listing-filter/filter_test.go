package listingfilter

import (
	"context"
	dbmodels "job-portal-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type ledgerMock struct {
	active map[string]struct{}
	err    error
	calls  int
}

func (l *ledgerMock) ActiveJobIDs(_ context.Context, _ string, jobIDs []string) (map[string]struct{}, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	result := map[string]struct{}{}
	for _, id := range jobIDs {
		if _, ok := l.active[id]; ok {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

func jobs(ids ...string) []dbmodels.Job {
	list := make([]dbmodels.Job, 0, len(ids))
	for _, id := range ids {
		job := dbmodels.Job{}
		job.ID = id
		list = append(list, job)
	}
	return list
}

func ids(list []dbmodels.Job) []string {
	result := []string{}
	for _, job := range list {
		result = append(result, job.ID)
	}
	return result
}

func TestFilter(t *testing.T) {
	ctx := context.Background()

	t.Run(`empty input`, func(t *testing.T) {
		ledger := &ledgerMock{}
		list, err := Filter(ctx, ledger, "user-1", nil)
		require.Nil(t, err)
		require.Empty(t, list)
		require.Zero(t, ledger.calls)
	})

	t.Run(`applied jobs are removed and order is kept`, func(t *testing.T) {
		ledger := &ledgerMock{active: map[string]struct{}{"j2": {}, "j4": {}}}
		list, err := Filter(ctx, ledger, "user-1", jobs("j5", "j2", "j1", "j4", "j3"))
		require.Nil(t, err)
		require.Equal(t, []string{"j5", "j1", "j3"}, ids(list))
		require.Equal(t, 1, ledger.calls)
	})

	t.Run(`filter is idempotent`, func(t *testing.T) {
		ledger := &ledgerMock{active: map[string]struct{}{"j1": {}}}
		once, err := Filter(ctx, ledger, "user-1", jobs("j1", "j2", "j3"))
		require.Nil(t, err)
		twice, err := Filter(ctx, ledger, "user-1", once)
		require.Nil(t, err)
		require.Equal(t, ids(once), ids(twice))
	})

	t.Run(`nothing applied`, func(t *testing.T) {
		ledger := &ledgerMock{}
		list, err := Filter(ctx, ledger, "user-1", jobs("j1", "j2"))
		require.Nil(t, err)
		require.Equal(t, []string{"j1", "j2"}, ids(list))
	})

	t.Run(`ledger failure`, func(t *testing.T) {
		ledger := &ledgerMock{err: errors.New("connection reset")}
		_, err := Filter(ctx, ledger, "user-1", jobs("j1"))
		require.ErrorContains(t, err, "connection reset")
	})
}
