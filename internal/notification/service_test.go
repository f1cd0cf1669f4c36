package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
)

type fakeNotifRepo struct {
	rows []Notification
}

func (f *fakeNotifRepo) Create(n *Notification) error {
	f.rows = append(f.rows, *n)
	return nil
}

func (f *fakeNotifRepo) ListByUser(userID string, limit int) ([]Notification, error) {
	var out []Notification
	for _, n := range f.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) MarkRead(id, userID string) (int64, error) {
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].UserID == userID {
			f.rows[i].Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func TestPublishWithoutKafkaDeliversDirectly(t *testing.T) {
	repo := &fakeNotifRepo{}
	svc := NewService(repo)

	svc.PublishEventActivity(context.Background(), "created", "ev-1", "Go Conference", "admin-1")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "admin-1", repo.rows[0].UserID)
	assert.Contains(t, repo.rows[0].Body, "Go Conference")
	assert.False(t, repo.rows[0].Read)
}

func TestMarkReadRequiresOwnership(t *testing.T) {
	repo := &fakeNotifRepo{rows: []Notification{{ID: "n-1", UserID: "admin-1"}}}
	svc := NewService(repo)

	err := svc.MarkRead("n-1", "someone-else")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, svc.MarkRead("n-1", "admin-1"))
	assert.True(t, repo.rows[0].Read)
}
