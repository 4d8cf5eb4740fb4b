package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

func TestApplicationStore_Create(t *testing.T) {
	store := NewApplicationStore(DemoSeed().Applications)

	t.Run("new applications always start as applied", func(t *testing.T) {
		before := store.List()

		created, err := store.Create(models.NewApplication{StudentName: "Alex Kim", ScholarshipID: 2})
		require.NoError(t, err)

		assert.Equal(t, models.StatusApplied, created.Status)
		assert.Len(t, store.List(), len(before)+1)
		for _, app := range before {
			assert.NotEqual(t, app.ID, created.ID)
		}
	})

	t.Run("dangling scholarship id is accepted", func(t *testing.T) {
		created, err := store.Create(models.NewApplication{StudentName: "Alex Kim", ScholarshipID: 404})
		require.NoError(t, err)
		assert.Equal(t, int64(404), created.ScholarshipID)
	})

	rejected := []struct {
		name   string
		fields models.NewApplication
	}{
		{name: "empty student name", fields: models.NewApplication{ScholarshipID: 1}},
		{name: "missing scholarship", fields: models.NewApplication{StudentName: "John Doe"}},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			before := store.List()

			_, err := store.Create(tc.fields)
			require.ErrorIs(t, err, ErrRejected)

			var rejectedErr *RejectedError
			require.ErrorAs(t, err, &rejectedErr)
			assert.Equal(t, EntityApplication, rejectedErr.Entity)
			assert.Len(t, rejectedErr.Fields, 1)
			assert.Equal(t, before, store.List())
		})
	}
}

func TestApplicationStore_ListByStudent(t *testing.T) {
	store := NewApplicationStore(DemoSeed().Applications)

	johns := store.ListByStudent("John Doe")
	require.Len(t, johns, 1)
	assert.Equal(t, "John Doe", johns[0].StudentName)

	assert.Empty(t, store.ListByStudent("john doe"))
	assert.Empty(t, store.ListByStudent("John"))
	assert.Empty(t, store.ListByStudent(""))
	assert.NotNil(t, store.ListByStudent(""))
}

func TestApplicationStore_UpdateStatus(t *testing.T) {
	t.Run("every transition is allowed", func(t *testing.T) {
		for _, from := range models.Statuses {
			for _, to := range models.Statuses {
				store := NewApplicationStore([]models.Application{
					{ID: 7, StudentName: "John Doe", ScholarshipID: 1, Status: from},
				})

				found, err := store.UpdateStatus(7, to)
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, to, store.List()[0].Status, "%s -> %s", from, to)
			}
		}
	})

	t.Run("only the target application changes", func(t *testing.T) {
		store := NewApplicationStore(DemoSeed().Applications)

		found, err := store.UpdateStatus(1, models.StatusRejected)
		require.NoError(t, err)
		require.True(t, found)

		apps := store.List()
		assert.Equal(t, models.StatusRejected, apps[0].Status)
		assert.Equal(t, models.StatusApproved, apps[1].Status)
	})

	t.Run("unknown id leaves the store unchanged", func(t *testing.T) {
		store := NewApplicationStore(DemoSeed().Applications)
		before := store.List()

		found, err := store.UpdateStatus(99, models.StatusApproved)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, before, store.List())
	})

	t.Run("unknown status is refused", func(t *testing.T) {
		store := NewApplicationStore(DemoSeed().Applications)
		before := store.List()

		found, err := store.UpdateStatus(1, models.Status("pending"))
		assert.ErrorIs(t, err, models.ErrInvalidStatus)
		assert.False(t, found)
		assert.Equal(t, before, store.List())
	})

	t.Run("status change event carries the previous status", func(t *testing.T) {
		store := NewApplicationStore(DemoSeed().Applications)

		var events []Event
		store.Subscribe(func(e Event) { events = append(events, e) })

		_, err := store.UpdateStatus(2, models.StatusApplied)
		require.NoError(t, err)
		_, err = store.UpdateStatus(99, models.StatusApplied)
		require.NoError(t, err)

		require.Len(t, events, 1)
		assert.Equal(t, KindStatusChanged, events[0].Kind)
		assert.Equal(t, models.StatusApproved, events[0].PreviousStatus)
		require.NotNil(t, events[0].Application)
		assert.Equal(t, models.StatusApplied, events[0].Application.Status)
	})
}
