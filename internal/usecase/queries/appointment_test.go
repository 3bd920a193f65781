//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/infra/sync"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAppointmentQueries(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	newQueries := func(t *testing.T, hub *sync.Hub) (queries.AppointmentQueries, *commandsmock.MockAppointmentRepository) {
		t.Helper()
		ctrl := gomock.NewController(t)
		reader := commandsmock.NewMockAppointmentRepository(ctrl)
		return queries.NewAppointmentQueries(hub, reader, clock.NewMockClock(now)), reader
	}

	t.Run("operator sees the whole collection", func(t *testing.T) {
		hub := sync.NewHub()
		hub.Publish([]queries.AppointmentView{
			builder.NewAppointmentBuilder().BuildView(),
			builder.NewAppointmentBuilder().BuildView(),
		})
		q, _ := newQueries(t, hub)

		items, err := q.ListFor(context.Background(), uuid.New(), user.RoleOperator)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("requester sees only their own rows", func(t *testing.T) {
		mine := builder.NewAppointmentBuilder()
		other := builder.NewAppointmentBuilder()

		hub := sync.NewHub()
		hub.Publish([]queries.AppointmentView{mine.BuildView(), other.BuildView()})
		q, _ := newQueries(t, hub)

		items, err := q.ListFor(context.Background(), mine.RequesterID, user.RoleRequester)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, mine.ID, items[0].ID)
	})

	t.Run("newest row carries the most-recent marker", func(t *testing.T) {
		older := builder.NewAppointmentBuilder()
		older.CreatedAt = now.Add(-2 * time.Hour)
		newer := builder.NewAppointmentBuilder()
		newer.CreatedAt = now.Add(-time.Minute)

		hub := sync.NewHub()
		hub.Publish([]queries.AppointmentView{older.BuildView(), newer.BuildView()})
		q, _ := newQueries(t, hub)

		items, err := q.ListFor(context.Background(), uuid.New(), user.RoleOperator)
		require.NoError(t, err)

		for _, item := range items {
			assert.Equal(t, item.ID == newer.ID, item.MostRecent)
		}
	})

	t.Run("unloaded snapshot is reported as unavailable", func(t *testing.T) {
		hub := sync.NewHub()
		q, _ := newQueries(t, hub)

		_, err := q.ListFor(context.Background(), uuid.New(), user.RoleOperator)
		assert.ErrorIs(t, err, queries.ErrSnapshotUnavailable)
	})

	t.Run("get by id enforces ownership", func(t *testing.T) {
		hub := sync.NewHub()
		hub.Publish(nil)
		q, reader := newQueries(t, hub)

		view := builder.NewAppointmentBuilder().BuildView()
		reader.EXPECT().FindByID(gomock.Any(), view.ID).Return(&view, nil).Times(2)

		_, err := q.GetByID(context.Background(), view.ID, uuid.New(), user.RoleRequester)
		assert.ErrorIs(t, err, queries.ErrForbidden)

		item, err := q.GetByID(context.Background(), view.ID, view.RequesterID, user.RoleRequester)
		require.NoError(t, err)
		assert.Equal(t, view.ID, item.ID)
	})

	t.Run("get by id surfaces not found", func(t *testing.T) {
		hub := sync.NewHub()
		q, reader := newQueries(t, hub)

		id := uuid.New()
		reader.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id, uuid.New(), user.RoleOperator)
		assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
	})

	t.Run("status counts classify by the injected clock", func(t *testing.T) {
		past := builder.NewAppointmentBuilder().WithScheduledAt(now.Add(-time.Hour))
		future := builder.NewAppointmentBuilder().WithScheduledAt(now.Add(time.Hour))
		overridden := builder.NewAppointmentBuilder().WithScheduledAt(now.Add(time.Hour)).WithCompleted(true)

		hub := sync.NewHub()
		hub.Publish([]queries.AppointmentView{past.BuildView(), future.BuildView(), overridden.BuildView()})
		q, _ := newQueries(t, hub)

		counts, err := q.StatusCounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, counts.Total)
		assert.Equal(t, 1, counts.Pending)
		assert.Equal(t, 2, counts.Completed)
	})
}
