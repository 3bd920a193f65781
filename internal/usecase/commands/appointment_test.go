//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"
	"slotbook/tests/common/builder"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *commandsmock.MockAppointmentRepository
	mockSlots *commandsmock.MockSlotChecker
	clock     *clock.MockClock
	commands  commands.AppointmentCommands

	requesterID uuid.UUID
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockSlots = commandsmock.NewMockSlotChecker(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC))
	s.requesterID = uuid.New()

	hours, err := schedule.NewBusinessHours(7, 20, 30)
	require.NoError(s.T(), err)

	s.commands = commands.NewAppointmentCommands(s.mockRepo, s.mockSlots, hours, s.clock, 30*time.Second)
}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) validInput() commands.SubmitAppointmentInput {
	return commands.SubmitAppointmentInput{
		ScheduledAt: time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC),
		Message:     "First visit",
	}
}

// ================================================================================
// Submit
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestSubmitSuccess() {
	input := s.validInput()
	expected := builder.NewAppointmentBuilder().WithScheduledAt(input.ScheduledAt).BuildView()

	s.mockSlots.EXPECT().IsSlotTaken(input.ScheduledAt).Return(false)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&expected, nil)

	view, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), input.ScheduledAt, view.ScheduledAt)
}

func (s *AppointmentCommandsTestSuite) TestSubmitValidationOrder() {
	s.Run("missing date reported before missing message", func() {
		input := commands.SubmitAppointmentInput{}
		_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
		assert.ErrorIs(s.T(), err, commands.ErrDateRequired)
	})

	s.Run("horizon reported before missing message", func() {
		input := commands.SubmitAppointmentInput{
			ScheduledAt: time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC),
		}
		_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
		assert.ErrorIs(s.T(), err, commands.ErrOutOfHorizon)
	})

	s.Run("missing message reported before slot check", func() {
		input := s.validInput()
		input.Message = ""
		_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
		assert.ErrorIs(s.T(), err, commands.ErrMessageRequired)
	})
}

func (s *AppointmentCommandsTestSuite) TestSubmitHorizonEdges() {
	cases := []struct {
		name        string
		scheduledAt time.Time
		errIs       error
	}{
		{
			name:        "yesterday is out of horizon",
			scheduledAt: time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC),
			errIs:       commands.ErrOutOfHorizon,
		},
		{
			name:        "before business hours",
			scheduledAt: time.Date(2025, time.March, 20, 6, 30, 0, 0, time.UTC),
			errIs:       commands.ErrOutOfHorizon,
		},
		{
			name:        "at window end",
			scheduledAt: time.Date(2025, time.March, 20, 20, 0, 0, 0, time.UTC),
			errIs:       commands.ErrOutOfHorizon,
		},
		{
			name:        "off-grid minute",
			scheduledAt: time.Date(2025, time.March, 20, 10, 17, 0, 0, time.UTC),
			errIs:       commands.ErrOutOfHorizon,
		},
		{
			name:        "last slot of the year",
			scheduledAt: time.Date(2025, time.December, 31, 19, 30, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			input := commands.SubmitAppointmentInput{ScheduledAt: tc.scheduledAt, Message: "msg"}
			if tc.errIs == nil {
				s.mockSlots.EXPECT().IsSlotTaken(tc.scheduledAt).Return(false)
				expected := builder.NewAppointmentBuilder().WithScheduledAt(tc.scheduledAt).BuildView()
				s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&expected, nil)
			}

			_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
			if tc.errIs == nil {
				assert.NoError(s.T(), err)
			} else {
				assert.ErrorIs(s.T(), err, tc.errIs)
			}
		})
	}
}

func (s *AppointmentCommandsTestSuite) TestSubmitSlotTaken() {
	input := s.validInput()
	s.mockSlots.EXPECT().IsSlotTaken(input.ScheduledAt).Return(true)

	_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
	assert.ErrorIs(s.T(), err, commands.ErrSlotTaken)
}

func (s *AppointmentCommandsTestSuite) TestSubmitConcurrentConflict() {
	// Index said free but the store's unique constraint lost the race.
	input := s.validInput()
	s.mockSlots.EXPECT().IsSlotTaken(input.ScheduledAt).Return(false)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("slot already booked", assert.AnError, infra.KindConflict))

	_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
	assert.ErrorIs(s.T(), err, commands.ErrSlotTaken)
}

func (s *AppointmentCommandsTestSuite) TestSubmitWriteTimeout() {
	input := s.validInput()
	s.mockSlots.EXPECT().IsSlotTaken(input.ScheduledAt).Return(false)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
	assert.ErrorIs(s.T(), err, commands.ErrWriteTimeout)
}

func (s *AppointmentCommandsTestSuite) TestSubmitTruncatesBeforeChecking() {
	input := s.validInput()
	input.ScheduledAt = input.ScheduledAt.Add(42 * time.Second)
	truncated := time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)

	s.mockSlots.EXPECT().IsSlotTaken(truncated).Return(false)
	expected := builder.NewAppointmentBuilder().WithScheduledAt(truncated).BuildView()
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&expected, nil)

	_, err := s.commands.Submit(context.Background(), input, s.requesterID, "Test Requester")
	assert.NoError(s.T(), err)
}

// ================================================================================
// Delete
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestDeleteAsOperator() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := s.commands.Delete(context.Background(), id, uuid.New(), user.RoleOperator)
	assert.NoError(s.T(), err)
}

func (s *AppointmentCommandsTestSuite) TestDeleteOwnAppointment() {
	id := uuid.New()
	view := builder.NewAppointmentBuilder().BuildView()
	view.RequesterID = s.requesterID

	s.mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&view, nil)
	s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := s.commands.Delete(context.Background(), id, s.requesterID, user.RoleRequester)
	assert.NoError(s.T(), err)
}

func (s *AppointmentCommandsTestSuite) TestDeleteForeignAppointmentForbidden() {
	id := uuid.New()
	view := builder.NewAppointmentBuilder().BuildView()

	s.mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&view, nil)

	err := s.commands.Delete(context.Background(), id, s.requesterID, user.RoleRequester)
	assert.ErrorIs(s.T(), err, commands.ErrForbidden)
}

func (s *AppointmentCommandsTestSuite) TestDeleteAbsentIDSucceeds() {
	id := uuid.New()
	s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

	err := s.commands.Delete(context.Background(), id, s.requesterID, user.RoleRequester)
	assert.NoError(s.T(), err)
}

// ================================================================================
// SetCompleted
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestSetCompletedRequiresOperator() {
	err := s.commands.SetCompleted(context.Background(), uuid.New(), true, user.RoleRequester)
	assert.ErrorIs(s.T(), err, commands.ErrForbidden)
}

func (s *AppointmentCommandsTestSuite) TestSetCompletedSuccess() {
	id := uuid.New()
	s.mockRepo.EXPECT().SetCompleted(gomock.Any(), id, true).Return(nil)

	err := s.commands.SetCompleted(context.Background(), id, true, user.RoleOperator)
	assert.NoError(s.T(), err)
}

func (s *AppointmentCommandsTestSuite) TestSetCompletedNotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().SetCompleted(gomock.Any(), id, false).
		Return(infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

	err := s.commands.SetCompleted(context.Background(), id, false, user.RoleOperator)
	assert.ErrorIs(s.T(), err, commands.ErrAppointmentNotFound)
}
