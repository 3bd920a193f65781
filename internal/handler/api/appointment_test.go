//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler

	identity usecase.Identity
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.identity = usecase.Identity{
		UserID:      uuid.New(),
		DisplayName: "Test Requester",
		Role:        user.RoleRequester,
	}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("identity", s.identity)
		c.Set("user_id", s.identity.UserID)
		c.Set("user_role", s.identity.Role)
		c.Next()
	}

	// Setup routes
	s.router.POST("/appointments", authMiddleware, s.handler.Submit)
	s.router.GET("/appointments", authMiddleware, s.handler.List)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/appointments/:id", authMiddleware, s.handler.Delete)
	s.router.PATCH("/appointments/:id/completed", authMiddleware, s.handler.SetCompleted)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// Submit
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestSubmit() {
	url := "/appointments"
	reqBody := builder.NewAppointmentBuilder().BuildSubmitRequestDTO()

	s.Run("success returns 201 with the created view", func() {
		view := builder.NewAppointmentBuilder().WithScheduledAt(reqBody.ScheduledAt).BuildView()
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), s.identity.UserID, s.identity.DisplayName).
			Return(&view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		s.Equal(http.StatusCreated, w.Code)
		var resp resdto.AppointmentResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("missing auth returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed body returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"scheduled_at": "not-a-time"}, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("slot conflict returns 409", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), s.identity.UserID, s.identity.DisplayName).
			Return(nil, commands.ErrSlotTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("out of horizon returns 400", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), s.identity.UserID, s.identity.DisplayName).
			Return(nil, commands.ErrOutOfHorizon)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("write timeout returns 504", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), gomock.Any(), s.identity.UserID, s.identity.DisplayName).
			Return(nil, commands.ErrWriteTimeout)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusGatewayTimeout, w.Code)
	})
}

// ================================================================================
// List
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	url := "/appointments"

	s.Run("returns the viewer's items", func() {
		items := []queries.AppointmentListItem{
			{ID: uuid.New(), RequesterID: s.identity.UserID, Status: "pending", ScheduledAt: time.Now()},
		}
		s.mockQueries.EXPECT().
			ListFor(gomock.Any(), s.identity.UserID, s.identity.Role).
			Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		s.Equal(http.StatusOK, w.Code)
		var resp []resdto.AppointmentListItemResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp, 1)
		s.Equal(items[0].ID, resp[0].ID)
	})

	s.Run("snapshot unavailable returns 503", func() {
		s.mockQueries.EXPECT().
			ListFor(gomock.Any(), s.identity.UserID, s.identity.Role).
			Return(nil, queries.ErrSnapshotUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})
}

// ================================================================================
// Get / Delete / SetCompleted
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("not found returns 404", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id, s.identity.UserID, s.identity.Role).
			Return(nil, queries.ErrAppointmentNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+id.String(), nil, "token")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("foreign appointment returns 403", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id, s.identity.UserID, s.identity.Role).
			Return(nil, queries.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+id.String(), nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("invalid id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success returns 204", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id, s.identity.UserID, s.identity.Role).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("foreign appointment returns 403", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id, s.identity.UserID, s.identity.Role).
			Return(commands.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/"+id.String(), nil, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestSetCompleted() {
	id := uuid.New()
	body := map[string]any{"completed": true}

	s.Run("success returns 204", func() {
		s.mockCommands.EXPECT().
			SetCompleted(gomock.Any(), id, true, s.identity.Role).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/"+id.String()+"/completed", body, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("non-operator returns 403", func() {
		s.mockCommands.EXPECT().
			SetCompleted(gomock.Any(), id, true, s.identity.Role).
			Return(commands.ErrForbidden)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/"+id.String()+"/completed", body, "token")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("unexpected failure returns 500", func() {
		s.mockCommands.EXPECT().
			SetCompleted(gomock.Any(), id, true, s.identity.Role).
			Return(errors.New("boom"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/"+id.String()+"/completed", body, "token")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}
