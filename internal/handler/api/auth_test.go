//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	usecasemock "slotbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler

	userID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, config.NewTestConfig())

	s.userID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          s.userID,
		Email:       "requester@example.com",
		DisplayName: "Test Requester",
		Role:        "requester",
		IsActive:    true,
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{
		"email":    "requester@example.com",
		"password": "password123",
	}

	s.Run("valid credentials return 200 with token and user", func() {
		view := s.userView()
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("test-jwt-token", view, nil)
		s.mockUseCase.EXPECT().TokenDuration().Return(15 * time.Minute)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.LoginResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("test-jwt-token", resp.AccessToken)
		s.Equal(view.Email, resp.User.Email)

		cookies := w.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
	})

	s.Run("wrong password returns 401", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown email returns 401", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("inactive account returns 403", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserInactive)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("binding rejects bad input before the usecase", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "invalid email", body: map[string]any{"email": "not-an-email", "password": "password123"}},
			{name: "short password", body: map[string]any{"email": "requester@example.com", "password": "short"}},
			{name: "missing email", body: map[string]any{"password": "password123"}},
			{name: "missing password", body: map[string]any{"email": "requester@example.com"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				s.Equal(http.StatusBadRequest, w.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("clears the cookie and returns 204", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
		cookies := w.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
		s.Equal(-1, cookies[0].MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("authenticated user gets their view", func() {
		view := s.userView()
		s.mockUseCase.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		s.Equal(http.StatusOK, w.Code)
		var resp queries.AuthorizedUserView
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("missing identity returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("deleted user returns 404", func() {
		s.mockUseCase.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
