package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"easydonate-payments/internal/core/ports"
	"easydonate-payments/internal/core/ports/mocks"
	"easydonate-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_SetsContextValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get(CtxRequestID)
		c.String(http.StatusOK, "%v", id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Body.String(), 36, "request id should be a UUID")
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mocks.NewMockSessionService(ctrl)

	r := gin.New()
	r.Use(SessionAuth(sessionSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().Resolve(gomock.Any(), "bad-token").Return(nil, apperror.ErrInvalidSession())

	r := gin.New()
	r.Use(SessionAuth(sessionSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_AttachesIdentityAndUpstreamToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	sessionSvc.EXPECT().Resolve(gomock.Any(), "good-token").Return(&ports.SessionClaims{
		SessionID:     "sess-1",
		UserID:        "user-1",
		UpstreamToken: "upstream-tok",
	}, nil)

	r := gin.New()
	r.Use(SessionAuth(sessionSvc, zerolog.Nop()))
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, "user-1", UserID(c))
		assert.Equal(t, "sess-1", SessionID(c))
		assert.Equal(t, "upstream-tok", ports.UpstreamTokenFromContext(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_Panic(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(16))
	r.POST("/", func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	big := strings.NewReader(`{"data":"` + strings.Repeat("x", 100) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/", big)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
