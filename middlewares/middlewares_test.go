package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-boutique/models"
	"gin-boutique/templates"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withUser(user *models.User) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user != nil {
			ctx.Set("user", user)
		}
		ctx.Next()
	}
}

func TestRoleBasedAccessControl(t *testing.T) {
	tests := []struct {
		name   string
		user   *models.User
		status int
	}{
		{"admin", &models.User{Role: "Admin"}, http.StatusOK},
		{"admin lower case", &models.User{Role: " admin "}, http.StatusOK},
		{"regular user", &models.User{Role: "User"}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin", withUser(tt.user), RoleBasedAccessControl("Admin"), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBearerToken(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Bearer abc")
	token, ok := BearerToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.Header.Set("Authorization", "Basic abc")
	_, ok = BearerToken(ctx)
	assert.False(t, ok)

	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
	token, ok = BearerToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "from-cookie", token)
}

func newErrorRouter() *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.SetHTMLTemplate(templates.Load())
	r.GET("/fail", func(ctx *gin.Context) {
		_ = ctx.Error(errors.New("storage down"))
	})
	r.GET("/handled", func(ctx *gin.Context) {
		_ = ctx.Error(errors.New("already answered"))
		ctx.JSON(http.StatusTeapot, gin.H{})
	})
	return r
}

func TestErrorHandlerRendersErrorPage(t *testing.T) {
	w := httptest.NewRecorder()
	newErrorRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Some error occurred!")
}

func TestErrorHandlerAnswersJSONClients(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	newErrorRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Unexpected error"}`, w.Body.String())
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	w := httptest.NewRecorder()
	newErrorRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/handled", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestMetricsCountsRequests(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "204")))
}
