package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qaboard-dev/qaboard/internal/domain"
	"github.com/qaboard-dev/qaboard/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewerRecorder(captured **domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestOptionalAuth(t *testing.T) {
	jwtSvc := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtSvc)

	token, err := jwtSvc.NewToken(domain.User{Id: 7, Name: "alice"})
	require.NoError(t, err)

	t.Run("valid cookie populates viewer", func(t *testing.T) {
		var viewer *domain.User
		handler := auth.OptionalAuth()(viewerRecorder(&viewer))

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, viewer)
		assert.Equal(t, domain.UserId(7), viewer.Id)
		assert.Equal(t, "alice", viewer.Name)
	})

	t.Run("bearer header works too", func(t *testing.T) {
		var viewer *domain.User
		handler := auth.OptionalAuth()(viewerRecorder(&viewer))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.NotNil(t, viewer)
		assert.Equal(t, "alice", viewer.Name)
	})

	t.Run("missing token lets request through anonymously", func(t *testing.T) {
		var viewer *domain.User
		handler := auth.OptionalAuth()(viewerRecorder(&viewer))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, viewer)
	})

	t.Run("garbage token is treated as anonymous", func(t *testing.T) {
		var viewer *domain.User
		handler := auth.OptionalAuth()(viewerRecorder(&viewer))

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, viewer)
	})
}

func TestNeedAuth(t *testing.T) {
	jwtSvc := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtSvc)

	t.Run("rejects anonymous", func(t *testing.T) {
		var viewer *domain.User
		handler := auth.NeedAuth()(viewerRecorder(&viewer))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, viewer)
	})

	t.Run("accepts valid session", func(t *testing.T) {
		token, err := jwtSvc.NewToken(domain.User{Id: 1, Name: "alice"})
		require.NoError(t, err)

		var viewer *domain.User
		handler := auth.NeedAuth()(viewerRecorder(&viewer))

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, viewer)
	})
}
