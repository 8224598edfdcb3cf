package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/cabbooking/internal/pkg/jwt"
	"github.com/piresc/cabbooking/internal/pkg/middleware"
	"github.com/piresc/cabbooking/internal/pkg/models"
	httpHandler "github.com/piresc/cabbooking/services/trips/handler/http"
	"github.com/piresc/cabbooking/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routesConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "routes-secret"
	cfg.JWT.Expiration = 5
	cfg.APIKey.TripsService = "internal-key"
	cfg.RateLimit.BookingPerPeriod = 2
	cfg.RateLimit.PeriodSec = 60
	return cfg
}

func setupRouter(t *testing.T) (*echo.Echo, *mocks.MockTripUC, *models.Config) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctrl := gomock.NewController(t)
	tripUC := mocks.NewMockTripUC(ctrl)
	cfg := routesConfig()

	e := echo.New()
	NewHandler(httpHandler.NewTripHandler(tripUC), client, cfg).RegisterRoutes(e)
	return e, tripUC, cfg
}

func bearer(t *testing.T, cfg *models.Config, role models.Role) string {
	token, _, err := jwtpkg.GenerateToken(&models.User{ID: uuid.New(), Username: string(role) + "1", Role: role}, cfg)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_RoleGuards(t *testing.T) {
	e, _, cfg := setupRouter(t)
	tripPath := "/v1/trips/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		role   models.Role
	}{
		{"customer cannot update status", http.MethodPut, tripPath + "/status", `{"status":"IN_PROGRESS"}`, models.RoleCustomer},
		{"admin cannot update status", http.MethodPut, tripPath + "/status", `{"status":"IN_PROGRESS"}`, models.RoleAdmin},
		{"customer cannot complete", http.MethodPost, tripPath + "/complete", ``, models.RoleCustomer},
		{"driver cannot book", http.MethodPost, "/v1/trips", `{}`, models.RoleDriver},
		{"admin cannot book", http.MethodPost, "/v1/trips", `{}`, models.RoleAdmin},
		{"driver cannot cancel", http.MethodPost, tripPath + "/cancel", ``, models.RoleDriver},
		{"driver cannot rate", http.MethodPost, tripPath + "/rating", `{"rating":5}`, models.RoleDriver},
		{"customer cannot list driver trips", http.MethodGet, "/v1/drivers/me/trips", ``, models.RoleCustomer},
		{"driver cannot list customer trips", http.MethodGet, "/v1/customers/me/trips", ``, models.RoleDriver},
		{"customer cannot read date range", http.MethodGet, "/v1/admin/trips", ``, models.RoleCustomer},
		{"driver cannot read date range", http.MethodGet, "/v1/admin/trips", ``, models.RoleDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, tt.body,
				map[string]string{echo.HeaderAuthorization: bearer(t, cfg, tt.role)})
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	e, _, _ := setupRouter(t)

	rec := serve(e, http.MethodPost, "/v1/trips", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/v1/trips/"+uuid.NewString(), "", map[string]string{echo.HeaderAuthorization: "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_AllowedRoles(t *testing.T) {
	e, tripUC, cfg := setupRouter(t)
	tripID := uuid.New()
	tripPath := "/v1/trips/" + tripID.String()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusInProgress}

	tripUC.EXPECT().UpdateTripStatus(gomock.Any(), tripID, models.TripStatusInProgress, "driver1").Return(trip, nil)
	rec := serve(e, http.MethodPut, tripPath+"/status", `{"status":"IN_PROGRESS"}`,
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleDriver)})
	assert.Equal(t, http.StatusOK, rec.Code)

	tripUC.EXPECT().CompleteTrip(gomock.Any(), tripID, "driver1").Return(trip, nil)
	rec = serve(e, http.MethodPost, tripPath+"/complete", "",
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleDriver)})
	assert.Equal(t, http.StatusOK, rec.Code)

	tripUC.EXPECT().CancelTrip(gomock.Any(), tripID, "customer1").Return(trip, nil)
	rec = serve(e, http.MethodPost, tripPath+"/cancel", "",
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleCustomer)})
	assert.Equal(t, http.StatusOK, rec.Code)

	tripUC.EXPECT().RateTrip(gomock.Any(), tripID, 4, "customer1").Return(trip, nil)
	rec = serve(e, http.MethodPost, tripPath+"/rating", `{"rating":4}`,
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleCustomer)})
	assert.Equal(t, http.StatusOK, rec.Code)

	tripUC.EXPECT().ListTripsByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*models.Trip{}, nil)
	rec = serve(e, http.MethodGet, "/v1/admin/trips?start=2026-01-01T00:00:00Z&end=2026-01-31T00:00:00Z", "",
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleAdmin)})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_SweepNeedsAPIKey(t *testing.T) {
	e, tripUC, cfg := setupRouter(t)

	rec := serve(e, http.MethodPost, "/internal/trips/sweep", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodPost, "/internal/trips/sweep", "",
		map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleAdmin)})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tripUC.EXPECT().AssignDriversToScheduledTrips(gomock.Any()).Return(models.SweepResult{Due: 1, Promoted: 1}, nil)
	rec = serve(e, http.MethodPost, "/internal/trips/sweep", "", map[string]string{middleware.APIKeyHeader: "internal-key"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"promoted":1`)
}

func TestRoutes_BookingIsRateLimited(t *testing.T) {
	e, tripUC, cfg := setupRouter(t)
	auth := map[string]string{echo.HeaderAuthorization: bearer(t, cfg, models.RoleCustomer)}

	tripUC.EXPECT().BookTrip(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrNoDriverAvailable).Times(2)

	body := `{"from_location":"A","to_location":"B","distance_km":3,"car_type":"sedan"}`
	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodPost, "/v1/trips", body, auth)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}
	rec := serve(e, http.MethodPost, "/v1/trips", body, auth)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
