package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beautysalon/internal/database"
	"beautysalon/internal/domain"
	"beautysalon/internal/middleware"
	"beautysalon/internal/modules/booking"
	"beautysalon/internal/modules/catalog"
	"beautysalon/internal/modules/content"
	"beautysalon/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	services *repository.ServiceRepository
	masters  *repository.MasterRepository
	content  *repository.ContentRepository
}

func setup(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	// a single connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	serviceRepo := repository.NewServiceRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	tx := repository.NewTransactor(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo, masterRepo))
	bookingHandler := booking.NewHandler(booking.NewService(appointmentRepo, masterRepo, serviceRepo, tx))
	contentHandler := content.NewHandler(content.NewService(contentRepo))

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	catalogHandler.RegisterRoutes(api)
	contentHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)

	return &testEnv{
		router:   r,
		db:       db,
		services: serviceRepo,
		masters:  masterRepo,
		content:  contentRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) appointmentCount(t *testing.T) int64 {
	var cnt int64
	require.NoError(t, e.db.Table("appointments").Count(&cnt).Error)
	return cnt
}

func (e *testEnv) seedMasterWithService(t *testing.T) (domain.Master, domain.Service) {
	ctx := context.Background()

	service := domain.Service{Name: "Тестовая услуга", Price: 1000, Duration: 30, Category: domain.CategoryHair, IsActive: true}
	require.NoError(t, e.services.Create(ctx, &service))

	master := domain.Master{Name: "Анна", Specialization: "Стилист", Experience: 5, IsActive: true, Services: []domain.Service{service}}
	require.NoError(t, e.masters.Create(ctx, &master))

	return master, service
}

func TestServicesCatalog(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	haircut := domain.Service{Name: "Стрижка", Price: 1500, Duration: 60, Category: domain.CategoryHair, IsActive: true}
	require.NoError(t, env.services.Create(ctx, &haircut))
	hidden := domain.Service{Name: "Скрытая услуга", Price: 500, Duration: 30, Category: domain.CategoryOther, IsActive: false}
	require.NoError(t, env.services.Create(ctx, &hidden))

	w := env.do(t, http.MethodGet, "/api/services/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Стрижка", list[0]["name"])
	assert.Equal(t, "1500.00", list[0]["price"])
	assert.Equal(t, "hair", list[0]["category"])
	assert.Equal(t, "Парикмахерские услуги", list[0]["category_display"])

	// detail of an active service
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/services/%d/", haircut.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// hidden services are invisible, list and detail alike
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/services/%d/", hidden.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// soft-disabling removes the service from the list
	haircut.IsActive = false
	require.NoError(t, env.services.Update(ctx, &haircut))

	w = env.do(t, http.MethodGet, "/api/services/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 0)
}

func TestMastersCatalog(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	master, service := env.seedMasterWithService(t)

	inactive := domain.Master{Name: "Неактивный мастер", Specialization: "Тест", Experience: 1, IsActive: false}
	require.NoError(t, env.masters.Create(ctx, &inactive))

	w := env.do(t, http.MethodGet, "/api/masters/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Анна", list[0]["name"])

	services, ok := list[0]["services"].([]interface{})
	require.True(t, ok)
	require.Len(t, services, 1)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/masters/%d/", master.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail map[string]interface{}
	decode(t, w, &detail)
	assert.Equal(t, "Анна", detail["name"])

	// masters capable of the service: the one active master, no duplicates
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/services/%d/masters/", service.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, float64(master.ID), list[0]["id"])

	// nobody offers a nonexistent service
	w = env.do(t, http.MethodGet, "/api/services/99999/masters/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 0)
}

func TestCreateAppointment_ServiceNotOffered(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	master, _ := env.seedMasterWithService(t)

	other := domain.Service{Name: "Другая услуга", Price: 700, Duration: 30, Category: domain.CategoryNails, IsActive: true}
	require.NoError(t, env.services.Create(ctx, &other))

	before := env.appointmentCount(t)

	w := env.do(t, http.MethodPost, "/api/appointments/", map[string]interface{}{
		"client_name":  "Ольга",
		"client_phone": "+79001234567",
		"master":       master.ID,
		"service":      other.ID,
		"date":         time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"time":         "14:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	decode(t, w, &resp)
	assert.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors["service"])
	assert.Contains(t, resp.Errors["service"][0], master.Name)

	assert.Equal(t, before, env.appointmentCount(t))
}

func TestCreateAppointment_DateRules(t *testing.T) {
	env := setup(t)

	master, service := env.seedMasterWithService(t)

	// yesterday is rejected
	w := env.do(t, http.MethodPost, "/api/appointments/", map[string]interface{}{
		"client_name":  "Ольга",
		"client_phone": "+79001234567",
		"master":       master.ID,
		"service":      service.ID,
		"date":         time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		"time":         "14:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var failed struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	decode(t, w, &failed)
	assert.False(t, failed.Success)
	assert.NotEmpty(t, failed.Errors["date"])
	assert.Equal(t, int64(0), env.appointmentCount(t))

	// a week ahead at 14:00 is accepted
	future := time.Now().AddDate(0, 0, 7)
	w = env.do(t, http.MethodPost, "/api/appointments/", map[string]interface{}{
		"client_name":  "Ольга",
		"client_phone": "+7 (900) 123-45-67",
		"client_email": "olga@example.com",
		"master":       master.ID,
		"service":      service.ID,
		"date":         future.Format("2006-01-02"),
		"time":         "14:00",
		"comment":      "Первый визит",
		"status":       "completed", // ignored: not client-settable
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success       bool                   `json:"success"`
		Message       string                 `json:"message"`
		AppointmentID int64                  `json:"appointment_id"`
		Details       map[string]interface{} `json:"details"`
	}
	decode(t, w, &created)
	assert.True(t, created.Success)
	assert.NotZero(t, created.AppointmentID)
	assert.Equal(t, future.Format("02.01.2006"), created.Details["date"])
	assert.Equal(t, "14:00", created.Details["time"])
	assert.Equal(t, "Анна", created.Details["master"])
	assert.Equal(t, "Тестовая услуга", created.Details["service"])

	assert.Equal(t, int64(1), env.appointmentCount(t))

	var status string
	require.NoError(t, env.db.Table("appointments").
		Where("id = ?", created.AppointmentID).
		Select("status").
		Scan(&status).Error)
	assert.Equal(t, "new", status)
}

func TestCreateAppointment_BusinessHoursBoundary(t *testing.T) {
	env := setup(t)

	master, service := env.seedMasterWithService(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	body := func(tm string) map[string]interface{} {
		return map[string]interface{}{
			"client_name":  "Ольга",
			"client_phone": "+79001234567",
			"master":       master.ID,
			"service":      service.ID,
			"date":         date,
			"time":         tm,
		}
	}

	w := env.do(t, http.MethodPost, "/api/appointments/", body("09:00"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/appointments/", body("21:00"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Errors["time"])
}

func TestAppointmentStatusFlow(t *testing.T) {
	env := setup(t)

	master, service := env.seedMasterWithService(t)
	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	var ids []int64
	for _, tm := range []string{"10:00", "11:00"} {
		w := env.do(t, http.MethodPost, "/api/appointments/", map[string]interface{}{
			"client_name":  "Ольга",
			"client_phone": "+79001234567",
			"master":       master.ID,
			"service":      service.ID,
			"date":         date,
			"time":         tm,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created struct {
			AppointmentID int64 `json:"appointment_id"`
		}
		decode(t, w, &created)
		ids = append(ids, created.AppointmentID)
	}

	// staff listing shows both, with display labels
	w := env.do(t, http.MethodGet, "/api/appointments/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0]["status"])
	assert.Equal(t, "Новая", list[0]["status_display"])

	// single transition
	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/status/", ids[0]), map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// transitions are idempotent and unguarded: confirming again is fine
	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/status/", ids[0]), map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// unknown id
	w = env.do(t, http.MethodPatch, "/api/appointments/99999/status/", map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// invalid status value
	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/status/", ids[0]), map[string]interface{}{
		"status": "paused",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// bulk cancel
	w = env.do(t, http.MethodPost, "/api/appointments/status/", map[string]interface{}{
		"ids":    ids,
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var bulk struct {
		Success bool  `json:"success"`
		Updated int64 `json:"updated"`
	}
	decode(t, w, &bulk)
	assert.True(t, bulk.Success)
	assert.Equal(t, int64(2), bulk.Updated)
}

func TestContactsAndSalonInfo(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	// empty tables answer {} with 200
	w := env.do(t, http.MethodGet, "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	w = env.do(t, http.MethodGet, "/api/salon-info/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	contact := domain.Contact{
		Address:      "г. Москва, ул. Пушкина, д. 10",
		Phone:        "+79001234567",
		Email:        "hello@salon.ru",
		WorkingHours: "Пн-Сб: 9:00-21:00",
	}
	require.NoError(t, env.content.SaveContact(ctx, &contact))

	info := domain.SalonInfo{Name: "Салон красоты Elegance", AboutText: "О нас"}
	require.NoError(t, env.content.SaveSalonInfo(ctx, &info))

	w = env.do(t, http.MethodGet, "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	decode(t, w, &got)
	assert.Equal(t, "г. Москва, ул. Пушкина, д. 10", got["address"])

	w = env.do(t, http.MethodGet, "/api/salon-info/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &got)
	assert.Equal(t, "Салон красоты Elegance", got["name"])
}
