package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/gatheringregistry/internal/model"
	"anoa.com/gatheringregistry/internal/repository"
	"anoa.com/gatheringregistry/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Group{}, &model.Member{}, &model.Gathering{}, &model.Registration{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	registrationRepo := repository.NewRegistrationRepository(db)
	registrationService := service.NewRegistrationService(registrationRepo, repository.NewMemberRepository(db), nil)
	summaryService := service.NewSummaryService(registrationRepo)
	registrationHandler := NewRegistrationHandler(registrationService, summaryService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/registrations", registrationHandler.GetAll)
	api.GET("/registrations/active", registrationHandler.GetActive)
	api.GET("/registrations/summary", registrationHandler.GetSummary)
	api.POST("/registrations", registrationHandler.Create)
	api.POST("/registrations/self", registrationHandler.SelfRegister)
	api.PUT("/registrations", registrationHandler.Update)
	api.DELETE("/registrations", registrationHandler.Delete)

	return router, db
}

func seedRegistrationFixture(t *testing.T, db *gorm.DB, capacity int) (*model.Member, *model.Gathering) {
	t.Helper()

	group := &model.Group{Name: "Kelompok 1"}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to seed group: %v", err)
	}
	member := &model.Member{Name: "Agus", GroupID: group.ID}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	gathering := &model.Gathering{
		Name:     "Rekoleksi",
		Date:     time.Now().Add(24 * time.Hour),
		Location: "Aula",
		Capacity: capacity,
		Status:   model.GatheringActive,
	}
	if err := db.Create(gathering).Error; err != nil {
		t.Fatalf("failed to seed gathering: %v", err)
	}
	return member, gathering
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegistrationHandler_CreateAndDuplicate(t *testing.T) {
	router, db := setupRouter(t)
	member, gathering := seedRegistrationFixture(t, db, 5)

	body := map[string]any{
		"member_id":    member.ID.String(),
		"gathering_id": gathering.ID.String(),
	}

	w := postJSON(router, "/api/registrations", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var created model.Registration
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Member.Name != "Agus" {
		t.Errorf("expected embedded member, got %+v", created.Member)
	}
	if created.Group.Name != "Kelompok 1" {
		t.Errorf("expected embedded group, got %+v", created.Group)
	}

	w = postJSON(router, "/api/registrations", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", w.Code)
	}

	var errBody map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errBody["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestRegistrationHandler_MissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(router, "/api/registrations", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", w.Code)
	}
}

func TestRegistrationHandler_DeleteReturnsSuccess(t *testing.T) {
	router, db := setupRouter(t)
	member, gathering := seedRegistrationFixture(t, db, 5)

	w := postJSON(router, "/api/registrations", map[string]any{
		"member_id":    member.ID.String(),
		"gathering_id": gathering.ID.String(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create failed: %d", w.Code)
	}

	var created model.Registration
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/registrations?id=%s", created.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body["success"] {
		t.Error("expected success: true")
	}

	var count int64
	db.Model(&model.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 registrations, got %d", count)
	}
}

func TestRegistrationHandler_ActiveFiltersInactiveGatherings(t *testing.T) {
	router, db := setupRouter(t)
	member, gathering := seedRegistrationFixture(t, db, 5)

	w := postJSON(router, "/api/registrations", map[string]any{
		"member_id":    member.ID.String(),
		"gathering_id": gathering.ID.String(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create failed: %d", w.Code)
	}

	// Deactivate the gathering, then /active must come back empty.
	if err := db.Model(&model.Gathering{}).Where("id = ?", gathering.ID).Update("status", model.GatheringNotActive).Error; err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/registrations/active", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var registrations []model.Registration
	if err := json.Unmarshal(w.Body.Bytes(), &registrations); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(registrations) != 0 {
		t.Errorf("expected no active registrations, got %d", len(registrations))
	}
}

func TestRegistrationHandler_SelfRegisterConfirms(t *testing.T) {
	router, db := setupRouter(t)
	member, gathering := seedRegistrationFixture(t, db, 5)

	w := postJSON(router, "/api/registrations/self", map[string]any{
		"member_id":    member.ID.String(),
		"gathering_id": gathering.ID.String(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var created model.Registration
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Status != model.RegistrationConfirmed {
		t.Errorf("expected CONFIRMED, got %s", created.Status)
	}
}
