package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/auth"
	"github.com/mshiina/course-catalog-api/internal/constants"
	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
	"github.com/mshiina/course-catalog-api/internal/services"
)

func adminClaimsFor(user *models.User) *auth.Claims {
	claims := &auth.Claims{Role: user.Role}
	claims.Subject = user.ID
	return claims
}

type courseTestEnv struct {
	db           *gorm.DB
	handler      *CourseHandler
	courseRepo   repository.CourseRepository
	languageRepo repository.LanguageRepository
	topicRepo    repository.TopicRepository

	admin    *models.User
	language *models.Language
	topic    *models.Topic
}

func setupCourseTestEnv(t *testing.T) courseTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.Topic{},
		&models.Course{},
	)
	require.NoError(t, err)

	courseRepo := repository.NewCourseRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	courseService := services.NewCourseService(courseRepo, languageRepo, topicRepo)
	handler := NewCourseHandler(courseService, zap.NewNop())

	admin := &models.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	language := &models.Language{Name: "Go"}
	require.NoError(t, db.Create(language).Error)

	topic := &models.Topic{Name: "Backend"}
	require.NoError(t, db.Create(topic).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return courseTestEnv{
		db:           db,
		handler:      handler,
		courseRepo:   courseRepo,
		languageRepo: languageRepo,
		topicRepo:    topicRepo,
		admin:        admin,
		language:     language,
		topic:        topic,
	}
}

func (env courseTestEnv) router() *gin.Engine {
	r := gin.New()
	r.GET("/api/courses", env.handler.ListCourses)
	r.GET("/api/courses/:id", env.handler.GetCourse)
	r.POST("/api/courses", func(c *gin.Context) {
		// Stand-in for the auth middleware: handlers read the creator from
		// verified claims.
		c.Set(constants.ContextKeyClaims, adminClaimsFor(env.admin))
		env.handler.CreateCourse(c)
	})
	r.PUT("/api/courses/:id", env.handler.UpdateCourse)
	r.DELETE("/api/courses/:id", env.handler.DeleteCourse)
	return r
}

func (env courseTestEnv) seedCourse(t *testing.T, title string, level models.CourseLevel) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:       title,
		Description: "desc",
		Price:       49.99,
		Level:       level,
		LanguageID:  env.language.ID,
		TopicID:     env.topic.ID,
		CreatedByID: env.admin.ID,
	}
	require.NoError(t, env.courseRepo.Create(course))
	return course
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCoursePayload(env courseTestEnv) map[string]any {
	return map[string]any{
		"title":         "Intro to Go",
		"description":   "Learn the basics",
		"price":         49.99,
		"discount_rate": 10.0,
		"level":         "BEGINNER",
		"language_id":   env.language.ID,
		"topic_id":      env.topic.ID,
	}
}

func TestCourseHandler_Create(t *testing.T) {
	env := setupCourseTestEnv(t)
	r := env.router()

	w := doJSON(t, r, http.MethodPost, "/api/courses", validCoursePayload(env))
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	id, ok := data["id"].(string)
	require.True(t, ok)

	course, err := env.courseRepo.FindByID(id)
	require.NoError(t, err)
	require.Equal(t, env.admin.ID, course.CreatedByID)
}

func TestCourseHandler_Create_InvalidLevel(t *testing.T) {
	env := setupCourseTestEnv(t)
	r := env.router()

	payload := validCoursePayload(env)
	payload["level"] = "EXPERT"
	w := doJSON(t, r, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid course level", decodeEnvelope(t, w).Message)
}

func TestCourseHandler_Create_DeletedLanguageRejected(t *testing.T) {
	env := setupCourseTestEnv(t)
	require.NoError(t, env.languageRepo.SoftDelete(env.language.ID))
	r := env.router()

	w := doJSON(t, r, http.MethodPost, "/api/courses", validCoursePayload(env))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Language not found or deleted", decodeEnvelope(t, w).Message)
}

func TestCourseHandler_Create_DeletedTopicRejected(t *testing.T) {
	env := setupCourseTestEnv(t)
	require.NoError(t, env.topicRepo.SoftDelete(env.topic.ID))
	r := env.router()

	w := doJSON(t, r, http.MethodPost, "/api/courses", validCoursePayload(env))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Topic not found or deleted", decodeEnvelope(t, w).Message)
}

func TestCourseHandler_Create_BadDiscountRate(t *testing.T) {
	env := setupCourseTestEnv(t)
	r := env.router()

	payload := validCoursePayload(env)
	payload["discount_rate"] = 120.0
	w := doJSON(t, r, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandler_Get(t *testing.T) {
	env := setupCourseTestEnv(t)
	course := env.seedCourse(t, "Deep Dive", models.CourseLevelAdvanced)
	r := env.router()

	w := doJSON(t, r, http.MethodGet, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeEnvelope(t, w).Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Deep Dive", data["title"])
	require.Equal(t, "Go", data["language"])
	require.Equal(t, "Backend", data["topic"])
	require.Equal(t, "Admin", data["created_by"])
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	env := setupCourseTestEnv(t)
	r := env.router()

	w := doJSON(t, r, http.MethodGet, "/api/courses/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandler_List_LevelFilter(t *testing.T) {
	env := setupCourseTestEnv(t)
	env.seedCourse(t, "Basics", models.CourseLevelBeginner)
	env.seedCourse(t, "More Basics", models.CourseLevelBeginner)
	env.seedCourse(t, "Internals", models.CourseLevelAdvanced)
	r := env.router()

	w := doJSON(t, r, http.MethodGet, "/api/courses?level=BEGINNER", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeEnvelope(t, w).Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), data["total_count"])
	courses, ok := data["courses"].([]any)
	require.True(t, ok)
	require.Len(t, courses, 2)
}

func TestCourseHandler_List_InvalidLevel(t *testing.T) {
	env := setupCourseTestEnv(t)
	r := env.router()

	w := doJSON(t, r, http.MethodGet, "/api/courses?level=WIZARD", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandler_List_ExcludesDeleted(t *testing.T) {
	env := setupCourseTestEnv(t)
	keep := env.seedCourse(t, "Kept", models.CourseLevelBeginner)
	gone := env.seedCourse(t, "Gone", models.CourseLevelBeginner)
	require.NoError(t, env.courseRepo.SoftDelete(gone.ID))
	r := env.router()

	w := doJSON(t, r, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeEnvelope(t, w).Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(1), data["total_count"])
	courses := data["courses"].([]any)
	require.Len(t, courses, 1)
	require.Equal(t, keep.ID, courses[0].(map[string]any)["id"])
}

func TestCourseHandler_Update(t *testing.T) {
	env := setupCourseTestEnv(t)
	course := env.seedCourse(t, "Old Title", models.CourseLevelBeginner)
	r := env.router()

	payload := validCoursePayload(env)
	payload["title"] = "New Title"
	payload["level"] = "INTERMEDIATE"
	w := doJSON(t, r, http.MethodPut, "/api/courses/"+course.ID, payload)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := env.courseRepo.FindByID(course.ID)
	require.NoError(t, err)
	require.Equal(t, "New Title", updated.Title)
	require.Equal(t, models.CourseLevelIntermediate, updated.Level)
	require.Equal(t, env.admin.ID, updated.CreatedByID)
}

func TestCourseHandler_Update_Deleted(t *testing.T) {
	env := setupCourseTestEnv(t)
	course := env.seedCourse(t, "Gone", models.CourseLevelBeginner)
	require.NoError(t, env.courseRepo.SoftDelete(course.ID))
	r := env.router()

	w := doJSON(t, r, http.MethodPut, "/api/courses/"+course.ID, validCoursePayload(env))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandler_Delete(t *testing.T) {
	env := setupCourseTestEnv(t)
	course := env.seedCourse(t, "Doomed", models.CourseLevelBeginner)
	r := env.router()

	w := doJSON(t, r, http.MethodDelete, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandler_Delete_Twice(t *testing.T) {
	env := setupCourseTestEnv(t)
	course := env.seedCourse(t, "Doomed", models.CourseLevelBeginner)
	r := env.router()

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/api/courses/"+course.ID, nil).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/courses/"+course.ID, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Course already deleted", decodeEnvelope(t, w).Message)
}
