package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mshiina/course-catalog-api/internal/models"
	"github.com/mshiina/course-catalog-api/internal/repository"
	"github.com/mshiina/course-catalog-api/internal/services"
)

type languageTestEnv struct {
	db           *gorm.DB
	handler      *LanguageHandler
	languageRepo repository.LanguageRepository
}

func setupLanguageTestEnv(t *testing.T) languageTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Language{}))

	languageRepo := repository.NewLanguageRepository(db)
	languageService := services.NewLanguageService(languageRepo)
	handler := NewLanguageHandler(languageService, zap.NewNop())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return languageTestEnv{
		db:           db,
		handler:      handler,
		languageRepo: languageRepo,
	}
}

func (env languageTestEnv) router() *gin.Engine {
	r := gin.New()
	r.GET("/api/languages", env.handler.ListLanguages)
	r.GET("/api/languages/:id", env.handler.GetLanguage)
	r.POST("/api/languages", env.handler.CreateLanguage)
	r.PUT("/api/languages/:id", env.handler.UpdateLanguage)
	r.DELETE("/api/languages/:id", env.handler.DeleteLanguage)
	return r
}

func TestLanguageHandler_CRUD(t *testing.T) {
	env := setupLanguageTestEnv(t)
	r := env.router()

	w := doJSON(t, r, http.MethodPost, "/api/languages", map[string]string{"name": "English"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w).Data.(map[string]any)
	id := data["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/languages/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "English", decodeEnvelope(t, w).Data.(map[string]any)["name"])

	w = doJSON(t, r, http.MethodPut, "/api/languages/"+id, map[string]string{"name": "British English"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "British English", decodeEnvelope(t, w).Data.(map[string]any)["name"])

	w = doJSON(t, r, http.MethodDelete, "/api/languages/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/languages/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLanguageHandler_Create_EmptyName(t *testing.T) {
	env := setupLanguageTestEnv(t)
	r := env.router()

	w := doJSON(t, r, http.MethodPost, "/api/languages", map[string]string{"name": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Language name cannot be empty", decodeEnvelope(t, w).Message)
}

func TestLanguageHandler_Delete_Twice(t *testing.T) {
	env := setupLanguageTestEnv(t)
	language := &models.Language{Name: "Doomed"}
	require.NoError(t, env.languageRepo.Create(language))
	r := env.router()

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/api/languages/"+language.ID, nil).Code)

	w := doJSON(t, r, http.MethodDelete, "/api/languages/"+language.ID, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Language already deleted", decodeEnvelope(t, w).Message)
}

func TestLanguageHandler_Update_Deleted(t *testing.T) {
	env := setupLanguageTestEnv(t)
	language := &models.Language{Name: "Gone"}
	require.NoError(t, env.languageRepo.Create(language))
	require.NoError(t, env.languageRepo.SoftDelete(language.ID))
	r := env.router()

	w := doJSON(t, r, http.MethodPut, "/api/languages/"+language.ID, map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
