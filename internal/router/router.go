package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/auth"
	"github.com/mshiina/course-catalog-api/internal/handlers"
	"github.com/mshiina/course-catalog-api/internal/middleware"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Course   *handlers.CourseHandler
	Topic    *handlers.TopicHandler
	Language *handlers.LanguageHandler
}

// New builds the HTTP engine with all middleware and routes. Course reads are
// public, topic and language reads require authentication, and every mutation
// demands the ADMIN role.
func New(h Handlers, issuer *auth.TokenIssuer, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
		}

		users := api.Group("/users")
		users.Use(middleware.RequireAuth(issuer, auth.AdminOnly))
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		courses := api.Group("/courses")
		{
			reads := courses.Group("")
			reads.Use(middleware.RequireAuth(issuer, auth.Public))
			{
				reads.GET("", h.Course.ListCourses)
				reads.GET("/:id", h.Course.GetCourse)
			}

			writes := courses.Group("")
			writes.Use(middleware.RequireAuth(issuer, auth.AdminOnly))
			{
				writes.POST("", h.Course.CreateCourse)
				writes.PUT("/:id", h.Course.UpdateCourse)
				writes.DELETE("/:id", h.Course.DeleteCourse)
			}
		}

		topics := api.Group("/topics")
		{
			reads := topics.Group("")
			reads.Use(middleware.RequireAuth(issuer, auth.Authenticated))
			{
				reads.GET("", h.Topic.ListTopics)
				reads.GET("/:id", h.Topic.GetTopic)
			}

			writes := topics.Group("")
			writes.Use(middleware.RequireAuth(issuer, auth.AdminOnly))
			{
				writes.POST("", h.Topic.CreateTopic)
				writes.PUT("/:id", h.Topic.UpdateTopic)
				writes.DELETE("/:id", h.Topic.DeleteTopic)
			}
		}

		languages := api.Group("/languages")
		{
			reads := languages.Group("")
			reads.Use(middleware.RequireAuth(issuer, auth.Authenticated))
			{
				reads.GET("", h.Language.ListLanguages)
				reads.GET("/:id", h.Language.GetLanguage)
			}

			writes := languages.Group("")
			writes.Use(middleware.RequireAuth(issuer, auth.AdminOnly))
			{
				writes.POST("", h.Language.CreateLanguage)
				writes.PUT("/:id", h.Language.UpdateLanguage)
				writes.DELETE("/:id", h.Language.DeleteLanguage)
			}
		}
	}

	return r
}
