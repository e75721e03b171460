package app

import (
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/cache"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/config"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/handlers"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userSvc)
	registerUserRoutes(api, userHandler)

	todoRepo := repo.NewPGTodoRepo(db)
	todoCache := cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	todoSvc := service.NewTodoService(todoRepo, userRepo, todoCache)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerTodoRoutes(api, todoHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todolist API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	todos := api.Group("/users/:user_id/todos")
	todos.GET("", h.List)
	todos.POST("", h.Create)
	todos.POST("/recurring", h.CreateRecurring)
	todos.PATCH("/reorder", h.Reorder)
	todos.PATCH("/:todo_id", h.Update)
	todos.DELETE("/:todo_id", h.Delete)
	todos.PATCH("/:todo_id/check", h.Check)
	todos.PATCH("/:todo_id/review", h.Review)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}
