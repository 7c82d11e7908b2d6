package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/config"
	"github.com/Suvay/sjnhs-web-draft/internal/handler"
	"github.com/Suvay/sjnhs-web-draft/internal/middleware"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	imagestorage "github.com/Suvay/sjnhs-web-draft/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	store  storage.Storage
	log    *zap.Logger
}

// New wires the full route surface. images may be nil, in which case the
// upload route is not registered.
func New(cfg *config.Config, store storage.Storage, images imagestorage.ImageStorage, log *zap.Logger) *Server {
	authSvc := service.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)

	authHandler := handler.NewAuthHandler(authSvc, log)
	userHandler := handler.NewUserHandler(store, authSvc, log)
	contentHandler := handler.NewContentHandler(store, log)
	announcementHandler := handler.NewAnnouncementHandler(store, log)
	staffHandler := handler.NewStaffHandler(store, log)
	eventHandler := handler.NewEventHandler(store, log)
	settingHandler := handler.NewSettingHandler(store, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	router.GET("/healthz", func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK
		if err := store.Ping(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "storage": store.Name()})
	})

	authMiddleware := middleware.NewAuthMiddleware(authSvc, store)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/content", contentHandler.GetAllContentPages)
	api.GET("/content/:pageKey", contentHandler.GetContentPage)
	api.GET("/announcements", announcementHandler.GetAnnouncements)
	api.GET("/staff", staffHandler.GetStaffMembers)
	api.GET("/events", eventHandler.GetEvents)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.GetAllUsers)
			admin.POST("/users", userHandler.CreateUser)
		}

		editor := protected.Group("")
		editor.Use(authMiddleware.RequireEditor())
		{
			editor.POST("/content", contentHandler.CreateContentPage)
			editor.PUT("/content/:id", contentHandler.UpdateContentPage)

			editor.POST("/announcements", announcementHandler.CreateAnnouncement)
			editor.PUT("/announcements/:id", announcementHandler.UpdateAnnouncement)
			editor.DELETE("/announcements/:id", announcementHandler.DeleteAnnouncement)

			editor.POST("/staff", staffHandler.CreateStaffMember)
			editor.PUT("/staff/:id", staffHandler.UpdateStaffMember)
			editor.DELETE("/staff/:id", staffHandler.DeleteStaffMember)

			editor.POST("/events", eventHandler.CreateEvent)
			editor.PUT("/events/:id", eventHandler.UpdateEvent)
			editor.DELETE("/events/:id", eventHandler.DeleteEvent)

			editor.GET("/settings", settingHandler.GetAllSiteSettings)
			editor.PUT("/settings/:key", settingHandler.UpdateSiteSetting)

			if images != nil {
				uploadHandler := handler.NewUploadHandler(images, cfg.CloudinaryUploadFolder, log)
				editor.POST("/upload", uploadHandler.Upload)
			}
		}
	}

	return &Server{
		engine: router,
		store:  store,
		log:    log,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
