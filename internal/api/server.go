package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mil-can/milcan-api/docs"
	v1 "github.com/mil-can/milcan-api/internal/api/handler/v1"
	"github.com/mil-can/milcan-api/internal/api/middleware"
	"github.com/mil-can/milcan-api/internal/config"
	"github.com/mil-can/milcan-api/internal/repository"
	"github.com/mil-can/milcan-api/internal/repository/dao"
	"github.com/mil-can/milcan-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	contentRepo := repository.NewContentRepository(dao.NewContentDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	badgeRepo := repository.NewBadgeRepository(dao.NewBadgeDAO(db))
	statsRepo := repository.NewStatisticsRepository(dao.NewStatisticsDAO(db))
	reviewRepo := repository.NewReviewRepository(dao.NewReviewDAO(db))

	uSvc := service.NewUserService(userRepo)
	badgeSvc := service.NewBadgeService(badgeRepo, userRepo, contentRepo, eventRepo)
	statsSvc := service.NewStatisticsService(statsRepo, userRepo, contentRepo, eventRepo)

	// Content and event submissions share the badge engine and the
	// statistics aggregator so every submission runs the full chain.
	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(uSvc)
	contentHandler := v1.NewContentHandler(service.NewContentService(contentRepo, userRepo, badgeSvc, statsSvc, conf.Points), uSvc)
	eventHandler := v1.NewEventHandler(service.NewEventService(eventRepo, userRepo, badgeSvc, statsSvc, conf.Points), uSvc)
	badgeHandler := v1.NewBadgeHandler(badgeSvc, uSvc)
	statisticsHandler := v1.NewStatisticsHandler(statsSvc)
	reviewHandler := v1.NewReviewHandler(service.NewReviewService(reviewRepo))
	assistantHandler := v1.NewAssistantHandler(service.NewAssistantService(conf.Assistant))

	s.MountHandlers(authHandler, userHandler, contentHandler, eventHandler, badgeHandler, statisticsHandler, reviewHandler, assistantHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	contentHandler *v1.ContentHandler,
	eventHandler *v1.EventHandler,
	badgeHandler *v1.BadgeHandler,
	statisticsHandler *v1.StatisticsHandler,
	reviewHandler *v1.ReviewHandler,
	assistantHandler *v1.AssistantHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/statistics", statisticsHandler.HandleGetStatistics)
		public.GET("/badges", badgeHandler.HandleGetBadges)
		public.GET("/events/active", eventHandler.HandleGetActiveEvents)
		public.GET("/reviews", reviewHandler.HandleGetReviews)
		public.POST("/ai/chat", assistantHandler.HandleChat)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/auth/user", userHandler.HandleGetCurrentUser)
		authed.POST("/content", contentHandler.HandleCreateContent)
		authed.GET("/content/user", contentHandler.HandleGetUserContent)
		authed.PATCH("/content/:contentID/stats", contentHandler.HandleUpdateContentStats)
		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events/user", eventHandler.HandleGetUserEvents)
		authed.GET("/badges/user", badgeHandler.HandleGetUserBadges)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "MIL-CAN API"
	docs.SwaggerInfo.Description = "Backend for the MIL-CAN media literacy community platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
