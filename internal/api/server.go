package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/syaifulazham/booth-visit/docs"
	v1 "github.com/syaifulazham/booth-visit/internal/api/handler/v1"
	"github.com/syaifulazham/booth-visit/internal/api/middleware"
	"github.com/syaifulazham/booth-visit/internal/backup"
	"github.com/syaifulazham/booth-visit/internal/config"
	"github.com/syaifulazham/booth-visit/internal/repository"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
	"github.com/syaifulazham/booth-visit/internal/service"
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

	authHandler := s.initAuthHandler(db)
	adminHandler := s.initAdminHandler(db)
	boothHandler := s.initBoothHandler(db)
	visitorHandler := s.initVisitorHandler(db)
	visitHandler := s.initVisitHandler(db)
	eventHandler := s.initEventHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(authHandler, adminHandler, boothHandler, visitorHandler, visitHandler, eventHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	repo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAdminService(repo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) initBoothHandler(db *gorm.DB) *v1.BoothHandler {
	repo := repository.NewBoothRepository(dao.NewBoothDAO(db))
	svc := service.NewBoothService(repo)
	handler := v1.NewBoothHandler(svc)

	return handler
}

func (s *Server) initVisitorHandler(db *gorm.DB) *v1.VisitorHandler {
	repo := repository.NewVisitorRepository(dao.NewVisitorDAO(db))
	boothRepo := repository.NewBoothRepository(dao.NewBoothDAO(db))
	svc := service.NewVisitorService(repo, boothRepo)
	handler := v1.NewVisitorHandler(s.Config.Visitor, svc)

	return handler
}

func (s *Server) initVisitHandler(db *gorm.DB) *v1.VisitHandler {
	repo := repository.NewVisitRepository(dao.NewVisitDAO(db))
	visitorRepo := repository.NewVisitorRepository(dao.NewVisitorDAO(db))
	boothRepo := repository.NewBoothRepository(dao.NewBoothDAO(db))
	svc := service.NewVisitService(repo, visitorRepo, boothRepo)
	handler := v1.NewVisitHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	backupRepo := repository.NewBackupRepository(dao.NewBackupDAO(db))
	store := backup.NewFileStore(s.Config.Backup.Dir)
	svc := service.NewEventService(repo, backupRepo, store)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	boothRepo := repository.NewBoothRepository(dao.NewBoothDAO(db))
	visitorRepo := repository.NewVisitorRepository(dao.NewVisitorDAO(db))
	visitRepo := repository.NewVisitRepository(dao.NewVisitDAO(db))
	svc := service.NewReportService(boothRepo, visitorRepo, visitRepo)
	handler := v1.NewReportHandler(svc)

	return handler
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
	adminHandler *v1.AdminHandler,
	boothHandler *v1.BoothHandler,
	visitorHandler *v1.VisitorHandler,
	visitHandler *v1.VisitHandler,
	eventHandler *v1.EventHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/event/public", eventHandler.HandleGetPublicEvent)
		public.GET("/booths/public", boothHandler.HandleListPublicBooths)
		public.GET("/booths/verify/:hashcode", boothHandler.HandleVerifyBooth)
		public.POST("/visitors/register", visitorHandler.HandleRegister)
		public.GET("/visitors/check", visitorHandler.HandleCheck)
	}

	visitors := s.Router.Group(basePath, middleware.NewVisitorIdentifier(s.Config.Visitor.CookieName).RequireCookie())
	{
		visitors.GET("/visitors/me", visitorHandler.HandleGetMe)
		visitors.PUT("/visitors/update", visitorHandler.HandleUpdate)
		visitors.POST("/visits/log", visitHandler.HandleLogVisit)
		visitors.POST("/visits/rate", visitHandler.HandleRateVisit)
		visitors.GET("/visits/:visitID", visitHandler.HandleGetVisit)
	}

	admins := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admins.GET("/admin/me", authHandler.HandleGetMe)

		admins.GET("/admin/users", adminHandler.HandleListAdmins)
		admins.POST("/admin/users", adminHandler.HandleCreateAdmin)
		admins.PUT("/admin/users/:userID", adminHandler.HandleUpdateAdmin)
		admins.DELETE("/admin/users/:userID", adminHandler.HandleDeleteAdmin)

		admins.GET("/admin/booths", boothHandler.HandleListBooths)
		admins.POST("/admin/booths", boothHandler.HandleCreateBooth)
		admins.GET("/admin/booths/:boothID", boothHandler.HandleGetBooth)
		admins.PUT("/admin/booths/:boothID", boothHandler.HandleUpdateBooth)
		admins.DELETE("/admin/booths/:boothID", boothHandler.HandleDeleteBooth)
		admins.POST("/admin/booths/:boothID/qr", boothHandler.HandleMarkQRGenerated)

		admins.GET("/admin/visitors", visitorHandler.HandleListVisitors)

		admins.GET("/admin/event", eventHandler.HandleGetEvent)
		admins.PUT("/admin/event", eventHandler.HandleUpdateEvent)
		admins.POST("/admin/event/reset", eventHandler.HandleResetEvent)
		admins.GET("/admin/event/backups", eventHandler.HandleListBackups)
		admins.POST("/admin/event/restore", eventHandler.HandleRestoreBackup)

		admins.GET("/admin/reports/booths", reportHandler.HandleBoothReport)
		admins.GET("/admin/reports/visitors", reportHandler.HandleVisitorReport)
		admins.GET("/admin/reports/visits", reportHandler.HandleVisitReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Booth Visit API"
	docs.SwaggerInfo.Description = "Visitor registration and booth visit tracking for exhibition events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
