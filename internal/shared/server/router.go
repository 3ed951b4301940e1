package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-studio/internal/auth"
	"resume-studio/internal/credits"
	"resume-studio/internal/interviews"
	"resume-studio/internal/previews"
	"resume-studio/internal/resumes"
	"resume-studio/internal/shared/config"
	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
	"resume-studio/internal/shared/storage/db"
	"resume-studio/internal/shared/storage/object"
	localstore "resume-studio/internal/shared/storage/object/local"
	s3store "resume-studio/internal/shared/storage/object/s3"
	"resume-studio/internal/templates"
	"resume-studio/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
	)

	// Dependencies
	store := buildStore(cfg)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	var resumeRepo resumes.Repo
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
	}
	resumeSvc := &resumes.Service{Store: store, Repo: resumeRepo}
	resumeHandler := resumes.NewHandler(resumeSvc)

	var creditSvc *credits.Service
	if sqlDB != nil {
		creditSvc = credits.NewPostgresService(credits.NewPGStore(sqlDB, cfg.FreePlanCredits))
	} else {
		creditSvc = credits.NewService(cfg.FreePlanCredits)
	}
	creditHandler := credits.NewHandler(creditSvc)

	previewSvc := previews.NewService(resumeSvc, creditSvc, store)
	resumeSvc.OnChange = previewSvc.Invalidate
	previewHandler := previews.NewHandler(previewSvc)

	catalog := templates.NewCatalog()
	templateHandler := templates.NewHandler(catalog, cfg.IsAdminEmail)
	interviewHandler := interviews.NewHandler(resumeSvc, creditSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)
	templateHandler.RegisterRoutes(api)
	previewHandler.RegisterRoutes(api)
	creditHandler.RegisterRoutes(api)
	interviewHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		creditHandler.RegisterDevRoutes(dev)
	}

	return r
}

func buildStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket != "" {
		s3Store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return s3Store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
