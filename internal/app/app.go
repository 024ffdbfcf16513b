package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"studymate_backend/internal/config"
	"studymate_backend/internal/controller"
	"studymate_backend/internal/quizgen"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/service"
	"studymate_backend/internal/state"
	"studymate_backend/internal/util"
	"studymate_backend/pkg/database"
	"studymate_backend/pkg/logger"
	"studymate_backend/pkg/monitoring"
	"studymate_backend/pkg/security"
	"studymate_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	State  *state.AppState

	services  *services
	stateRepo *repository.StateRepository

	tracerShutdown func(context.Context) error

	cfgMu   sync.RWMutex
	cfgLive *config.Config
}

type repositories struct {
	kv    repository.KVStore
	state *repository.StateRepository
}

type services struct {
	storage    *service.StorageService
	document   *service.DocumentService
	assessment *service.AssessmentService
	profile    *service.ProfileService
	suggestion *service.SuggestionService
	progress   *service.ProgressService
	dashboard  *service.DashboardService
}

type controllers struct {
	document   *controller.DocumentController
	assessment *controller.AssessmentController
	profile    *controller.ProfileController
	suggestion *controller.SuggestionController
	progress   *controller.ProgressController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		db  *gorm.DB
		rdb *redis.Client
		err error
	)

	// 仅在所选持久化后端需要时才建立外部连接
	if cfg.State.Backend == util.StateBackendMySQL {
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("初始化数据库失败", zap.Error(err))
		}
	}
	if cfg.State.Backend == util.StateBackendRedis {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("初始化Redis失败", zap.Error(err))
		}
	}

	monitoring.Init()

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		State:   state.NewAppState(),
		cfgLive: cfg,
	}

	repos := app.initRepositories(cfg, db, rdb)
	app.stateRepo = repos.state
	app.hydrateState(repos.state)

	app.services = app.initServices(repos, cfg)
	ctrls := app.initControllers(app.services, repos, cfg)

	router := gin.Default()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("studymate-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("初始化链路追踪失败", zap.Error(err))
		} else {
			app.tracerShutdown = tp.Shutdown
			router.Use(tracing.GinMiddleware())
		}
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	// 本地存储时直接暴露归档的原始文件
	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.Router = router

	app.startBackgroundTasks()

	return app
}

func (a *App) initRepositories(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *repositories {
	kv := repository.NewKVStore(cfg, db, rdb)

	return &repositories{
		kv:    kv,
		state: repository.NewStateRepository(kv),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.document = service.NewDocumentService(a.State, repos.state, s.storage)
	s.assessment = service.NewAssessmentService(a.State, repos.state, quizgen.NewBuilder(nil, nil), a.CurrentConfig)
	s.profile = service.NewProfileService(a.State, repos.state)
	s.suggestion = service.NewSuggestionService(a.State)
	s.progress = service.NewProgressService(a.State)
	s.dashboard = service.NewDashboardService(a.State, s.suggestion)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		document:   controller.NewDocumentController(s.document),
		assessment: controller.NewAssessmentController(s.assessment),
		profile:    controller.NewProfileController(s.profile),
		suggestion: controller.NewSuggestionController(s.suggestion),
		progress:   controller.NewProgressController(s.progress),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(repos.state, cfg.State.Backend),
	}
}

// hydrateState 启动时从持久化层恢复档案/文档/测验,单个键损坏按空值继续。
func (a *App) hydrateState(repo *repository.StateRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := repo.LoadProfile(ctx)
	if err != nil {
		logger.Log.Error("恢复档案失败", zap.Error(err))
	}

	documents, err := repo.LoadDocuments(ctx)
	if err != nil {
		logger.Log.Error("恢复文档列表失败", zap.Error(err))
	}

	assessments, err := repo.LoadAssessments(ctx)
	if err != nil {
		logger.Log.Error("恢复测验列表失败", zap.Error(err))
	}

	a.State.Hydrate(profile, documents, assessments)

	logger.Log.Info("State hydrated",
		zap.Int("documents", len(documents)),
		zap.Int("assessments", len(assessments)))
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	router.Use(monitoring.MetricsMiddleware())
}

// CurrentConfig 返回当前生效的配置,热加载后取到的是新值。
func (a *App) CurrentConfig() *config.Config {
	a.cfgMu.RLock()
	defer a.cfgMu.RUnlock()
	return a.cfgLive
}

// ApplyConfig 配置热加载入口。端口、持久化后端等启动期参数需重启才生效。
func (a *App) ApplyConfig(cfg *config.Config) {
	a.cfgMu.Lock()
	a.cfgLive = cfg
	a.cfgMu.Unlock()

	logger.Log.Info("Configuration reloaded",
		zap.Int("quizDefaultItems", cfg.Quiz.DefaultItems))
}

// startBackgroundTasks 启动周期任务,目前只有持久化层心跳巡检。
func (a *App) startBackgroundTasks() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := a.stateRepo.Ping(ctx); err != nil {
				logger.Log.Warn("持久化层心跳失败", zap.Error(err))
			}
			cancel()
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server starting", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Warn("关闭链路追踪失败", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
