package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelinov/go-task-api/internal/config"
	v1 "github.com/avelinov/go-task-api/internal/delivery/http/v1"
	"github.com/avelinov/go-task-api/internal/services"
)

func MustListenAndServeHTTP(pgPool *pgxpool.Pool) {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	// Deadlines set on the request context must propagate into store
	// calls made with the gin context.
	router.ContextWithFallback = true
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestTimeoutMiddleware(httpCfg.RequestTimeout))
	registerRoutes(router, pgPool)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter, pgPool *pgxpool.Pool) {
	cfg := config.Global()

	var tasks services.TaskService
	if pgPool != nil {
		tasks = services.NewTaskService(globalLogger, pgPool)
	}

	v1Handler := v1.New(
		globalLogger,
		tasks,
		newIdentityResolver(cfg.Auth),
		pgPool != nil,
	)

	router.GET("/", v1Handler.HandleHealth)

	tasksRouter := router.Group("/tasks")
	tasksRouter.Use(v1Handler.HandleStoreGuardMiddleware)
	tasksRouter.Use(v1Handler.HandleIdentityMiddleware)
	tasksRouter.GET("", v1Handler.HandleGetTasks)
	tasksRouter.POST("", v1Handler.HandleCreateTask)
	tasksRouter.PUT("/:id", v1Handler.HandleUpdateTask)
	tasksRouter.DELETE("/:id", v1Handler.HandleDeleteTask)
}

func newIdentityResolver(cfg config.AuthConfig) v1.Resolver {
	if cfg.JWTSigningKey != "" {
		globalLogger.Info().Msg("using bearer token identity resolver")
		return v1.NewBearerResolver([]byte(cfg.JWTSigningKey))
	}

	globalLogger.Warn().
		Str("user_id", cfg.StaticUserID).
		Msg("using static identity resolver")
	return v1.NewStaticResolver(cfg.StaticUserID)
}

func requestTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
