package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/avelinov/go-task-api/internal/services"
)

type Handler interface {
	HandleIdentityMiddleware(c *gin.Context)
	HandleStoreGuardMiddleware(c *gin.Context)

	HandleHealth(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	tasks    services.TaskService
	resolver Resolver
	// storeReady reflects whether a store client was built at startup.
	// When false every store-backed route answers 503 and the health
	// route reports a disconnected store.
	storeReady bool
}

func New(
	logger zerolog.Logger,
	tasks services.TaskService,
	resolver Resolver,
	storeReady bool,
) Handler {
	return &handlerImpl{
		logger:     logger,
		tasks:      tasks,
		resolver:   resolver,
		storeReady: storeReady,
	}
}
