package setup

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vialkit/vial"
	"github.com/vialkit/vial/internal/examples/gin/handlers"
	"github.com/vialkit/vial/internal/examples/gin/infra"
	"github.com/vialkit/vial/internal/examples/gin/logging"
	"github.com/vialkit/vial/internal/examples/gin/storage"
)

// RegisterHTTPServer registers the gin engine and the http server around it.
func RegisterHTTPServer(c *vial.Container) {
	// The route closures capture the root container on purpose: they run long
	// after the engine factory has returned.
	vial.Singleton(c, func(scope *vial.Container) (*gin.Engine, error) {
		base, err := vial.Resolve[*logrus.Logger](scope)
		if err != nil {
			return nil, err
		}

		router := gin.Default()
		router.Use(requestLoggerMiddleware(base))

		router.GET("/users", func(ctx *gin.Context) {
			// You don't need to manually instantiate your handlers, the
			// container autowires them from their exported fields.
			handler, err := resolveHandler[*handlers.ListUsersHandler](c, ctx)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
				return
			}

			output, err := handler.Handle()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
				return
			}

			ctx.JSON(http.StatusOK, output)
		})

		router.GET("/users/count", func(ctx *gin.Context) {
			handler, err := resolveHandler[*handlers.CountUsersHandler](c, ctx)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
				return
			}

			output, err := handler.Handle()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
				return
			}

			ctx.JSON(http.StatusOK, output)
		})

		return router, nil
	})

	vial.Singleton(c, func(scope *vial.Container) (*http.Server, error) {
		config, err := vial.Resolve[infra.Config](scope)
		if err != nil {
			return nil, err
		}
		router, err := vial.Resolve[*gin.Engine](scope)
		if err != nil {
			return nil, err
		}
		return &http.Server{
			Addr:    ":" + config.Port,
			Handler: router,
		}, nil
	})
}

const loggerKey = "logger"

// requestLoggerMiddleware stores a logger tagged with a fresh request id in
// the gin context, for the handlers resolved during that request.
func requestLoggerMiddleware(base *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		entry := base.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
		})
		ctx.Set(loggerKey, logging.Wrap(entry))

		ctx.Next()
	}
}

var ErrNoRequestLogger = errors.New("no request logger in context")

// resolveHandler builds a handler for the current request. The request
// logger rides in as an explicit parameter, so the handler and its query
// builder log with the request id while sharing the singleton connection
// underneath.
func resolveHandler[T any](c *vial.Container, ctx *gin.Context) (T, error) {
	var zero T

	log, err := requestLogger(ctx)
	if err != nil {
		return zero, err
	}

	builder, err := vial.Resolve[*storage.QueryBuilder](c, vial.Parameters{"Log": log})
	if err != nil {
		return zero, err
	}

	return vial.Resolve[T](c, vial.Parameters{
		"Builder": builder,
		"Log":     log,
	})
}

func requestLogger(ctx *gin.Context) (logging.Logger, error) {
	value, found := ctx.Get(loggerKey)
	if !found {
		return nil, ErrNoRequestLogger
	}

	log, ok := value.(logging.Logger)
	if !ok {
		return nil, ErrNoRequestLogger
	}

	return log, nil
}
