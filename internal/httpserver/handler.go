package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	advisoryHTTP "life-balance-planner/internal/advisory/delivery/http"
	documentHTTP "life-balance-planner/internal/document/delivery/http"
	"life-balance-planner/internal/model"
	recommendationHTTP "life-balance-planner/internal/recommendation/delivery/http"
	scheduleHTTP "life-balance-planner/internal/schedule/delivery/http"
	taskHTTP "life-balance-planner/internal/task/delivery/http"
)

// APIPrefix is where the domain routes are mounted.
const APIPrefix = "/api/v1"

// Handler returns the full HTTP handler, CORS included.
func (srv HTTPServer) Handler() http.Handler {
	return srv.mw.CORS(srv.gin)
}

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID(), srv.mw.Metrics())

	if srv.environment != string(model.EnvironmentProduction) {
		srv.l.Infof(context.Background(), "Running in %s mode (gin: %s)", srv.environment, srv.mode)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers every configured domain under APIPrefix.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group(APIPrefix)

	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	} else {
		srv.l.Warnf(ctx, "Task handler not configured, skipping /tasks and /user routes")
	}
	if srv.scheduleHandler != nil {
		scheduleHTTP.RegisterRoutes(api, srv.scheduleHandler, srv.mw)
	} else {
		srv.l.Warnf(ctx, "Schedule handler not configured, skipping /schedule routes")
	}
	if srv.documentHandler != nil {
		documentHTTP.RegisterRoutes(api, srv.documentHandler, srv.mw)
	} else {
		srv.l.Warnf(ctx, "Document handler not configured, skipping /documents routes")
	}
	if srv.recommendationHandler != nil {
		recommendationHTTP.RegisterRoutes(api, srv.recommendationHandler, srv.mw)
	} else {
		srv.l.Warnf(ctx, "Recommendation handler not configured, skipping /recommendations routes")
	}
	if srv.advisoryHandler != nil {
		advisoryHTTP.RegisterRoutes(api, srv.advisoryHandler, srv.mw)
	} else {
		srv.l.Warnf(ctx, "Advisory handler not configured, skipping /messages route")
	}
}
