package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "nl-task-parser/internal/task/delivery/http"
)

// setupTaskDomain registers the task parsing routes under /api/v1/tasks.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered at /api/v1/tasks")
}
