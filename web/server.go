// Package web serves the dashboard over HTTP: markdown reports converted to
// HTML pages, charts, and the raw figures as JSON.
package web

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sgc/portfolio"
	"github.com/sirupsen/logrus"
)

// DefaultAddr is the listening address of the dashboard.
const DefaultAddr = ":8501"

// Server is the web UI of a dashboard.
type Server struct {
	dash *portfolio.Dashboard
	log  *logrus.Logger
}

// New creates the web UI of dash.
func New(dash *portfolio.Dashboard, log *logrus.Logger) *Server {
	return &Server{dash: dash, log: log}
}

// Router returns the gin engine serving every route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(s.log), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("page").Parse(pageLayout)))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.GET("/", s.GetIndex)
	r.GET("/overview", s.GetOverview)
	r.GET("/holdings", s.GetHoldings)
	r.GET("/performance", s.GetPerformance)

	r.GET("/chart/value.png", s.GetValueChart)
	r.GET("/chart/comparison.png", s.GetComparisonChart)

	api := r.Group("/api")
	api.GET("/snapshot", s.GetSnapshotJSON)
	api.GET("/overview", s.GetOverviewJSON)
	api.GET("/value", s.GetValueJSON)
	api.GET("/comparison", s.GetComparisonJSON)
	return r
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	s.log.Infof("server starting on %s", addr)
	return s.Router().Run(addr)
}
