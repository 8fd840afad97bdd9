package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sgc/portfolio"
	"github.com/sgc/portfolio/renderer"
)

var htmlOptions = renderer.RenderOptions{HTML: true}

// GetIndex serves the landing page.
func (s *Server) GetIndex(c *gin.Context) {
	ledger := s.dash.Ledger
	var b strings.Builder
	b.WriteString("# Portfolio Dashboard\n\n")
	if ledger.Len() == 0 {
		b.WriteString("The ledger is empty.\n")
	} else {
		fmt.Fprintf(&b, "%d transactions from %s to %s, %d symbols: %s.\n\n",
			ledger.Len(), ledger.InceptionDate(), ledger.LastDate(), len(ledger.Symbols()), strings.Join(ledger.Symbols(), ", "))
		fmt.Fprintf(&b, "Benchmark: %s. Currency: %s.\n", s.dash.Benchmark, s.dash.Currency)
	}
	b.WriteString("\n* [Overview](/overview): latest value of each holding\n")
	b.WriteString("* [Performance](/performance): portfolio value since inception against the benchmark\n")
	b.WriteString("* [Holdings](/holdings): weights and trailing returns\n")
	s.page(c, "Portfolio Dashboard", b.String())
}

// GetOverview serves the latest value of each holding.
func (s *Server) GetOverview(c *gin.Context) {
	o, err := s.dash.Overview(c.Request.Context())
	if err != nil {
		s.failPage(c, err)
		return
	}
	s.page(c, "Overview", renderer.RenderOverview(renderer.NewOverview(o, s.dash.Currency), htmlOptions))
}

// GetHoldings serves the snapshot table.
func (s *Server) GetHoldings(c *gin.Context) {
	snap, err := s.dash.Snapshot(c.Request.Context())
	if err != nil {
		s.failPage(c, err)
		return
	}
	s.page(c, "Holdings", renderer.RenderHoldings(renderer.NewHoldings(snap, s.dash.Currency), htmlOptions))
}

// GetPerformance serves the value series and the benchmark comparison.
func (s *Server) GetPerformance(c *gin.Context) {
	p, err := s.dash.Performance(c.Request.Context())
	if err != nil {
		s.failPage(c, err)
		return
	}
	content := renderer.RenderPerformance(renderer.NewPerformance(p, s.dash.Currency), htmlOptions)
	switch {
	case p.HasBenchmark() && p.Comparison.Portfolio.Len() > 1:
		content = strings.Replace(content, "\n", "\n\n![Portfolio against "+p.Comparison.Benchmark+"](/chart/comparison.png)\n", 1)
	case p.Value.Len() > 1:
		content = strings.Replace(content, "\n", "\n\n![Portfolio value](/chart/value.png)\n", 1)
	}
	s.page(c, "Performance", content)
}

// GetValueChart serves the value series chart.
func (s *Server) GetValueChart(c *gin.Context) {
	s.chart(c, func(buf *bytes.Buffer, p *portfolio.Performance, f renderer.ChartFormat) error {
		return renderer.ValueChart(buf, p.Value, f)
	})
}

// GetComparisonChart serves the rebased portfolio and benchmark chart.
func (s *Server) GetComparisonChart(c *gin.Context) {
	s.chart(c, func(buf *bytes.Buffer, p *portfolio.Performance, f renderer.ChartFormat) error {
		return renderer.ComparisonChart(buf, p.Comparison, f)
	})
}

func (s *Server) chart(c *gin.Context, draw func(*bytes.Buffer, *portfolio.Performance, renderer.ChartFormat) error) {
	format, err := renderer.ParseChartFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.dash.Performance(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	var buf bytes.Buffer
	if err := draw(&buf, p, format); err != nil {
		if errors.Is(err, renderer.ErrNotEnoughPoints) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		s.failJSON(c, err)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GetSnapshotJSON serves the snapshot.
func (s *Server) GetSnapshotJSON(c *gin.Context) {
	snap, err := s.dash.Snapshot(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetOverviewJSON serves the overview.
func (s *Server) GetOverviewJSON(c *gin.Context) {
	o, err := s.dash.Overview(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GetValueJSON serves the portfolio value series.
func (s *Server) GetValueJSON(c *gin.Context) {
	p, err := s.dash.Performance(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": p.From, "to": p.To, "value": p.Value})
}

// GetComparisonJSON serves the rebased portfolio and benchmark series.
func (s *Server) GetComparisonJSON(c *gin.Context) {
	p, err := s.dash.Performance(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Comparison)
}

func (s *Server) page(c *gin.Context, title, markdown string) {
	body, err := renderer.ToHTML(markdown)
	if err != nil {
		s.failPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "page", gin.H{"Title": title, "Body": template.HTML(body)})
}

func (s *Server) failPage(c *gin.Context, err error) {
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "page", gin.H{
		"Title": "Error",
		"Body":  template.HTML("<h1>Error</h1><p>" + template.HTMLEscapeString(err.Error()) + "</p>"),
	})
}

func (s *Server) failJSON(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
