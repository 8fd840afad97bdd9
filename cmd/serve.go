package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/sgc/portfolio/web"
	"github.com/sirupsen/logrus"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "start the web dashboard" }
func (*serveCmd) Usage() string {
	return `sgc serve [-addr :8501]

  Serves the overview, holdings and performance pages, their charts and a JSON API.
  See the serve topic.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", web.DefaultAddr, "Listening address")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dash, err := NewDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger := logrus.StandardLogger()
	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := web.New(dash, logger).Run(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
