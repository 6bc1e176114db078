// Command reportd serves recruitment report generation over HTTP.
//
// # Usage
//
//	reportd -config reportd.yaml
//
// Every setting can be overridden with REPORTD_* environment variables,
// e.g. REPORTD_ADDR=:9000 or REPORTD_DATABASE_URL=postgres://...
//
// # Endpoints
//
//   - POST /reports/:kind: render a report (?format=pdf|base64|datauri)
//   - POST /reports/bundle: render several reports into one PDF
//   - POST /templates: render a JSON block template
//   - POST /sanitize: clean text the way reports do
//   - GET /reports, GET /reports/:kind/schema, GET /healthz
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/audit"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/config"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/httpapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reportd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "reportd.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	log := cfg.Log.Logger(os.Stderr)

	opts, err := cfg.ReportOptions()
	if err != nil {
		return err
	}
	opts = append(opts, talentpdf.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	repo, err := audit.Open(connectCtx, cfg.Database.URL, log)
	cancel()
	if err != nil {
		// the service still renders reports without its audit log
		log.Warn("reportd: audit log not available", "err", err)
		repo = audit.New(nil, log)
	}
	defer repo.Close()

	app := httpapi.NewApp(httpapi.NewHandler(opts, repo, log), httpapi.Config{BodyLimit: cfg.Server.BodyLimit})

	errc := make(chan error, 1)
	go func() {
		log.Info("reportd: listening", "addr", cfg.Server.Addr, "audit", repo.Enabled(), "locale", cfg.Report.Locale)
		errc <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("reportd: shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}
