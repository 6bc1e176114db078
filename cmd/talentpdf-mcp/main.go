// Command talentpdf-mcp is an MCP (Model Context Protocol) server that
// exposes recruitment report generation to AI assistants over stdio.
//
// # Installation
//
//	go install github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/cmd/talentpdf-mcp@latest
//
// # Client configuration
//
//	{
//	  "mcpServers": {
//	    "talentpdf": {
//	      "command": "talentpdf-mcp",
//	      "args": ["-locale", "es"]
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_report: render a report payload to PDF
//   - validate_payload: check a payload against its schema
//   - render_template: render a JSON block template
//   - sanitize_text: clean text the way reports do
//   - bundle_reports: combine reports into one PDF
//   - pdf_info: page count and size of a PDF file
//
// # Available Resources
//
//   - report://kinds
//   - report://schema?kind=...
//   - report://palette
//
// Logs go to stderr; stdout carries the protocol.
package main

import (
	"flag"
	"fmt"
	"os"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/config"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/mcp"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file (report and log sections)")
	locale := flag.String("locale", "", "label language: en or es")
	brand := flag.String("brand", "", "brand name for header, footer and watermark")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "talentpdf-mcp: %v\n", err)
		os.Exit(1)
	}
	if *locale != "" {
		cfg.Report.Locale = *locale
	}
	if *brand != "" {
		cfg.Report.Brand = *brand
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "talentpdf-mcp: %v\n", err)
		os.Exit(2)
	}

	cfg.Log.Format = "json"
	log := cfg.Log.Logger(os.Stderr)

	opts, err := cfg.ReportOptions()
	if err != nil {
		log.Error("talentpdf-mcp: loading report assets", "err", err)
		os.Exit(1)
	}
	opts = append(opts, talentpdf.WithLogger(log))

	server := mcp.NewServer(mcp.WithLogger(log), mcp.WithReportOptions(opts...))
	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	log.Info("talentpdf-mcp: ready", "version", mcp.Version, "locale", cfg.Report.Locale)
	if err := server.Run(); err != nil {
		log.Error("talentpdf-mcp: server stopped", "err", err)
		os.Exit(1)
	}
}
