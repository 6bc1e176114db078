package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/doctpl"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/pageops"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sanitize"
)

// RegisterDefaultTools adds the report tools to the server. Generation
// starts from the server's report options.
func RegisterDefaultTools(s *Server) {
	tb := &toolbox{base: s.opts, san: sanitize.New(sanitize.WithEmojiStripping(), sanitize.WithLogger(s.log))}
	s.AddTool(tb.generateReportTool())
	s.AddTool(tb.validatePayloadTool())
	s.AddTool(tb.renderTemplateTool())
	s.AddTool(tb.sanitizeTextTool())
	s.AddTool(tb.bundleReportsTool())
	s.AddTool(pdfInfoTool())
}

type toolbox struct {
	base []talentpdf.Option
	san  *sanitize.Sanitizer
}

var optionProperties = map[string]any{
	"locale": map[string]any{
		"type":        "string",
		"enum":        []string{"en", "es"},
		"description": "Label language (default: en)",
	},
	"watermark": map[string]any{
		"type":        "boolean",
		"description": "Draw the translucent brand watermark (default: true)",
	},
	"filename": map[string]any{
		"type":        "string",
		"description": "Output filename; .pdf is appended when missing",
	},
	"verification": map[string]any{
		"type":        "string",
		"enum":        []string{"none", "qr", "pdf417"},
		"description": "Verification code carrying the document reference",
	},
	"outputDir": map[string]any{
		"type":        "string",
		"description": "Directory to save the PDF in. If omitted, the PDF is returned inline.",
	},
	"format": map[string]any{
		"type":        "string",
		"enum":        []string{"base64", "datauri"},
		"description": "Inline encoding when outputDir is omitted (default: base64)",
	},
}

func withOptions(props map[string]any) map[string]any {
	out := make(map[string]any, len(props)+len(optionProperties))
	for k, v := range optionProperties {
		out[k] = v
	}
	for k, v := range props {
		out[k] = v
	}
	return out
}

// options resolves the generation options of one call.
func (tb *toolbox) options(args map[string]any) []talentpdf.Option {
	opts := append([]talentpdf.Option(nil), tb.base...)
	if v, ok := args["locale"].(string); ok && v != "" {
		opts = append(opts, talentpdf.WithLocale(v))
	}
	if v, ok := args["watermark"].(bool); ok {
		opts = append(opts, talentpdf.WithWatermark(v))
	}
	if v, ok := args["filename"].(string); ok && v != "" {
		opts = append(opts, talentpdf.WithFilename(v))
	}
	if v, ok := args["verification"].(string); ok && v != "" {
		opts = append(opts, talentpdf.WithVerification(talentpdf.Verification(strings.ToLower(v)), ""))
	}
	return opts
}

func jsonArg(args map[string]any, name string) ([]byte, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing '%s' argument", name)
	}
	if s, ok := v.(string); ok {
		// accept a JSON document passed as a string
		return []byte(s), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding '%s': %w", name, err)
	}
	return data, nil
}

// deliver saves the artifact or returns it inline.
func deliver(art *report.Artifact, args map[string]any) (ToolResult, error) {
	if dir, ok := args["outputDir"].(string); ok && dir != "" {
		path, err := art.Save(dir)
		if err != nil {
			return ToolResult{}, err
		}
		return textResult(fmt.Sprintf("Report saved: %s (%d pages, %d bytes, reference %s)",
			path, art.Pages, len(art.Data), art.Reference)), nil
	}

	format, _ := args["format"].(string)
	payload, label := art.Base64(), "Base64 data"
	if format == "datauri" {
		payload, label = art.DataURI(), "Data URI"
	}
	return ToolResult{Content: []ContentBlock{
		{Type: "text", Text: fmt.Sprintf("Report generated: %s (%d pages, %d bytes, reference %s). %s:\n%s",
			art.Filename, art.Pages, len(art.Data), art.Reference, label, payload)},
		{Type: "resource", MIMEType: "application/pdf", Data: art.Base64()},
	}}, nil
}

func textResult(s string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: s}}}
}

func kindNames() []string {
	var names []string
	for _, k := range talentpdf.Kinds() {
		names = append(names, string(k))
	}
	return names
}

func (tb *toolbox) generateReportTool() Tool {
	return Tool{
		Name:        "generate_report",
		Description: "Generate a branded recruitment report PDF (candidate, candidates-by-profile, client, consolidated or timeline) from the backend JSON payload. Read report://schema?kind=... for the payload shape.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": withOptions(map[string]any{
				"kind": map[string]any{
					"type":        "string",
					"enum":        kindNames(),
					"description": "Report kind",
				},
				"data": map[string]any{
					"type":        "object",
					"description": "Report payload as returned by the recruitment backend",
				},
			}),
			"required": []string{"kind", "data"},
		},
		Handler: tb.handleGenerateReport,
	}
}

func (tb *toolbox) handleGenerateReport(args map[string]any) (ToolResult, error) {
	name, _ := args["kind"].(string)
	kind, err := talentpdf.ParseKind(name)
	if err != nil {
		return ToolResult{}, err
	}
	raw, err := jsonArg(args, "data")
	if err != nil {
		return ToolResult{}, err
	}
	art, err := report.GenerateJSON(kind, raw, tb.options(args)...)
	if err != nil {
		return ToolResult{}, fmt.Errorf("generating report: %w", err)
	}
	return deliver(art, args)
}

func (tb *toolbox) validatePayloadTool() Tool {
	return Tool{
		Name:        "validate_payload",
		Description: "Check a report payload against the schema of its kind without rendering it.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{"type": "string", "enum": kindNames()},
				"data": map[string]any{"type": "object"},
			},
			"required": []string{"kind", "data"},
		},
		Handler: tb.handleValidatePayload,
	}
}

func (tb *toolbox) handleValidatePayload(args map[string]any) (ToolResult, error) {
	name, _ := args["kind"].(string)
	kind, err := talentpdf.ParseKind(name)
	if err != nil {
		return ToolResult{}, err
	}
	raw, err := jsonArg(args, "data")
	if err != nil {
		return ToolResult{}, err
	}
	if err := report.Validate(kind, raw); err != nil {
		return ToolResult{Content: []ContentBlock{{Type: "text", Text: err.Error()}}, IsError: true}, nil
	}
	return textResult(fmt.Sprintf("Payload is a valid %s report", kind)), nil
}

func (tb *toolbox) renderTemplateTool() Tool {
	return Tool{
		Name:        "render_template",
		Description: "Render an ad-hoc report from a block template (banner, heading, paragraph, kpis, card, table, list, badges, distribution, status, match, image, spacer, hr) with the same header, footer and watermark as the built-in reports.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": withOptions(map[string]any{
				"template": map[string]any{
					"type":        "object",
					"description": "Template with title, subtitle and blocks",
				},
			}),
			"required": []string{"template"},
		},
		Handler: tb.handleRenderTemplate,
	}
}

func (tb *toolbox) handleRenderTemplate(args map[string]any) (ToolResult, error) {
	raw, err := jsonArg(args, "template")
	if err != nil {
		return ToolResult{}, err
	}
	art, err := doctpl.Render(raw, tb.options(args)...)
	if err != nil {
		return ToolResult{}, fmt.Errorf("rendering template: %w", err)
	}
	return deliver(art, args)
}

func (tb *toolbox) sanitizeTextTool() Tool {
	return Tool{
		Name:        "sanitize_text",
		Description: "Clean text the way reports do before drawing it: repair mojibake, decode entities, drop control characters, emoji and stray symbols, normalize spaces.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"texts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		Handler: tb.handleSanitizeText,
	}
}

func (tb *toolbox) handleSanitizeText(args map[string]any) (ToolResult, error) {
	out := map[string]any{}
	if s, ok := args["text"].(string); ok {
		out["text"] = tb.san.Clean(s)
	}
	if list, ok := args["texts"].([]any); ok {
		cleaned := make([]string, len(list))
		for i, v := range list {
			s, _ := v.(string)
			cleaned[i] = tb.san.Clean(s)
		}
		out["texts"] = cleaned
	}
	if len(out) == 0 {
		return ToolResult{}, fmt.Errorf("one of 'text' or 'texts' is required")
	}
	data, err := json.Marshal(out)
	if err != nil {
		return ToolResult{}, err
	}
	return textResult(string(data)), nil
}

func (tb *toolbox) bundleReportsTool() Tool {
	return Tool{
		Name:        "bundle_reports",
		Description: "Combine reports into one PDF. Pass existing PDF files as inputPaths, or payloads as reports to generate and bundle them in order.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": withOptions(map[string]any{
				"inputPaths": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "PDF files to bundle, in order",
				},
				"reports": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"kind": map[string]any{"type": "string", "enum": kindNames()},
							"data": map[string]any{"type": "object"},
						},
						"required": []string{"kind", "data"},
					},
					"description": "Report payloads to generate and bundle, in order",
				},
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Path of the bundled PDF. If omitted, the PDF is returned as base64.",
				},
			}),
		},
		Handler: tb.handleBundleReports,
	}
}

func (tb *toolbox) handleBundleReports(args map[string]any) (ToolResult, error) {
	var docs [][]byte
	if paths, ok := args["inputPaths"].([]any); ok {
		for _, p := range paths {
			path, _ := p.(string)
			data, err := os.ReadFile(path)
			if err != nil {
				return ToolResult{}, fmt.Errorf("reading %s: %w", path, err)
			}
			docs = append(docs, data)
		}
	}
	if items, ok := args["reports"].([]any); ok {
		opts := tb.options(args)
		for i, it := range items {
			m, _ := it.(map[string]any)
			name, _ := m["kind"].(string)
			kind, err := talentpdf.ParseKind(name)
			if err != nil {
				return ToolResult{}, fmt.Errorf("report %d: %w", i+1, err)
			}
			raw, err := jsonArg(m, "data")
			if err != nil {
				return ToolResult{}, fmt.Errorf("report %d: %w", i+1, err)
			}
			art, err := report.GenerateJSON(kind, raw, opts...)
			if err != nil {
				return ToolResult{}, fmt.Errorf("report %d: %w", i+1, err)
			}
			docs = append(docs, art.Data)
		}
	}
	if len(docs) == 0 {
		return ToolResult{}, fmt.Errorf("one of 'inputPaths' or 'reports' is required")
	}

	var buf bytes.Buffer
	if err := pageops.Bundle(&buf, docs...); err != nil {
		return ToolResult{}, fmt.Errorf("bundling: %w", err)
	}
	pages, err := pageops.PageCount(buf.Bytes())
	if err != nil {
		return ToolResult{}, fmt.Errorf("bundling: %w", err)
	}

	if out, ok := args["outputPath"].(string); ok && out != "" {
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return textResult(fmt.Sprintf("Bundled %d documents into %s (%d pages)", len(docs), out, pages)), nil
	}
	art := &report.Artifact{Data: buf.Bytes(), Pages: pages}
	return textResult(fmt.Sprintf("Bundled %d documents (%d pages, %d bytes). Base64 data:\n%s",
		len(docs), pages, buf.Len(), art.Base64())), nil
}

func pdfInfoTool() Tool {
	return Tool{
		Name:        "pdf_info",
		Description: "Report the page count and byte size of a PDF file, such as a saved report or a letterhead.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Path to the PDF file",
				},
			},
			"required": []string{"path"},
		},
		Handler: handlePDFInfo,
	}
}

func handlePDFInfo(args map[string]any) (ToolResult, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return ToolResult{}, fmt.Errorf("missing 'path' argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ToolResult{}, fmt.Errorf("reading PDF: %w", err)
	}
	pages, err := pageops.PageCount(data)
	if err != nil {
		return ToolResult{}, fmt.Errorf("reading PDF: %w", err)
	}
	info := map[string]any{
		"file":  filepath.Base(path),
		"bytes": len(data),
		"pages": pages,
	}
	out, _ := json.MarshalIndent(info, "", "  ")
	return textResult(string(out)), nil
}
