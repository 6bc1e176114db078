// Package httpapi serves report generation over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/doctpl"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/audit"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/pageops"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/report"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/sanitize"
)

const requestIDKey = "requestID"

// Handler holds the dependencies of the report endpoints.
type Handler struct {
	opts  []talentpdf.Option
	audit *audit.Repository
	log   *slog.Logger
	san   *sanitize.Sanitizer
	base  *talentpdf.Settings
}

// NewHandler creates a handler. opts are applied to every generation before
// the per-request query options. repo may be nil.
func NewHandler(opts []talentpdf.Option, repo *audit.Repository, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		opts:  opts,
		audit: repo,
		log:   log,
		san:   sanitize.New(sanitize.WithEmojiStripping(), sanitize.WithLogger(log)),
		base:  talentpdf.NewSettings(opts...),
	}
	return h
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type artifactResponse struct {
	Filename  string `json:"filename"`
	Kind      string `json:"kind,omitempty"`
	Pages     int    `json:"pages"`
	Reference string `json:"reference,omitempty"`
	Data      string `json:"data"`
}

type bundleItem struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type bundleReq struct {
	Reports  []bundleItem `json:"reports"`
	Filename string       `json:"filename,omitempty"`
}

type sanitizeReq struct {
	Text  *string  `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

type sanitizeResp struct {
	Text  *string  `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// RequestID assigns an id to each request, echoes it in X-Request-ID and
// logs the outcome.
func (h *Handler) RequestID(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(requestIDKey, id)
	c.Set(fiber.HeaderXRequestID, id)

	start := time.Now()
	err := c.Next()
	h.log.Info("http: request",
		"id", id,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"took", time.Since(start),
	)
	return err
}

func (h *Handler) fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(errorResponse{Error: err.Error(), RequestID: requestID(c)})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, talentpdf.ErrUnknownReport):
		return fiber.StatusNotFound
	case errors.Is(err, talentpdf.ErrInvalidPayload), errors.Is(err, talentpdf.ErrInvalidParam):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// options resolves query parameters on top of the handler defaults.
func (h *Handler) options(c *fiber.Ctx) ([]talentpdf.Option, error) {
	opts := append([]talentpdf.Option(nil), h.opts...)
	opts = append(opts, talentpdf.WithLogger(h.log.With("request", requestID(c))))

	if v := c.Query("locale"); v != "" {
		if v != "en" && v != "es" {
			return nil, fmt.Errorf("locale %q: %w", v, talentpdf.ErrInvalidParam)
		}
		opts = append(opts, talentpdf.WithLocale(v))
	}
	if v := c.Query("watermark"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("watermark %q: %w", v, talentpdf.ErrInvalidParam)
		}
		opts = append(opts, talentpdf.WithWatermark(b))
	}
	if _, err := outputFormat(c); err != nil {
		return nil, err
	}
	if v := c.Query("filename"); v != "" {
		opts = append(opts, talentpdf.WithFilename(v))
	}
	if v := c.Query("verify"); v != "" {
		switch ver := talentpdf.Verification(strings.ToLower(v)); ver {
		case talentpdf.VerifyNone, talentpdf.VerifyQR, talentpdf.VerifyPDF417:
			opts = append(opts, talentpdf.WithVerification(ver, h.base.VerifyBaseURL))
		default:
			return nil, fmt.Errorf("verify %q: %w", v, talentpdf.ErrInvalidParam)
		}
	}
	return opts, nil
}

// record writes the audit entry without tying it to the request lifetime.
func (h *Handler) record(c *fiber.Ctx, kind talentpdf.Kind, art *report.Artifact, took time.Duration, err error) {
	if !h.audit.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = h.audit.Record(ctx, audit.NewEntry(requestID(c), kind, art, took, err))
}

// outputFormat returns the ?format value, pdf when absent.
func outputFormat(c *fiber.Ctx) (string, error) {
	format := strings.ToLower(c.Query("format", "pdf"))
	switch format {
	case "pdf", "base64", "datauri":
		return format, nil
	}
	return "", fmt.Errorf("format %q: %w", format, talentpdf.ErrInvalidParam)
}

// deliver writes the artifact in the format selected by ?format.
func (h *Handler) deliver(c *fiber.Ctx, art *report.Artifact) error {
	c.Set("X-Report-Pages", strconv.Itoa(art.Pages))
	if art.Reference != "" {
		c.Set("X-Report-Reference", art.Reference)
	}

	format, err := outputFormat(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}
	if format == "pdf" {
		c.Attachment(art.Filename)
		return c.Send(art.Data)
	}
	data := art.Base64()
	if format == "datauri" {
		data = art.DataURI()
	}
	return c.JSON(artifactResponse{
		Filename:  art.Filename,
		Kind:      string(art.Kind),
		Pages:     art.Pages,
		Reference: art.Reference,
		Data:      data,
	})
}

// Health reports liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "audit": h.audit.Enabled()})
}

// Kinds lists the report kinds.
func (h *Handler) Kinds(c *fiber.Ctx) error {
	kinds := make([]fiber.Map, 0, len(talentpdf.Kinds()))
	for _, k := range talentpdf.Kinds() {
		kinds = append(kinds, fiber.Map{"kind": k, "prefix": k.FilePrefix()})
	}
	return c.JSON(fiber.Map{"kinds": kinds})
}

// Schema returns the JSON schema of a report payload.
func (h *Handler) Schema(c *fiber.Ctx) error {
	kind, err := talentpdf.ParseKind(c.Params("kind"))
	if err != nil {
		return h.fail(c, fiber.StatusNotFound, err)
	}
	schema, err := report.Schema(kind)
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	c.Set(fiber.HeaderContentType, "application/schema+json")
	return c.Send(schema)
}

// Generate renders POST /reports/:kind.
func (h *Handler) Generate(c *fiber.Ctx) error {
	kind, err := talentpdf.ParseKind(c.Params("kind"))
	if err != nil {
		return h.fail(c, fiber.StatusNotFound, err)
	}
	opts, err := h.options(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	start := time.Now()
	art, err := report.GenerateJSON(kind, c.Body(), opts...)
	h.record(c, kind, art, time.Since(start), err)
	if err != nil {
		h.log.Warn("http: generation failed", "id", requestID(c), "kind", kind, "err", err)
		return h.fail(c, statusOf(err), err)
	}
	return h.deliver(c, art)
}

// Template renders POST /templates.
func (h *Handler) Template(c *fiber.Ctx) error {
	opts, err := h.options(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	start := time.Now()
	art, err := doctpl.Render(c.Body(), opts...)
	h.record(c, talentpdf.KindTemplate, art, time.Since(start), err)
	if err != nil {
		return h.fail(c, statusOf(err), err)
	}
	return h.deliver(c, art)
}

// Bundle renders every report of the request and concatenates them.
func (h *Handler) Bundle(c *fiber.Ctx) error {
	var req bundleReq
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
	}
	if len(req.Reports) == 0 {
		return h.fail(c, fiber.StatusBadRequest, fmt.Errorf("reports: %w: empty", talentpdf.ErrInvalidPayload))
	}
	opts, err := h.options(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err)
	}

	docs := make([][]byte, 0, len(req.Reports))
	for i, item := range req.Reports {
		kind, err := talentpdf.ParseKind(item.Kind)
		if err != nil {
			return h.fail(c, fiber.StatusUnprocessableEntity, fmt.Errorf("report %d: %w", i+1, err))
		}
		start := time.Now()
		art, err := report.GenerateJSON(kind, item.Data, opts...)
		h.record(c, kind, art, time.Since(start), err)
		if err != nil {
			return h.fail(c, statusOf(err), fmt.Errorf("report %d: %w", i+1, err))
		}
		docs = append(docs, art.Data)
	}

	var buf bytes.Buffer
	if err := pageops.Bundle(&buf, docs...); err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}
	pages, err := pageops.PageCount(buf.Bytes())
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}

	now := h.base.Now()
	name := req.Filename
	if name == "" {
		name = "Bundle_" + now.Format("2006-01-02")
	}
	art := &report.Artifact{
		Filename: report.Filename("", "", now, name),
		Pages:    pages,
		Data:     buf.Bytes(),
	}
	return h.deliver(c, art)
}

// Sanitize cleans one text or a list of texts.
func (h *Handler) Sanitize(c *fiber.Ctx) error {
	var req sanitizeReq
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
	}
	if req.Text == nil && req.Texts == nil {
		return h.fail(c, fiber.StatusBadRequest, fmt.Errorf("one of text or texts is required: %w", talentpdf.ErrInvalidParam))
	}

	var resp sanitizeResp
	if req.Text != nil {
		s := h.san.Clean(*req.Text)
		resp.Text = &s
	}
	if req.Texts != nil {
		resp.Texts = make([]string, len(req.Texts))
		for i, s := range req.Texts {
			resp.Texts[i] = h.san.Clean(s)
		}
	}
	return c.JSON(resp)
}
