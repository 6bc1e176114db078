package httpapi_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgconn"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/audit"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/internal/httpapi"
	"github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002/pageops"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeDB struct {
	args [][]interface{}
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
	f.args = append(f.args, args)
	return nil, nil
}

func newApp(t *testing.T, repo *audit.Repository) *fiber.App {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts := []talentpdf.Option{
		talentpdf.WithClock(func() time.Time { return fixedNow }),
		talentpdf.WithWatermark(false),
	}
	return httpapi.NewApp(httpapi.NewHandler(opts, repo, log), httpapi.Config{BodyLimit: 8 * 1024 * 1024})
}

func sample(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "report", "testdata", name))
	if err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	return data
}

func do(t *testing.T, app *fiber.App, method, target string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.Unmarshal(readBody(t, resp), v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	app := newApp(t, nil)
	resp := do(t, app, http.MethodGet, "/healthz", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("missing request id")
	}
	var body map[string]any
	decodeJSON(t, resp, &body)
	if body["status"] != "ok" || body["audit"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	app := newApp(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get(fiber.HeaderXRequestID); got != "req-42" {
		t.Errorf("request id = %q", got)
	}
}

func TestGeneratePDFAttachment(t *testing.T) {
	app := newApp(t, nil)
	resp := do(t, app, http.MethodPost, "/reports/client", sample(t, "client.json"))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "application/pdf") {
		t.Errorf("content type = %q", ct)
	}
	want := `attachment; filename="ClientReport_Aceros-del-Norte-S-A-de-C-V_2024-03-01.pdf"`
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); cd != want {
		t.Errorf("content disposition = %q, want %q", cd, want)
	}
	if resp.Header.Get("X-Report-Pages") == "" {
		t.Error("missing page count header")
	}
	body := readBody(t, resp)
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("body is not a PDF: %q", body[:min(len(body), 16)])
	}
	t.Logf("client report: %d bytes", len(body))
}

func TestGenerateBase64AndDataURI(t *testing.T) {
	app := newApp(t, nil)

	resp := do(t, app, http.MethodPost, "/reports/candidates_by_profile?format=base64&locale=es", sample(t, "candidates-by-profile.json"))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var out struct {
		Filename string `json:"filename"`
		Kind     string `json:"kind"`
		Pages    int    `json:"pages"`
		Data     string `json:"data"`
	}
	decodeJSON(t, resp, &out)
	if out.Filename != "CandidatesByProfile_Desarrollador-Go_2024-03-01.pdf" || out.Kind != "candidates-by-profile" {
		t.Errorf("response = %+v", out)
	}
	pdf, err := base64.StdEncoding.DecodeString(out.Data)
	if err != nil || !bytes.HasPrefix(pdf, []byte("%PDF")) || out.Pages < 1 {
		t.Fatalf("bad base64 document (err %v, pages %d)", err, out.Pages)
	}

	resp = do(t, app, http.MethodPost, "/reports/timeline?format=datauri", sample(t, "timeline.json"))
	decodeJSON(t, resp, &out)
	if !strings.HasPrefix(out.Data, "data:application/pdf;base64,") {
		t.Errorf("data uri = %.40s", out.Data)
	}
}

func TestGenerateCustomFilename(t *testing.T) {
	app := newApp(t, nil)
	resp := do(t, app, http.MethodPost, "/reports/timeline?filename=seguimiento", sample(t, "timeline.json"))
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, `filename="seguimiento.pdf"`) {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown kind", "/reports/payroll", `{}`, fiber.StatusNotFound},
		{"missing required field", "/reports/candidates-by-profile", `{"candidatos": []}`, fiber.StatusUnprocessableEntity},
		{"malformed json", "/reports/client", `{"client":`, fiber.StatusUnprocessableEntity},
		{"bad locale", "/reports/client?locale=fr", `{}`, fiber.StatusBadRequest},
		{"bad watermark", "/reports/client?watermark=maybe", `{}`, fiber.StatusBadRequest},
		{"bad verify", "/reports/client?verify=datamatrix", `{}`, fiber.StatusBadRequest},
	}
	app := newApp(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, tt.target, []byte(tt.body))
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body map[string]string
			decodeJSON(t, resp, &body)
			if body["error"] == "" || body["requestId"] == "" {
				t.Errorf("error body = %v", body)
			}
		})
	}
}

func TestBadFormatRejectedBeforeRender(t *testing.T) {
	db := &fakeDB{}
	app := newApp(t, audit.New(db, slog.New(slog.NewTextHandler(io.Discard, nil))))
	resp := do(t, app, http.MethodPost, "/reports/timeline?format=docx", sample(t, "timeline.json"))
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Report-Pages") != "" {
		t.Error("report was rendered for a rejected format")
	}
	if len(db.args) != 0 {
		t.Errorf("got %d audit rows for a rejected request, want 0", len(db.args))
	}
}

func TestPanicIsRecovered(t *testing.T) {
	app := newApp(t, nil)
	app.Get("/boom", func(*fiber.Ctx) error { panic("render exploded") })

	resp := do(t, app, http.MethodGet, "/boom", nil)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	decodeJSON(t, resp, &body)
	if !strings.Contains(body["error"], "render exploded") {
		t.Errorf("error body = %v", body)
	}
	if resp := do(t, app, http.MethodGet, "/healthz", nil); resp.StatusCode != fiber.StatusOK {
		t.Errorf("healthz after panic = %d", resp.StatusCode)
	}
}

func TestBundle(t *testing.T) {
	app := newApp(t, nil)
	body, _ := json.Marshal(map[string]any{
		"reports": []map[string]any{
			{"kind": "client", "data": json.RawMessage(sample(t, "client.json"))},
			{"kind": "timeline", "data": json.RawMessage(sample(t, "timeline.json"))},
		},
	})
	resp := do(t, app, http.MethodPost, "/reports/bundle", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "Bundle_2024-03-01.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	pdf := readBody(t, resp)
	n, err := pageops.PageCount(pdf)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n < 2 {
		t.Errorf("bundle has %d pages, want at least 2", n)
	}
}

func TestBundleRejectsEmptyAndBadItems(t *testing.T) {
	app := newApp(t, nil)
	if resp := do(t, app, http.MethodPost, "/reports/bundle", []byte(`{"reports": []}`)); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("empty bundle status = %d", resp.StatusCode)
	}
	resp := do(t, app, http.MethodPost, "/reports/bundle", []byte(`{"reports": [{"kind": "payroll", "data": {}}]}`))
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("unknown kind status = %d", resp.StatusCode)
	}
	var out map[string]string
	decodeJSON(t, resp, &out)
	if !strings.Contains(out["error"], "report 1") {
		t.Errorf("error = %q", out["error"])
	}
}

func TestTemplate(t *testing.T) {
	app := newApp(t, nil)
	tpl := `{"title": "Pipeline", "filename": "pipeline", "blocks": [{"type": "paragraph", "text": "Hola"}]}`
	resp := do(t, app, http.MethodPost, "/templates?format=base64", []byte(tpl))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var out map[string]any
	decodeJSON(t, resp, &out)
	if out["filename"] != "pipeline.pdf" || out["kind"] != "template" {
		t.Errorf("response = %v", out)
	}
}

func TestSanitize(t *testing.T) {
	app := newApp(t, nil)
	resp := do(t, app, http.MethodPost, "/sanitize", []byte(`{"text": "JosÃ© PÃ©rez", "texts": ["  Activo  ", "90% más 🚀"]}`))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Text  string   `json:"text"`
		Texts []string `json:"texts"`
	}
	decodeJSON(t, resp, &out)
	if out.Text != "José Pérez" {
		t.Errorf("text = %q", out.Text)
	}
	if len(out.Texts) != 2 || out.Texts[0] != "Activo" || out.Texts[1] != "90% más" {
		t.Errorf("texts = %q", out.Texts)
	}

	if resp := do(t, app, http.MethodPost, "/sanitize", []byte(`{}`)); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("empty request status = %d", resp.StatusCode)
	}
}

func TestKindsAndSchema(t *testing.T) {
	app := newApp(t, nil)
	var kinds struct {
		Kinds []map[string]string `json:"kinds"`
	}
	decodeJSON(t, do(t, app, http.MethodGet, "/reports", nil), &kinds)
	if len(kinds.Kinds) != len(talentpdf.Kinds()) {
		t.Errorf("got %d kinds", len(kinds.Kinds))
	}

	resp := do(t, app, http.MethodGet, "/reports/client/schema", nil)
	if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "application/schema+json" {
		t.Fatalf("schema status = %d, type %q", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}
	var schema map[string]any
	decodeJSON(t, resp, &schema)
	if schema["type"] != "object" {
		t.Errorf("schema = %v", schema)
	}
}

func TestUnknownRouteIsJSON(t *testing.T) {
	app := newApp(t, nil)
	resp := do(t, app, http.MethodGet, "/nope", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	decodeJSON(t, resp, &body)
	if body["error"] == "" {
		t.Errorf("body = %v", body)
	}
}

func TestGenerationIsAudited(t *testing.T) {
	db := &fakeDB{}
	app := newApp(t, audit.New(db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	req := httptest.NewRequest(http.MethodPost, "/reports/timeline", bytes.NewReader(sample(t, "timeline.json")))
	req.Header.Set(fiber.HeaderXRequestID, "req-audit")
	if _, err := app.Test(req, -1); err != nil {
		t.Fatal(err)
	}
	do(t, app, http.MethodPost, "/reports/candidates-by-profile", []byte(`{"candidatos": []}`))

	if len(db.args) != 2 {
		t.Fatalf("got %d audit rows, want 2", len(db.args))
	}
	ok := db.args[0]
	if ok[1] != "req-audit" || ok[2] != "timeline" || ok[4].(int) < 1 {
		t.Errorf("success row = %v", ok[:5])
	}
	if s, _ := ok[8].(*string); s != nil {
		t.Errorf("success row has error %q", *s)
	}
	failed := db.args[1]
	if s, _ := failed[8].(*string); s == nil || !strings.Contains(*s, "invalid report payload") {
		t.Errorf("failed row error = %v", failed[8])
	}
}
