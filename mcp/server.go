// Package mcp implements a Model Context Protocol (MCP) server that exposes
// recruitment report generation as tools and resources for assistants.
//
// The server speaks JSON-RPC 2.0 over stdio, one message per line, and
// implements the tools and resources parts of MCP (2024-11-05).
//
// # Usage
//
// Register the binary with an MCP client:
//
//	{
//	  "mcpServers": {
//	    "talentpdf": {
//	      "command": "talentpdf-mcp",
//	      "args": ["-locale", "es"]
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
)

// ServerName is reported to clients during initialize.
const ServerName = "talentpdf-mcp"

// Version is the server version reported to clients.
var Version = "0.3.0"

// Server is an MCP server that handles JSON-RPC 2.0 messages.
type Server struct {
	tools     map[string]Tool
	resources map[string]Resource
	input     io.Reader
	output    io.Writer
	log       *slog.Logger
	opts      []talentpdf.Option
	mu        sync.Mutex
}

// Tool defines an MCP tool that can be called by the client.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     ToolHandler    `json:"-"`
}

// ToolHandler executes a tool with the given arguments.
type ToolHandler func(args map[string]any) (ToolResult, error)

// ToolResult is the result returned by a tool execution.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is a piece of content in a tool result.
type ContentBlock struct {
	Type     string `json:"type"` // "text" or "resource"
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64 for binary
}

// Resource defines an MCP resource. Query parameters are passed through to
// the handler: report://schema?kind=client is served by report://schema.
type Resource struct {
	URI         string          `json:"uri"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Handler     ResourceHandler `json:"-"`
}

// ResourceHandler reads a resource and returns its content.
type ResourceHandler func(uri string) ([]ResourceContent, error)

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Logs must not go to the protocol stream.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReportOptions sets the generation options every tool starts from,
// such as brand, locale or verification. Tool arguments are applied on top.
func WithReportOptions(opts ...talentpdf.Option) Option {
	return func(s *Server) {
		s.opts = append(s.opts, opts...)
	}
}

// NewServer creates a server reading from stdin and writing to stdout.
func NewServer(opts ...Option) *Server {
	return NewServerWithIO(os.Stdin, os.Stdout, opts...)
}

// NewServerWithIO creates a server with custom I/O for testing.
func NewServerWithIO(in io.Reader, out io.Writer, opts ...Option) *Server {
	s := &Server{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
		input:     in,
		output:    out,
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddTool registers a tool with the server.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// AddResource registers a resource with the server.
func (s *Server) AddResource(r Resource) {
	s.resources[r.URI] = r
}

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// protocolVersion is the MCP revision the server implements.
const protocolVersion = "2024-11-05"

// Run processes messages until EOF. Each line carries one request.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.input)
	// report payloads and base64 PDFs can be large
	scanner.Buffer(make([]byte, 0, 1024*1024), 32*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req jsonrpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("mcp: parse error", "err", err)
			s.reply(nil, nil, &jsonrpcError{Code: codeParseError, Message: "Parse error", Data: err.Error()})
			continue
		}
		s.dispatch(req)
	}
	return scanner.Err()
}

type methodFunc func(s *Server, params json.RawMessage) (any, *jsonrpcError)

var methods = map[string]methodFunc{
	"initialize":     (*Server).initialize,
	"ping":           func(*Server, json.RawMessage) (any, *jsonrpcError) { return map[string]any{}, nil },
	"tools/list":     (*Server).listTools,
	"tools/call":     (*Server).callTool,
	"resources/list": (*Server).listResources,
	"resources/read": (*Server).readResource,
}

func (s *Server) dispatch(req jsonrpcRequest) {
	s.log.Debug("mcp: request", "method", req.Method)
	if req.ID == nil || strings.HasPrefix(req.Method, "notifications/") || req.Method == "initialized" {
		// notifications get no response
		return
	}
	m, ok := methods[req.Method]
	if !ok {
		s.reply(req.ID, nil, &jsonrpcError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method})
		return
	}
	result, rpcErr := m(s, req.Params)
	s.reply(req.ID, result, rpcErr)
}

func invalidParams(msg string, data any) *jsonrpcError {
	return &jsonrpcError{Code: codeInvalidParams, Message: msg, Data: data}
}

func decodeParams(raw json.RawMessage, v any) *jsonrpcError {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return invalidParams("Invalid params", err.Error())
	}
	return nil
}

func (s *Server) initialize(json.RawMessage) (any, *jsonrpcError) {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": Version,
		},
	}, nil
}

// listTools returns the tools sorted by name.
func (s *Server) listTools(json.RawMessage) (any, *jsonrpcError) {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, s.tools[name])
	}
	return map[string]any{"tools": tools}, nil
}

func (s *Server) callTool(raw json.RawMessage) (any, *jsonrpcError) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if rpcErr := decodeParams(raw, &params); rpcErr != nil {
		return nil, rpcErr
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		return nil, invalidParams("Unknown tool", params.Name)
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	result, err := tool.Handler(params.Arguments)
	if err != nil {
		// tool failures are results, not protocol errors
		s.log.Warn("mcp: tool failed", "tool", params.Name, "err", err)
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}, nil
	}
	return result, nil
}

// listResources returns the resources sorted by URI.
func (s *Server) listResources(json.RawMessage) (any, *jsonrpcError) {
	uris := make([]string, 0, len(s.resources))
	for uri := range s.resources {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	resources := make([]Resource, 0, len(uris))
	for _, uri := range uris {
		resources = append(resources, s.resources[uri])
	}
	return map[string]any{"resources": resources}, nil
}

func (s *Server) readResource(raw json.RawMessage) (any, *jsonrpcError) {
	var params struct {
		URI string `json:"uri"`
	}
	if rpcErr := decodeParams(raw, &params); rpcErr != nil {
		return nil, rpcErr
	}
	base, _, _ := strings.Cut(params.URI, "?")
	resource, ok := s.resources[base]
	if !ok {
		return nil, invalidParams("Unknown resource", params.URI)
	}
	contents, err := resource.Handler(params.URI)
	if err != nil {
		return nil, &jsonrpcError{Code: codeInternalError, Message: "Resource error", Data: err.Error()}
	}
	return map[string]any{"contents": contents}, nil
}

func (s *Server) reply(id *json.RawMessage, result any, rpcErr *jsonrpcError) {
	resp := jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result, Error: rpcErr}
	if rpcErr != nil {
		resp.Result = nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("mcp: encoding response", "err", err)
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.output.Write(data); err != nil {
		s.log.Error("mcp: writing response", "err", err)
	}
}
