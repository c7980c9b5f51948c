package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/memorylane/polaroid-render-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke ("render_polaroid" or "render_album").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// RenderResult is the response payload of both render tools.
type RenderResult struct {
	// ImageDataURL is the finished composition as
	// "data:image/jpeg;base64,...".
	ImageDataURL string `json:"image_data_url"`

	// Width and Height are the output pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// MimeType of the encoded image.
	MimeType string `json:"mime_type"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "render_polaroid":
		return s.handleRenderPolaroid(args)
	case "render_album":
		return s.handleRenderAlbum(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Render Tool Handlers ===

type renderPolaroidArgs struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

func (s *Server) handleRenderPolaroid(args json.RawMessage) (interface{}, error) {
	var a renderPolaroidArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Image == "" {
		return nil, errors.New("image is required")
	}

	dataURL, err := s.polaroid.Render(context.Background(), a.Image, a.Caption)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		ImageDataURL: dataURL,
		Width:        render.PolaroidWidth,
		Height:       render.PolaroidHeight,
		MimeType:     "image/jpeg",
	}, nil
}

type renderAlbumArgs struct {
	Entries []struct {
		Decade string `json:"decade"`
		Image  string `json:"image"`
	} `json:"entries"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

func (s *Server) handleRenderAlbum(args json.RawMessage) (interface{}, error) {
	var a renderAlbumArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	entries := make([]render.Entry, len(a.Entries))
	for i, e := range a.Entries {
		if e.Image == "" {
			return nil, fmt.Errorf("entries[%d]: image is required", i)
		}
		entries[i] = render.Entry{Decade: e.Decade, Source: e.Image}
	}

	// Per-call titles override the defaults without touching the shared
	// renderer.
	album := *s.album
	if a.Title != "" {
		album.Title = a.Title
	}
	if a.Subtitle != "" {
		album.Subtitle = a.Subtitle
	}

	dataURL, err := album.Render(context.Background(), entries)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		ImageDataURL: dataURL,
		Width:        render.AlbumWidth,
		Height:       render.AlbumHeight,
		MimeType:     "image/jpeg",
	}, nil
}
