package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "render_polaroid",
			Description: "Compose one photo and a caption into a framed polaroid image. Returns a 640x853 JPEG data URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": map[string]interface{}{
						"type":        "string",
						"description": "Photo source: an http(s) URL or a base64 data URL (data:image/...;base64,...)",
					},
					"caption": map[string]interface{}{
						"type":        "string",
						"description": "Caption text drawn in the bottom band. Not wrapped or truncated; keep it short.",
					},
				},
				"required": []string{"image", "caption"},
			},
		},
		{
			Name:        "render_album",
			Description: "Compose exactly 9 captioned photos into a titled 3x3 polaroid grid page. Returns a 3720x5262 JPEG data URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"entries": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"decade": map[string]interface{}{
									"type":        "string",
									"description": "Caption label for this cell (e.g. \"1970s\")",
								},
								"image": map[string]interface{}{
									"type":        "string",
									"description": "Photo source: an http(s) URL or a base64 data URL",
								},
							},
							"required": []string{"decade", "image"},
						},
						"description": "Exactly 9 decade/image pairs, in grid order (left to right, top to bottom)",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Optional page title line. Defaults to the renderer's standard title.",
					},
					"subtitle": map[string]interface{}{
						"type":        "string",
						"description": "Optional page subtitle line.",
					},
				},
				"required": []string{"entries"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
