// Package server implements the MCP (Model Context Protocol) server for the
// polaroid rendering tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the two
// compositions from internal/render to MCP-compatible clients, typically
// the memory-album application that supplies photo sources and per-decade
// captions.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - render_polaroid: one photo + caption -> 640x853 framed polaroid
//   - render_album: nine decade/photo pairs -> 3720x5262 titled grid page
//
// Both return a RenderResult whose image_data_url field carries the
// finished JPEG as a data URL.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A failed image load or a wrong entry count fails the whole tool call;
// no partial image is ever returned.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
