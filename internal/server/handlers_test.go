package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/memorylane/polaroid-render-mcp/internal/render"
)

// testDataURL builds a small solid-color PNG data URL.
func testDataURL(t *testing.T, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 24, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestExecuteTool_RenderPolaroid(t *testing.T) {
	s := New()

	args, _ := json.Marshal(map[string]string{
		"image":   testDataURL(t, color.NRGBA{0, 128, 255, 255}),
		"caption": "Winter 1983",
	})

	result, err := s.executeTool("render_polaroid", args)
	if err != nil {
		t.Fatalf("render_polaroid failed: %v", err)
	}

	rr, ok := result.(*RenderResult)
	if !ok {
		t.Fatalf("result type: got %T, want *RenderResult", result)
	}
	if rr.Width != render.PolaroidWidth || rr.Height != render.PolaroidHeight {
		t.Errorf("dimensions: got %dx%d, want %dx%d", rr.Width, rr.Height, render.PolaroidWidth, render.PolaroidHeight)
	}
	if rr.MimeType != "image/jpeg" {
		t.Errorf("MimeType: got %s, want image/jpeg", rr.MimeType)
	}
	if !strings.HasPrefix(rr.ImageDataURL, "data:image/jpeg;base64,") {
		t.Error("ImageDataURL is not a JPEG data URL")
	}
}

func TestExecuteTool_RenderPolaroid_MissingImage(t *testing.T) {
	s := New()

	_, err := s.executeTool("render_polaroid", json.RawMessage(`{"caption":"no photo"}`))
	if err == nil {
		t.Fatal("render_polaroid should fail without an image")
	}
}

func TestExecuteTool_RenderPolaroid_BadSource(t *testing.T) {
	s := New()

	args, _ := json.Marshal(map[string]string{
		"image":   "data:image/png;base64,!!!",
		"caption": "broken",
	})
	_, err := s.executeTool("render_polaroid", args)
	if err == nil {
		t.Fatal("render_polaroid should fail for an undecodable source")
	}
}

func TestExecuteTool_RenderAlbum(t *testing.T) {
	s := New()

	type entry struct {
		Decade string `json:"decade"`
		Image  string `json:"image"`
	}
	entries := make([]entry, render.AlbumCells)
	for i := range entries {
		entries[i] = entry{
			Decade: fmt.Sprintf("%d0s", 193+i),
			Image:  testDataURL(t, color.NRGBA{uint8(i * 28), 80, 200, 255}),
		}
	}
	args, _ := json.Marshal(map[string]interface{}{
		"entries": entries,
		"title":   "The Harrisons",
	})

	result, err := s.executeTool("render_album", args)
	if err != nil {
		t.Fatalf("render_album failed: %v", err)
	}

	rr, ok := result.(*RenderResult)
	if !ok {
		t.Fatalf("result type: got %T, want *RenderResult", result)
	}
	if rr.Width != render.AlbumWidth || rr.Height != render.AlbumHeight {
		t.Errorf("dimensions: got %dx%d, want %dx%d", rr.Width, rr.Height, render.AlbumWidth, render.AlbumHeight)
	}
}

func TestExecuteTool_RenderAlbum_WrongCount(t *testing.T) {
	s := New()

	args := json.RawMessage(fmt.Sprintf(`{"entries":[{"decade":"1950s","image":"%s"}]}`,
		testDataURL(t, color.NRGBA{255, 0, 0, 255})))

	_, err := s.executeTool("render_album", args)
	if err == nil {
		t.Fatal("render_album should reject a non-9 entry count")
	}
	if !strings.Contains(err.Error(), "exactly 9") {
		t.Errorf("error: got %q, want entry count mentioned", err)
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := New()

	_, err := s.executeTool("image_crop", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("unknown tool should fail")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`not json`),
	})
	if resp == nil || resp.Error == nil {
		t.Fatal("invalid params should return an error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_WrapsContent(t *testing.T) {
	s := New()

	params, _ := json.Marshal(map[string]interface{}{
		"name": "render_polaroid",
		"arguments": map[string]string{
			"image":   testDataURL(t, color.NRGBA{200, 200, 0, 255}),
			"caption": "Spring 1999",
		},
	})

	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil {
		t.Fatal("tools/call returned nil response")
	}
	if resp.Error != nil {
		t.Fatalf("tools/call failed: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type: got %T, want map", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v, want one text block", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}

	var rr RenderResult
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &rr); err != nil {
		t.Fatalf("content text is not a RenderResult: %v", err)
	}
	if rr.Width != render.PolaroidWidth {
		t.Errorf("width: got %d, want %d", rr.Width, render.PolaroidWidth)
	}
}

func TestHandleToolsCall_ToolFailure(t *testing.T) {
	s := New()

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "render_polaroid",
		"arguments": map[string]string{"image": "ftp://nope", "caption": ""},
	})

	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil || resp.Error == nil {
		t.Fatal("tool failure should return an error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}
