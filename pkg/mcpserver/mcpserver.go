// Package mcpserver exposes the clipboard reader over the Model Context
// Protocol: one tool returning the current contents and one resource that
// serves the same contents by URI.
package mcpserver

import (
	"context"

	"macclip/pkg/content"
	"macclip/pkg/logger"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName    = "getClipboardContents"
	ResourceURI = "clipboard://contents"

	toolDescription = "Fetch the contents of the clipboard (text, images, or binary data). " +
		"Used to see what is on the clipboard. IMPORTANT: This tool should be called every time " +
		"clipboard contents are needed as clipboard data can change; results should not be cached."
)

// New creates an MCP server with the clipboard tool and resource registered.
func New(name, version string, reader *content.Reader) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)
	Register(srv, reader)
	return srv
}

// Register adds the clipboard tool and resource to srv.
func Register(srv *mcp.Server, reader *content.Reader) {
	h := &handler{reader: reader}

	srv.AddTool(&mcp.Tool{
		Name:        ToolName,
		Description: toolDescription,
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:        "Get clipboard contents",
			ReadOnlyHint: true,
		},
	}, h.getClipboardContents)

	srv.AddResource(&mcp.Resource{
		URI:         ResourceURI,
		Name:        "clipboard",
		Title:       "Clipboard contents",
		Description: "Current clipboard contents. Read again whenever needed; the clipboard can change at any time.",
	}, h.readClipboard)
}

type handler struct {
	reader *content.Reader
}

func (h *handler) getClipboardContents(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := h.reader.Read(ctx)
	if err != nil {
		logger.Error().Err(err).Str("tool", ToolName).Msg("tool call failed")
		var res mcp.CallToolResult
		res.SetError(err)
		return &res, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{toolContent(c)},
	}, nil
}

func (h *handler) readClipboard(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	c, err := h.reader.Read(ctx)
	if err != nil {
		logger.Error().Err(err).Str("resource", ResourceURI).Msg("resource read failed")
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{resourceContents(c)},
	}, nil
}

func toolContent(c content.Content) mcp.Content {
	switch v := c.(type) {
	case content.Text:
		return &mcp.TextContent{Text: v.Text}
	case content.Image:
		return &mcp.ImageContent{Data: blob(v.Data), MIMEType: v.MIMEType}
	default:
		return &mcp.EmbeddedResource{Resource: resourceContents(c)}
	}
}

func resourceContents(c content.Content) *mcp.ResourceContents {
	rc := &mcp.ResourceContents{
		URI:      ResourceURI,
		MIMEType: c.MediaType(),
	}
	if t, ok := c.(content.Text); ok {
		rc.Text = t.Text
	} else {
		rc.Blob = blob(c.Bytes())
	}
	return rc
}

// blob keeps empty payloads non-nil so they marshal as a blob, not as text.
func blob(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
