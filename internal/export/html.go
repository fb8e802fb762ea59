// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gutil "github.com/yuin/goldmark/util"
)

// Chroma styles per page theme.
const (
	codeStyleDark  = "monokai"
	codeStyleLight = "github"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports transcripts to a self-contained HTML page. Message
// bodies are converted with goldmark, fenced code is highlighted with chroma
// and the result is sanitized with bluemonday.
type HTMLExporter struct {
	options  *Options
	markdown *MarkdownExporter
	md       goldmark.Markdown
	code     *codeRenderer
	policy   *bluemonday.Policy
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}

	styleName := codeStyleDark
	if opts.Theme == "light" {
		styleName = codeStyleLight
	}
	code := newCodeRenderer(styleName)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			// Lower priority values run first; the default HTML renderer is 1000.
			renderer.WithNodeRenderers(gutil.Prioritized(code, 200)),
		),
	)

	return &HTMLExporter{
		options:  opts,
		markdown: NewMarkdownExporter(opts),
		md:       md,
		code:     code,
		policy:   sanitizePolicy(),
	}
}

// sanitizePolicy allows user-generated content plus chroma's class names.
// SECURITY: reference links open in a new tab without leaking the referrer.
func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Export converts a transcript to HTML format.
func (e *HTMLExporter) Export(t *Transcript) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(t.Title)))
	sb.WriteString("    <meta name=\"generator\" content=\"concierge\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", t.ExportedAt.Format(time.RFC3339)))

	css, err := e.getCSS()
	if err != nil {
		return nil, err
	}
	sb.WriteString(css)

	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", e.theme()))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(t))
	}

	sb.WriteString("        <main class=\"conversation\">\n")
	for i := range t.Messages {
		msg, err := e.renderMessage(&t.Messages[i])
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		sb.WriteString(msg)
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	sb.WriteString(fmt.Sprintf("            <p>Exported from <strong>concierge</strong> on %s</p>\n",
		t.ExportedAt.Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

func (e *HTMLExporter) theme() string {
	if e.options.Theme == "light" {
		return "light"
	}
	return "dark"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// renderHeader renders the header section with metadata.
func (e *HTMLExporter) renderHeader(t *Transcript) string {
	var sb strings.Builder

	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", html.EscapeString(t.Title)))
	sb.WriteString("            <div class=\"metadata\">\n")
	if t.ID != "" {
		sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Conversation:</strong> %s</span>\n", html.EscapeString(t.ID)))
	}
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Exported:</strong> %s</span>\n", formatTimestamp(t.ExportedAt)))
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Messages:</strong> %d</span>\n", len(t.Messages)))
	sb.WriteString("            </div>\n")
	sb.WriteString("        </header>\n")

	return sb.String()
}

// renderMessage renders a single message.
func (e *HTMLExporter) renderMessage(msg *Entry) (string, error) {
	body, err := e.RenderBody(msg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("            <div class=\"message %s-message\">\n", roleClass(msg.Role)))
	sb.WriteString("                <div class=\"message-header\">\n")
	sb.WriteString(fmt.Sprintf("                    <span class=\"role-label\">%s</span>\n", html.EscapeString(msg.Role.DisplayName())))
	if e.options.IncludeTimestamps && !msg.Timestamp.IsZero() {
		sb.WriteString(fmt.Sprintf("                    <span class=\"timestamp\">%s</span>\n", formatShortTimestamp(msg.Timestamp)))
	}
	sb.WriteString("                </div>\n")
	sb.WriteString("                <div class=\"message-content\">\n")
	sb.WriteString(body)
	sb.WriteString("                </div>\n")
	sb.WriteString("            </div>\n")
	return sb.String(), nil
}

// RenderBody converts one message to sanitized HTML. References become
// anchors pointing at their links.
func (e *HTMLExporter) RenderBody(msg *Entry) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(e.markdown.MessageBody(msg)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return e.policy.Sanitize(buf.String()), nil
}

// =============================================================================
// CODE HIGHLIGHTING
// =============================================================================

// codeRenderer renders fenced code blocks through chroma.
type codeRenderer struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newCodeRenderer(styleName string) *codeRenderer {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &codeRenderer{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *codeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *codeRenderer) renderFencedCode(w gutil.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	var lang string
	if n.Info != nil {
		lang = string(n.Language(source))
	}

	if err := r.highlight(w, lang, code.String()); err != nil {
		// Unhighlighted fallback.
		_, _ = w.WriteString("<pre><code>")
		_, _ = w.Write(gutil.EscapeHTML(code.Bytes()))
		_, _ = w.WriteString("</code></pre>\n")
	}
	return ast.WalkSkipChildren, nil
}

// highlight writes code as classed chroma HTML.
func (r *codeRenderer) highlight(w gutil.BufWriter, lang, code string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return err
	}

	// Render to a buffer first so a failure leaves w untouched.
	var out bytes.Buffer
	if err := r.formatter.Format(&out, r.style, iterator); err != nil {
		return err
	}
	_, err = w.Write(out.Bytes())
	return err
}

// =============================================================================
// EMBEDDED CSS
// =============================================================================

// getCSS returns the page CSS followed by the chroma classes for the theme.
func (e *HTMLExporter) getCSS() (string, error) {
	var chromaCSS bytes.Buffer
	if err := e.code.formatter.WriteCSS(&chromaCSS, e.code.style); err != nil {
		return "", fmt.Errorf("write code css: %w", err)
	}

	return `    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            --font-mono: "SF Mono", "Monaco", "Inconsolata", "Fira Code", "Source Code Pro", monospace;
        }

        .dark-theme {
            --bg-primary: #1a1b26;
            --bg-secondary: #24283b;
            --bg-tertiary: #414868;
            --text-primary: #c0caf5;
            --text-muted: #565f89;
            --border-color: #414868;
            --user-bg: #1f2335;
            --accent: #7aa2f7;
        }

        .light-theme {
            --bg-primary: #ffffff;
            --bg-secondary: #f7f8fa;
            --bg-tertiary: #e1e4e8;
            --text-primary: #24292e;
            --text-muted: #6a737d;
            --border-color: #e1e4e8;
            --user-bg: #f6f8fa;
            --accent: #0366d6;
        }

        body {
            font-family: var(--font-sans);
            line-height: 1.6;
            color: var(--text-primary);
            background: var(--bg-primary);
            padding: 20px;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            background: var(--bg-secondary);
            border-radius: 12px;
            overflow: hidden;
        }

        .header { padding: 32px; background: var(--bg-tertiary); }
        .header h1 { font-size: 26px; margin-bottom: 12px; }
        .metadata { display: flex; flex-wrap: wrap; gap: 16px; font-size: 14px; color: var(--text-muted); }

        .conversation { padding: 24px 32px; }
        .message { padding: 16px 20px; margin-bottom: 16px; border-radius: 8px; border: 1px solid var(--border-color); }
        .user-message { background: var(--user-bg); }
        .message-header { display: flex; justify-content: space-between; margin-bottom: 8px; font-weight: 600; }
        .timestamp { font-weight: 400; font-size: 13px; color: var(--text-muted); }
        .message-content p { margin: 8px 0; }
        .message-content ul, .message-content ol { margin: 8px 0 8px 24px; }
        .message-content a { color: var(--accent); text-decoration: none; }
        .message-content a:hover { text-decoration: underline; }
        .message-content code { font-family: var(--font-mono); font-size: 14px; }
        .message-content pre { padding: 12px; margin: 8px 0; border-radius: 6px; overflow-x: auto; }

        .footer { padding: 16px 32px; font-size: 13px; color: var(--text-muted); border-top: 1px solid var(--border-color); }

        @media print {
            .message { page-break-inside: avoid; }
        }
` + chromaCSS.String() + `    </style>
`, nil
}
