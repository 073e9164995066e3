// Command docsgen renders the package docs and the invocation node catalog as one HTML page.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	invoke "github.com/invokego/invoke-go"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "build/docs", "Output directory")
	flag.Parse()

	version := os.Getenv("VERSION")
	if strings.TrimSpace(version) == "" {
		version = "0.0.0"
	}

	// Use `go doc` to generate documentation from GoDoc comments.
	pkgs, err := goListPackages()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: go list failed: %v\n", err)
		os.Exit(1)
	}

	var docBuf strings.Builder
	for _, pkg := range pkgs {
		out, err := goDocPackage(pkg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "docsgen: go doc failed for %s: %v\n", pkg, err)
			os.Exit(1)
		}
		docBuf.WriteString("\n=== ")
		docBuf.WriteString(pkg)
		docBuf.WriteString(" ===\n\n")
		docBuf.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			docBuf.WriteString("\n")
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: mkdir: %v\n", err)
		os.Exit(1)
	}

	page := renderPage(version, renderCatalog(invoke.NodeSpecs()), docBuf.String())
	outPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "docsgen: write: %v\n", err)
		os.Exit(1)
	}
}

func renderPage(version, catalog, docText string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>invoke-go Docs (v%s)</title>
  <style>
    :root { color-scheme: light dark; }
    body { max-width: 960px; margin: 0 auto; padding: 24px; font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; }
    h1 { margin: 0 0 12px; }
    pre { padding: 12px; overflow: auto; border: 1px solid rgba(127,127,127,0.35); border-radius: 8px; }
    code { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace; }
    table { border-collapse: collapse; margin: 0 0 18px; }
    td, th { padding: 4px 10px; border-bottom: 1px solid rgba(127,127,127,0.35); text-align: left; }
    .meta { opacity: 0.8; margin: 0 0 18px; }
  </style>
</head>
<body>
  <h1>invoke-go</h1>
  <p class="meta">Version: <code>%s</code></p>
  <h2>Node catalog</h2>
%s
  <h2>Packages</h2>
  <p class="meta">Generated from <code>go doc</code>.</p>
  <pre><code>%s</code></pre>
</body>
</html>
`, html.EscapeString(version), html.EscapeString(version), catalog, html.EscapeString(docText))
}

// categoryTitle turns "model-loader" into "Model Loader".
func categoryTitle(c invoke.NodeCategory) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

// renderCatalog lists specs grouped by category, in invoke.NodeCategories order.
func renderCatalog(specs []invoke.NodeSpec) string {
	byCategory := map[invoke.NodeCategory][]invoke.NodeSpec{}
	for _, s := range specs {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	var b strings.Builder
	for _, c := range invoke.NodeCategories() {
		group := byCategory[c]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  <h3>%s</h3>\n  <table>\n    <tr><th>type</th><th>Go type</th><th>output</th></tr>\n",
			html.EscapeString(categoryTitle(c)))
		for _, s := range group {
			fmt.Fprintf(&b, "    <tr><td><code>%s</code></td><td><code>%s</code></td><td><code>%s</code></td></tr>\n",
				html.EscapeString(s.Type), html.EscapeString(s.Component), html.EscapeString(s.Output))
		}
		b.WriteString("  </table>\n")
	}
	return b.String()
}

func goListPackages() ([]string, error) {
	cmd := exec.Command("go", "list", "./...")
	cmd.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	lines := strings.Split(stdout.String(), "\n")
	pkgs := make([]string, 0, len(lines))
	for _, line := range lines {
		p := strings.TrimSpace(line)
		if p == "" || strings.HasSuffix(p, "/generated") {
			continue
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

func goDocPackage(pkg string) (string, error) {
	cmd := exec.Command("go", "doc", "-all", pkg)
	cmd.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
