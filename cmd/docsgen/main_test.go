package main

import (
	"strings"
	"testing"

	invoke "github.com/invokego/invoke-go"
)

func TestRenderCatalog_GroupsByCategory(t *testing.T) {
	out := renderCatalog(invoke.NodeSpecs())

	for _, want := range []string{
		"<h3>General</h3>",
		"<h3>Model Loader</h3>",
		"<h3>Control Net</h3>",
		"<td><code>range</code></td><td><code>RangeInvocation</code></td><td><code>integer_collection_output</code></td>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected catalog to contain %q", want)
		}
	}
	if got := strings.Count(out, "<h3>"); got != len(invoke.NodeCategories()) {
		t.Fatalf("expected %d sections, got %d", len(invoke.NodeCategories()), got)
	}
	if strings.Index(out, "<h3>General</h3>") > strings.Index(out, "<h3>Math</h3>") {
		t.Fatalf("expected categories in catalog order")
	}
}

func TestRenderCatalog_SkipsEmptyCategories(t *testing.T) {
	out := renderCatalog([]invoke.NodeSpec{{Type: "range", Category: invoke.NodeCategoryMath, Component: "RangeInvocation"}})
	if strings.Count(out, "<h3>") != 1 || !strings.Contains(out, "<h3>Math</h3>") {
		t.Fatalf("unexpected catalog %q", out)
	}
}

func TestRenderPage_EscapesDocText(t *testing.T) {
	page := renderPage("1.0<beta>", "<table></table>", "func F() <-chan int")
	if !strings.Contains(page, "1.0&lt;beta&gt;") {
		t.Fatalf("expected escaped version")
	}
	if !strings.Contains(page, "&lt;-chan int") {
		t.Fatalf("expected escaped doc text")
	}
	if !strings.Contains(page, "<table></table>") {
		t.Fatalf("expected catalog html kept as is")
	}
}
