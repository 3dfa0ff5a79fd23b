// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValues_OrderedAndComplete(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() len = %d, want %d", len(vals), len(issues))
	}
	for i, v := range vals {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", v.Id())
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	if Get(JavaNotFoundId) != javaNotFoundIssue {
		t.Error("Get(JavaNotFoundId) returned the wrong issue")
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(ClasspathEmptyId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "classpath is empty") {
		t.Errorf("Render() missing heading:\n%s", out)
	}
	if !strings.Contains(out, "github.com/openjdk/jmh") {
		t.Errorf("Render() missing doc link:\n%s", out)
	}
}

func TestIssue_DocLinksIsCopy(t *testing.T) {
	t.Parallel()

	links := Get(BenchmarkFailedId).DocLinks()
	links[0] = "changed"
	if Get(BenchmarkFailedId).DocLinks()[0] == "changed" {
		t.Error("DocLinks() should return a copy")
	}
}
