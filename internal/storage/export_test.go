// ABOUTME: Tests for export/import round trips.
// ABOUTME: Verifies JSON round trip and Markdown output shape.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/talent/internal/models"
)

func seedStore(t *testing.T) Store {
	t.Helper()
	s := NewMemory()
	_ = s.SaveProfile(models.NewUserProfile("Ravi", 17, "male", "Punjab"))
	_ = s.AppendResult(models.NewTestRecord(models.TestVerticalJump, 62, models.TierGood))
	_ = s.AppendResult(models.NewTestRecord(models.TestSitUps, 45, models.TierGood))
	_ = s.SaveEarnedBadge(models.EarnedBadge{ID: "first_test", Name: "First Steps", EarnedDate: time.Now()})
	return s
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := seedStore(t)

	raw, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}

	dst := NewMemory()
	if err := ImportJSON(dst, raw); err != nil {
		t.Fatalf("import json: %v", err)
	}

	results, _ := dst.ListResults()
	if len(results) != 2 {
		t.Fatalf("got %d results after import, want 2", len(results))
	}
	if results[0].TestType != models.TestVerticalJump {
		t.Error("import lost log order")
	}
	p, _ := dst.GetProfile()
	if p == nil || p.Name != "Ravi" {
		t.Error("profile missing after import")
	}
	badges, _ := dst.ListEarnedBadges()
	if len(badges) != 1 || badges[0].ID != "first_test" {
		t.Error("badges missing after import")
	}
}

func TestExportYAML(t *testing.T) {
	raw, err := ExportYAML(seedStore(t))
	if err != nil {
		t.Fatalf("export yaml: %v", err)
	}
	if !strings.Contains(string(raw), "tool: talent") {
		t.Error("yaml export missing tool marker")
	}
}

func TestExportMarkdown(t *testing.T) {
	md, err := ExportMarkdown(seedStore(t))
	if err != nil {
		t.Fatalf("export markdown: %v", err)
	}
	for _, want := range []string{"## Results", "Vertical Jump", "## Badges", "First Steps"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown export missing %q", want)
		}
	}
}
