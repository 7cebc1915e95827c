// ABOUTME: Export and import functionality for assessment data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/talent/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for assessment data.
type ExportData struct {
	Version    string                      `json:"version" yaml:"version"`
	ExportedAt time.Time                   `json:"exported_at" yaml:"exported_at"`
	Tool       string                      `json:"tool" yaml:"tool"`
	Profile    *models.UserProfile         `json:"profile,omitempty" yaml:"profile,omitempty"`
	Results    []*models.TestRecord        `json:"results" yaml:"results"`
	Badges     []models.EarnedBadge        `json:"badges" yaml:"badges"`
	Pending    []*models.PendingSubmission `json:"pending" yaml:"pending"`
}

// Export collects all data from a store for export.
func Export(s Store) (*ExportData, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	results, err := s.ListResults()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	badges, err := s.ListEarnedBadges()
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	pending, err := s.ListPending()
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "talent",
		Profile:    profile,
		Results:    results,
		Badges:     badges,
		Pending:    pending,
	}, nil
}

// Import writes exported data into a store. Results are appended in export
// order so the log keeps its chronology.
func Import(s Store, data *ExportData) error {
	if data.Profile != nil {
		if err := s.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	for _, r := range data.Results {
		if err := s.AppendResult(r); err != nil {
			return fmt.Errorf("import result: %w", err)
		}
	}
	for _, b := range data.Badges {
		if err := s.SaveEarnedBadge(b); err != nil {
			return fmt.Errorf("import badge: %w", err)
		}
	}
	for _, p := range data.Pending {
		if err := s.UpsertPending(p); err != nil {
			return fmt.Errorf("import pending submission: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(s Store) ([]byte, error) {
	data, err := Export(s)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(s Store, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return Import(s, &data)
}

// ExportYAML exports all data as YAML.
func ExportYAML(s Store) ([]byte, error) {
	data, err := Export(s)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown exports the result log and earned badges as Markdown tables.
func ExportMarkdown(s Store) (string, error) {
	data, err := Export(s)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Assessment Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if data.Profile != nil {
		sb.WriteString(fmt.Sprintf("Athlete: %s (%d, %s, %s)\n\n",
			data.Profile.Name, data.Profile.Age, data.Profile.Gender, data.Profile.Region))
	}

	sb.WriteString("## Results\n\n")
	sb.WriteString("| Date | Test | Score | Tier | Submitted |\n")
	sb.WriteString("|------|------|-------|------|-----------|\n")
	for _, r := range data.Results {
		sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s | %v |\n",
			r.Date.Format("2006-01-02 15:04"),
			models.TestNames[r.TestType], r.Score, r.Tier, r.Submitted))
	}
	sb.WriteString("\n")

	if len(data.Badges) > 0 {
		sb.WriteString("## Badges\n\n")
		sb.WriteString("| Earned | Badge |\n")
		sb.WriteString("|--------|-------|\n")
		for _, b := range data.Badges {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n",
				b.EarnedDate.Format("2006-01-02"), b.Name))
		}
	}

	return sb.String(), nil
}
