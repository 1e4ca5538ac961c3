package placeholder_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/doitintl/cmp-bq-sql-generator/internal/placeholder"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		project  string
		region   string
		dataset  string
		input    string
		expected string
		counts   placeholder.Counts
	}{
		{
			name:     "all tokens",
			project:  "acme",
			region:   "us-east1",
			dataset:  "billing",
			input:    "SELECT * FROM <project-name>.<dataset>.logs WHERE region = '<dataset-region>'",
			expected: "SELECT * FROM acme.billing.logs WHERE region = 'us-east1'",
			counts: placeholder.Counts{
				placeholder.ProjectToken: 1,
				placeholder.RegionToken:  1,
				placeholder.DatasetToken: 1,
			},
		},
		{
			name:     "repeated tokens",
			project:  "p",
			region:   "r",
			dataset:  "d",
			input:    "<dataset><dataset> `<project-name>.region-x`.<project-name>",
			expected: "dd `p.region-x`.p",
			counts: placeholder.Counts{
				placeholder.ProjectToken: 2,
				placeholder.RegionToken:  0,
				placeholder.DatasetToken: 2,
			},
		},
		{
			name:     "no tokens",
			project:  "p",
			region:   "r",
			dataset:  "d",
			input:    "SELECT 1",
			expected: "SELECT 1",
			counts: placeholder.Counts{
				placeholder.ProjectToken: 0,
				placeholder.RegionToken:  0,
				placeholder.DatasetToken: 0,
			},
		},
		{
			name:     "project value containing a later token",
			project:  "x-<dataset>",
			region:   "r",
			dataset:  "d",
			input:    "<project-name>",
			expected: "x-d",
			counts: placeholder.Counts{
				placeholder.ProjectToken: 1,
				placeholder.RegionToken:  0,
				placeholder.DatasetToken: 1,
			},
		},
		{
			name:     "near misses are left alone",
			project:  "p",
			region:   "r",
			dataset:  "d",
			input:    "<dataset-name> <Project-Name> <dataset",
			expected: "<dataset-name> <Project-Name> <dataset",
			counts: placeholder.Counts{
				placeholder.ProjectToken: 0,
				placeholder.RegionToken:  0,
				placeholder.DatasetToken: 0,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := placeholder.New(tt.project, tt.region, tt.dataset)
			got, counts := s.Apply(tt.input)

			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if !reflect.DeepEqual(counts, tt.counts) {
				t.Errorf("expected counts %v, got %v", tt.counts, counts)
			}
		})
	}
}

func TestApplyLeavesNoTokens(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("<project-name>.<dataset-region>.<dataset>\n", 50)
	got, _ := placeholder.New("acme", "region-eu", "billing").Apply(input)

	if left := placeholder.Remaining(got); len(left) != 0 {
		t.Fatalf("expected no remaining tokens, got %v", left)
	}
	if strings.Count(got, "acme.region-eu.billing") != 50 {
		t.Errorf("expected 50 substituted lines, got %q", got)
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	got := placeholder.Remaining("<dataset> and <project-name>")
	want := []string{placeholder.ProjectToken, placeholder.DatasetToken}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := placeholder.Remaining("nothing here"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
