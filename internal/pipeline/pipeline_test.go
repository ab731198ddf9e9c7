package pipeline

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matijazezelj/cfimport/internal/config"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
)

func testConfig() *config.Config {
	return &config.Config{
		Files: config.FilesConfig{
			VPCs:           "vpcs.json",
			SecurityGroups: "security-groups.json",
			Instances:      "ec2-instances.json",
		},
		Output: config.OutputConfig{
			File:   "cloudformation-template.json",
			Format: "json",
		},
		Template: config.TemplateConfig{
			Description: "Imported AWS Infrastructure",
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// exportDir copies the testdata fixtures into a scratch directory so the run
// can write its output next to them.
func exportDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join("testdata", "export", name))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun_FullExport(t *testing.T) {
	dir := exportDir(t, "vpcs.json", "security-groups.json", "ec2-instances.json")

	p := New(testConfig(), testLogger())
	r, err := p.Run(Request{Dir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 1 VPC + 1 non-default security group + 2 instances.
	if r.Total != 4 {
		t.Errorf("total = %d, want 4", r.Total)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", r.Warnings)
	}

	wantCounts := map[string]int{
		"AWS::EC2::VPC":           1,
		"AWS::EC2::SecurityGroup": 1,
		"AWS::EC2::Instance":      2,
	}
	for _, c := range r.Counts {
		if c.Count != wantCounts[c.Type] {
			t.Errorf("%s count = %d, want %d", c.Type, c.Count, wantCounts[c.Type])
		}
	}

	data, err := os.ReadFile(r.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	var tmpl map[string]any
	if err := json.Unmarshal(data, &tmpl); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if tmpl["AWSTemplateFormatVersion"] != "2010-09-09" {
		t.Errorf("format version = %v", tmpl["AWSTemplateFormatVersion"])
	}

	resources := tmpl["Resources"].(map[string]any)
	for _, name := range []string{"VPCvpc0a1b2c3d", "SecurityGroupsg0f1e2d3c", "EC2Instancei0abc111", "EC2Instancei0abc222"} {
		if _, ok := resources[name]; !ok {
			t.Errorf("missing resource %s", name)
		}
	}
	if _, ok := resources["SecurityGroupsg11223344"]; ok {
		t.Error("default security group must not be in the output")
	}

	// The ssh rule carries two ranges and must fan out into two entries.
	sg := resources["SecurityGroupsg0f1e2d3c"].(map[string]any)
	ingress := sg["Properties"].(map[string]any)["SecurityGroupIngress"].([]any)
	if len(ingress) != 3 {
		t.Errorf("ingress entries = %d, want 3", len(ingress))
	}
}

func TestRun_AllFilesAbsent(t *testing.T) {
	dir := t.TempDir()

	p := New(testConfig(), testLogger())
	r, err := p.Run(Request{Dir: dir})
	if err != nil {
		t.Fatalf("missing export files must not fail the run: %v", err)
	}

	if r.Total != 0 {
		t.Errorf("total = %d, want 0", r.Total)
	}
	if len(r.Warnings) != 3 {
		t.Errorf("warnings = %d, want 3", len(r.Warnings))
	}

	data, err := os.ReadFile(filepath.Join(dir, "cloudformation-template.json"))
	if err != nil {
		t.Fatalf("output template should still be written: %v", err)
	}
	var tmpl struct {
		Resources map[string]any `json:"Resources"`
	}
	if err := json.Unmarshal(data, &tmpl); err != nil {
		t.Fatal(err)
	}
	if tmpl.Resources == nil {
		t.Error("Resources should be an empty mapping, not null")
	}
	if len(tmpl.Resources) != 0 {
		t.Errorf("resources = %d, want 0", len(tmpl.Resources))
	}
}

func TestRun_MalformedFileDegrades(t *testing.T) {
	dir := exportDir(t, "vpcs.json")
	if err := os.WriteFile(filepath.Join(dir, "security-groups.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(testConfig(), testLogger())
	r, err := p.Run(Request{Dir: dir})
	if err != nil {
		t.Fatalf("malformed export file must not fail the run: %v", err)
	}

	// The VPC still converts; the broken category and the absent one warn.
	if r.Total != 1 {
		t.Errorf("total = %d, want 1", r.Total)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2 entries", r.Warnings)
	}
}

func TestRun_NonexistentDir(t *testing.T) {
	p := New(testConfig(), testLogger())
	if _, err := p.Run(Request{Dir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatal("nonexistent directory must be a fatal error")
	}
}

func TestRun_YAMLOutput(t *testing.T) {
	dir := exportDir(t, "vpcs.json")

	p := New(testConfig(), testLogger())
	r, err := p.Run(Request{Dir: dir, Output: "template.yaml", Format: cloudformation.FormatYAML})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(r.OutputPath) != "template.yaml" {
		t.Errorf("output path = %s, want template.yaml", r.OutputPath)
	}

	data, err := os.ReadFile(r.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	var tmpl map[string]any
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if tmpl["AWSTemplateFormatVersion"] != "2010-09-09" {
		t.Errorf("format version = %v", tmpl["AWSTemplateFormatVersion"])
	}
}
