// Package pipeline runs the export-to-template conversion end to end: load
// the three export documents, convert each, merge, and write the assembled
// template.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/matijazezelj/cfimport/internal/config"
	"github.com/matijazezelj/cfimport/internal/convert"
	"github.com/matijazezelj/cfimport/internal/export"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
)

// Request describes one conversion run.
type Request struct {
	Dir    string
	Output string                // output file name; empty means the configured default
	Format cloudformation.Format // empty means the configured default
}

// CategoryCount records how many resources one converter produced.
type CategoryCount struct {
	Type  string
	Count int
}

// Result is returned after a conversion completes.
type Result struct {
	OutputPath string
	Counts     []CategoryCount
	Total      int
	Warnings   []string
}

// Pipeline assembles CloudFormation templates from AWS export directories.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Pipeline.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes a conversion. A nonexistent export directory is fatal; a
// missing or unparsable export file degrades that category to zero
// resources and the run continues.
func (p *Pipeline) Run(req Request) (*Result, error) {
	info, err := os.Stat(req.Dir)
	if err != nil {
		return nil, fmt.Errorf("export directory %s does not exist", req.Dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", req.Dir)
	}

	result := &Result{}

	var vpcs export.VPCDocument
	p.loadDocument(filepath.Join(req.Dir, p.cfg.Files.VPCs), &vpcs, result)

	var groups export.SecurityGroupDocument
	p.loadDocument(filepath.Join(req.Dir, p.cfg.Files.SecurityGroups), &groups, result)

	var instances export.InstanceDocument
	p.loadDocument(filepath.Join(req.Dir, p.cfg.Files.Instances), &instances, result)

	vpcResources := convert.VPCs(&vpcs)
	sgResources := convert.SecurityGroups(&groups)
	instResources := convert.Instances(&instances)

	tmpl := cloudformation.New(p.cfg.Template.Description)
	mergeInto(tmpl.Resources, vpcResources)
	mergeInto(tmpl.Resources, sgResources)
	mergeInto(tmpl.Resources, instResources)

	result.Counts = []CategoryCount{
		{Type: "AWS::EC2::VPC", Count: len(vpcResources)},
		{Type: "AWS::EC2::SecurityGroup", Count: len(sgResources)},
		{Type: "AWS::EC2::Instance", Count: len(instResources)},
	}
	result.Total = len(tmpl.Resources)

	outName := p.cfg.Output.File
	if req.Output != "" {
		outName = req.Output
	}
	format := req.Format
	if format == "" {
		format, err = cloudformation.ParseFormat(p.cfg.Output.Format)
		if err != nil {
			return nil, err
		}
	}

	outPath := filepath.Join(req.Dir, outName)
	if err := writeTemplate(outPath, tmpl, format); err != nil {
		return nil, err
	}

	p.logger.Info("template written", "path", outPath, "resources", result.Total)
	result.OutputPath = outPath
	return result, nil
}

func (p *Pipeline) loadDocument(path string, dst any, result *Result) {
	status, err := export.Load(path, dst)
	switch status {
	case export.StatusAbsent:
		p.logger.Warn("export file not found", "path", path)
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s not found", path))
	case export.StatusMalformed:
		p.logger.Error("invalid export file", "path", path, "error", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid JSON in %s", path))
	}
}

// mergeInto unions src into dst. Keys are assumed unique across categories;
// a colliding key silently overwrites, matching per-category semantics.
func mergeInto(dst, src map[string]cloudformation.Resource) {
	for name, r := range src {
		dst[name] = r
	}
}

func writeTemplate(path string, tmpl *cloudformation.Template, format cloudformation.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := tmpl.Encode(f, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
