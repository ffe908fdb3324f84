package migration

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"lrcollect/internal/apperr"
	"lrcollect/internal/resolver"
)

// planDocument is the YAML form of a Plan.
type planDocument struct {
	RunID      string           `yaml:"run_id"`
	RootFolder string           `yaml:"root_folder"`
	Stats      Stats            `yaml:"stats"`
	Drafts     []resolver.Draft `yaml:"collections"`
	Warnings   []apperr.Warning `yaml:"warnings"`
}

// WritePlan encodes plan as YAML to w.
func WritePlan(w io.Writer, plan *Plan) error {
	doc := planDocument{
		RunID:      plan.RunID,
		RootFolder: plan.RootFolder,
		Stats:      plan.Stats,
		Drafts:     plan.Drafts,
	}
	if plan.Warnings != nil {
		doc.Warnings = plan.Warnings.List()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// WritePlanFile writes plan as YAML to path.
func WritePlanFile(path string, plan *Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plan file: %w", err)
	}
	if err := WritePlan(f, plan); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
