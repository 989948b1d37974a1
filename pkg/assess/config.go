package assess

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dungeoncheck/pkg/rules"
)

// defaultCategoryWeights implements §4.E's default category split.
var defaultCategoryWeights = map[rules.Category]float64{
	rules.Structural: 0.35,
	rules.Gameplay:   0.50,
	rules.Aesthetic:  0.15,
}

// defaultImprovementThreshold is §4.E's default per-rule recommendation
// threshold, used whenever a rule has no entry in ImprovementThresholds.
const defaultImprovementThreshold = 0.5

// Config is the assessor's configuration (§6: "config = { enabled_rules,
// weights, improvement_thresholds }"), loadable from YAML the way the
// teacher's generation config is.
type Config struct {
	// EnabledRules restricts evaluation to this set of rule ids. Empty
	// means every registered rule runs.
	EnabledRules []string `yaml:"enabled_rules,omitempty" json:"enabled_rules,omitempty"`

	// RuleWeights overrides a rule's weight within its category. Rules
	// without an entry default to a uniform weight among the other rules
	// in their category.
	RuleWeights map[string]float64 `yaml:"rule_weights,omitempty" json:"rule_weights,omitempty"`

	// CategoryWeights overrides the structural/gameplay/aesthetic split.
	// The weights need not sum to 1: the overall score renormalizes them
	// over the categories that have at least one enabled rule.
	CategoryWeights map[string]float64 `yaml:"category_weights,omitempty" json:"category_weights,omitempty"`

	// ImprovementThresholds overrides the per-rule recommendation cutoff
	// (default 0.5).
	ImprovementThresholds map[string]float64 `yaml:"improvement_thresholds,omitempty" json:"improvement_thresholds,omitempty"`

	// Pacing configures the supplemental (non-scored) difficulty pacing
	// diagnostic. Nil disables it.
	Pacing *PacingConfig `yaml:"pacing,omitempty" json:"pacing,omitempty"`
}

// PacingConfig mirrors rules.PacingCurveConfig for YAML/JSON round-tripping.
type PacingConfig struct {
	Curve        string       `yaml:"curve" json:"curve"`
	CustomPoints [][2]float64 `yaml:"custom_points,omitempty" json:"custom_points,omitempty"`
}

// DefaultConfig returns the documented defaults: every rule enabled,
// uniform rule weights, the 0.35/0.50/0.15 category split, a 0.5
// improvement threshold everywhere, and the pacing diagnostic disabled.
func DefaultConfig() *Config {
	return &Config{
		CategoryWeights: map[string]float64{
			string(rules.Structural): defaultCategoryWeights[rules.Structural],
			string(rules.Gameplay):   defaultCategoryWeights[rules.Gameplay],
			string(rules.Aesthetic):  defaultCategoryWeights[rules.Aesthetic],
		},
	}
}

// LoadConfig reads and validates a YAML assessor configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading assessor config: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses a YAML assessor configuration from bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing assessor config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("assessor config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configured weights and thresholds are well-formed.
func (c *Config) Validate() error {
	for id, w := range c.RuleWeights {
		if w < 0 {
			return fmt.Errorf("rule_weights[%s]: weight must be >= 0, got %f", id, w)
		}
		if _, ok := rules.Get(id); !ok {
			return fmt.Errorf("rule_weights[%s]: not a registered rule id", id)
		}
	}
	for name, w := range c.CategoryWeights {
		if w < 0 {
			return fmt.Errorf("category_weights[%s]: weight must be >= 0, got %f", name, w)
		}
		switch rules.Category(name) {
		case rules.Structural, rules.Gameplay, rules.Aesthetic:
		default:
			return fmt.Errorf("category_weights[%s]: not a known category", name)
		}
	}
	for id, t := range c.ImprovementThresholds {
		if t < 0 || t > 1 {
			return fmt.Errorf("improvement_thresholds[%s]: must be in [0,1], got %f", id, t)
		}
		if _, ok := rules.Get(id); !ok {
			return fmt.Errorf("improvement_thresholds[%s]: not a registered rule id", id)
		}
	}
	if c.Pacing != nil {
		switch c.Pacing.Curve {
		case string(rules.PacingLinear), string(rules.PacingSCurve), string(rules.PacingExponential), string(rules.PacingCustom), "":
		default:
			return fmt.Errorf("pacing.curve: unrecognized curve %q", c.Pacing.Curve)
		}
		if c.Pacing.Curve == string(rules.PacingCustom) && len(c.Pacing.CustomPoints) < 2 {
			return fmt.Errorf("pacing.custom_points: CUSTOM curve needs at least 2 points")
		}
	}
	return nil
}

func (c *Config) improvementThreshold(ruleID string) float64 {
	if t, ok := c.ImprovementThresholds[ruleID]; ok {
		return t
	}
	return defaultImprovementThreshold
}

func (c *Config) isEnabled(ruleID string) bool {
	if len(c.EnabledRules) == 0 {
		return true
	}
	for _, id := range c.EnabledRules {
		if id == ruleID {
			return true
		}
	}
	return false
}

func (c *Config) categoryWeight(cat rules.Category) float64 {
	if c.CategoryWeights != nil {
		if w, ok := c.CategoryWeights[string(cat)]; ok {
			return w
		}
	}
	return defaultCategoryWeights[cat]
}
