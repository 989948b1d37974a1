package assess

import "testing"

func TestDefaultConfigCategoryWeightsSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	var sum float64
	for _, w := range cfg.CategoryWeights {
		sum += w
	}
	if !closeTo(sum, 1.0, 1e-9) {
		t.Errorf("expected default category weights to sum to 1, got %f", sum)
	}
}

func TestLoadConfigFromBytesAppliesDefaultsAndOverrides(t *testing.T) {
	yaml := []byte(`
enabled_rules: [accessibility, degree_variance]
improvement_thresholds:
  accessibility: 0.8
category_weights:
  structural: 0.6
  gameplay: 0.3
  aesthetic: 0.1
`)
	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.isEnabled("accessibility") || cfg.isEnabled("loop_ratio") {
		t.Error("expected enabled_rules to restrict evaluation to the listed ids")
	}
	if got := cfg.improvementThreshold("accessibility"); got != 0.8 {
		t.Errorf("expected overridden threshold 0.8, got %f", got)
	}
	if got := cfg.improvementThreshold("degree_variance"); got != defaultImprovementThreshold {
		t.Errorf("expected default threshold for an unmentioned rule, got %f", got)
	}
}

func TestValidateRejectsUnknownRuleID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RuleWeights = map[string]float64{"not_a_real_rule": 1.0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unknown rule id in rule_weights")
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CategoryWeights["structural"] = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a negative category weight")
	}
}

func TestValidateRejectsBadPacingCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pacing = &PacingConfig{Curve: "NOT_A_CURVE"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unrecognized pacing curve")
	}
}
