package bot

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Tuning holds the policy's decision thresholds and bet sizing factors.
// The zero value of a field means "use the default"; aggression dynamics
// are lifecycle behavior and deliberately not tunable.
type Tuning struct {
	// Confidence thresholds for the preflop ladder
	RaiseConfidence float64 `hcl:"raise_confidence,optional"`
	PlayConfidence  float64 `hcl:"play_confidence,optional"`

	// Raise sizing, as multiples of the pot
	OpenFactor         float64 `hcl:"open_factor,optional"`
	LateOpenFactor     float64 `hcl:"late_open_factor,optional"`
	LimpRaiseFactor    float64 `hcl:"limp_raise_factor,optional"`
	ContinuationFactor float64 `hcl:"continuation_factor,optional"`
	ValueFactor        float64 `hcl:"value_factor,optional"`
	SemiBluffFactor    float64 `hcl:"semi_bluff_factor,optional"`

	// Minimum pot odds required to call
	PreflopCallOdds float64 `hcl:"preflop_call_odds,optional"`
	DefendOdds      float64 `hcl:"defend_odds,optional"`
	DrawOdds        float64 `hcl:"draw_odds,optional"`
}

// DefaultTuning returns the stock balanced strategy.
func DefaultTuning() Tuning {
	return Tuning{
		RaiseConfidence:    0.75,
		PlayConfidence:     0.45,
		OpenFactor:         2.0,
		LateOpenFactor:     2.5,
		LimpRaiseFactor:    1.5,
		ContinuationFactor: 0.6,
		ValueFactor:        1.0,
		SemiBluffFactor:    0.6,
		PreflopCallOdds:    2.5,
		DefendOdds:         1.5,
		DrawOdds:           3.0,
	}
}

type tuningFile struct {
	Strategy *Tuning `hcl:"strategy,block"`
}

// LoadTuning reads a strategy block from an HCL file. Attributes absent
// from the file keep their defaults.
func LoadTuning(filename string) (Tuning, error) {
	if _, err := os.Stat(filename); err != nil {
		return Tuning{}, fmt.Errorf("tuning file not found: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Tuning{}, fmt.Errorf("failed to parse tuning file: %s", diags.Error())
	}

	var parsed tuningFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return Tuning{}, fmt.Errorf("failed to decode tuning file: %s", diags.Error())
	}

	tuning := DefaultTuning()
	if parsed.Strategy != nil {
		tuning = parsed.Strategy.withDefaults()
	}

	if err := tuning.validate(); err != nil {
		return Tuning{}, err
	}
	return tuning, nil
}

// withDefaults fills unset fields from DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	defaults := DefaultTuning()
	fill := func(v, d float64) float64 {
		if v == 0 {
			return d
		}
		return v
	}

	return Tuning{
		RaiseConfidence:    fill(t.RaiseConfidence, defaults.RaiseConfidence),
		PlayConfidence:     fill(t.PlayConfidence, defaults.PlayConfidence),
		OpenFactor:         fill(t.OpenFactor, defaults.OpenFactor),
		LateOpenFactor:     fill(t.LateOpenFactor, defaults.LateOpenFactor),
		LimpRaiseFactor:    fill(t.LimpRaiseFactor, defaults.LimpRaiseFactor),
		ContinuationFactor: fill(t.ContinuationFactor, defaults.ContinuationFactor),
		ValueFactor:        fill(t.ValueFactor, defaults.ValueFactor),
		SemiBluffFactor:    fill(t.SemiBluffFactor, defaults.SemiBluffFactor),
		PreflopCallOdds:    fill(t.PreflopCallOdds, defaults.PreflopCallOdds),
		DefendOdds:         fill(t.DefendOdds, defaults.DefendOdds),
		DrawOdds:           fill(t.DrawOdds, defaults.DrawOdds),
	}
}

func (t Tuning) validate() error {
	if t.RaiseConfidence <= 0 || t.RaiseConfidence > 1 {
		return fmt.Errorf("raise_confidence must be in (0, 1], got %v", t.RaiseConfidence)
	}
	if t.PlayConfidence <= 0 || t.PlayConfidence > 1 {
		return fmt.Errorf("play_confidence must be in (0, 1], got %v", t.PlayConfidence)
	}
	if t.PlayConfidence > t.RaiseConfidence {
		return fmt.Errorf("play_confidence %v exceeds raise_confidence %v", t.PlayConfidence, t.RaiseConfidence)
	}
	for name, v := range map[string]float64{
		"open_factor":         t.OpenFactor,
		"late_open_factor":    t.LateOpenFactor,
		"limp_raise_factor":   t.LimpRaiseFactor,
		"continuation_factor": t.ContinuationFactor,
		"value_factor":        t.ValueFactor,
		"semi_bluff_factor":   t.SemiBluffFactor,
		"preflop_call_odds":   t.PreflopCallOdds,
		"defend_odds":         t.DefendOdds,
		"draw_odds":           t.DrawOdds,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	return nil
}
