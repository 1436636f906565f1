package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/gbm-sim/pkg/gbm"
)

func TestValidateDiscretization(t *testing.T) {
	tests := []struct {
		name      string
		horizon   float64
		steps     int
		expectErr error
	}{
		{
			name:    "Valid discretization",
			horizon: 1.0,
			steps:   100,
		},
		{
			name:      "Zero steps",
			horizon:   1.0,
			steps:     0,
			expectErr: gbm.ErrInvalidSteps,
		},
		{
			name:      "Negative steps",
			horizon:   1.0,
			steps:     -5,
			expectErr: gbm.ErrInvalidSteps,
		},
		{
			name:      "Zero horizon",
			horizon:   0.0,
			steps:     10,
			expectErr: gbm.ErrInvalidHorizon,
		},
		{
			name:      "Negative horizon",
			horizon:   -1.0,
			steps:     10,
			expectErr: gbm.ErrInvalidHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiscretization("test run", tt.horizon, tt.steps)
			if tt.expectErr == nil {
				if err != nil {
					t.Errorf("ValidateDiscretization() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("ValidateDiscretization() = %v, expected %v", err, tt.expectErr)
			}
			if err != nil && !strings.Contains(err.Error(), "test run") {
				t.Errorf("diagnostic should name the offending run, got %q", err.Error())
			}
		})
	}
}

func TestValidateSchemes(t *testing.T) {
	if err := ValidateSchemes("run", []string{"exact", "euler", "milstein"}); err != nil {
		t.Errorf("ValidateSchemes() with registered names = %v, expected nil", err)
	}

	if err := ValidateSchemes("run", nil); err != nil {
		t.Errorf("ValidateSchemes() with empty list = %v, expected nil", err)
	}

	err := ValidateSchemes("run", []string{"exact", "rk4"})
	if !errors.Is(err, gbm.ErrUnknownScheme) {
		t.Errorf("ValidateSchemes() = %v, expected ErrUnknownScheme", err)
	}
	if err != nil && !strings.Contains(err.Error(), "rk4") {
		t.Errorf("diagnostic should name the invalid scheme, got %q", err.Error())
	}
}

func TestValidateProcess(t *testing.T) {
	tests := []struct {
		name          string
		params        gbm.ProcessParameters
		wantWarnings  int
		wantSubstring string
	}{
		{
			name:         "Well-formed parameters",
			params:       gbm.NewProcessParameters(100.0, 0.05, 0.2),
			wantWarnings: 0,
		},
		{
			name:          "Zero initial value",
			params:        gbm.NewProcessParameters(0.0, 0.05, 0.2),
			wantWarnings:  1,
			wantSubstring: "not positive",
		},
		{
			name:          "Negative initial value",
			params:        gbm.NewProcessParameters(-10.0, 0.05, 0.2),
			wantWarnings:  1,
			wantSubstring: "not positive",
		},
		{
			name:          "Zero diffusion",
			params:        gbm.NewProcessParameters(100.0, 0.05, 0.0),
			wantWarnings:  1,
			wantSubstring: "deterministic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateProcess(tt.params)
			if len(warnings) != tt.wantWarnings {
				t.Errorf("ValidateProcess() returned %d warnings, expected %d: %v",
					len(warnings), tt.wantWarnings, warnings)
			}
			if tt.wantSubstring != "" && len(warnings) > 0 &&
				!strings.Contains(warnings[0], tt.wantSubstring) {
				t.Errorf("warning %q missing substring %q", warnings[0], tt.wantSubstring)
			}
		})
	}
}
