package validation

import (
	"testing"

	"github.com/iwvelando/gbm-sim/pkg/constants"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Pretty format is valid",
			format:    constants.OutputFormatPretty,
			expectErr: false,
		},
		{
			name:      "CSV format is valid",
			format:    constants.OutputFormatCSV,
			expectErr: false,
		},
		{
			name:      "Unknown format is rejected",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format is rejected",
			format:    "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) = nil, expected error", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) = %v, expected nil", tt.format, err)
			}
		})
	}
}
