package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		json      bool
		log       func()
		want      []string
		forbidden string
	}{
		{
			name: "text output",
			log:  func() { Warn("failed to record history", "plan", "campus") },
			want: []string{"level=WARN", "failed to record history", "plan=campus"},
		},
		{
			name: "json output",
			json: true,
			log:  func() { Error("allocation failed", "demands", 3) },
			want: []string{"{", `"level":"ERROR"`, `"msg":"allocation failed"`, `"demands":3`},
		},
		{
			name:    "debug shown when verbose",
			verbose: true,
			log:     func() { Debug("placed block", "cidr", "10.0.0.0/28") },
			want:    []string{"placed block"},
		},
		{
			name:      "debug hidden when quiet",
			log:       func() { Debug("placed block") },
			forbidden: "placed block",
		},
		{
			name: "warn and error",
			log: func() {
				Warn("history not written")
				Error("allocation failed")
			},
			want: []string{"history not written", "allocation failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.verbose, tt.json, &buf)
			tt.log()

			output := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(output, w) {
					t.Errorf("expected %q in output, got: %s", w, output)
				}
			}
			if tt.forbidden != "" && strings.Contains(output, tt.forbidden) {
				t.Errorf("did not expect %q in output, got: %s", tt.forbidden, output)
			}
		})
	}
}

func TestSetup_NilWriter(t *testing.T) {
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	UserInfo("planning %s", "10.0.0.0/24")
	UserSuccess("done")
	UserWarning("%d addresses free", 32)
	UserError("failed")

	if got := out.String(); got != "ℹ planning 10.0.0.0/24\n✓ done\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "⚠ 32 addresses free\n✗ failed\n" {
		t.Errorf("stderr = %q", got)
	}
}
