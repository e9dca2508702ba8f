// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/granulizer/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     *app.Options
		wantExit bool
		wantCode int
	}{
		{
			name: "asset only",
			args: []string{"drone.ogg"},
			want: &app.Options{Asset: "drone.ogg", Duration: 10 * time.Second},
		},
		{
			name: "all flags",
			args: []string{"-config", "g.hcl", "-render", "out.wav", "-duration", "3s", "-log-level", "DEBUG", "-log-format", "json", "https://example.com/a.mp3"},
			want: &app.Options{
				ConfigPath: "g.hcl",
				Asset:      "https://example.com/a.mp3",
				RenderPath: "out.wav",
				Duration:   3 * time.Second,
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{
			name: "config without asset",
			args: []string{"-config", "g.hcl"},
			want: &app.Options{ConfigPath: "g.hcl", Duration: 10 * time.Second},
		},
		{name: "nothing", args: nil, wantExit: true},
		{name: "help", args: []string{"-h"}, wantExit: true},
		{name: "unknown flag", args: []string{"-tempo", "120"}, wantCode: 2},
		{name: "two assets", args: []string{"a.wav", "b.wav"}, wantCode: 2},
		{name: "bad format", args: []string{"-log-format", "xml", "a.wav"}, wantCode: 2},
		{name: "bad level", args: []string{"-log-level", "loud", "a.wav"}, wantCode: 2},
		{name: "zero render duration", args: []string{"-render", "o.wav", "-duration", "0s", "a.wav"}, wantCode: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, exit, err := Parse(tt.args, &out)

			if tt.wantCode != 0 {
				var exitErr *ExitError
				if !errors.As(err, &exitErr) || exitErr.Code != tt.wantCode {
					t.Fatalf("Parse() error = %v, want exit code %d", err, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if exit != tt.wantExit {
				t.Fatalf("Parse() exit = %v, want %v", exit, tt.wantExit)
			}
			if exit {
				if !strings.Contains(out.String(), "Usage:") {
					t.Errorf("usage not printed: %q", out.String())
				}
				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
