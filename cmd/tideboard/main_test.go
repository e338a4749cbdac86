package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bethropolis/tideboard/internal/config"
)

func TestVersionOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"flag", []string{"--version"}},
		{"subcommand", []string{"version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			root := newRootCmd(func(*config.Config, string) error {
				ran = true
				return nil
			})
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tt.args)

			if err := root.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if ran {
				t.Error("version should not start the editor")
			}
			want := config.AppName + " " + config.Version
			if strings.TrimSpace(out.String()) != want {
				t.Errorf("output = %q, want %q", out.String(), want)
			}
		})
	}
}

func TestRejectsExtraArgs(t *testing.T) {
	root := newRootCmd(func(*config.Config, string) error {
		t.Fatal("editor should not start")
		return nil
	})
	root.SetArgs([]string{"a.toml", "b.toml"})
	if err := root.Execute(); err == nil {
		t.Error("Execute() with two files should fail")
	}
}
