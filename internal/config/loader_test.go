package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJob(t *testing.T) {
	path := writeJob(t, `
input: /data/berlin.geojson
out_prefix: berlin
width: 128
height: 64
format: jpg
project_utm: true
invert: true
`)
	job, err := LoadJob(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Job{
		Input:      "/data/berlin.geojson",
		OutPrefix:  "berlin",
		Width:      128,
		Height:     64,
		Format:     "jpg",
		ProjectUTM: true,
		Invert:     true,
	}
	if job != want {
		t.Errorf("LoadJob = %+v, want %+v", job, want)
	}
}

func TestLoadJobKeepsDefaults(t *testing.T) {
	job, err := LoadJob(writeJob(t, "input: a.shp\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if job.OutPrefix != def.OutPrefix || job.Width != def.Width ||
		job.Height != def.Height || job.Format != def.Format {
		t.Errorf("absent fields lost their defaults: %+v", job)
	}
}

func TestLoadJobErrors(t *testing.T) {
	if _, err := LoadJob(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file: want error")
	}
	if _, err := LoadJob(writeJob(t, "width: [not, a, number]\n")); err == nil {
		t.Error("malformed yaml: want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Job)
		wantErr string
	}{
		{"defaults with input", func(j *Job) { j.Input = "a.geojson" }, ""},
		{"missing input", func(j *Job) {}, "input path"},
		{"zero width", func(j *Job) { j.Input = "a"; j.Width = 0 }, "positive"},
		{"negative height", func(j *Job) { j.Input = "a"; j.Height = -3 }, "positive"},
		{"bad format", func(j *Job) { j.Input = "a"; j.Format = "tiff" }, "format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			job := Default()
			tc.mutate(&job)
			err := job.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}
