package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconlist/internal/models"
)

func iconSetServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/hero", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"type":"file","name":"star.svg"},{"type":"file","name":"LICENSE"},{"type":"dir","name":"x.svg"},{"type":"file","name":"bolt.svg"}]`))
	})
	mux.HandleFunc("/fa", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"star":{},"address-book":{}}`))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"type":"file","name":"README.md"}]`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeManifest(t *testing.T, dir, base string) string {
	t.Helper()
	manifest := fmt.Sprintf(`sets:
  - name: heroicons
    label: Heroicons
    url: %[1]s/hero
    output: heroicon-list.txt
    match_suffix: .svg
    trim_suffix: true
    sort: true
  - name: fontawesome
    label: FontAwesome icons
    url: %[1]s/fa
    format: keys
    output: fontawesome-list.txt
    sort: true
  - name: empty
    url: %[1]s/empty
    match_suffix: .svg
  - name: broken
    label: Broken
    url: %[1]s/broken
`, base)
	path := filepath.Join(dir, "sets.yaml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	return path
}

func TestSetsCommand_Selected(t *testing.T) {
	dir := t.TempDir()
	srv := iconSetServer(t)
	manifest := writeManifest(t, dir, srv.URL)

	stdout, stderr, err := execute(t, testConfig(""), "",
		"sets", "heroicons", "fontawesome", "--manifest", manifest, "--dir", dir)
	if err != nil {
		t.Fatalf("sets failed: %v\nstderr: %s", err, stderr)
	}

	for _, want := range []string{
		"Fetching Heroicons...",
		"Found 2 Heroicons",
		"Saved 2 icons to heroicon-list.txt",
		"Found 2 FontAwesome icons",
		"All icon lists refreshed successfully!",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	hero, _ := os.ReadFile(filepath.Join(dir, "heroicon-list.txt"))
	if string(hero) != "bolt\nstar\n" {
		t.Errorf("heroicon-list.txt = %q", hero)
	}
	fa, _ := os.ReadFile(filepath.Join(dir, "fontawesome-list.txt"))
	if string(fa) != "address-book\nstar\n" {
		t.Errorf("fontawesome-list.txt = %q", fa)
	}
}

func TestSetsCommand_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	srv := iconSetServer(t)
	manifest := writeManifest(t, dir, srv.URL)

	stdout, stderr, err := execute(t, testConfig(""), "", "sets", "--manifest", manifest, "--dir", dir)
	if ExitCode(err) != 1 {
		t.Fatalf("ExitCode = %d, want 1 (err %v)", ExitCode(err), err)
	}

	if !strings.Contains(stderr, "Failed to fetch empty: no icon names found") {
		t.Errorf("stderr missing empty failure:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Failed to fetch Broken: fetch listing: unexpected status 410") {
		t.Errorf("stderr missing broken failure:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Failed to refresh: empty-list.txt, broken-list.txt") {
		t.Errorf("stderr missing summary:\n%s", stderr)
	}
	if strings.Contains(stdout, "All icon lists refreshed successfully!") {
		t.Error("success message printed despite failures")
	}

	if _, err := os.Stat(filepath.Join(dir, "heroicon-list.txt")); err != nil {
		t.Errorf("healthy sets should still be written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "empty-list.txt")); !os.IsNotExist(err) {
		t.Error("empty set should not be written")
	}
}

func TestSetsCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	srv := iconSetServer(t)
	manifest := writeManifest(t, dir, srv.URL)

	stdout, _, err := execute(t, testConfig(""), "", "sets", "heroicons", "broken", "--manifest", manifest, "--dir", dir, "--json")
	if ExitCode(err) != 1 {
		t.Fatalf("ExitCode = %d, want 1", ExitCode(err))
	}

	var result models.SetsResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if len(result.Refreshed) != 1 || result.Refreshed[0].IconSet != "heroicons" {
		t.Errorf("Refreshed = %+v", result.Refreshed)
	}
	if len(result.Failed) != 1 || result.Failed[0] != "broken-list.txt" {
		t.Errorf("Failed = %v", result.Failed)
	}
}

func TestSetsCommand_UnknownSet(t *testing.T) {
	_, _, err := execute(t, testConfig(""), "", "sets", "material")
	if err == nil || !strings.Contains(err.Error(), `unknown icon set "material"`) {
		t.Fatalf("error = %v, want unknown icon set", err)
	}
}

func TestSetsCommand_BadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	os.WriteFile(path, []byte("sets:\n  - url: http://x\n"), 0o644)

	_, _, err := execute(t, testConfig(""), "", "sets", "--manifest", path)
	if err == nil || !strings.Contains(err.Error(), "has no name") {
		t.Fatalf("error = %v, want manifest validation error", err)
	}
}
