package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"gw2inventory/internal/config"
	"gw2inventory/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	server     *httptest.Server
	configPath string
	itemCalls  *atomic.Int32
}

// fakeAPI serves a two-character account whose bags hold copper and iron ore.
func fakeAPI(t *testing.T, itemCalls *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/characters", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["Aria","Beo"]`)
	})
	mux.HandleFunc("/characters/Aria/inventory", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bags":[{"id":8932,"size":4,"inventory":[
			{"id":19697,"count":3,"binding":"Account"},
			null,
			{"id":19697,"count":2,"binding":"Account"},
			{"id":19699,"count":250}
		]},null]}`)
	})
	mux.HandleFunc("/characters/Beo/inventory", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bags":[{"id":8932,"size":1,"inventory":[{"id":19697,"count":5,"binding":"Account"}]}]}`)
	})
	mux.HandleFunc("/tokeninfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"test","name":"cli","permissions":["account","characters","inventories"]}`)
	})
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		itemCalls.Add(1)
		if r.URL.Query().Get("ids") == "" {
			fmt.Fprint(w, `[19697,19699]`)
			return
		}
		fmt.Fprint(w, `[
			{"id":19697,"name":"Copper Ore","description":"Refine into Copper Ingots.","type":"CraftingMaterial","level":0,"rarity":"Basic"},
			{"id":19699,"name":"Iron Ore","type":"CraftingMaterial","level":0,"rarity":"Basic"}
		]`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("GW2_API_KEY", "")
	t.Setenv("API_KEY", "")

	calls := new(atomic.Int32)
	server := fakeAPI(t, calls)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		server:     server,
		configPath: configPath,
		itemCalls:  calls,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[api]\napi_key = %q\nbase_url = %q\n\n[cache]\npath = %q\n\n[logging]\ndir = %q\nlevel = \"debug\"\n",
		cfg.API.Key,
		cfg.API.BaseURL,
		cfg.Cache.Path,
		cfg.Logging.Dir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
