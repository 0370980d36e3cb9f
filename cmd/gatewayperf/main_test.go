package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gatewayperf/gatewayperf/internal/fakegateway"
	"github.com/gatewayperf/gatewayperf/internal/testutil"
)

// execute runs the CLI against a fresh fake gateway and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(fakegateway.NewHTTPHandler(fakegateway.NewBank(), testutil.DiscardLogger(), fakegateway.Options{}))
	t.Cleanup(srv.Close)

	dumps := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dumps, "missing.env"))
	t.Setenv("GATEWAY_HTTP_CLIENT_URL", srv.URL)
	t.Setenv("GATEWAY_HTTP_CLIENT_TIMEOUT", "5s")
	t.Setenv("SEEDS_STORE", "file")
	t.Setenv("SEEDS_DUMPS_DIR", dumps)
	t.Setenv("LOCUST_USER_WAIT_TIME_MIN", "5ms")
	t.Setenv("LOCUST_USER_WAIT_TIME_MAX", "10ms")
	t.Setenv("LOG_LEVEL", "error")
	return dumps
}

func TestListingCommands(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"scenarios"}, []string{"new_user_get_accounts", "existing_user_get_operations", "existing_user_get_documents"}},
		{[]string{"seed", "list"}, []string{"existing_user_get_operations", "2700"}},
		{[]string{"demo", "list"}, []string{"create_user", "get_documents"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDemoCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "demo", "make_purchase_operation")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "Make purchase operation response") {
		t.Errorf("unexpected demo output:\n%s", out)
	}

	if _, err := execute(t, "demo", "fly"); err == nil {
		t.Error("unknown demo flow succeeded")
	}
}

func TestSeedThenLoad(t *testing.T) {
	dumps := setupEnv(t)

	out, err := execute(t, "seed", "existing_user_get_accounts", "--users", "2")
	if err != nil {
		t.Fatalf("seed error = %v", err)
	}
	if !strings.Contains(out, "seeded 2 users") {
		t.Errorf("unexpected seed output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(dumps, "existing_user_get_accounts.seeds.json")); err != nil {
		t.Fatalf("dump not written: %v", err)
	}

	out, err = execute(t, "load", "existing_user_get_accounts", "-u", "2", "-r", "100", "-t", "200ms")
	if err != nil {
		t.Fatalf("load error = %v", err)
	}
	for _, want := range []string{"Request statistics", "/api/v1/accounts", "Aggregated"} {
		if !strings.Contains(out, want) {
			t.Errorf("load output missing %q:\n%s", want, out)
		}
	}
}

func TestLoad_MissingSeeds(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "load", "existing_user_get_documents", "-t", "100ms")
	if err == nil || !strings.Contains(err.Error(), "gatewayperf seed existing_user_get_documents") {
		t.Errorf("load without seeds error = %v, want seeding hint", err)
	}
}

func TestProtocolFlag(t *testing.T) {
	setupEnv(t)

	if _, err := execute(t, "--protocol", "carrier-pigeon", "demo", "create_user"); err == nil {
		t.Error("unknown protocol accepted")
	}
}
