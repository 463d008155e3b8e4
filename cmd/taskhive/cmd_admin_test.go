package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestAdminWorkspaceCreateFromStdin(t *testing.T) {
	root := newRootCmd()
	root.SetContext(context.Background())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("name: hq\n"))
	root.SetArgs([]string{"admin", "workspace", "create", "-f", "-", "--db-url", "memory:"})

	if err := root.Execute(); err != nil {
		t.Fatalf("command error: %v", err)
	}

	var ws struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out.Bytes(), &ws); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if ws.ID == 0 || ws.Name != "hq" {
		t.Fatalf("unexpected workspace: %+v", ws)
	}
}

func TestAdminWorkspaceGetMissing(t *testing.T) {
	root := newRootCmd()
	root.SetContext(context.Background())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"admin", "workspace", "get", "5", "--db-url", "memory:"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestParseIDArg(t *testing.T) {
	if _, err := parseIDArg("abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
	if _, err := parseIDArg("-3"); err == nil {
		t.Error("expected error for negative id")
	}
	id, err := parseIDArg("42")
	if err != nil || id != 42 {
		t.Errorf("parseIDArg(42) = %d, %v", id, err)
	}
}
