package taskfn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskfn/go-taskfn/core"
)

func TestPackageLevelBuild(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"function_name":"fn","version_number":1,"description":"d"}`))
	}))
	defer server.Close()

	result, err := Build(context.Background(), "Do a thing.", false,
		WithAPIKey("test-key"), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("build returned error: %v", err)
	}
	if result.FunctionName != "fn" {
		t.Fatalf("unexpected function name %q", result.FunctionName)
	}
}

func TestPackageLevelQueryRequiresAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	if _, err := Query(context.Background(), &core.QueryRequest{FunctionName: "fn", Text: "hi"}); err == nil {
		t.Fatal("expected query to fail without an API key")
	}
}
