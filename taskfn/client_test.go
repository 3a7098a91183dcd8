package taskfn

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"
	"time"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x20, G: 0x80, B: 0xe0, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func testPNGDataURI(t *testing.T) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG(t))
}

func newTestClient(t *testing.T, baseURL string, client *http.Client, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{WithAPIKey("test-key"), WithBaseURL(baseURL), WithHTTPClient(client)}, opts...)
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("new client returned error: %v", err)
	}
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	if _, err := New(); err == nil {
		t.Fatal("expected construction to fail without an API key")
	}
}

func TestNewReadsAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	client, err := New()
	if err != nil {
		t.Fatalf("new client returned error: %v", err)
	}
	if client.apiKey != "env-key" {
		t.Fatalf("unexpected api key %q", client.apiKey)
	}
}

func TestOptionGuards(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	client, err := New(
		WithAPIKey("  padded-key  "),
		WithBaseURL(""),
		WithHTTPClient(nil),
		WithWarningHandler(nil),
		nil,
	)
	if err != nil {
		t.Fatalf("new client returned error: %v", err)
	}

	if client.apiKey != "padded-key" {
		t.Fatalf("unexpected api key %q", client.apiKey)
	}
	if client.baseURL != defaultBaseURL {
		t.Fatalf("unexpected base URL %q", client.baseURL)
	}
	if client.httpClient == nil || client.httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("unexpected http client %#v", client.httpClient)
	}
	if client.onWarning == nil {
		t.Fatal("expected a default warning handler")
	}
}

func TestWithTimeout(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	client, err := New(WithAPIKey("test-key"), WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("new client returned error: %v", err)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", client.httpClient.Timeout)
	}
}
