package panorama

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	server := serveBytes(t, http.StatusOK, []byte("panorama"))

	body, err := download(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if string(body) != "panorama" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestDownloadStatusError(t *testing.T) {
	server := serveBytes(t, http.StatusInternalServerError, nil)

	_, err := download(context.Background(), nil, server.URL)
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestDownloadInvalidURL(t *testing.T) {
	if _, err := download(context.Background(), nil, "://invalid"); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}
