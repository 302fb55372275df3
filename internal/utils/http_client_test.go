package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://auth.internal:9000", 10*time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Configuration(t *testing.T) {
	client := NewHTTPClient("http://geo.internal:9000", 5*time.Second)

	if got := client.BaseURL; got != "http://geo.internal:9000" {
		t.Errorf("expected base URL 'http://geo.internal:9000', got '%s'", got)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient("http://one.internal", time.Second)
	client2 := NewHTTPClient("http://two.internal", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_EmbeddedClientUsable(t *testing.T) {
	client := NewHTTPClient("http://auth.internal:9000", time.Second)

	// Just check that we can call a basic method on the embedded resty client
	req := client.R()
	if req == nil {
		t.Fatal("expected non-nil request from embedded resty client")
	}
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}
