package storage

import (
	"context"
	"path/filepath"
	"testing"

	"silomet/internal/config"
)

func TestNewClient_Local(t *testing.T) {
	cfg := &config.Config{
		OutputDir: filepath.Join(t.TempDir(), "exports"),
	}

	client, err := NewClient(context.Background(), ModeLocal, cfg)
	if err != nil {
		t.Fatalf("Failed to create local storage client: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Errorf("Expected LocalClient, got %T", client)
	}
}

func TestNewClient_GCS(t *testing.T) {
	cfg := &config.Config{
		GCSBucket: "test-bucket",
	}

	// GCS client creation needs credentials, which the test environment
	// usually does not have. Both outcomes exercise the selection logic.
	client, err := NewClient(context.Background(), ModeGCS, cfg)
	if err != nil {
		t.Logf("GCS client creation failed as expected in test environment: %v", err)
		return
	}

	defer client.Close()
	if _, ok := client.(*GCSClient); !ok {
		t.Errorf("Expected GCSClient, got %T", client)
	}
}

func TestNewClient_NilConfig(t *testing.T) {
	client, err := NewClient(context.Background(), ModeLocal, nil)
	if err == nil {
		if client != nil {
			client.Close()
		}
		t.Error("Expected error with nil config")
	}
}

func TestNewClient_InvalidMode(t *testing.T) {
	cfg := &config.Config{
		OutputDir: t.TempDir(),
	}

	client, err := NewClient(context.Background(), Mode("invalid"), cfg)
	if err == nil {
		if client != nil {
			client.Close()
		}
		t.Error("Expected error with invalid storage mode")
	}
}

func TestClientInterface(t *testing.T) {
	localClient, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create local storage client: %v", err)
	}
	defer localClient.Close()

	var _ Client = localClient

	ctx := context.Background()
	testFile := "interface-test.met"
	testData := []byte("interface test")

	if err := localClient.StoreFile(ctx, testFile, testData); err != nil {
		t.Fatalf("Interface method StoreFile failed: %v", err)
	}

	exists, err := localClient.FileExists(ctx, testFile)
	if err != nil {
		t.Fatalf("Interface method FileExists failed: %v", err)
	}
	if !exists {
		t.Error("File should exist")
	}

	retrieved, err := localClient.GetFile(ctx, testFile)
	if err != nil {
		t.Fatalf("Interface method GetFile failed: %v", err)
	}
	if string(retrieved) != string(testData) {
		t.Errorf("Data mismatch through interface: expected %s, got %s", testData, retrieved)
	}
}
