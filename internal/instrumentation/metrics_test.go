package instrumentation

import (
	"context"
	"testing"
	"time"
)

func testProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()
	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordDriveOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := testProvider(t, ctx).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordDriveOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordDriveOperation(ctx, "download", StatusError, 500*time.Millisecond)
	metrics.RecordDriveOperation(ctx, "upload", StatusSuccess, 1*time.Second)
}

func TestMetrics_RecordOAuthExchange(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := testProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordOAuthExchange(ctx, OAuthResultSuccess)
	metrics.RecordOAuthExchange(ctx, OAuthResultFailure)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := testProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "drive_list_files", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "drive_upload_file", StatusError, 500*time.Millisecond)
}

func TestMetrics_RecordTransferBytes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := testProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordTransferBytes(ctx, "download", 1024)
	metrics.RecordTransferBytes(ctx, "upload", 4096)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// All these should not panic even with nil underlying metrics
	metrics.RecordDriveOperation(ctx, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordOAuthExchange(ctx, OAuthResultSuccess)
	metrics.RecordToolInvocation(ctx, "test_tool", StatusSuccess, 100*time.Millisecond)
	metrics.RecordTransferBytes(ctx, "download", 512)
}
