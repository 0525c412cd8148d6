package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"

	"github.com/tbourn/biztime-api/internal/config"
)

func keepGlobals(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	prop := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func enabledCfg(name string, insecure bool) config.OTELConfig {
	return config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    insecure,
		ServiceName: name,
		SampleRatio: 1,
	}
}

func TestSetupOTel_DisabledLeavesGlobals(t *testing.T) {
	keepGlobals(t)
	before := otel.GetTracerProvider()

	cfg := enabledCfg("biztime-api", true)
	cfg.Enabled = false
	shutdown, err := SetupOTel(context.Background(), cfg, "v0")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Fatalf("tracer provider replaced while disabled")
	}
}

func TestSetupOTel_InstallsProvider(t *testing.T) {
	cases := []struct {
		name     string
		insecure bool
		canceled bool
	}{
		{name: "insecure", insecure: true},
		{name: "tls", insecure: false},
		{name: "canceled context", insecure: true, canceled: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keepGlobals(t)
			ctx, cancel := context.WithCancel(context.Background())
			if tc.canceled {
				cancel()
			} else {
				defer cancel()
			}

			shutdown, err := SetupOTel(ctx, enabledCfg("biztime-"+tc.name, tc.insecure), "v1.0.0")
			if err != nil {
				t.Fatalf("SetupOTel: %v", err)
			}

			if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
				t.Fatalf("global provider is %T", otel.GetTracerProvider())
			}
			spanCtx, span := otel.Tracer("test").Start(context.Background(), "GET /companies")
			carrier := propagation.MapCarrier{}
			otel.GetTextMapPropagator().Inject(spanCtx, carrier)
			span.End()
			if carrier.Get("traceparent") == "" {
				t.Fatalf("traceparent not injected: %v", carrier)
			}

			// No collector is listening, so the final flush may fail.
			sctx, scancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
			defer scancel()
			_ = shutdown(sctx)
		})
	}
}

func TestSetupOTel_FailuresKeepGlobals(t *testing.T) {
	origExp, origRes := startExporter, serviceResource
	t.Cleanup(func() { startExporter, serviceResource = origExp, origRes })

	cases := []struct {
		name  string
		stub  func()
		inErr string
	}{
		{
			name: "exporter",
			stub: func() {
				startExporter = func(context.Context, ...otlptracegrpc.Option) (*otlptrace.Exporter, error) {
					return nil, errors.New("exporter down")
				}
			},
			inErr: "otlp exporter",
		},
		{
			name: "resource",
			stub: func() {
				serviceResource = func(context.Context, string, string) (*resource.Resource, error) {
					return nil, errors.New("bad resource")
				}
			},
			inErr: "otel resource",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keepGlobals(t)
			startExporter, serviceResource = origExp, origRes
			tc.stub()

			tp, prop := otel.GetTracerProvider(), otel.GetTextMapPropagator()
			_, err := SetupOTel(context.Background(), enabledCfg("biztime-api", true), "v0")
			if err == nil || !strings.Contains(err.Error(), tc.inErr) {
				t.Fatalf("err = %v, want %q", err, tc.inErr)
			}
			if otel.GetTracerProvider() != tp || otel.GetTextMapPropagator() != prop {
				t.Fatalf("globals changed on failure")
			}
		})
	}
}

func TestExporterOptions(t *testing.T) {
	if n := len(exporterOptions(enabledCfg("x", true))); n != 2 {
		t.Fatalf("insecure options = %d", n)
	}
	if n := len(exporterOptions(enabledCfg("x", false))); n != 2 {
		t.Fatalf("tls options = %d", n)
	}
}

func TestInstrumentDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:otel_instrument?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := InstrumentDB(db, config.OTELConfig{Enabled: false}); err != nil {
		t.Fatalf("disabled: %v", err)
	}
	if len(db.Config.Plugins) != 0 {
		t.Fatalf("plugin registered while disabled")
	}

	if err := InstrumentDB(db, config.OTELConfig{Enabled: true}); err != nil {
		t.Fatalf("enabled: %v", err)
	}
	if len(db.Config.Plugins) != 1 {
		t.Fatalf("plugins = %d; want 1", len(db.Config.Plugins))
	}
	// gorm rejects a second plugin with the same name.
	if err := InstrumentDB(db, config.OTELConfig{Enabled: true}); err == nil {
		t.Fatalf("expected duplicate plugin error")
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query through instrumented db: %v", err)
	}
}
