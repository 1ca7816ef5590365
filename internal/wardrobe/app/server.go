package app

import (
	"context"
	"fmt"
	"log"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/hatrack.space/internal/wardrobe/catalog"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/scene"
	"github.com/louisbranch/hatrack.space/internal/wardrobe/session"
)

const healthServiceName = "wardrobe"

// Config holds the wardrobe service runtime configuration.
type Config struct {
	// Port is used when Addr is empty.
	Port int
	// Addr overrides Port with a full listen address.
	Addr string
	// Kit selects the wearable set loaded at session start.
	Kit catalog.Kit
	// BaseResourceURL resolves relative wearable resource references.
	BaseResourceURL string
	// ConfigDir overrides the embedded wearable data when set.
	ConfigDir string
}

// runtimeSeams keeps startup injectable for tests.
type runtimeSeams struct {
	listen   func(network, address string) (net.Listener, error)
	newScene func() scene.Scene
}

func normalizeSeams(seams runtimeSeams) runtimeSeams {
	if seams.listen == nil {
		seams.listen = net.Listen
	}
	if seams.newScene == nil {
		// The default scene records intents in memory; a host adapter can
		// replace it without touching the run loop.
		seams.newScene = func() scene.Scene { return scene.NewRecorder() }
	}
	return seams
}

// Run starts a wardrobe session and serves gRPC health until ctx ends.
//
// The health service reports NOT_SERVING until the session has loaded its
// catalog and built its menu, so orchestration can gate traffic on a real
// ready state.
func Run(ctx context.Context, cfg Config) error {
	return runWithSeams(ctx, cfg, runtimeSeams{})
}

func runWithSeams(ctx context.Context, cfg Config, seams runtimeSeams) error {
	seams = normalizeSeams(seams)

	address := cfg.Addr
	if address == "" {
		address = fmt.Sprintf(":%d", cfg.Port)
	}
	listener, err := seams.listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", address, err)
	}

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	opts := session.Options{
		Kit:             cfg.Kit,
		BaseResourceURL: cfg.BaseResourceURL,
	}
	if cfg.ConfigDir != "" {
		configDir := cfg.ConfigDir
		opts.Loader = func(kit catalog.Kit) (*catalog.Catalog, error) {
			return catalog.LoadFromDir(configDir, kit)
		}
	}

	sess, err := session.New(seams.newScene(), opts)
	if err != nil {
		_ = listener.Close()
		return err
	}
	if err := sess.Start(ctx); err != nil {
		_ = listener.Close()
		return err
	}
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()
	log.Printf("wardrobe session %s listening at %v (kit=%s)", sess.ID(), listener.Addr(), sess.Catalog().Kit())

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		healthServer.Shutdown()
		server.GracefulStop()
		<-serveErr
		return nil
	}
}
