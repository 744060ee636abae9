package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cratepath/internal/adapters/cargo"              //nolint:depguard // Wired in app layer
	"go.trai.ch/cratepath/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cratepath/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cratepath/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cratepath/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cratepath/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App and Components are rebuilt per execution because they own the
	// per-run telemetry recorder.
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		DependsOn: []graft.ID{
			config.NodeID,
			cargo.NodeID,
			manifest.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sources, manifests, telemetry, log), nil
}
