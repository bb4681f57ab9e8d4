// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package supervisor runs the HTTP server process under a suture v4 tree.
//
//	moodflix (root)
//	├── catalog-layer
//	│   └── catalog-loader   loads the catalog, installs the engine
//	└── api-layer
//	    ├── cache-janitor    sweeps expired cached responses
//	    └── http-server
//
// Supervisor events are logged through sutureslog, bridged to zerolog by
// logging.NewSlogLogger:
//
//	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	tree.AddCatalogService(services.NewCatalogService(loader, handler.SetEngine, logger))
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
//	err := tree.Serve(ctx)
package supervisor
