// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package supervisor runs the long-lived parts of the service under a
suture/v4 supervisor tree.

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog, which writes to a *slog.Logger. Pass logging.NewSlogLogger() so
those events land in the same zerolog stream as everything else.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddSystemService(services.NewUptimeService(start, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Serve returns after every service has stopped or the shutdown timeout has
elapsed; UnstoppedServiceReport names any service that did not stop in time.
*/
package supervisor
