// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

/*
Package services provides suture.Service wrappers for the serve command.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Catalog Reload (CatalogReloadService):
  - Polls the catalog file's modification time and size
  - Reloads and rebuilds the index when either changes
  - A failed reload keeps the previous index active

Cache Cleanup (CacheCleanupService):
  - Runs cache.Cache.Cleanup on an interval to drop expired responses
*/
package services
