// Package middleware groups the Fiber middleware used by the inventory server.
//
//   - rayid: tags every request with an X-Ray-ID (incoming value or a new UUID)
//     and stores it in the "ray_id" local for logger.WithRayID.
//   - auth: rejects requests without the configured X-API-Key. With no key
//     configured every request passes.
//
// The start command registers rayid first, then request logging, then the public
// /health and /swagger routes, and auth last so only the feature routes are protected.
package middleware
