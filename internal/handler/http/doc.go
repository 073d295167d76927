// Package http implements the local access bridge of the vault daemon.
// It exposes the vault core over a loopback REST API: account registration
// and login, master-password setup and unlock, secret CRUD and search,
// usage tracking, and audit export. Authentication, tracing, and request
// logging are handled at this layer before requests reach the service
// layer; every failure crosses the boundary as a structured
// [models.APIError], never as raw internal detail.
package http
