// Package server exposes a Processor over HTTP with gin.
//
// Routes:
//
//	GET  /healthz      {"status":"ok"}
//	POST /v1/process   {"text":"..."} -> {"pages":[...],"page_count":n}
//	GET  /metrics      Prometheus exposition
//
// Failures use ErrorResponse: 400 for a malformed body, 413 when the
// sanitized input is over the token limit (with limit and estimate), 502 when
// generation fails.
package server
