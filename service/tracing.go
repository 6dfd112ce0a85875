package service

import "go.opentelemetry.io/otel"

// tracer resolves against the global provider, so spans are no-ops until
// telemetry is configured at startup
var tracer = otel.Tracer("overol-freefly/service")
