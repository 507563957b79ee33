package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUpload   = RouteApiV1 + "/upload"
	RouteMeta     = RouteApiV1 + "/meta/:short_id"
	RouteDownload = RouteApiV1 + "/download/:short_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
