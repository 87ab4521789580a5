// Package multiplex serves REST and gRPC traffic on one cleartext
// port. gRPC needs HTTP/2; REST clients may speak HTTP/1.1 or HTTP/2.
package multiplex

import (
	"net/http"
	"strings"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Handler routes each request by protocol signature: HTTP/2 requests
// whose Content-Type begins with "application/grpc" go to the gRPC
// handler, everything else to the REST handler. Classification reads
// headers only; bodies stream through untouched. The returned handler
// is wrapped in h2c so HTTP/2 works without TLS on the same listener.
//
// Pass *grpc.Server as the gRPC handler; it implements http.Handler.
func Handler(rest, grpc http.Handler) http.Handler {
	mixed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsGRPC(r) {
			grpc.ServeHTTP(w, r)
			return
		}
		rest.ServeHTTP(w, r)
	})

	return h2c.NewHandler(mixed, &http2.Server{})
}

// IsGRPC reports whether the request carries gRPC traffic.
func IsGRPC(r *http.Request) bool {
	return r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc")
}
