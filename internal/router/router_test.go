package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/config"
	"github.com/VPodolski/MakiMora/internal/provider"
)

func TestRouteTableVerbs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	r := SetupRouter(cfg, &provider.Container{Config: cfg})

	want := map[string]string{
		"/api/v1/orders/:id/packed":         http.MethodPatch,
		"/api/v1/orders/:id/assign-courier": http.MethodPatch,
		"/api/v1/orders/:id/delivered":      http.MethodPatch,
		"/api/v1/orders/:id/status":         http.MethodPatch,
		"/api/v1/kitchen/queue":             http.MethodGet,
		"/api/v1/packing/queue":             http.MethodGet,
		"/api/v1/courier/queue":             http.MethodGet,
	}

	got := make(map[string][]string)
	for _, route := range r.Routes() {
		got[route.Path] = append(got[route.Path], route.Method)
	}

	for path, method := range want {
		methods, ok := got[path]
		if !ok {
			t.Fatalf("route %s not registered", path)
		}
		found := false
		for _, m := range methods {
			if m == method {
				found = true
			}
		}
		if !found {
			t.Fatalf("route %s registered as %v, want %s", path, methods, method)
		}
	}
}
