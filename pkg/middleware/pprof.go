package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// RegisterPprof adds pprof debug endpoints (/debug/pprof/*) to the router,
// restricted to clients whose IP falls within one of the given CIDR ranges.
// With no CIDRs configured the endpoints are not registered at all.
func RegisterPprof(r chi.Router, allowedCIDRs []string, logger *slog.Logger) {
	if len(allowedCIDRs) == 0 {
		return
	}

	var nets []*net.IPNet
	for _, cidr := range allowedCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Warn("invalid pprof CIDR ignored", slog.String("cidr", cidr))
			continue
		}
		nets = append(nets, ipNet)
	}
	if len(nets) == 0 {
		return
	}

	allow := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			ip := net.ParseIP(host)
			if ip == nil || !ipAllowed(ip, nets) {
				http.NotFound(w, r)
				return
			}
			next(w, r)
		}
	}

	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", allow(pprof.Index))
		r.Get("/cmdline", allow(pprof.Cmdline))
		r.Get("/profile", allow(pprof.Profile))
		r.Get("/symbol", allow(pprof.Symbol))
		r.Get("/trace", allow(pprof.Trace))
		r.Get("/{name}", allow(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(chi.URLParam(r, "name")).ServeHTTP(w, r)
		}))
	})
}

func ipAllowed(ip net.IP, nets []*net.IPNet) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
