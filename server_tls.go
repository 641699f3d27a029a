//go:build !tinygo

package theremin

import (
	"golang.org/x/crypto/acme/autocert"
)

// ServeTLS serves HTTPS with an automatic Let's Encrypt certificate for host
func (s *Server) ServeTLS(host string) error {
	return s.Serve(autocert.NewListener(host))
}
