// Package gateway implements the edge reverse proxy in front of the
// user service. Its one correctness hazard is body integrity: a proxy
// that re-serializes a parsed body can reorder fields or drift
// whitespace and desynchronize Content-Length, so the raw bytes are
// captured at ingress and retransmitted untouched.
package gateway

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codewithharshjha/micro-services/internal/logger"
)

type Proxy struct {
	target *url.URL

	// The public prefix is stripped from the inbound path and the
	// upstream prefix reattached. They are equal today; keeping the
	// rewrite as strip-then-reattach lets public and internal naming
	// diverge later without touching forwarding code.
	publicPrefix   string
	upstreamPrefix string

	proxy *httputil.ReverseProxy
}

func NewProxy(target, publicPrefix, upstreamPrefix string) (*Proxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("gateway: invalid upstream url %q: %w", target, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: upstream url %q missing scheme or host", target)
	}

	p := &Proxy{
		target:         u,
		publicPrefix:   publicPrefix,
		upstreamPrefix: upstreamPrefix,
	}
	p.proxy = &httputil.ReverseProxy{
		Director:     p.direct,
		ErrorHandler: p.upstreamError,
	}
	return p, nil
}

func (p *Proxy) direct(r *http.Request) {
	r.URL.Scheme = p.target.Scheme
	r.URL.Host = p.target.Host
	r.Host = p.target.Host

	r.URL.Path = p.upstreamPrefix + strings.TrimPrefix(r.URL.Path, p.publicPrefix)
}

func (p *Proxy) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("upstream request failed", map[string]any{
		"path":  r.URL.Path,
		"error": err.Error(),
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = w.Write([]byte(`{"message":"upstream unavailable"}`))
}

// Handle captures the raw request body before anything can parse it,
// pins Content-Type and Content-Length to the captured bytes, and
// forwards. The upstream receives the identical byte sequence.
func (p *Proxy) Handle(c *gin.Context) {
	var raw []byte
	if c.Request.Body != nil {
		var err error
		raw, err = io.ReadAll(c.Request.Body)
		c.Request.Body.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
			return
		}
	}

	if len(raw) > 0 {
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		c.Request.ContentLength = int64(len(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Request.Header.Set("Content-Length", strconv.Itoa(len(raw)))
	} else {
		c.Request.Body = http.NoBody
		c.Request.ContentLength = 0
	}

	p.proxy.ServeHTTP(c.Writer, c.Request)
}
