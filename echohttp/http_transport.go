// Package echohttp provides helpers for building the HTTPS transport used to reach the
// Echo collector. Most applications never use this package directly; the dispatcher builds
// a default transport on its own. It is exposed for environments that need custom CA
// certificates, connect timeouts, or connection-pool tuning.
package echohttp

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultKeepAlive      = 1 * time.Minute
)

// TransportOption is a configuration option for NewHTTPTransport.
type TransportOption interface {
	apply(opts *transportOptions) error
}

type transportOptions struct {
	caCerts        *x509.CertPool
	connectTimeout time.Duration
	poolSize       int
}

type connectTimeoutOption struct {
	timeout time.Duration
}

// ConnectTimeoutOption sets the maximum time to wait while establishing a connection to
// the collector. The default is 10 seconds. Note that this bounds only connection setup;
// the exchange as a whole has no deadline.
func ConnectTimeoutOption(timeout time.Duration) TransportOption {
	return connectTimeoutOption{timeout: timeout}
}

func (o connectTimeoutOption) apply(opts *transportOptions) error {
	opts.connectTimeout = o.timeout
	return nil
}

type caCertOption struct {
	certData []byte
}

// CACertOption adds a root CA certificate, in PEM format, to the set trusted when
// connecting to the collector. The system certificate pool remains trusted as well.
func CACertOption(certData []byte) TransportOption {
	return caCertOption{certData: certData}
}

func (o caCertOption) apply(opts *transportOptions) error {
	if opts.caCerts == nil {
		var err error
		opts.caCerts, err = x509.SystemCertPool()
		if err != nil {
			opts.caCerts = x509.NewCertPool()
		}
	}
	if !opts.caCerts.AppendCertsFromPEM(o.certData) {
		return errors.New("invalid CA certificate data")
	}
	return nil
}

type caCertFileOption struct {
	filePath string
}

// CACertFileOption is like CACertOption but reads the certificate from a file.
func CACertFileOption(filePath string) TransportOption {
	return caCertFileOption{filePath: filePath}
}

func (o caCertFileOption) apply(opts *transportOptions) error {
	data, err := os.ReadFile(o.filePath)
	if err != nil {
		return fmt.Errorf("can't read CA certificate file %s", o.filePath)
	}
	return caCertOption{certData: data}.apply(opts)
}

type poolSizeOption struct {
	size int
}

// PoolSizeOption bounds the number of connections the transport will open to any one
// host. Zero (the default) means no bound beyond the idle-connection limits.
func PoolSizeOption(size int) TransportOption {
	return poolSizeOption{size: size}
}

func (o poolSizeOption) apply(opts *transportOptions) error {
	opts.poolSize = o.size
	return nil
}

// NewHTTPTransport builds an HTTPS-capable *http.Transport with the given options
// applied. Certificate validation is delegated to the platform's TLS stack, optionally
// extended with CA certificates supplied through CACertOption/CACertFileOption.
func NewHTTPTransport(options ...TransportOption) (*http.Transport, error) {
	opts := transportOptions{connectTimeout: defaultConnectTimeout}
	for _, option := range options {
		if err := option.apply(&opts); err != nil {
			return nil, err
		}
	}

	dialer := &net.Dialer{
		Timeout:   opts.connectTimeout,
		KeepAlive: defaultKeepAlive,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if opts.poolSize > 0 {
		transport.MaxConnsPerHost = opts.poolSize
		transport.MaxIdleConnsPerHost = opts.poolSize
	}
	if opts.caCerts != nil {
		transport.TLSClientConfig = &tls.Config{RootCAs: opts.caCerts}
	}
	return transport, nil
}
