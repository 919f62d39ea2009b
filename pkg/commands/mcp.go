package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes mood tools (toggle_mood, remove_mood,
set_note, get_day, get_month, month_scores, render_graph) and the
mood://catalog and mood://months resources.`,
		Example: `
mood mcp --transport stdio
mood mcp --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(svc *app.Service) error {
				return serveMCP(cmd, svc, mcpFlags{
					transport:   transport,
					httpHost:    httpHost,
					httpPort:    httpPort,
					httpPath:    httpPath,
					httpTLSCert: httpTLSCert,
					httpTLSKey:  httpTLSKey,
				})
			})
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

type mcpFlags struct {
	transport   string
	httpHost    string
	httpPort    int
	httpPath    string
	httpTLSCert string
	httpTLSKey  string
}

func serveMCP(cmd *cobra.Command, svc *app.Service, f mcpFlags) error {
	path := strings.TrimSpace(f.httpPath)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	runner := mcp.Runner{
		App:              svc,
		Log:              svc.Log,
		Name:             "mood",
		Version:          version,
		HTTPEndpointPath: path,
		HTTPServerCert:   strings.TrimSpace(f.httpTLSCert),
		HTTPServerKey:    strings.TrimSpace(f.httpTLSKey),
	}

	switch strings.ToLower(strings.TrimSpace(f.transport)) {
	case "", string(mcp.TransportHTTP):
		host := strings.TrimSpace(f.httpHost)
		if host == "" {
			host = "127.0.0.1"
		}
		if f.httpPort < 0 || f.httpPort > 65535 {
			return fmt.Errorf("invalid http-port %d", f.httpPort)
		}

		addr := net.JoinHostPort(host, strconv.Itoa(f.httpPort))
		tls := runner.HTTPServerCert != "" && runner.HTTPServerKey != ""
		runner.Transport = mcp.TransportHTTP
		runner.HTTPListenAddr = addr
		runner.OnHTTPListening = func(a net.Addr) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", listenURL(a, host, path, tls))
		}
	case string(mcp.TransportStdio):
		runner.Transport = mcp.TransportStdio
	default:
		return fmt.Errorf("unsupported transport %q (expected http or stdio)", f.transport)
	}

	return runner.Do(cmd.Context())
}

// listenURL is the address clients should use for a server bound to a.
func listenURL(a net.Addr, host, path string, tls bool) string {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return a.String() + path
	}

	displayHost := host
	if displayHost == "" || displayHost == "0.0.0.0" || displayHost == "::" {
		if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
			displayHost = tcpAddr.IP.String()
		} else {
			displayHost = "127.0.0.1"
		}
	}
	if strings.Contains(displayHost, ":") && !strings.HasPrefix(displayHost, "[") {
		displayHost = "[" + displayHost + "]"
	}

	scheme := "http"
	if tls {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, displayHost, tcpAddr.Port, path)
}
