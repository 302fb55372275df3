package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-hardened enable transport-security enforcement
//	-proxy-url public HTTPS URL the gateway is served behind
//	-cookie-secret session cookie signing key
//	-session-max-age session lifetime (e.g., "1h", "30m")
//	-auth-url authentication collaborator base URL
//	-auth-timeout authentication collaborator call timeout
//	-geo-url geo collaborator base URL
//	-geo-timeout geo collaborator call timeout
//	-request-timeout request header timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var hardened bool
	var proxyURL string
	var cookieSecret string
	var sessionMaxAge time.Duration
	var authBaseURL string
	var authTimeout time.Duration
	var geoBaseURL string
	var geoTimeout time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.BoolVar(&hardened, "hardened", false, "Enable transport-security enforcement")
	flag.StringVar(&proxyURL, "proxy-url", "", "Public HTTPS URL the gateway is served behind")
	flag.StringVar(&cookieSecret, "cookie-secret", "", "Session cookie signing key")
	flag.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session lifetime (e.g., 1h, 30m)")
	flag.StringVar(&authBaseURL, "auth-url", "", "Authentication collaborator base URL")
	flag.DurationVar(&authTimeout, "auth-timeout", 0, "Authentication collaborator call timeout")
	flag.StringVar(&geoBaseURL, "geo-url", "", "Geo collaborator base URL")
	flag.DurationVar(&geoTimeout, "geo-timeout", 0, "Geo collaborator call timeout")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Hardened:      hardened,
			ProxyURL:      proxyURL,
			CookieSecret:  cookieSecret,
			SessionMaxAge: sessionMaxAge,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Auth: Collaborator{
			BaseURL: authBaseURL,
			Timeout: authTimeout,
		},
		Geo: Collaborator{
			BaseURL: geoBaseURL,
			Timeout: geoTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
