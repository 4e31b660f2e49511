// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package diagnostics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/filmscout/internal/logging"
)

// Check kinds.
const (
	KindDNS          = "dns"
	KindConnectivity = "connectivity"
	KindEndpoint     = "endpoint"
)

// Resolver resolves host names. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Config lists what Run checks.
type Config struct {
	// Hosts are resolved through Resolver.
	Hosts []string

	// ConnectivityURLs are fetched; any 200 means the internet is reachable.
	ConnectivityURLs []string

	// Endpoints are the OMDb base URLs; a 200 marks one as working.
	Endpoints []string

	// Timeout bounds each individual check.
	Timeout time.Duration

	// Concurrency caps parallel checks.
	Concurrency int

	Resolver   Resolver
	HTTPClient *http.Client
}

// DefaultConfig checks the OMDb hosts plus two well-known hosts.
func DefaultConfig(endpoints []string) Config {
	return Config{
		Hosts: []string{"www.omdbapi.com", "omdbapi.com", "www.google.com", "www.github.com"},
		ConnectivityURLs: []string{
			"https://www.google.com",
			"https://www.cloudflare.com",
			"https://1.1.1.1",
			"https://8.8.8.8",
		},
		Endpoints:   endpoints,
		Timeout:     10 * time.Second,
		Concurrency: 4,
		Resolver:    net.DefaultResolver,
	}
}

// Check is the outcome of one probe.
type Check struct {
	Kind    string        `json:"kind" yaml:"kind"`
	Target  string        `json:"target" yaml:"target"`
	OK      bool          `json:"ok" yaml:"ok"`
	Detail  string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Latency time.Duration `json:"latency_ns" yaml:"latency"`
}

// DNSServer is a public resolver suggested when OMDb names do not resolve.
type DNSServer struct {
	Name      string   `json:"name" yaml:"name"`
	Addresses []string `json:"addresses" yaml:"addresses"`
}

// PublicDNSServers are suggested when resolution fails.
var PublicDNSServers = []DNSServer{
	{Name: "Google", Addresses: []string{"8.8.8.8", "8.8.4.4"}},
	{Name: "Cloudflare", Addresses: []string{"1.1.1.1", "1.0.0.1"}},
	{Name: "OpenDNS", Addresses: []string{"208.67.222.222", "208.67.220.220"}},
	{Name: "Quad9", Addresses: []string{"9.9.9.9", "149.112.112.112"}},
}

// Report collects every check and the conclusions drawn from them.
type Report struct {
	Checks []Check `json:"checks" yaml:"checks"`

	InternetOK       bool     `json:"internet_ok" yaml:"internet_ok"`
	OMDbDNSOK        bool     `json:"omdb_dns_ok" yaml:"omdb_dns_ok"`
	WorkingEndpoints []string `json:"working_endpoints" yaml:"working_endpoints"`

	SuggestedDNS []DNSServer `json:"suggested_dns,omitempty" yaml:"suggested_dns,omitempty"`
	Advice       []string    `json:"advice" yaml:"advice"`
}

// Healthy reports whether at least one OMDb endpoint works.
func (r *Report) Healthy() bool {
	return len(r.WorkingEndpoints) > 0
}

// ByKind returns the checks of one kind in configuration order.
func (r *Report) ByKind(kind string) []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Run performs all checks concurrently and builds the report. Individual
// failures are recorded in the report; Run only fails when ctx ends.
//
//nolint:gocritic // hugeParam: cfg is read once
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Resolver == nil {
		cfg.Resolver = net.DefaultResolver
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	type probe struct {
		kind   string
		target string
	}
	var probes []probe
	for _, h := range cfg.Hosts {
		probes = append(probes, probe{KindDNS, h})
	}
	for _, u := range cfg.ConnectivityURLs {
		probes = append(probes, probe{KindConnectivity, u})
	}
	for _, u := range cfg.Endpoints {
		probes = append(probes, probe{KindEndpoint, u})
	}

	checks := make([]Check, len(probes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, p := range probes {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, cfg.Timeout)
			defer cancel()
			if p.kind == KindDNS {
				checks[i] = resolve(cctx, cfg.Resolver, p.target)
			} else {
				checks[i] = fetch(cctx, cfg.HTTPClient, p.kind, p.target)
			}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &Report{Checks: checks}
	for _, c := range checks {
		switch {
		case c.Kind == KindConnectivity && c.OK:
			r.InternetOK = true
		case c.Kind == KindDNS && c.OK && strings.Contains(c.Target, "omdb"):
			r.OMDbDNSOK = true
		case c.Kind == KindEndpoint && c.OK:
			r.WorkingEndpoints = append(r.WorkingEndpoints, c.Target)
		}
	}
	r.Advice = advise(r)
	if !r.OMDbDNSOK || !r.InternetOK {
		r.SuggestedDNS = PublicDNSServers
	}

	logger := logging.WithComponent("diagnostics")
	logger.Info().
		Bool("internet_ok", r.InternetOK).
		Bool("omdb_dns_ok", r.OMDbDNSOK).
		Int("working_endpoints", len(r.WorkingEndpoints)).
		Msg("diagnostics complete")
	return r, nil
}

func resolve(ctx context.Context, res Resolver, host string) Check {
	start := time.Now()
	addrs, err := res.LookupHost(ctx, host)
	c := Check{Kind: KindDNS, Target: host, Latency: time.Since(start)}
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK = len(addrs) > 0
	c.Detail = strings.Join(addrs, ", ")
	return c
}

func fetch(ctx context.Context, client *http.Client, kind, target string) Check {
	c := Check{Kind: kind, Target: target}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		c.Detail = err.Error()
		return c
	}

	start := time.Now()
	resp, err := client.Do(req)
	c.Latency = time.Since(start)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	_ = resp.Body.Close()

	c.OK = resp.StatusCode == http.StatusOK
	c.Detail = fmt.Sprintf("HTTP %d", resp.StatusCode)
	return c
}

func advise(r *Report) []string {
	switch {
	case r.Healthy():
		return []string{"OMDb is reachable; enrichment can run."}
	case !r.InternetOK:
		return []string{
			"Check the internet connection.",
			"Switch to a public DNS server (see suggested_dns).",
			"Restart the modem or router.",
			"Check firewall rules for outbound HTTP(S).",
			"Use the offline dataset: filmscout sample --size 100",
		}
	case !r.OMDbDNSOK:
		return []string{
			"OMDb host names do not resolve; switch to a public DNS server (see suggested_dns).",
			"Use the offline dataset: filmscout sample --size 100",
		}
	default:
		return []string{
			"OMDb resolves but no endpoint answered; check firewall or proxy settings.",
			"Use the offline dataset: filmscout sample --size 100",
		}
	}
}
