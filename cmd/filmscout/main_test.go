// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/filmscout/internal/catalog"
	"github.com/tomtom215/filmscout/internal/config"
	"github.com/tomtom215/filmscout/internal/enrich"
	"github.com/tomtom215/filmscout/internal/recommend"
	"github.com/tomtom215/filmscout/internal/sample"
)

// Commands re-initialize the global logger, so these tests run sequentially.

// matrixID is the id of The Matrix in the built-in sample catalog.
const matrixID = 8

func sampleCatalog(t *testing.T) string {
	t.Helper()
	table, err := sample.Generate(25)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := catalog.WriteCSVFile(path, table); err != nil {
		t.Fatal(err)
	}
	return path
}

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	e := &env{stdin: strings.NewReader(stdin), stdout: &stdout, stderr: &stderr}
	err := run(context.Background(), e, args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRun_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantCode int
		inStdout string
		inStderr string
	}{
		{"no command", nil, errUsageShown, 2, "", "Usage: filmscout"},
		{"unknown command", []string{"frobnicate"}, errUsageShown, 2, "", `unknown command "frobnicate"`},
		{"help", []string{"help"}, nil, 0, "recommend", ""},
		{"command help", []string{"search", "-h"}, flag.ErrHelp, 0, "", "-q"},
		{"bad flag", []string{"stats", "--nope"}, errUsageShown, 2, "", "flag provided but not defined"},
		{"positional argument", []string{"stats", "extra"}, errUsage, 2, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			if tt.wantErr == nil {
				if res.err != nil {
					t.Fatalf("run() error = %v", res.err)
				}
			} else if !errors.Is(res.err, tt.wantErr) {
				t.Fatalf("run() error = %v, want %v", res.err, tt.wantErr)
			}
			if res.err != nil {
				if got := exitCode(res.err); got != tt.wantCode {
					t.Errorf("exitCode() = %d, want %d", got, tt.wantCode)
				}
			}
			if !strings.Contains(res.stdout, tt.inStdout) {
				t.Errorf("stdout = %q, want it to contain %q", res.stdout, tt.inStdout)
			}
			if !strings.Contains(res.stderr, tt.inStderr) {
				t.Errorf("stderr = %q, want it to contain %q", res.stderr, tt.inStderr)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{flag.ErrHelp, 0},
		{errUsageShown, 2},
		{fmt.Errorf("%w: bad", errUsage), 2},
		{context.Canceled, 130},
		{recommend.ErrNotBuilt, 1},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1,2,3", []int{1, 2, 3}, false},
		{" 4 , 5,,", []int{4, 5}, false},
		{"", nil, false},
		{"1,x", nil, true},
	}
	for _, tt := range tests {
		got, err := parseIDList(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIDList(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseIDList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildEngineConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Recommend.MaxFeatures = 500
	cfg.Recommend.NGramMax = 1
	cfg.Recommend.Weights.Director = 5
	cfg.Recommend.Weights.MajorAwardMarkers = []string{"BAFTA"}
	cfg.Recommend.DefaultK = 7

	ec := buildEngineConfig(&cfg.Recommend)
	if err := ec.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if ec.TFIDF.MaxFeatures != 500 || ec.TFIDF.NGramMax != 1 {
		t.Errorf("TFIDF = %+v", ec.TFIDF)
	}
	if ec.Weights.Director != 5 || !reflect.DeepEqual(ec.Weights.MajorAwardMarkers, []string{"BAFTA"}) {
		t.Errorf("Weights = %+v", ec.Weights)
	}
	if ec.Limits.DefaultK != 7 || ec.Limits.MorePoolSize != cfg.Recommend.MorePoolSize {
		t.Errorf("Limits = %+v", ec.Limits)
	}

	cfg.Recommend.Weights.MajorAwardMarkers[0] = "changed"
	if ec.Weights.MajorAwardMarkers[0] != "BAFTA" {
		t.Error("engine config shares the marker slice with the koanf config")
	}
}

func TestRecommend(t *testing.T) {
	path := sampleCatalog(t)

	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "recommend", "--catalog", path, "--log-level", "error",
			"--watched", fmt.Sprintf("1,%d", matrixID), "--k", "3", "--format", "json")
		if res.err != nil {
			t.Fatalf("recommend error = %v\n%s", res.err, res.stderr)
		}
		var resp recommend.Response
		if err := json.Unmarshal([]byte(res.stdout), &resp); err != nil {
			t.Fatalf("decode: %v\n%s", err, res.stdout)
		}
		if len(resp.Items) != 3 {
			t.Fatalf("got %d items, want 3", len(resp.Items))
		}
		for i, rec := range resp.Items {
			if rec.Item.ID == 1 || rec.Item.ID == matrixID {
				t.Errorf("watched film %d recommended", rec.Item.ID)
			}
			if i > 0 && rec.Score > resp.Items[i-1].Score {
				t.Errorf("scores not ordered: %v", resp.Items)
			}
		}
		if resp.Metadata.RequestID == "" {
			t.Error("request id missing")
		}
	})

	t.Run("text", func(t *testing.T) {
		res := runCLI(t, "", "recommend", "--catalog", path, "--log-level", "error",
			"--watched", "1,999", "--k", "2")
		if res.err != nil {
			t.Fatalf("recommend error = %v", res.err)
		}
		for _, want := range []string{"Because you watched The Shawshank Redemption", "unknown ids skipped: 999", "SCORE"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("output missing %q:\n%s", want, res.stdout)
			}
		}
	})

	t.Run("filter", func(t *testing.T) {
		res := runCLI(t, "", "recommend", "--catalog", path, "--log-level", "error",
			"--watched", "1", "--k", "5", "--format", "json", "--filter", "item.year >= 2000")
		if res.err != nil {
			t.Fatalf("recommend error = %v", res.err)
		}
		var resp recommend.Response
		if err := json.Unmarshal([]byte(res.stdout), &resp); err != nil {
			t.Fatal(err)
		}
		for _, rec := range resp.Items {
			if rec.Item.Year < 2000 {
				t.Errorf("filter let through %s (%d)", rec.Item.Title, rec.Item.Year)
			}
		}
	})

	errTests := []struct {
		name string
		args []string
		want error
	}{
		{"missing watched", []string{}, errUsage},
		{"bad watched", []string{"--watched", "a"}, errUsage},
		{"negative k", []string{"--watched", "1", "--k", "-1"}, errUsage},
		{"bad format", []string{"--watched", "1", "--format", "xml"}, errUsage},
		{"unknown ids only", []string{"--watched", "998,999"}, recommend.ErrNotFound},
		{"bad filter", []string{"--watched", "1", "--filter", "item.year >>"}, recommend.ErrInvalidArgument},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"recommend", "--catalog", path, "--log-level", "error"}, tt.args...)
			if res := runCLI(t, "", args...); !errors.Is(res.err, tt.want) {
				t.Errorf("error = %v, want %v", res.err, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	path := sampleCatalog(t)

	t.Run("yaml uses json field names", func(t *testing.T) {
		res := runCLI(t, "", "search", "--catalog", path, "--log-level", "error", "--q", "MATRIX", "--format", "yaml")
		if res.err != nil {
			t.Fatalf("search error = %v", res.err)
		}
		var got []map[string]any
		if err := yaml.Unmarshal([]byte(res.stdout), &got); err != nil {
			t.Fatalf("decode: %v\n%s", err, res.stdout)
		}
		if len(got) != 1 || got[0]["title"] != "The Matrix" || got[0]["id"] != matrixID {
			t.Errorf("results = %v", got)
		}
		if strings.Contains(res.stdout, "{") {
			t.Errorf("yaml output uses flow style:\n%s", res.stdout)
		}
	})

	t.Run("no match", func(t *testing.T) {
		res := runCLI(t, "", "search", "--catalog", path, "--log-level", "error", "--q", "zzzz")
		if res.err != nil || !strings.Contains(res.stdout, `No films match "zzzz"`) {
			t.Errorf("search = %q, %v", res.stdout, res.err)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		if res := runCLI(t, "", "search", "--catalog", path, "--q", "  "); !errors.Is(res.err, errUsage) {
			t.Errorf("error = %v, want usage error", res.err)
		}
	})
}

func TestInfo(t *testing.T) {
	path := sampleCatalog(t)

	res := runCLI(t, "", "info", "--catalog", path, "--log-level", "error", "--id", fmt.Sprint(matrixID))
	if res.err != nil {
		t.Fatalf("info error = %v", res.err)
	}
	for _, want := range []string{"Title:", "The Matrix", "Top terms:"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}

	res = runCLI(t, "", "info", "--catalog", path, "--log-level", "error", "--id", "4242")
	var nf *recommend.NotFoundError
	if !errors.As(res.err, &nf) {
		t.Errorf("unknown id error = %v, want NotFoundError", res.err)
	}

	if res := runCLI(t, "", "info", "--catalog", path); !errors.Is(res.err, errUsage) {
		t.Errorf("missing --id error = %v", res.err)
	}
}

func TestStats(t *testing.T) {
	path := sampleCatalog(t)

	res := runCLI(t, "", "stats", "--catalog", path, "--log-level", "error", "--format", "json")
	if res.err != nil {
		t.Fatalf("stats error = %v", res.err)
	}
	var stats recommend.Stats
	if err := json.Unmarshal([]byte(res.stdout), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalItems != 25 || stats.Generation != 1 || stats.Enrichment == nil {
		t.Errorf("stats = %+v", stats)
	}

	res = runCLI(t, "", "stats", "--catalog", path, "--log-level", "error")
	if res.err != nil || !strings.Contains(res.stdout, "Films:              25") {
		t.Errorf("text stats = %q, %v", res.stdout, res.err)
	}

	missing := filepath.Join(t.TempDir(), "absent.csv")
	if res := runCLI(t, "", "stats", "--catalog", missing, "--log-level", "error"); res.err == nil {
		t.Error("missing catalog accepted")
	}
}

func TestSample(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sample.csv")
	res := runCLI(t, "", "sample", "--log-level", "error", "--size", "50", "--out", out)
	if res.err != nil {
		t.Fatalf("sample error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Wrote 50 films") {
		t.Errorf("output = %q", res.stdout)
	}
	corpus, err := catalog.LoadFile(out, catalog.FormatAuto)
	if err != nil {
		t.Fatalf("written sample does not load: %v", err)
	}
	if corpus.Len() != 50 {
		t.Errorf("corpus size = %d", corpus.Len())
	}

	if res := runCLI(t, "", "sample", "--size", "33", "--out", out); !errors.Is(res.err, errUsage) {
		t.Errorf("odd size error = %v", res.err)
	}
}

func TestTMDB(t *testing.T) {
	dir := t.TempDir()
	movies := filepath.Join(dir, "tmdb_movies.csv")
	credits := filepath.Join(dir, "tmdb_credits.csv")
	out := filepath.Join(dir, "movies.csv")

	writeFile(t, movies, `id,title,genres,overview,release_date
19995,Avatar,"[{""id"": 28, ""name"": ""Action""}]",A marine on Pandora.,2009-12-10
285,Pirates,"[{""id"": 12, ""name"": ""Adventure""}]",Captain Barbossa returns.,2007-05-19
`)
	writeFile(t, credits, `movie_id,title,cast,crew
19995,Avatar,"[{""name"": ""Sam Worthington""}]","[{""job"": ""Director"", ""name"": ""James Cameron""}]"
`)

	res := runCLI(t, "", "tmdb", "--log-level", "error", "--movies", movies, "--credits", credits,
		"--out", out, "--format", "json")
	if res.err != nil {
		t.Fatalf("tmdb error = %v", res.err)
	}
	var summary catalog.TMDBSummary
	if err := json.Unmarshal([]byte(res.stdout), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Movies != 2 || summary.WithCredits != 1 {
		t.Errorf("summary = %+v", summary)
	}

	corpus, err := catalog.LoadFile(out, catalog.FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	if avatar, _ := corpus.Lookup(19995); avatar.Director != "James Cameron" {
		t.Errorf("director = %q", avatar.Director)
	}

	if res := runCLI(t, "", "tmdb"); !errors.Is(res.err, errUsage) {
		t.Errorf("missing --movies error = %v", res.err)
	}
}

func TestInteractive_InputClosed(t *testing.T) {
	path := sampleCatalog(t)
	res := runCLI(t, "", "interactive", "--catalog", path, "--log-level", "error")
	if res.err != nil {
		t.Fatalf("interactive error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Input closed") {
		t.Errorf("output = %q", res.stdout)
	}
}

// omdbStub answers every title lookup with a matching movie.
func omdbStub() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		title := r.URL.Query().Get("t")
		if title == "" {
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			return
		}
		body, _ := json.Marshal(map[string]string{
			"Title":      title,
			"Year":       "1999",
			"Genre":      "Drama",
			"Director":   "Someone",
			"imdbRating": "7.5",
			"Runtime":    "120 min",
			"Type":       "movie",
			"Response":   "True",
		})
		_, _ = w.Write(body)
	})
}

func TestEnrich(t *testing.T) {
	srv := httptest.NewServer(omdbStub())
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "filmscout.yaml")
	writeFile(t, cfgPath, fmt.Sprintf(`enrich:
  base_urls: ["%s/"]
  store_path: %s
  key_file: %s
  env_file: ""
  rate_delay: 0s
logging:
  level: error
`, srv.URL, filepath.Join(dir, "store"), filepath.Join(dir, "omdb_config.json")))

	in := filepath.Join(dir, "movies.csv")
	writeFile(t, in, "id,title\n1,Heat\n2,Thief\n3,Ronin\n")

	res := runCLI(t, "", "enrich", "--config", cfgPath, "--in", in, "--max", "2",
		"--api-key", "test-key", "--save-key", "--format", "json")
	if res.err != nil {
		t.Fatalf("enrich error = %v\n%s", res.err, res.stderr)
	}

	var report enrich.Report
	if err := json.Unmarshal([]byte(res.stdout), &report); err != nil {
		t.Fatal(err)
	}
	if report.Total != 2 || report.Succeeded != 2 {
		t.Errorf("report = %+v", report)
	}

	corpus, err := catalog.LoadFile(filepath.Join(dir, "movies_enriched.csv"), catalog.FormatAuto)
	if err != nil {
		t.Fatalf("enriched catalog does not load: %v", err)
	}
	if corpus.Len() != 2 {
		t.Errorf("corpus size = %d, want 2", corpus.Len())
	}
	if heat, _ := corpus.Lookup(1); !heat.Enriched || heat.Rating != 7.5 {
		t.Errorf("Heat = %+v", heat)
	}

	key, source, err := enrich.ResolveAPIKey("", filepath.Join(dir, "omdb_config.json"), "")
	if err != nil || key != "test-key" || source != enrich.KeySourceKeyFile {
		if os.Getenv(enrich.APIKeyEnvVar) == "" {
			t.Errorf("saved key = %q from %s, %v", key, source, err)
		}
	}
}

func TestEnrich_Usage(t *testing.T) {
	tests := [][]string{
		{"enrich"},
		{"enrich", "--in", "x.csv", "--save-key"},
	}
	for _, args := range tests {
		if res := runCLI(t, "", args...); !errors.Is(res.err, errUsage) {
			t.Errorf("%v: error = %v, want usage error", args, res.err)
		}
	}
}

func TestEnrichedPath(t *testing.T) {
	tests := map[string]string{
		"movies.csv":      "movies_enriched.csv",
		"dir/films.json":  "dir/films_enriched.csv",
		"no_extension":    "no_extension_enriched.csv",
		"a.b/catalog.csv": "a.b/catalog_enriched.csv",
	}
	for in, want := range tests {
		if got := enrichedPath(in); got != want {
			t.Errorf("enrichedPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildServeTree(t *testing.T) {
	path := sampleCatalog(t)

	cfg := config.Default()
	cfg.Catalog.Path = path
	cfg.Server.Port = 0
	cfg.Server.ReloadInterval = 0

	engine, err := openEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := buildServeTree(cfg, engine)
	if err != nil {
		t.Fatalf("buildServeTree() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)
	cancel()
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("tree stopped with %v", err)
	}
}

func TestWriteYAML_KeepsQuotedStrings(t *testing.T) {
	var buf bytes.Buffer
	if err := writeYAML(&buf, map[string]any{"year": "1999", "count": 3}); err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["year"] != "1999" || got["count"] != 3 {
		t.Errorf("round trip = %#v from\n%s", got, buf.String())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
