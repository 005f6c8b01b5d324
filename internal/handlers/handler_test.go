// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure: a corpus laid
// out under t.TempDir and both handler groups wired to it. The page
// cache is disabled by default so tests never need a running Valkey;
// the one cache integration test connects for real and skips when
// Valkey is unavailable.
package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"noteshub/internal/cache"
	"noteshub/internal/content"
	"noteshub/internal/metrics"
	"noteshub/internal/models"
	"noteshub/internal/render"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Mapper  *content.Mapper
	Site    *Site
	API     *API
	Metrics *metrics.Metrics
	Cache   *cache.PageCache
}

// newTestEnv lays files out under a temp corpus root and builds both
// handler groups over it. Keys are corpus-relative paths like
// "docs/devops/ci-cd.md"; pass a non-nil client to enable the cache.
func newTestEnv(t *testing.T, files map[string]string, client *redis.Client) *testEnv {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"docs", "i18n", "snippets"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for rel, body := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	mapper := content.NewMapper(content.MapperConfig{
		DocsRoot:     filepath.Join(root, "docs"),
		I18nRoot:     filepath.Join(root, "i18n"),
		SnippetsRoot: filepath.Join(root, "snippets"),
	})
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	m := metrics.NewMetrics("test", "go-test")
	pageCache := cache.NewPageCache(client, 0)

	return &testEnv{
		Mapper:  mapper,
		Site:    NewSite(mapper, renderer, pageCache, m, models.LocaleEN),
		API:     NewAPI(mapper, m, models.LocaleEN),
		Metrics: m,
		Cache:   pageCache,
	}
}

// bilingualCorpus is the fixture most tests share: one translated post
// with a snippet, one English-only post, one Vietnamese-only post.
func bilingualCorpus() map[string]string {
	return map[string]string{
		"docs/algorithms/sorting-algorithms.md": "---\n" +
			"title: Sorting Algorithms\n" +
			"description: Classic sorts compared\n" +
			"date: 2025-06-06\n" +
			"tags: sorting, big-o\n" +
			"---\n\nA **stable** sort preserves the order of equal keys.\n",
		"i18n/vi/algorithms/sorting-algorithms.md": "---\n" +
			"title: Thuật toán sắp xếp\n" +
			"date: 2025-06-07\n" +
			"---\n\nSắp xếp **ổn định** giữ nguyên thứ tự các khóa bằng nhau.\n",
		"docs/devops/ci-cd.md": "---\n" +
			"title: CI/CD Pipelines\n" +
			"date: 2025-05-01\n" +
			"---\n\nShip in small steps.\n",
		"i18n/vi/linux/ghi-chu-rieng.md": "---\n" +
			"title: Ghi chú riêng\n" +
			"date: 2025-04-01\n" +
			"---\n\nChỉ có bản tiếng Việt.\n",
		"snippets/algorithms/sorting-algorithms/sorting_algorithms.go": "package main\n\nfunc main() {}\n",
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParams adds several chi URL parameters to a request.
func withChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// counterValue reads one labeled sample of a counter family from the
// registry, so tests observe exactly what /metrics would report. Pass
// nil labels to take the family's first sample.
func counterValue(t *testing.T, m *metrics.Metrics, family string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != family {
			continue
		}
	metric:
		for _, met := range f.GetMetric() {
			got := map[string]string{}
			for _, lp := range met.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			return met.GetCounter().GetValue()
		}
	}
	return 0
}
