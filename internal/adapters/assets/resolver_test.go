package assets

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"

	"redpanda-site/internal/platform/httpclient"
)

type checkerFunc func(ctx context.Context, filename string) bool

func (f checkerFunc) Exists(ctx context.Context, filename string) bool { return f(ctx, filename) }

func TestCandidates_OrderAndDedup(t *testing.T) {
	got := Candidates("カイ")

	// primero el literal con cada extensión, después el normalizado
	wantPrefix := []string{
		"カイ.jpg", "カイ.jpeg", "カイ.png",
		"カイ1.jpg", "カイ1.jpeg", "カイ1.png",
	}
	// NormalizeName("カイ") == "カイ": los candidatos normalizados son
	// duplicados y tienen que desaparecer first-seen
	for i, want := range wantPrefix {
		if got[i] != want {
			t.Fatalf("candidato[%d] = %q, want %q", i, got[i], want)
		}
	}
	seen := map[string]bool{}
	for _, fn := range got {
		if seen[fn] {
			t.Fatalf("candidato duplicado: %q", fn)
		}
		seen[fn] = true
	}
	// 21 variantes (solo, 1..20) x 3 extensiones
	if len(got) != 63 {
		t.Fatalf("len(candidates) = %d, want 63", len(got))
	}
}

func TestCandidates_LiteralThenNormalized(t *testing.T) {
	got := Candidates("Kai")

	want := []string{
		"Kai.jpg", "Kai.jpeg", "Kai.png",
		"kai.jpg", "kai.jpeg", "kai.png",
		"Kai1.jpg", "kai1.jpg", "Kai1.jpeg", "kai1.jpeg", "Kai1.png", "kai1.png",
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("candidato[%d] = %q, want %q", i, got[i], w)
		}
	}
	if len(got) != 126 {
		t.Fatalf("len(candidates) = %d, want 126", len(got))
	}
}

func TestResolver_OnlyConfirmed(t *testing.T) {
	r := NewResolver(checkerFunc(func(_ context.Context, fn string) bool {
		return fn == "taro.jpg"
	}))

	got := r.Resolve(context.Background(), "taro")
	if len(got) != 1 || got[0] != "/pandas/taro.jpg" {
		t.Fatalf("Resolve(taro) = %v, want [/pandas/taro.jpg]", got)
	}
}

func TestResolver_NothingExists(t *testing.T) {
	r := NewResolver(checkerFunc(func(context.Context, string) bool { return false }))

	if got := r.Resolve(context.Background(), "nadie"); len(got) != 0 {
		t.Fatalf("Resolve sin archivos = %v, want vacío", got)
	}
}

func TestResolver_MergePreservesCandidateOrder(t *testing.T) {
	// taro3.png se genera después de taro1.jpg: aunque los probes corran
	// concurrentes, el merge respeta el orden de generación y taro1.jpg
	// queda como thumbnail
	r := NewResolver(checkerFunc(func(_ context.Context, fn string) bool {
		return fn == "taro3.png" || fn == "taro1.jpg"
	}))

	got := r.Resolve(context.Background(), "taro")
	want := []string{"/pandas/taro1.jpg", "/pandas/taro3.png"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestHTTPChecker(t *testing.T) {
	client := httpclient.NewWithTransport(2*time.Second, httpmock.NewMockTransport())
	tr := client.HTTP.Transport.(*httpmock.MockTransport)

	base := "https://storage.example.com/bucket"
	tr.RegisterResponder(http.MethodHead, base+"/pandas/taro.jpg",
		httpmock.NewStringResponder(http.StatusOK, ""))
	tr.RegisterResponder(http.MethodHead, base+"/pandas/redirected.jpg",
		httpmock.NewStringResponder(http.StatusFound, ""))
	tr.RegisterResponder(http.MethodHead, base+"/pandas/missing.jpg",
		httpmock.NewStringResponder(http.StatusNotFound, ""))
	// %E3%82%AB%E3%82%A4 = カイ path-escapeado
	tr.RegisterResponder(http.MethodHead, base+"/pandas/%E3%82%AB%E3%82%A4.png",
		httpmock.NewStringResponder(http.StatusOK, ""))

	checker := NewHTTPChecker(client, base)
	ctx := context.Background()

	if !checker.Exists(ctx, "taro.jpg") {
		t.Fatal("200 tiene que contar como existe")
	}
	if !checker.Exists(ctx, "redirected.jpg") {
		t.Fatal("302 tiene que contar como existe (signed URL)")
	}
	if checker.Exists(ctx, "missing.jpg") {
		t.Fatal("404 no puede contar como existe")
	}
	if checker.Exists(ctx, "unregistered.jpg") {
		t.Fatal("error de transporte cuenta como ausente, en silencio")
	}
	if !checker.Exists(ctx, "カイ.png") {
		t.Fatal("el filename se encodea como path segment")
	}
}

func TestCachedResolver_Memoizes(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}

	inner := NewResolver(checkerFunc(func(_ context.Context, fn string) bool {
		mu.Lock()
		calls[fn]++
		mu.Unlock()
		return fn == "taro.jpg"
	}))
	cached := NewCachedResolver(inner, time.Minute)

	first := cached.Resolve(context.Background(), "taro")
	second := cached.Resolve(context.Background(), "taro")

	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("resultados distintos: %v vs %v", first, second)
	}
	mu.Lock()
	defer mu.Unlock()
	for fn, n := range calls {
		if n != 1 {
			t.Fatalf("candidato %q sondeado %d veces, la segunda pasada tenía que salir de cache", fn, n)
		}
	}
}
