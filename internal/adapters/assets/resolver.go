package assets

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"redpanda-site/internal/platform/httpclient"
)

// ExistenceChecker responde si un archivo existe en el storage remoto.
// Está detrás de interfaz a propósito: hoy se sondea con HEAD porque el
// bucket no expone listado; mañana puede ser un listing real o un
// índice cacheado sin tocar la generación de candidatos.
type ExistenceChecker interface {
	Exists(ctx context.Context, filename string) bool
}

// HTTPChecker sondea <base>/pandas/<filename-encodeado> con HEAD.
// 200–399 cuenta como "existe" (3xx cubre signed URLs / redirects);
// cualquier otra cosa, incluido timeout o error de transporte, cuenta
// como "no existe" y se descarta en silencio.
type HTTPChecker struct {
	client *httpclient.Client
	base   string
}

func NewHTTPChecker(client *httpclient.Client, assetBaseURL string) *HTTPChecker {
	return &HTTPChecker{
		client: client,
		base:   strings.TrimRight(assetBaseURL, "/"),
	}
}

func (c *HTTPChecker) Exists(ctx context.Context, filename string) bool {
	// Solo el path segment va encodeado (espacio => %20, japonés OK).
	code, err := c.client.Head(ctx, c.base+"/pandas/"+url.PathEscape(filename))
	if err != nil {
		return false
	}
	return code >= 200 && code < 400
}

const (
	numberedMax      = 20
	probeConcurrency = 8
)

var extensions = []string{"jpg", "jpeg", "png"}

// Candidates genera el set acotado de nombres de archivo a sondear para
// un individuo: nombre literal y normalizado, solos y numerados 1..20,
// cruzados con las extensiones. El orden es fijo (define qué URL termina
// siendo el thumbnail) y los duplicados se quitan first-seen antes de
// sondear: mismo resultado que deduplicar después, con menos requests.
func Candidates(name string) []string {
	literal := name
	normalized := NormalizeName(name)

	out := make([]string, 0, (numberedMax+1)*2*len(extensions))
	seen := make(map[string]struct{})
	add := func(fn string) {
		if _, dup := seen[fn]; dup {
			return
		}
		seen[fn] = struct{}{}
		out = append(out, fn)
	}

	for _, ext := range extensions {
		add(literal + "." + ext)
	}
	for _, ext := range extensions {
		add(normalized + "." + ext)
	}
	for i := 1; i <= numberedMax; i++ {
		n := strconv.Itoa(i)
		for _, ext := range extensions {
			add(literal + n + "." + ext)
			add(normalized + n + "." + ext)
		}
	}
	return out
}

// Resolver confirma por sondeo qué candidatos existen y devuelve las
// URLs relativas /pandas/<filename> en el orden de generación (nunca en
// orden de llegada: la primera confirmada es el thumbnail).
type Resolver struct {
	checker ExistenceChecker
}

func NewResolver(checker ExistenceChecker) *Resolver {
	return &Resolver{checker: checker}
}

func (r *Resolver) Resolve(ctx context.Context, name string) []string {
	candidates := Candidates(name)
	exists := make([]bool, len(candidates))

	// Sondeos independientes: cada uno con su propio presupuesto de
	// timeout (vive en el http.Client), un probe colgado no bloquea al
	// resto. Sin retries: timeout == no existe.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, fn := range candidates {
		i, fn := i, fn
		g.Go(func() error {
			exists[i] = r.checker.Exists(gctx, fn)
			return nil
		})
	}
	_ = g.Wait()

	urls := make([]string, 0)
	for i, fn := range candidates {
		if exists[i] {
			urls = append(urls, "/pandas/"+fn)
		}
	}
	return urls
}
