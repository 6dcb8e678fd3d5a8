package pandas

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNotFound = errors.New("panda not found")

// Loader entrega la colección completa del padrón. La implementación
// vive en adapters/catalog; acá solo importa el contrato.
type Loader interface {
	Load(ctx context.Context) ([]Panda, error)
}

// ImageResolver resuelve las URLs de fotos confirmadas de un individuo,
// en orden estable (la primera es el thumbnail).
type ImageResolver interface {
	Resolve(ctx context.Context, name string) []string
}

type Service struct {
	loader   Loader
	resolver ImageResolver
	now      func() time.Time
}

func NewService(loader Loader, resolver ImageResolver) *Service {
	return &Service{
		loader:   loader,
		resolver: resolver,
		now:      time.Now,
	}
}

// PagedCards es una mitad de la grilla (presentes o egresados) ya
// paginada, con sus totales propios.
type PagedCards struct {
	Cards      []Card
	Total      int
	TotalPages int
}

type ListResult struct {
	Q    string
	Page int
	Size int

	InPark PagedCards
	Past   PagedCards

	// Degraded indica que ni el Excel remoto ni el snapshot local
	// pudieron cargarse: el catálogo se muestra vacío, no es fatal.
	Degraded bool
}

const DefaultListSize = 12

// List arma la grilla: filtra, separa presentes/egresados, ordena por
// nacimiento descendente y pagina cada mitad por separado. Los
// thumbnails se resuelven solo para las cards visibles de la página.
func (s *Service) List(ctx context.Context, q string, page, size int) (ListResult, error) {
	all, err := s.loader.Load(ctx)

	res := ListResult{Q: q, Page: page, Size: size, Degraded: err != nil}

	filtered := Filter(all, q)
	inPark, past := Partition(filtered)
	SortByBirthDesc(inPark)
	SortByBirthDesc(past)

	res.InPark = s.pageOf(ctx, inPark, page, size)
	res.Past = s.pageOf(ctx, past, page, size)
	return res, nil
}

func (s *Service) pageOf(ctx context.Context, list []Panda, page, size int) PagedCards {
	visible := Paginate(list, page, size, DefaultListSize)

	cards := make([]Card, len(visible))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range visible {
		i, p := i, p
		cards[i] = Card{Panda: s.derive(p)}
		g.Go(func() error {
			cards[i].ThumbURL = s.thumbnail(gctx, p.Name)
			return nil
		})
	}
	// los workers no devuelven error: un probe fallido es "sin foto"
	_ = g.Wait()

	return PagedCards{
		Cards:      cards,
		Total:      len(list),
		TotalPages: TotalPages(len(list), size, DefaultListSize),
	}
}

type DetailResult struct {
	Panda  Panda
	Images []string
}

// Detail busca por nombre exacto y resuelve el set completo de fotos.
// Si ninguna existe se sustituye el placeholder.
func (s *Service) Detail(ctx context.Context, name string) (DetailResult, error) {
	all, err := s.loader.Load(ctx)
	if err != nil {
		return DetailResult{}, ErrNotFound
	}

	p, ok := FindByName(all, name)
	if !ok {
		return DetailResult{}, ErrNotFound
	}

	images := s.resolver.Resolve(ctx, name)
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}

	return DetailResult{Panda: s.derive(p), Images: images}, nil
}

// Postable lista los individuos sobre los que se puede postear en el
// diario: los que están actualmente en el parque.
func (s *Service) Postable(ctx context.Context) ([]Panda, error) {
	all, err := s.loader.Load(ctx)
	if err != nil {
		return nil, nil
	}

	inPark, _ := Partition(all)
	SortByBirthDesc(inPark)
	for i, p := range inPark {
		inPark[i] = s.derive(p)
	}
	return inPark, nil
}

// PostableNames devuelve solo los nombres posteables; es lo que
// consume el selector del form del diario.
func (s *Service) PostableNames(ctx context.Context) ([]string, error) {
	list, err := s.Postable(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names, nil
}

func (s *Service) thumbnail(ctx context.Context, name string) string {
	urls := s.resolver.Resolve(ctx, name)
	if len(urls) == 0 {
		return PlaceholderImage
	}
	return urls[0]
}

// derive recalcula los campos derivados; la edad guardada en el Excel
// se ignora siempre.
func (s *Service) derive(p Panda) Panda {
	p.Age = Age(p.BirthDate, p.DeathDate, s.now())
	return p
}
