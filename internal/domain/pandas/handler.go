package pandas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"redpanda-site/internal/domain/diary"

	"github.com/go-chi/chi/v5"
)

// PostSource entrega los posts del diario de un individuo para la vista
// de detalle (lo implementa diary.Service).
type PostSource interface {
	ListByPanda(ctx context.Context, name string, page, size int) (diary.Page, error)
}

const detailPostsSize = 5

func RegisterRoutes(r chi.Router, svc *Service, posts PostSource, assetBase string) {
	// El home redirige directo a la grilla.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/redpandas", http.StatusFound)
	})

	r.Get("/redpandas", listHandler(svc))
	r.Get("/redpandas/{name}", detailHandler(svc, posts))

	// Las fotos viven en el bucket: /pandas/* es solo un redirect con el
	// nombre de archivo encodeado como path segment (espacio => %20).
	r.Get("/pandas/{filename}", assetRedirectHandler(assetBase))
}

type pandaResponse struct {
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	BirthDate    string `json:"birth_date"`
	DeathDate    string `json:"death_date,omitempty"`
	Age          string `json:"age,omitempty"`
	MovedOutDate string `json:"moved_out_date,omitempty"`
	MovedOutZoo  string `json:"moved_out_zoo,omitempty"`
	ArrivalDate  string `json:"arrival_date,omitempty"`
	OriginZoo    string `json:"origin_zoo,omitempty"`
	Father       string `json:"father,omitempty"`
	Mother       string `json:"mother,omitempty"`
	Pair1        string `json:"pair1,omitempty"`
	Pair2        string `json:"pair2,omitempty"`
	Pair3        string `json:"pair3,omitempty"`
	Personality  string `json:"personality,omitempty"`
	Feature      string `json:"feature,omitempty"`
	InPark       bool   `json:"in_park"`
}

type cardResponse struct {
	Panda    pandaResponse `json:"panda"`
	ThumbURL string        `json:"thumb_url"`
}

type partitionResponse struct {
	Cards      []cardResponse `json:"cards"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

type listResponse struct {
	Q        string            `json:"q"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
	InPark   partitionResponse `json:"in_park"`
	Past     partitionResponse `json:"past"`
	Degraded bool              `json:"degraded,omitempty"`
}

// listHandler godoc
// @Summary Grilla de individuos
// @Description Lista en園/過去在園 en dos mitades paginadas por separado, ordenadas por nacimiento descendente. `q` busca substring case-insensitive en nombre, padre, madre, rasgo y zoo de origen.
// @Tags redpandas
// @Produce json
// @Param q query string false "Búsqueda libre"
// @Param page query int false "Página (zero-based)"
// @Param size query int false "Tamaño de página (default 12)"
// @Success 200 {object} listResponse
// @Router /redpandas [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 0)
		size := queryInt(r, "size", DefaultListSize)

		result, err := svc.List(r.Context(), r.URL.Query().Get("q"), page, size)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listResponse{
			Q:        result.Q,
			Page:     result.Page,
			Size:     result.Size,
			InPark:   toPartitionResponse(result.InPark),
			Past:     toPartitionResponse(result.Past),
			Degraded: result.Degraded,
		})
	}
}

type detailResponse struct {
	Panda  pandaResponse  `json:"panda"`
	Images []string       `json:"images"`
	Posts  postsPageBlock `json:"posts"`
}

type postsPageBlock struct {
	Items      []detailPost `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}

type detailPost struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// detailHandler godoc
// @Summary Detalle de un individuo
// @Description Ficha completa: datos del padrón, fotos confirmadas (o placeholder) y la página de posts del diario de ese individuo.
// @Tags redpandas
// @Produce json
// @Param name path string true "Nombre exacto del individuo"
// @Param page query int false "Página de posts (zero-based)"
// @Param size query int false "Tamaño de página de posts (default 5)"
// @Success 200 {object} detailResponse
// @Failure 404 {string} string "個体が見つかりませんでした"
// @Router /redpandas/{name} [get]
func detailHandler(svc *Service, posts PostSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}

		result, err := svc.Detail(r.Context(), name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{
					"error": "個体が見つかりませんでした: " + name,
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		page := queryInt(r, "page", 0)
		size := queryInt(r, "size", detailPostsSize)

		block := postsPageBlock{Items: []detailPost{}}
		if pg, err := posts.ListByPanda(r.Context(), name, page, size); err == nil {
			block.Page = pg.Page
			block.TotalPages = pg.TotalPages
			for _, p := range pg.Items {
				dp := detailPost{ID: p.ID, Comment: p.Comment, CreatedAt: p.CreatedAt}
				if p.ImageFilename != "" {
					dp.ImageURL = "/uploads/" + p.ImageFilename
				}
				block.Items = append(block.Items, dp)
			}
		}

		writeJSON(w, http.StatusOK, detailResponse{
			Panda:  toPandaResponse(result.Panda),
			Images: result.Images,
			Posts:  block,
		})
	}
}

// assetRedirectHandler godoc
// @Summary Redirect a la foto en el bucket
// @Tags assets
// @Param filename path string true "Nombre de archivo"
// @Success 302
// @Router /pandas/{filename} [get]
func assetRedirectHandler(assetBase string) http.HandlerFunc {
	base := strings.TrimRight(assetBase, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if decoded, err := url.PathUnescape(filename); err == nil {
			filename = decoded
		}
		enc := url.PathEscape(filename)
		http.Redirect(w, r, base+"/pandas/"+enc, http.StatusFound)
	}
}

func toPandaResponse(p Panda) pandaResponse {
	return pandaResponse{
		Name:         p.Name,
		Gender:       p.Gender,
		BirthDate:    p.BirthDate,
		DeathDate:    p.DeathDate,
		Age:          p.Age,
		MovedOutDate: p.MovedOutDate,
		MovedOutZoo:  p.MovedOutZoo,
		ArrivalDate:  p.ArrivalDate,
		OriginZoo:    p.OriginZoo,
		Father:       p.Father,
		Mother:       p.Mother,
		Pair1:        p.Pair1,
		Pair2:        p.Pair2,
		Pair3:        p.Pair3,
		Personality:  p.Personality,
		Feature:      p.Feature,
		InPark:       InPark(p),
	}
}

func toPartitionResponse(pc PagedCards) partitionResponse {
	cards := make([]cardResponse, 0, len(pc.Cards))
	for _, c := range pc.Cards {
		cards = append(cards, cardResponse{
			Panda:    toPandaResponse(c.Panda),
			ThumbURL: c.ThumbURL,
		})
	}
	return partitionResponse{
		Cards:      cards,
		Total:      pc.Total,
		TotalPages: pc.TotalPages,
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (pandas/diary); si aparece un tercer uso conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
