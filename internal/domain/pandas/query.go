package pandas

import (
	"sort"
	"strings"
	"time"
)

// Filter retiene los individuos donde q aparece como substring
// (case-insensitive) en nombre, padre, madre, rasgo o zoo de origen.
// q en blanco retiene todo.
func Filter(all []Panda, q string) []Panda {
	qq := strings.ToLower(strings.TrimSpace(q))
	if qq == "" {
		return all
	}

	out := make([]Panda, 0, len(all))
	for _, p := range all {
		if containsFold(p.Name, qq) || containsFold(p.Father, qq) ||
			containsFold(p.Mother, qq) || containsFold(p.Feature, qq) ||
			containsFold(p.OriginZoo, qq) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, qLower string) bool {
	return strings.Contains(strings.ToLower(s), qLower)
}

// Partition separa el set filtrado en presentes y egresados. Ambas
// mitades salen del MISMO set: cada individuo cae en exactamente una.
func Partition(filtered []Panda) (inPark, past []Panda) {
	inPark = make([]Panda, 0, len(filtered))
	past = make([]Panda, 0)
	for _, p := range filtered {
		if InPark(p) {
			inPark = append(inPark, p)
		} else {
			past = append(past, p)
		}
	}
	return inPark, past
}

// SortByBirthDesc ordena por fecha de nacimiento descendente. Se parsea
// a time.Time en vez de comparar strings: el orden lexicográfico de
// yyyy/mm/dd solo coincide con el cronológico si todas las fechas vienen
// zero-padded, y el Excel no lo garantiza. Fechas en blanco o rotas van
// al final (política: nacimiento desconocido = "más viejo").
func SortByBirthDesc(list []Panda) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, iok := parseBirth(list[i].BirthDate)
		tj, jok := parseBirth(list[j].BirthDate)
		if iok != jok {
			return iok // con fecha antes que sin fecha
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
}

func parseBirth(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Paginate corta la página pedida. page es zero-based; size<=0 usa
// defaultSize; page<0 se clampa a 0; fuera de rango devuelve slice
// vacío, nunca error.
func Paginate[T any](list []T, page, size, defaultSize int) []T {
	if size <= 0 {
		size = defaultSize
	}
	if page < 0 {
		page = 0
	}
	from := page * size
	if from > len(list) {
		from = len(list)
	}
	to := from + size
	if to > len(list) {
		to = len(list)
	}
	return list[from:to]
}

// TotalPages = ceil(total/size); 0 items => 0 páginas.
func TotalPages(total, size, defaultSize int) int {
	if size <= 0 {
		size = defaultSize
	}
	return (total + size - 1) / size
}

// FindByName busca por nombre exacto sobre la colección sin filtrar,
// first-match (se asume unicidad de nombres, no se valida).
func FindByName(all []Panda, name string) (Panda, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Panda{}, false
}
