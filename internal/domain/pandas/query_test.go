package pandas

import (
	"testing"
)

func fixture() []Panda {
	return []Panda{
		{Name: "ライト", BirthDate: "2016/06/10"},
		{Name: "カイ", BirthDate: "2020/01/01", Father: "Yamato"},
		{Name: "ハナ", BirthDate: "2014/07/02", MovedOutDate: "2023/04/12"},
		{Name: "モモ", BirthDate: "2008/06/24", DeathDate: "2022/05/01"},
		{Name: "タロウ"}, // sin fecha de nacimiento
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	// solo el father de カイ contiene "Yama" (case mezclado)
	got := Filter(fixture(), "yama")
	if len(got) != 1 || got[0].Name != "カイ" {
		t.Fatalf("Filter(yama) = %v, want solo カイ", got)
	}

	if n := len(Filter(fixture(), "")); n != 5 {
		t.Fatalf("q en blanco tiene que retener todo, got %d", n)
	}
	if n := len(Filter(fixture(), "   ")); n != 5 {
		t.Fatalf("q whitespace tiene que retener todo, got %d", n)
	}
	if n := len(Filter(fixture(), "no-match-xyz")); n != 0 {
		t.Fatalf("sin matches tiene que dar vacío, got %d", n)
	}
}

func TestPartition_Completeness(t *testing.T) {
	filtered := fixture()
	inPark, past := Partition(filtered)

	if len(inPark)+len(past) != len(filtered) {
		t.Fatalf("partición incompleta: %d + %d != %d", len(inPark), len(past), len(filtered))
	}

	seen := map[string]int{}
	for _, p := range inPark {
		if !InPark(p) {
			t.Fatalf("%s no debería estar en inPark", p.Name)
		}
		seen[p.Name]++
	}
	for _, p := range past {
		if InPark(p) {
			t.Fatalf("%s no debería estar en past", p.Name)
		}
		seen[p.Name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Fatalf("%s aparece %d veces entre las dos mitades", name, n)
		}
	}
}

func TestSortByBirthDesc_BlankLast(t *testing.T) {
	inPark, _ := Partition(fixture())
	SortByBirthDesc(inPark)

	// in-park: カイ(2020) > ライト(2016) > タロウ(sin fecha, al final)
	want := []string{"カイ", "ライト", "タロウ"}
	if len(inPark) != len(want) {
		t.Fatalf("inPark = %d items, want %d", len(inPark), len(want))
	}
	for i, name := range want {
		if inPark[i].Name != name {
			t.Fatalf("orden[%d] = %s, want %s", i, inPark[i].Name, name)
		}
	}
}

func TestPaginate(t *testing.T) {
	list := []int{0, 1, 2, 3, 4, 5, 6}

	// página fuera de rango => vacío, nunca error
	if got := Paginate(list, 5, 3, 3); len(got) != 0 {
		t.Fatalf("fuera de rango: got %v", got)
	}
	// page negativo se clampa a 0
	if got := Paginate(list, -2, 3, 3); len(got) != 3 || got[0] != 0 {
		t.Fatalf("page<0: got %v", got)
	}
	// size<=0 usa el default
	if got := Paginate(list, 0, 0, 4); len(got) != 4 {
		t.Fatalf("size 0: got %v", got)
	}

	// la suma de todas las páginas reconstruye la lista sin huecos ni duplicados
	size := 3
	var rebuilt []int
	for page := 0; page < TotalPages(len(list), size, size); page++ {
		rebuilt = append(rebuilt, Paginate(list, page, size, size)...)
	}
	if len(rebuilt) != len(list) {
		t.Fatalf("reconstrucción: %v", rebuilt)
	}
	for i, v := range list {
		if rebuilt[i] != v {
			t.Fatalf("reconstrucción[%d] = %d, want %d", i, rebuilt[i], v)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{7, 0, 1}, // size<=0 => default (12)
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size, 12); got != tt.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestFindByName(t *testing.T) {
	p, ok := FindByName(fixture(), "ハナ")
	if !ok || p.BirthDate != "2014/07/02" {
		t.Fatalf("FindByName(ハナ) = %v, %v", p, ok)
	}
	if _, ok := FindByName(fixture(), "だれ"); ok {
		t.Fatal("nombre inexistente no puede matchear")
	}
}
