package pandas

// Panda es un individuo del padrón. Todos los campos vienen del Excel
// como texto libre (las fechas en formato yyyy/mm/dd) y cualquiera puede
// estar vacío. La colección se reconstruye entera en cada carga: no hay
// identidad entre cargas más allá del nombre.
type Panda struct {
	Name         string
	Gender       string
	BirthDate    string
	DeathDate    string
	Age          string // derivado, nunca se persiste
	MovedOutDate string
	MovedOutZoo  string
	ArrivalDate  string
	OriginZoo    string
	Father       string
	Mother       string
	Pair1        string
	Pair2        string
	Pair3        string
	Personality  string
	Feature      string
}

// Card es el view-model de la grilla: individuo + thumbnail resuelto.
// Se arma por request, nunca se persiste.
type Card struct {
	Panda    Panda
	ThumbURL string
}

// PlaceholderImage se usa cuando ningún candidato de imagen existe.
const PlaceholderImage = "/pandas/placeholder.jpg"
