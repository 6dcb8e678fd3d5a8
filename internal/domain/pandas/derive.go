package pandas

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout es el formato de fecha que usa el Excel en todo el padrón.
const DateLayout = "2006/01/02"

// Age calcula la edad en años enteros como "N歳" (la etiqueta viene así
// en el sitio original japonés). Si deathDate está vacío se mide contra
// now; cualquier fecha que no parsea degrada a "" — nunca error.
func Age(birthDate, deathDate string, now time.Time) string {
	birth, err := time.Parse(DateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return ""
	}

	end := now
	if s := strings.TrimSpace(deathDate); s != "" {
		end, err = time.Parse(DateLayout, s)
		if err != nil {
			return ""
		}
	}
	if end.Before(birth) {
		return ""
	}

	years := end.Year() - birth.Year()
	// Ajuste por cumpleaños no alcanzado.
	if end.Month() < birth.Month() ||
		(end.Month() == birth.Month() && end.Day() < birth.Day()) {
		years--
	}
	return fmt.Sprintf("%d歳", years)
}

// InPark es función pura de (deathDate, movedOutDate): el individuo está
// en el parque sii ambas están en blanco.
func InPark(p Panda) bool {
	return isBlank(p.DeathDate) && isBlank(p.MovedOutDate)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
