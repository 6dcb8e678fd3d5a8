package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"redpanda-site/internal/domain/pandas"
	"redpanda-site/internal/platform/httpclient"
	"redpanda-site/internal/platform/logger"
)

// ErrUnavailable indica que ni el Excel remoto ni el snapshot local
// pudieron parsearse. El caller muestra catálogo vacío; nunca es fatal.
var ErrUnavailable = errors.New("catalog unavailable")

// Cell es una celda ya extraída del workbook, lista para mapear sin
// I/O: valor crudo (serial en fechas), y si era fórmula, su resultado
// evaluado.
type Cell struct {
	Raw       string
	Formula   string
	Evaluated string
}

// Layout fijo del padrón: 16 columnas por fila.
const columnCount = 16

// MapRow convierte una fila cruda en un Panda. Función pura: cada
// columna mapea a exactamente un campo en orden posicional; la columna
// 4 (edad guardada) se ignora porque la edad siempre se recalcula.
// Una celda rota degrada ese campo a "" y nunca tira error: el daño
// queda aislado al campo.
func MapRow(cells []Cell) pandas.Panda {
	at := func(i int) Cell {
		if i < len(cells) {
			return cells[i]
		}
		return Cell{}
	}

	return pandas.Panda{
		Name:         cellText(at(0)),
		Gender:       cellText(at(1)),
		BirthDate:    cellDate(at(2)),
		DeathDate:    cellDate(at(3)),
		MovedOutDate: cellDate(at(5)),
		MovedOutZoo:  cellText(at(6)),
		ArrivalDate:  cellDate(at(7)),
		OriginZoo:    cellText(at(8)),
		Father:       cellText(at(9)),
		Mother:       cellText(at(10)),
		Pair1:        cellText(at(11)),
		Pair2:        cellText(at(12)),
		Pair3:        cellText(at(13)),
		Personality:  cellText(at(14)),
		Feature:      cellText(at(15)),
	}
}

// cellText resuelve una celda genérica: texto literal; numérico se
// interpreta como serial de fecha de Excel (así viene el padrón
// original); fórmula usa el valor evaluado.
func cellText(c Cell) string {
	if c.Formula != "" {
		return c.Evaluated
	}
	if c.Raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(c.Raw, 64); err == nil {
		return serialToDate(serial)
	}
	return c.Raw
}

// cellDate resuelve una celda de fecha: serial => yyyy/mm/dd, con la
// excepción de serial 0 => "" (si no, una celda vacía mal leída como
// numérica emitiría 1899/12/31). Texto pasa por cellText.
func cellDate(c Cell) string {
	if c.Raw == "" && c.Formula == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(c.Raw, 64); err == nil {
		return serialToDate(serial)
	}
	return cellText(c)
}

func serialToDate(serial float64) string {
	if serial == 0 {
		return ""
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return ""
	}
	return t.Format(pandas.DateLayout)
}

// Loader baja y parsea el padrón completo en cada llamada: cero cache
// interna (eso es problema del decorator). Si la descarga o el parseo
// fallan cae al snapshot local empaquetado con la app.
type Loader struct {
	client       *httpclient.Client
	sourceURL    string
	fallbackPath string
	headerRows   int
	log          logger.Logger
}

type LoaderOptions struct {
	SourceURL    string
	FallbackPath string
	HeaderRows   int
}

func NewLoader(client *httpclient.Client, opts LoaderOptions, log logger.Logger) *Loader {
	return &Loader{
		client:       client,
		sourceURL:    opts.SourceURL,
		fallbackPath: opts.FallbackPath,
		headerRows:   opts.HeaderRows,
		log:          log.With(map[string]any{"component": "catalog"}),
	}
}

func (l *Loader) Load(ctx context.Context) ([]pandas.Panda, error) {
	if data, err := l.client.FetchBytes(ctx, l.sourceURL); err == nil {
		if list, perr := l.parse(bytes.NewReader(data)); perr == nil {
			return list, nil
		} else {
			l.log.Warn("remote workbook unparseable, using fallback", map[string]any{"err": perr.Error()})
		}
	} else {
		l.log.Warn("remote fetch failed, using fallback", map[string]any{"url": l.sourceURL, "err": err.Error()})
	}

	f, err := os.Open(l.fallbackPath)
	if err != nil {
		l.log.Error("fallback snapshot missing", map[string]any{"path": l.fallbackPath, "err": err.Error()})
		return []pandas.Panda{}, ErrUnavailable
	}
	defer f.Close()

	list, err := l.parse(f)
	if err != nil {
		l.log.Error("fallback snapshot unparseable", map[string]any{"path": l.fallbackPath, "err": err.Error()})
		return []pandas.Panda{}, ErrUnavailable
	}
	return list, nil
}

// parse lee la hoja 0. Las filas por encima de headerRows son títulos y
// cabeceras; una fila totalmente en blanco se saltea sin cortar el scan.
func (l *Loader) parse(r io.Reader) ([]pandas.Panda, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	list := make([]pandas.Panda, 0, len(rows))
	for rowIdx := l.headerRows; rowIdx < len(rows); rowIdx++ {
		raw := rows[rowIdx]
		if blankRow(raw) {
			continue
		}

		cells := make([]Cell, columnCount)
		for col := 0; col < columnCount; col++ {
			if col < len(raw) {
				cells[col].Raw = raw[col]
			}
			axis, aerr := excelize.CoordinatesToCellName(col+1, rowIdx+1)
			if aerr != nil {
				continue
			}
			if formula, ferr := f.GetCellFormula(sheet, axis); ferr == nil && formula != "" {
				cells[col].Formula = formula
				if v, cerr := f.CalcCellValue(sheet, axis); cerr == nil {
					cells[col].Evaluated = v
				} else if v, gerr := f.GetCellValue(sheet, axis); gerr == nil {
					// resultado cacheado en el archivo si la
					// evaluación no está soportada
					cells[col].Evaluated = v
				}
			}
		}

		list = append(list, MapRow(cells))
	}

	return list, nil
}

func blankRow(raw []string) bool {
	for _, v := range raw {
		if v != "" {
			return false
		}
	}
	return true
}
