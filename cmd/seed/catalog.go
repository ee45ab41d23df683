package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// catalogRow linha da planilha: nome;categoria;preco;qtd_minima;multiplo;descricao
type catalogRow struct {
	Name         string
	Category     string
	Price        decimal.Decimal
	MinQty       int
	SaleMultiple int
	Description  string
}

// parseCatalog lê o CSV separado por ";" com cabeçalho. latin1 converte de ISO-8859-1.
func parseCatalog(r io.Reader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ler CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []catalogRow
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 3 {
			return nil, fmt.Errorf("linha %d: esperado ao menos nome;categoria;preco", line)
		}
		row := catalogRow{
			Name:     strings.TrimSpace(rec[0]),
			Category: strings.TrimSpace(rec[1]),
			Price:    br.ParseDecimal(rec[2]),
		}
		if row.Name == "" || row.Category == "" {
			return nil, fmt.Errorf("linha %d: nome e categoria são obrigatórios", line)
		}
		if row.MinQty, err = optionalInt(rec, 3); err != nil {
			return nil, fmt.Errorf("linha %d: qtd_minima: %w", line, err)
		}
		if row.SaleMultiple, err = optionalInt(rec, 4); err != nil {
			return nil, fmt.Errorf("linha %d: multiplo: %w", line, err)
		}
		if len(rec) > 5 {
			row.Description = strings.TrimSpace(rec[5])
		}
		out = append(out, row)
	}
	return out, nil
}

func optionalInt(rec []string, idx int) (int, error) {
	if len(rec) <= idx || strings.TrimSpace(rec[idx]) == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(rec[idx]))
}
