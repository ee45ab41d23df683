package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// SchemaVersion versão atual do formato persistido.
const SchemaVersion = 1

var (
	// ErrCorrupt conteúdo persistido ilegível.
	ErrCorrupt = errors.New("cart: conteúdo persistido corrompido")
	// ErrUnsupportedVersion conteúdo gravado por uma versão mais nova.
	ErrUnsupportedVersion = errors.New("cart: versão de esquema não suportada")
)

// document formato v1: {"version":1,"items":[...]}.
type document struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// legacyDocument formato v0, gravado pelo front-end antigo:
// {"state":{"items":[{"id","name","price","qtde","minQt","multiple","imageUrl"}]},"version":0}.
type legacyDocument struct {
	State struct {
		Items []legacyItem `json:"items"`
	} `json:"state"`
}

type legacyItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Qtde        int             `json:"qtde"`
	MinQt       int             `json:"minQt"`
	Multiple    int             `json:"multiple"`
	ImageURL    string          `json:"imageUrl"`
	VariationID string          `json:"variationId"`
}

type envelope struct {
	Version *int            `json:"version"`
	State   json.RawMessage `json:"state"`
}

// Encode serializa o carrinho no formato atual.
func Encode(c *Cart) ([]byte, error) {
	items := c.Items()
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(document{Version: SchemaVersion, Items: items})
}

// Decode lê qualquer versão conhecida e migra para a atual.
// Dados vazios resultam em carrinho vazio.
func Decode(data []byte) (*Cart, error) {
	if len(data) == 0 {
		return New(), nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	version := 0
	if env.Version != nil {
		version = *env.Version
	}
	switch {
	case version == 0 && len(env.State) > 0:
		return decodeLegacy(data)
	case version == 0:
		return nil, fmt.Errorf("%w: sem versão e sem state", ErrCorrupt)
	case version == SchemaVersion:
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return New(doc.Items...), nil
	case version > SchemaVersion:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	default:
		return nil, fmt.Errorf("%w: versão %d", ErrCorrupt, version)
	}
}

func decodeLegacy(data []byte) (*Cart, error) {
	var doc legacyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	c := New()
	for _, li := range doc.State.Items {
		c.AddItem(Item{
			ProductID:   li.ID,
			VariationID: li.VariationID,
			Name:        li.Name,
			Price:       li.Price,
			Quantity:    li.Qtde,
			MinQty:      li.MinQt,
			Multiple:    li.Multiple,
			ImageURL:    li.ImageURL,
		})
	}
	return c, nil
}
