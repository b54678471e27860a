// Package catalog contiene los datos estaticos de referencia de modelos de
// negocio. El catalogo se carga una vez por proceso y es de solo lectura; el
// orden de insercion es estable y es el desempate documentado para puntajes
// iguales.
package catalog

import (
	"fmt"

	"bizmatch/internal/domain"
)

// Catalog es el conjunto cargado de definiciones de modelos de negocio.
type Catalog struct {
	ordered []domain.BusinessModelDefinition
	byID    map[string]*domain.BusinessModelDefinition
}

// Load construye el catalogo desde las definiciones embebidas. Devuelve error
// si los datos son inconsistentes (ids duplicados), que es un error de
// programacion y no una condicion de runtime.
func Load() (*Catalog, error) {
	c := &Catalog{
		ordered: definitions,
		byID:    make(map[string]*domain.BusinessModelDefinition, len(definitions)),
	}
	for i := range c.ordered {
		def := &c.ordered[i]
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate model id %q", def.ID)
		}
		c.byID[def.ID] = def
	}
	return c, nil
}

// All devuelve todas las definiciones en orden estable de insercion. El
// caller no debe mutar el slice devuelto.
func (c *Catalog) All() []domain.BusinessModelDefinition {
	return c.ordered
}

// ByID devuelve la definicion para id, o nil si el id es desconocido.
func (c *Catalog) ByID(id string) *domain.BusinessModelDefinition {
	return c.byID[id]
}

// Len devuelve la cantidad de entradas del catalogo.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
