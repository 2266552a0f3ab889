package repositories

import (
	"errors"

	"github.com/nkaya/mixplan/pkg/domain/entities"
)

// ErrNotFound is returned when an entity lookup does not resolve. Stale
// identifiers are an expected, recoverable condition; callers degrade
// gracefully rather than fail.
var ErrNotFound = errors.New("not found")

// MaterialRepository provides access to material data
type MaterialRepository interface {
	GetMaterial(id entities.MaterialID) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	SaveMaterial(material *entities.Material) error
	DeleteMaterial(id entities.MaterialID) error
	ReplaceMaterials(materials []*entities.Material) error
}
