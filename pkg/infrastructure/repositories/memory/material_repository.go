package memory

import (
	"fmt"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material storage. Materials are kept
// in insertion order so listings and snapshot exports are deterministic.
// Reads return copies; all mutation goes through SaveMaterial.
type MaterialRepository struct {
	materials []entities.Material
	index     map[entities.MaterialID]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{
		materials: []entities.Material{},
		index:     map[entities.MaterialID]int{},
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// GetMaterial returns a copy of the material with the given id
func (r *MaterialRepository) GetMaterial(id entities.MaterialID) (*entities.Material, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("material %s: %w", id, repositories.ErrNotFound)
	}
	m := r.materials[i]
	return &m, nil
}

// GetAllMaterials returns copies of all materials in insertion order
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	materials := make([]*entities.Material, 0, len(r.materials))
	for i := range r.materials {
		m := r.materials[i]
		materials = append(materials, &m)
	}
	return materials, nil
}

// SaveMaterial inserts the material, or replaces it if the id already exists
func (r *MaterialRepository) SaveMaterial(material *entities.Material) error {
	if material == nil {
		return fmt.Errorf("material cannot be nil")
	}
	if i, ok := r.index[material.ID]; ok {
		r.materials[i] = *material
		return nil
	}
	r.index[material.ID] = len(r.materials)
	r.materials = append(r.materials, *material)
	return nil
}

// DeleteMaterial removes the material with the given id. Deleting an unknown
// id is a no-op; recipes may still hold dangling references afterwards.
func (r *MaterialRepository) DeleteMaterial(id entities.MaterialID) error {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.materials = append(r.materials[:i], r.materials[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.materials); j++ {
		r.index[r.materials[j].ID] = j
	}
	return nil
}

// ReplaceMaterials replaces the entire collection, used by snapshot restore
func (r *MaterialRepository) ReplaceMaterials(materials []*entities.Material) error {
	r.materials = make([]entities.Material, 0, len(materials))
	r.index = make(map[entities.MaterialID]int, len(materials))
	for _, m := range materials {
		if m == nil {
			return fmt.Errorf("material cannot be nil")
		}
		if _, ok := r.index[m.ID]; ok {
			return fmt.Errorf("duplicate material id %s", m.ID)
		}
		r.index[m.ID] = len(r.materials)
		r.materials = append(r.materials, *m)
	}
	return nil
}
