package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nkaya/mixplan/pkg/domain/entities"
	"github.com/nkaya/mixplan/pkg/domain/repositories"
)

func newSalt() *entities.Material {
	return &entities.Material{
		ID:           "salt",
		Name:         "Salt",
		CurrentStock: decimal.NewFromInt(100),
		Unit:         entities.Kilogram,
		MinThreshold: decimal.NewFromInt(10),
	}
}

func TestMaterialRepository_SaveAndGet(t *testing.T) {
	repo := NewMaterialRepository()

	if err := repo.SaveMaterial(newSalt()); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}

	got, err := repo.GetMaterial("salt")
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if got.Name != "Salt" {
		t.Errorf("Expected name Salt, got %s", got.Name)
	}

	// Save with the same id replaces the stored material
	updated := newSalt()
	updated.CurrentStock = decimal.NewFromInt(42)
	if err := repo.SaveMaterial(updated); err != nil {
		t.Fatalf("SaveMaterial update failed: %v", err)
	}
	got, err = repo.GetMaterial("salt")
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if !got.CurrentStock.Equal(decimal.NewFromInt(42)) {
		t.Errorf("Expected stock 42 after update, got %s", got.CurrentStock)
	}

	all, err := repo.GetAllMaterials()
	if err != nil {
		t.Fatalf("GetAllMaterials failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 material after update, got %d", len(all))
	}
}

func TestMaterialRepository_GetUnknown(t *testing.T) {
	repo := NewMaterialRepository()

	_, err := repo.GetMaterial("missing")
	if err == nil {
		t.Fatal("Expected error for unknown material")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMaterialRepository_ReturnsCopies(t *testing.T) {
	repo := NewMaterialRepository()
	if err := repo.SaveMaterial(newSalt()); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}

	got, _ := repo.GetMaterial("salt")
	got.CurrentStock = decimal.Zero

	again, _ := repo.GetMaterial("salt")
	if !again.CurrentStock.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Mutating a returned material must not affect the stored one, got %s", again.CurrentStock)
	}
}

func TestMaterialRepository_Delete(t *testing.T) {
	repo := NewMaterialRepository()
	if err := repo.SaveMaterial(newSalt()); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}

	if err := repo.DeleteMaterial("salt"); err != nil {
		t.Fatalf("DeleteMaterial failed: %v", err)
	}
	if _, err := repo.GetMaterial("salt"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an unknown id is a no-op
	if err := repo.DeleteMaterial("missing"); err != nil {
		t.Errorf("Expected delete of unknown id to be a no-op, got %v", err)
	}
}

func TestMaterialRepository_Replace(t *testing.T) {
	repo := NewMaterialRepository()
	if err := repo.SaveMaterial(newSalt()); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}

	replacement := []*entities.Material{
		{ID: "water", Name: "Water", CurrentStock: decimal.Zero, Unit: entities.Liter, MinThreshold: decimal.Zero, IsInfinite: true},
	}
	if err := repo.ReplaceMaterials(replacement); err != nil {
		t.Fatalf("ReplaceMaterials failed: %v", err)
	}

	if _, err := repo.GetMaterial("salt"); !errors.Is(err, repositories.ErrNotFound) {
		t.Error("Expected old material to be gone after replace")
	}
	if _, err := repo.GetMaterial("water"); err != nil {
		t.Errorf("Expected replacement material to resolve, got %v", err)
	}

	dup := []*entities.Material{replacement[0], replacement[0]}
	if err := repo.ReplaceMaterials(dup); err == nil {
		t.Error("Expected duplicate ids to be rejected")
	}
}
