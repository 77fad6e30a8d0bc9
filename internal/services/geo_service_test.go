package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haolaplus/internal/models"
)

func newGeoService(pays *mockPaysRepo, regions *mockRegionRepo, villes *mockVilleRepo, quartiers *mockQuartierRepo) *GeoService {
	return NewGeoService(pays, regions, villes, quartiers)
}

func TestListPays_AssembleLArbreComplet(t *testing.T) {
	pays := &mockPaysRepo{
		ListAllFn: func() ([]*models.Pays, error) {
			return []*models.Pays{
				{ID: 1, Name: "Togo", Code: "TG", Indicatif: "228"},
				{ID: 2, Name: "Benin", Code: "BJ", Indicatif: "229"},
			}, nil
		},
	}
	regions := &mockRegionRepo{
		ListAllFn: func() ([]*models.Region, error) {
			return []*models.Region{
				{ID: 10, Name: "Maritime", PaysID: 1},
				{ID: 11, Name: "Plateaux", PaysID: 1},
			}, nil
		},
	}
	villes := &mockVilleRepo{
		ListAllFn: func() ([]*models.Ville, error) {
			return []*models.Ville{{ID: 20, Name: "Lomé", RegionID: 10}}, nil
		},
	}
	quartiers := &mockQuartierRepo{
		ListAllFn: func() ([]*models.Quartier, error) {
			return []*models.Quartier{
				{ID: 30, Name: "Bè", VilleID: 20},
				{ID: 31, Name: "Tokoin", VilleID: 20},
			}, nil
		},
	}

	list, err := newGeoService(pays, regions, villes, quartiers).ListPays()
	require.NoError(t, err)
	require.Len(t, list, 2)

	togo := list[0]
	require.Len(t, togo.Regions, 2)
	maritime := togo.Regions[0]
	require.Len(t, maritime.Villes, 1)
	assert.Equal(t, "Lomé", maritime.Villes[0].Name)
	assert.Len(t, maritime.Villes[0].Quartiers, 2)
	assert.Empty(t, togo.Regions[1].Villes)
	assert.Empty(t, list[1].Regions)
}

func TestGetPays_Introuvable(t *testing.T) {
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) { return nil, nil },
	}
	svc := newGeoService(pays, &mockRegionRepo{}, &mockVilleRepo{}, &mockQuartierRepo{})

	_, err := svc.GetPays(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPays_ChargeLesNiveauxImbriques(t *testing.T) {
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) {
			return &models.Pays{ID: id, Name: "Togo"}, nil
		},
	}
	regions := &mockRegionRepo{
		ListByPaysFn: func(paysID int64) ([]*models.Region, error) {
			assert.Equal(t, int64(1), paysID)
			return []*models.Region{{ID: 10, Name: "Maritime", PaysID: paysID}}, nil
		},
	}
	villes := &mockVilleRepo{
		ListByRegionFn: func(regionID int64) ([]*models.Ville, error) {
			return []*models.Ville{{ID: 20, Name: "Lomé", RegionID: regionID}}, nil
		},
	}
	quartiers := &mockQuartierRepo{
		ListByVilleFn: func(villeID int64) ([]*models.Quartier, error) {
			return []*models.Quartier{{ID: 30, Name: "Bè", VilleID: villeID}}, nil
		},
	}

	p, err := newGeoService(pays, regions, villes, quartiers).GetPays(1)
	require.NoError(t, err)
	require.Len(t, p.Regions, 1)
	require.Len(t, p.Regions[0].Villes, 1)
	assert.Len(t, p.Regions[0].Villes[0].Quartiers, 1)
}

func TestCreateRegion_ParentInconnu(t *testing.T) {
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) { return nil, nil },
	}
	svc := newGeoService(pays, &mockRegionRepo{}, &mockVilleRepo{}, &mockQuartierRepo{})

	_, err := svc.CreateRegion("Savanes", 404)
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateRegion_AttacheLePays(t *testing.T) {
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) {
			return &models.Pays{ID: id, Name: "Togo"}, nil
		},
	}
	regions := &mockRegionRepo{
		CreateFn: func(reg *models.Region) error {
			reg.ID = 12
			return nil
		},
	}
	svc := newGeoService(pays, regions, &mockVilleRepo{}, &mockQuartierRepo{})

	reg, err := svc.CreateRegion("Savanes", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), reg.ID)
	require.NotNil(t, reg.Pays)
	assert.Equal(t, "Togo", reg.Pays.Name)
}

func TestUpdateVille_ParentInconnu(t *testing.T) {
	villes := &mockVilleRepo{
		GetByIDFn: func(id int64) (*models.Ville, error) {
			return &models.Ville{ID: id, Name: "Lomé", RegionID: 10}, nil
		},
	}
	regions := &mockRegionRepo{
		GetByIDFn: func(id int64) (*models.Region, error) { return nil, nil },
	}
	svc := newGeoService(&mockPaysRepo{}, regions, villes, &mockQuartierRepo{})

	_, err := svc.UpdateVille(20, "Lomé", 77)
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestDeleteQuartier_Introuvable(t *testing.T) {
	quartiers := &mockQuartierRepo{
		GetByIDFn: func(id int64) (*models.Quartier, error) { return nil, nil },
	}
	svc := newGeoService(&mockPaysRepo{}, &mockRegionRepo{}, &mockVilleRepo{}, quartiers)

	assert.ErrorIs(t, svc.DeleteQuartier(5), ErrNotFound)
}

func TestDeletePays_PoseLaSuppressionLogique(t *testing.T) {
	deleted := false
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) {
			return &models.Pays{ID: id, Name: "Togo"}, nil
		},
		SoftDeleteFn: func(id int64) error {
			deleted = true
			assert.Equal(t, int64(1), id)
			return nil
		},
	}
	svc := newGeoService(pays, &mockRegionRepo{}, &mockVilleRepo{}, &mockQuartierRepo{})

	require.NoError(t, svc.DeletePays(1))
	assert.True(t, deleted)
}

func TestGetQuartier_RemonteLaChaineComplete(t *testing.T) {
	quartiers := &mockQuartierRepo{
		GetByIDFn: func(id int64) (*models.Quartier, error) {
			return &models.Quartier{ID: id, Name: "Bè", VilleID: 20}, nil
		},
	}
	villes := &mockVilleRepo{
		GetByIDFn: func(id int64) (*models.Ville, error) {
			return &models.Ville{ID: id, Name: "Lomé", RegionID: 10}, nil
		},
	}
	regions := &mockRegionRepo{
		GetByIDFn: func(id int64) (*models.Region, error) {
			return &models.Region{ID: id, Name: "Maritime", PaysID: 1}, nil
		},
	}
	pays := &mockPaysRepo{
		GetByIDFn: func(id int64) (*models.Pays, error) {
			return &models.Pays{ID: id, Name: "Togo"}, nil
		},
	}

	qt, err := newGeoService(pays, regions, villes, quartiers).GetQuartier(30)
	require.NoError(t, err)
	require.NotNil(t, qt.Ville)
	require.NotNil(t, qt.Ville.Region)
	require.NotNil(t, qt.Ville.Region.Pays)
	assert.Equal(t, "Togo", qt.Ville.Region.Pays.Name)
}
