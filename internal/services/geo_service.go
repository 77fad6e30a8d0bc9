package services

import (
	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
)

// GeoService porte la hiérarchie pays → region → ville → quartier. Les
// associations sont chargées explicitement : le service va chercher chaque
// niveau et assemble l'arbre lui-même.
type GeoService struct {
	Pays      repositories.PaysRepository
	Regions   repositories.RegionRepository
	Villes    repositories.VilleRepository
	Quartiers repositories.QuartierRepository
}

func NewGeoService(
	pays repositories.PaysRepository,
	regions repositories.RegionRepository,
	villes repositories.VilleRepository,
	quartiers repositories.QuartierRepository,
) *GeoService {
	return &GeoService{Pays: pays, Regions: regions, Villes: villes, Quartiers: quartiers}
}

// loadBranches regroupe chaque niveau par identifiant de parent, en une seule
// requête par table.
func (s *GeoService) loadBranches() (map[int64][]*models.Region, map[int64][]*models.Ville, map[int64][]*models.Quartier, error) {
	regions, err := s.Regions.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}
	villes, err := s.Villes.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}
	quartiers, err := s.Quartiers.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}

	regByPays := make(map[int64][]*models.Region)
	for _, reg := range regions {
		regByPays[reg.PaysID] = append(regByPays[reg.PaysID], reg)
	}
	vilByRegion := make(map[int64][]*models.Ville)
	for _, v := range villes {
		vilByRegion[v.RegionID] = append(vilByRegion[v.RegionID], v)
	}
	qtByVille := make(map[int64][]*models.Quartier)
	for _, qt := range quartiers {
		qtByVille[qt.VilleID] = append(qtByVille[qt.VilleID], qt)
	}
	return regByPays, vilByRegion, qtByVille, nil
}

// ---- Pays ----

func (s *GeoService) ListPays() ([]*models.Pays, error) {
	pays, err := s.Pays.ListAll()
	if err != nil {
		return nil, err
	}
	regByPays, vilByRegion, qtByVille, err := s.loadBranches()
	if err != nil {
		return nil, err
	}
	for _, p := range pays {
		p.Regions = regByPays[p.ID]
		for _, reg := range p.Regions {
			reg.Villes = vilByRegion[reg.ID]
			for _, v := range reg.Villes {
				v.Quartiers = qtByVille[v.ID]
			}
		}
	}
	return pays, nil
}

func (s *GeoService) GetPays(id int64) (*models.Pays, error) {
	p, err := s.Pays.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	regions, err := s.Regions.ListByPays(p.ID)
	if err != nil {
		return nil, err
	}
	for _, reg := range regions {
		villes, err := s.Villes.ListByRegion(reg.ID)
		if err != nil {
			return nil, err
		}
		for _, v := range villes {
			if v.Quartiers, err = s.Quartiers.ListByVille(v.ID); err != nil {
				return nil, err
			}
		}
		reg.Villes = villes
	}
	p.Regions = regions
	return p, nil
}

func (s *GeoService) CreatePays(name, code, indicatif string) (*models.Pays, error) {
	p := &models.Pays{Name: name, Code: code, Indicatif: indicatif}
	if err := s.Pays.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *GeoService) UpdatePays(id int64, name, code, indicatif string) (*models.Pays, error) {
	p, err := s.Pays.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	p.Name, p.Code, p.Indicatif = name, code, indicatif
	if err := s.Pays.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *GeoService) DeletePays(id int64) error {
	p, err := s.Pays.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.Pays.SoftDelete(id)
}

// ---- Regions ----

func (s *GeoService) ListRegions() ([]*models.Region, error) {
	regions, err := s.Regions.ListAll()
	if err != nil {
		return nil, err
	}
	pays, err := s.Pays.ListAll()
	if err != nil {
		return nil, err
	}
	paysByID := make(map[int64]*models.Pays, len(pays))
	for _, p := range pays {
		paysByID[p.ID] = p
	}
	_, vilByRegion, qtByVille, err := s.loadBranches()
	if err != nil {
		return nil, err
	}
	for _, reg := range regions {
		reg.Pays = paysByID[reg.PaysID]
		reg.Villes = vilByRegion[reg.ID]
		for _, v := range reg.Villes {
			v.Quartiers = qtByVille[v.ID]
		}
	}
	return regions, nil
}

func (s *GeoService) GetRegion(id int64) (*models.Region, error) {
	reg, err := s.Regions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNotFound
	}
	if reg.Pays, err = s.Pays.GetByID(reg.PaysID); err != nil {
		return nil, err
	}
	villes, err := s.Villes.ListByRegion(reg.ID)
	if err != nil {
		return nil, err
	}
	for _, v := range villes {
		if v.Quartiers, err = s.Quartiers.ListByVille(v.ID); err != nil {
			return nil, err
		}
	}
	reg.Villes = villes
	return reg, nil
}

func (s *GeoService) CreateRegion(name string, paysID int64) (*models.Region, error) {
	parent, err := s.Pays.GetByID(paysID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	reg := &models.Region{Name: name, PaysID: paysID}
	if err := s.Regions.Create(reg); err != nil {
		return nil, err
	}
	reg.Pays = parent
	return reg, nil
}

func (s *GeoService) UpdateRegion(id int64, name string, paysID int64) (*models.Region, error) {
	reg, err := s.Regions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNotFound
	}
	parent, err := s.Pays.GetByID(paysID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	reg.Name, reg.PaysID = name, paysID
	if err := s.Regions.Update(reg); err != nil {
		return nil, err
	}
	reg.Pays = parent
	return reg, nil
}

func (s *GeoService) DeleteRegion(id int64) error {
	reg, err := s.Regions.GetByID(id)
	if err != nil {
		return err
	}
	if reg == nil {
		return ErrNotFound
	}
	return s.Regions.SoftDelete(id)
}

// ---- Villes ----

func (s *GeoService) ListVilles() ([]*models.Ville, error) {
	villes, err := s.Villes.ListAll()
	if err != nil {
		return nil, err
	}
	regions, err := s.Regions.ListAll()
	if err != nil {
		return nil, err
	}
	pays, err := s.Pays.ListAll()
	if err != nil {
		return nil, err
	}
	quartiers, err := s.Quartiers.ListAll()
	if err != nil {
		return nil, err
	}

	paysByID := make(map[int64]*models.Pays, len(pays))
	for _, p := range pays {
		paysByID[p.ID] = p
	}
	regByID := make(map[int64]*models.Region, len(regions))
	for _, reg := range regions {
		reg.Pays = paysByID[reg.PaysID]
		regByID[reg.ID] = reg
	}
	qtByVille := make(map[int64][]*models.Quartier)
	for _, qt := range quartiers {
		qtByVille[qt.VilleID] = append(qtByVille[qt.VilleID], qt)
	}
	for _, v := range villes {
		v.Region = regByID[v.RegionID]
		v.Quartiers = qtByVille[v.ID]
	}
	return villes, nil
}

func (s *GeoService) GetVille(id int64) (*models.Ville, error) {
	v, err := s.Villes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	reg, err := s.Regions.GetByID(v.RegionID)
	if err != nil {
		return nil, err
	}
	if reg != nil {
		if reg.Pays, err = s.Pays.GetByID(reg.PaysID); err != nil {
			return nil, err
		}
	}
	v.Region = reg
	if v.Quartiers, err = s.Quartiers.ListByVille(v.ID); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *GeoService) CreateVille(name string, regionID int64) (*models.Ville, error) {
	parent, err := s.Regions.GetByID(regionID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	v := &models.Ville{Name: name, RegionID: regionID}
	if err := s.Villes.Create(v); err != nil {
		return nil, err
	}
	v.Region = parent
	return v, nil
}

func (s *GeoService) UpdateVille(id int64, name string, regionID int64) (*models.Ville, error) {
	v, err := s.Villes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	parent, err := s.Regions.GetByID(regionID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	v.Name, v.RegionID = name, regionID
	if err := s.Villes.Update(v); err != nil {
		return nil, err
	}
	v.Region = parent
	return v, nil
}

func (s *GeoService) DeleteVille(id int64) error {
	v, err := s.Villes.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	return s.Villes.SoftDelete(id)
}

// ---- Quartiers ----

func (s *GeoService) ListQuartiers() ([]*models.Quartier, error) {
	quartiers, err := s.Quartiers.ListAll()
	if err != nil {
		return nil, err
	}
	villes, err := s.Villes.ListAll()
	if err != nil {
		return nil, err
	}
	regions, err := s.Regions.ListAll()
	if err != nil {
		return nil, err
	}
	pays, err := s.Pays.ListAll()
	if err != nil {
		return nil, err
	}

	paysByID := make(map[int64]*models.Pays, len(pays))
	for _, p := range pays {
		paysByID[p.ID] = p
	}
	regByID := make(map[int64]*models.Region, len(regions))
	for _, reg := range regions {
		reg.Pays = paysByID[reg.PaysID]
		regByID[reg.ID] = reg
	}
	vilByID := make(map[int64]*models.Ville, len(villes))
	for _, v := range villes {
		v.Region = regByID[v.RegionID]
		vilByID[v.ID] = v
	}
	for _, qt := range quartiers {
		qt.Ville = vilByID[qt.VilleID]
	}
	return quartiers, nil
}

func (s *GeoService) GetQuartier(id int64) (*models.Quartier, error) {
	qt, err := s.Quartiers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if qt == nil {
		return nil, ErrNotFound
	}
	v, err := s.Villes.GetByID(qt.VilleID)
	if err != nil {
		return nil, err
	}
	if v != nil {
		reg, err := s.Regions.GetByID(v.RegionID)
		if err != nil {
			return nil, err
		}
		if reg != nil {
			if reg.Pays, err = s.Pays.GetByID(reg.PaysID); err != nil {
				return nil, err
			}
		}
		v.Region = reg
	}
	qt.Ville = v
	return qt, nil
}

func (s *GeoService) CreateQuartier(name string, villeID int64) (*models.Quartier, error) {
	parent, err := s.Villes.GetByID(villeID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	qt := &models.Quartier{Name: name, VilleID: villeID}
	if err := s.Quartiers.Create(qt); err != nil {
		return nil, err
	}
	qt.Ville = parent
	return qt, nil
}

func (s *GeoService) UpdateQuartier(id int64, name string, villeID int64) (*models.Quartier, error) {
	qt, err := s.Quartiers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if qt == nil {
		return nil, ErrNotFound
	}
	parent, err := s.Villes.GetByID(villeID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	qt.Name, qt.VilleID = name, villeID
	if err := s.Quartiers.Update(qt); err != nil {
		return nil, err
	}
	qt.Ville = parent
	return qt, nil
}

func (s *GeoService) DeleteQuartier(id int64) error {
	qt, err := s.Quartiers.GetByID(id)
	if err != nil {
		return err
	}
	if qt == nil {
		return ErrNotFound
	}
	return s.Quartiers.SoftDelete(id)
}
