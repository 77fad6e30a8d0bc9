package models

import "time"

// Hiérarchie géographique : pays → region → ville → quartier.
// Suppression logique partout (deleted_at) ; pas de cascade.

type Pays struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Indicatif string     `json:"indicatif"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	Regions []*Region `json:"regions,omitempty"`
}

type Region struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	PaysID    int64      `json:"pays_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	Pays   *Pays    `json:"pays,omitempty"`
	Villes []*Ville `json:"villes,omitempty"`
}

type Ville struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	RegionID  int64      `json:"region_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	Region    *Region     `json:"region,omitempty"`
	Quartiers []*Quartier `json:"quartiers,omitempty"`
}

type Quartier struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	VilleID   int64      `json:"ville_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	Ville *Ville `json:"ville,omitempty"`
}
