package repository

import "github.com/jhoicas/perfectpolymers-api/internal/domain/entity"

// SiteRepository expone los datos institucionales de la empresa.
type SiteRepository interface {
	Info() (*entity.SiteInfo, error)
}
