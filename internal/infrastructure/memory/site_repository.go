package memory

import (
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo datos institucionales sembrados.
type SiteRepo struct {
	info *entity.SiteInfo
}

func NewSiteRepository(cat *seed.Catalog) *SiteRepo {
	return &SiteRepo{info: cat.Site}
}

func (r *SiteRepo) Info() (*entity.SiteInfo, error) {
	return r.info, nil
}
