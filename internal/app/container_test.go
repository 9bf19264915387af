package app_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/app"
	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/leadlog"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

func TestNew_SinSubmitterNoArmaFormularios(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err)

	c := app.New(cat, app.Options{BaseURL: "https://perfectpolymers.co"})
	assert.NotNil(t, c.CatalogUC)
	assert.NotNil(t, c.SiteUC)
	assert.Nil(t, c.ContactUC)
	assert.Nil(t, c.RFQUC)

	out, err := c.CatalogUC.ListProducts(dto.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Total)
}

func TestNew_ConSubmitter(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err)

	c := app.New(cat, app.Options{Submitter: leadlog.New(zerolog.Nop())})
	assert.NotNil(t, c.ContactUC)
	assert.NotNil(t, c.RFQUC)
}
