package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospsupply/internal/common"
	"hospsupply/internal/models"
	"hospsupply/internal/services"
)

// stubHospitalService overrides just the image lookup; the embedded
// interface panics if the handler ever touches anything else.
type stubHospitalService struct {
	services.HospitalService
	imageURL func(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error)
}

func (s *stubHospitalService) ImageURL(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error) {
	return s.imageURL(ctx, scope, publicID)
}

func newImageRequest(t *testing.T, id uuid.UUID) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hospitals/"+id.String()+"/image", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	hospitalID := int64(3)
	c.SetRequest(req.WithContext(common.WithUser(req.Context(), &models.User{
		ID:         1,
		PublicID:   uuid.New(),
		RoleName:   "Comprador",
		HospitalID: &hospitalID,
	})))
	return c
}

func TestHospitalImageRedirectsToPresignedURL(t *testing.T) {
	id := uuid.New()
	handler := NewHospitalHandler(&stubHospitalService{
		imageURL: func(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error) {
			assert.Equal(t, id, publicID)
			return "https://storage.example.com/hospitals/img?sig=abc", nil
		},
	})

	c := newImageRequest(t, id)
	require.NoError(t, handler.GetImage(c))

	rec := c.Response().Writer.(*httptest.ResponseRecorder)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://storage.example.com/hospitals/img?sig=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestHospitalImageMissingIsNotFound(t *testing.T) {
	id := uuid.New()
	handler := NewHospitalHandler(&stubHospitalService{
		imageURL: func(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error) {
			return "", common.NotFoundf("hospital %s has no image", publicID)
		},
	})

	err := handler.GetImage(newImageRequest(t, id))

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
