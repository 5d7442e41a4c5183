package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func runDoctorMatch(t *testing.T, paramID, doctorID string, roles []string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	c.Set("user_roles", roles)
	c.Set("doctor_id", doctorID)
	h := RequireDoctorMatch()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestRequireDoctorMatch(t *testing.T) {
	id := uuid.New()
	other := uuid.New()

	if err := runDoctorMatch(t, id.String(), id.String(), []string{"doctor"}); err != nil {
		t.Errorf("matching doctor should pass, got %v", err)
	}

	err := runDoctorMatch(t, id.String(), other.String(), []string{"doctor"})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("mismatched doctor should be forbidden, got %v", err)
	}

	if err := runDoctorMatch(t, id.String(), "", []string{"admin"}); err != nil {
		t.Errorf("admin should pass without a doctor identity, got %v", err)
	}

	if err := runDoctorMatch(t, id.String(), "", []string{"doctor"}); err == nil {
		t.Error("doctor token without an identity should be rejected")
	}
}
