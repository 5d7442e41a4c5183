package availability

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(now time.Time) (*Handler, *fixture, *echo.Echo) {
	f := newFixture(now)
	return NewHandler(f.svc), f, echo.New()
}

func TestHandler_AvailableSlots(t *testing.T) {
	now := monday.Add(7 * time.Hour)
	h, f, e := newTestHandler(now)
	doctorID := uuid.New()
	f.addRecurring(t, doctorID, time.Monday, "08:00", "12:00")

	nextMonday := monday.AddDate(0, 0, 7).Format("2006-01-02")
	req := httptest.NewRequest(http.MethodGet, "/?date="+nextMonday, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(doctorID.String())

	if err := h.AvailableSlots(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var day DayAvailability
	json.Unmarshal(rec.Body.Bytes(), &day)
	if len(day.Slots) != 6 {
		t.Errorf("expected 6 slots, got %d", len(day.Slots))
	}
}

func TestHandler_AvailableSlots_BadDate(t *testing.T) {
	h, _, e := newTestHandler(monday)

	req := httptest.NewRequest(http.MethodGet, "/?date=tomorrow", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.AvailableSlots(c)
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateSlot(t *testing.T) {
	h, _, e := newTestHandler(monday)
	doctorID := uuid.New()

	body := `{"kind":"recurring","day_of_week":1,"start_time":"08:00","end_time":"12:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(doctorID.String())

	if err := h.CreateSlot(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var sd SlotDefinition
	json.Unmarshal(rec.Body.Bytes(), &sd)
	if sd.DoctorID != doctorID {
		t.Errorf("expected doctor %s, got %s", doctorID, sd.DoctorID)
	}
	if !sd.Active {
		t.Error("expected created slot to be active")
	}
}

func TestHandler_CreateSlot_Overlap(t *testing.T) {
	h, f, e := newTestHandler(monday)
	doctorID := uuid.New()
	f.addRecurring(t, doctorID, time.Monday, "08:00", "12:00")

	body := `{"kind":"recurring","day_of_week":1,"start_time":"11:00","end_time":"13:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(doctorID.String())

	err := h.CreateSlot(c)
	if err == nil {
		t.Fatal("expected error for overlapping slot")
	}
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ValidateSlot(t *testing.T) {
	h, f, e := newTestHandler(monday)
	doctorID := uuid.New()
	f.addRecurring(t, doctorID, time.Monday, "08:00", "12:00")

	check := func(body string) map[string]bool {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(doctorID.String())
		if err := h.ValidateSlot(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var out map[string]bool
		json.Unmarshal(rec.Body.Bytes(), &out)
		return out
	}

	if out := check(`{"start_time":"11:00","end_time":"13:00","day_of_week":1}`); out["valid"] {
		t.Error("expected overlap to be invalid")
	}
	if out := check(`{"start_time":"13:00","end_time":"15:00","day_of_week":1}`); !out["valid"] {
		t.Error("expected clear interval to be valid")
	}
}

func TestHandler_SaveConfiguration(t *testing.T) {
	h, f, e := newTestHandler(monday)
	doctorID := uuid.New()

	date := monday.AddDate(0, 0, 10).Format("2006-01-02") + "T00:00:00Z"
	body := fmt.Sprintf(`{
		"locations":[{"name":"Video","type":"teleconsultation"}],
		"recurring_slots":[{"day_of_week":2,"start_time":"08:00","end_time":"12:00"}],
		"blocked_dates":[{"date":"%s"}]
	}`, date)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(doctorID.String())

	if err := h.SaveConfiguration(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if len(f.slots.slots) != 1 || len(f.blocked.blocked) != 1 || len(f.locs.locations) != 1 {
		t.Error("expected the full batch to be persisted")
	}
}
