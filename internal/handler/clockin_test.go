package handler_test

import (
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type clockInResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	InsertDatetime time.Time `json:"insert_datetime"`
}

func createClockIn(t *testing.T, r http.Handler, email, location string) clockInResponse {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/clock-in", map[string]interface{}{
		"email":    email,
		"location": location,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create clock-in: got status %d, body %s", rec.Code, rec.Body.String())
	}

	var record clockInResponse
	decodeBody(t, rec, &record)
	return record
}

func TestCreateClockIn(t *testing.T) {
	r := newTestRouter()
	before := time.Now().UTC()

	record := createClockIn(t, r, "worker@example.com", "warehouse-1")

	if record.ID == "" {
		t.Fatal("expected a generated id")
	}
	if record.Email != "worker@example.com" || record.Location != "warehouse-1" {
		t.Errorf("record does not match input: %+v", record)
	}
	if record.InsertDatetime.Before(before.Add(-time.Second)) || record.InsertDatetime.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("insert_datetime = %v, not within request window", record.InsertDatetime)
	}
}

func TestCreateClockInValidation(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/clock-in", map[string]interface{}{
		"email": "worker@example.com",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing location: got status %d, want 422", rec.Code)
	}
}

func TestFilterClockIn(t *testing.T) {
	r := newTestRouter()

	createClockIn(t, r, "a@x.com", "hq")
	createClockIn(t, r, "a@x.com", "warehouse-1")
	createClockIn(t, r, "b@x.com", "hq")

	t.Run("by location", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/clock-in/filter?location=hq", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d", rec.Code)
		}
		var records []clockInResponse
		decodeBody(t, rec, &records)
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		for _, record := range records {
			if record.Location != "hq" {
				t.Errorf("record %s has location %q", record.ID, record.Location)
			}
		}
	})

	t.Run("by email and location", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/clock-in/filter?email=a@x.com&location=hq", nil)
		var records []clockInResponse
		decodeBody(t, rec, &records)
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
	})

	t.Run("insert_datetime_after", func(t *testing.T) {
		// All seeded records were inserted after this instant.
		rec := doJSON(t, r, http.MethodGet, "/clock-in/filter?insert_datetime_after=2000-01-01T00:00:00", nil)
		var records []clockInResponse
		decodeBody(t, rec, &records)
		if len(records) != 3 {
			t.Errorf("got %d records, want 3", len(records))
		}

		rec = doJSON(t, r, http.MethodGet, "/clock-in/filter?insert_datetime_after=2100-01-01T00:00:00", nil)
		records = nil
		decodeBody(t, rec, &records)
		if len(records) != 0 {
			t.Errorf("got %d records, want 0", len(records))
		}
	})

	t.Run("bad datetime format", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/clock-in/filter?insert_datetime_after=2025-01-01", nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("got status %d, want 422", rec.Code)
		}
	})
}

func TestClockInRoundTrip(t *testing.T) {
	r := newTestRouter()

	created := createClockIn(t, r, "worker@example.com", "hq")

	rec := doJSON(t, r, http.MethodGet, "/clock-in/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get clock-in: got status %d", rec.Code)
	}

	var fetched clockInResponse
	decodeBody(t, rec, &fetched)
	if fetched.Email != created.Email || fetched.Location != created.Location {
		t.Errorf("fetched record does not match: %+v", fetched)
	}
	if !fetched.InsertDatetime.Equal(created.InsertDatetime) {
		t.Errorf("insert_datetime = %v, want %v", fetched.InsertDatetime, created.InsertDatetime)
	}
}

func TestUpdateClockInPartial(t *testing.T) {
	r := newTestRouter()

	created := createClockIn(t, r, "worker@example.com", "hq")

	rec := doJSON(t, r, http.MethodPut, "/clock-in/"+created.ID, map[string]interface{}{
		"location": "warehouse-2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update clock-in: got status %d", rec.Code)
	}

	var updated clockInResponse
	decodeBody(t, rec, &updated)
	if updated.Location != "warehouse-2" {
		t.Errorf("location = %q, want warehouse-2", updated.Location)
	}
	if updated.Email != "worker@example.com" {
		t.Errorf("email changed: %q", updated.Email)
	}
	if !updated.InsertDatetime.Equal(created.InsertDatetime) {
		t.Errorf("insert_datetime changed: %v != %v", updated.InsertDatetime, created.InsertDatetime)
	}
}

func TestClockInNotFound(t *testing.T) {
	r := newTestRouter()

	unknown := primitive.NewObjectID().Hex()

	if rec := doJSON(t, r, http.MethodGet, "/clock-in/"+unknown, nil); rec.Code != http.StatusNoContent {
		t.Errorf("get: got status %d, want 204", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodPut, "/clock-in/"+unknown, map[string]interface{}{"location": "x"}); rec.Code != http.StatusNoContent {
		t.Errorf("update: got status %d, want 204", rec.Code)
	}
	if rec := doJSON(t, r, http.MethodDelete, "/clock-in/"+unknown, nil); rec.Code != http.StatusNoContent {
		t.Errorf("delete: got status %d, want 204", rec.Code)
	}
}

func TestDeleteClockIn(t *testing.T) {
	r := newTestRouter()

	created := createClockIn(t, r, "worker@example.com", "hq")

	rec := doJSON(t, r, http.MethodDelete, "/clock-in/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete clock-in: got status %d", rec.Code)
	}

	var msg map[string]string
	decodeBody(t, rec, &msg)
	if msg["message"] != "Clock-in record deleted" {
		t.Errorf("message = %q, want %q", msg["message"], "Clock-in record deleted")
	}

	rec = doJSON(t, r, http.MethodDelete, "/clock-in/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("second delete: got status %d, want 204", rec.Code)
	}
}
