// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sessionCSV = "athlete,power,cadence\n" +
	"ann,300,90\n" +
	"bob,150,60\n" +
	"cy,,80\n"

// multipartUpload builds an upload request. Empty parts are omitted.
func multipartUpload(t *testing.T, request, csv string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if request != "" {
		if err := mw.WriteField("request", request); err != nil {
			t.Fatalf("write request part: %v", err)
		}
	}
	if csv != "" {
		part, err := mw.CreateFormFile("file", "session.csv")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte(csv)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRecommendationsUpload(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartUpload(t, `{"preferences":{"power":1},"n":1}`, sessionCSV))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var data recommendationData
	decodeData(t, decodeEnvelope(t, w), &data)

	if data.Rows != 3 {
		t.Errorf("rows = %d, want 3", data.Rows)
	}
	if got := strings.Join(data.FeatureColumns, ","); got != "power,cadence" {
		t.Errorf("feature columns = %s, want power,cadence", got)
	}
	if len(data.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(data.Recommendations))
	}
	top := data.Recommendations[0]
	if top.Exercise["athlete"] != "ann" {
		t.Errorf("top = %v, want ann", top.Exercise)
	}
	if data.Exercise != "" || data.Sensor != "" {
		t.Errorf("upload results carry no exercise or sensor, got %q %q", data.Exercise, data.Sensor)
	}
}

func TestRecommendationsUpload_DefaultsWithoutRequestPart(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartUpload(t, "", sessionCSV))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var data recommendationData
	decodeData(t, decodeEnvelope(t, w), &data)
	// DefaultN is 5; the table only has 3 rows.
	if len(data.Recommendations) != 3 {
		t.Errorf("recommendations = %d, want all 3 rows", len(data.Recommendations))
	}
}

func TestRecommendationsUpload_MetaMotionSchema(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartUpload(t, `{"schema":"metamotion","preferences":{"x-axis (g)":1},"n":1}`, benchAccelCSV))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var data recommendationData
	decodeData(t, decodeEnvelope(t, w), &data)
	if data.Rows != 4 {
		t.Errorf("rows = %d, want 4 after dedupe", data.Rows)
	}
	for _, col := range data.FeatureColumns {
		if strings.HasPrefix(col, "time") {
			t.Errorf("feature columns %v should exclude the wall-clock column", data.FeatureColumns)
		}
	}
}

func TestRecommendationsUpload_MedicalConditionsText(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{})

	tests := []struct {
		name       string
		conditions string
	}{
		{"free text", `"bad knee"`},
		{"empty string", `""`},
		{"null", `null`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			request := `{"preferences":{"power":1},"n":2,"profile":{"weight":70,"height":175,"age":30,` +
				`"gender":"female","goals":["Muscle Gain"],"experience":"Intermediate","medical_conditions":` +
				tt.conditions + `}}`

			w := httptest.NewRecorder()
			srv.ServeHTTP(w, multipartUpload(t, request, sessionCSV))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
			}

			var data recommendationData
			decodeData(t, decodeEnvelope(t, w), &data)
			if len(data.Recommendations) != 2 {
				t.Fatalf("recommendations = %d, want 2", len(data.Recommendations))
			}
			if data.Recommendations[0].Adjustments == nil {
				t.Error("complete profile should annotate results")
			}
		})
	}
}

func TestRecommendationsUpload_Errors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{})

	tests := []struct {
		name    string
		request string
		csv     string
		status  int
		code    string
	}{
		{"missing file", `{"n":1}`, "", http.StatusBadRequest, ErrCodeInvalidRequest},
		{"malformed request part", `{"n":`, sessionCSV, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"unknown schema", `{"schema":"xml"}`, sessionCSV, http.StatusBadRequest, ErrCodeValidation},
		{"n above max", `{"n":1000}`, sessionCSV, http.StatusBadRequest, ErrCodeValidation},
		{"header only", `{"n":1}`, "a,b\n", http.StatusBadRequest, ErrCodeInvalidDataset},
		{"ragged rows", `{"n":1}`, "a,b\n1,2\n3\n", http.StatusBadRequest, ErrCodeInvalidDataset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			srv.ServeHTTP(w, multipartUpload(t, tt.request, tt.csv))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.status, w.Body.String())
			}
			if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", env.Error, tt.code)
			}
		})
	}
}

func TestRecommendationsUpload_NotMultipart(t *testing.T) {
	t.Parallel()

	w := doRequest(t, newTestServer(t, HandlerConfig{}), http.MethodPost, "/api/v1/recommendations/upload", `{"n":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Code != ErrCodeInvalidRequest {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestRecommendationsUpload_TooLarge(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, HandlerConfig{MaxUploadBytes: 64})
	big := "a,b\n" + strings.Repeat("1,2\n", 100)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartUpload(t, `{"n":1}`, big))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413; body %s", w.Code, w.Body.String())
	}
	if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Code != ErrCodePayloadTooLarge {
		t.Errorf("error = %+v", env.Error)
	}
}
