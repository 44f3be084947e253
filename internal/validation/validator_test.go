// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package validation

import (
	"strings"
	"sync"
	"testing"
)

type testRequest struct {
	Artists  string `json:"artists" validate:"max=10"`
	Language string `json:"language" validate:"omitempty,language"`
	Count    int    `json:"count,omitempty" validate:"gte=0,lte=5"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantMsg   string
	}{
		{name: "valid", req: testRequest{Artists: "Bob", Language: "en"}},
		{name: "empty language allowed", req: testRequest{}},
		{name: "any allowed", req: testRequest{Language: "any"}},
		{
			name:      "unknown language",
			req:       testRequest{Language: "xx"},
			wantField: "language",
			wantMsg:   "language must be one of: any, en, ta",
		},
		{
			name:      "too long",
			req:       testRequest{Artists: strings.Repeat("a", 11)},
			wantField: "artists",
			wantMsg:   "artists must be at most 10 characters",
		},
		{
			name:      "out of range",
			req:       testRequest{Count: 9},
			wantField: "count",
			wantMsg:   "count must be less than or equal to 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 || errs[0].Field() != tt.wantField {
				t.Fatalf("errors = %v", err)
			}
			if !strings.HasPrefix(errs[0].Error(), tt.wantMsg) {
				t.Errorf("message = %q, want prefix %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&testRequest{Language: "zz"}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" || single.Details["field"] != "language" {
		t.Errorf("single = %+v", single)
	}

	multi := ValidateStruct(&testRequest{Language: "zz", Artists: strings.Repeat("b", 20)}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("multi details = %+v", multi.Details)
	}
	if !strings.Contains(multi.Message, "; ") {
		t.Errorf("multi message = %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty = %+v", empty)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	got := make(chan interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got <- GetValidator()
		}()
	}
	wg.Wait()
	close(got)

	first := GetValidator()
	for v := range got {
		if v != first {
			t.Error("GetValidator returned different instances")
		}
	}
}
