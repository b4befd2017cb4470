package tools

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/kaanyildiz/etscore-mcp-server/internal/etscore"
)

func testClient(logger *slog.Logger) *etscore.Client {
	config := &etscore.Config{
		BaseURL:         "http://localhost:0",
		AcceptLanguage:  "tr-TR",
		Currency:        "TRY",
		ContentLanguage: "es",
		SearchLimit:     5,
		SearchOffset:    300,
		Timeout:         time.Second,
	}
	return etscore.NewClient(config, etscore.WithLogger(logger))
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := testClient(logger)

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)

	tests := []struct {
		name     string
		spec     ToolSpec
		wantName string
		wantDesc string
		wantRO   bool
		wantIdem bool
		wantOpen bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "hotel_details",
				Title:       "Get Hotel Details",
				Description: "Get a hotel summary by code",
				Method:      "HotelDetails",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName: "hotel_details",
			wantDesc: "Get a hotel summary by code",
			wantRO:   true,
			wantIdem: true,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "hotel_search_by_location",
				Title:       "Search Hotels",
				Description: "Search hotels by city",
				Method:      "SearchByLocation",
				OpenWorld:   true,
			},
			wantName: "hotel_search_by_location",
			wantDesc: "Search hotels by city",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)
	spec := ToolSpec{Name: "test_tool", Category: "detail"}

	registry.logExecution(spec,
		etscore.SearchByLocationArgs{City: "Kayseri", CheckIn: "2025-07-01", CheckOut: "2025-07-05"},
		"search results", nil)

	registry.logExecution(spec,
		etscore.HotelCodeArgs{HotelCode: "300XXX"},
		"Hotel: Test", nil)

	registry.logExecution(spec,
		etscore.ReservationArgs{HotelCode: "300XXX"},
		"Reservation failed: hotelCode is missing.",
		etscore.ValidateHotelCode(""))
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"SearchByLocation":   true,
		"HotelDetails":       true,
		"HotelImages":        true,
		"HotelDescription":   true,
		"HotelFacilityCheck": true,
		"HotelReservation":   true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByCategory(t *testing.T) {
	searchTools := ToolsByCategory("search")
	if len(searchTools) == 0 {
		t.Error("Expected search tools")
	}
	for _, tool := range searchTools {
		if tool.Category != "search" {
			t.Errorf("Tool %s has category %s, expected search", tool.Name, tool.Category)
		}
	}

	detailTools := ToolsByCategory("detail")
	if len(detailTools) != 4 {
		t.Errorf("Expected 4 detail tools, got %d", len(detailTools))
	}

	// Non-existent category should return empty
	if unknown := ToolsByCategory("unknown"); len(unknown) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknown))
	}
}
