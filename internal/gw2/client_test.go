package gw2_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/gw2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gw2.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := gw2.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := gw2.New("  ", "https://example.com")
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !errors.Is(err, failures.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCharacterNamesSendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if r.URL.Path != "/characters" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["Aria","Beo"]`))
	})

	names, err := client.CharacterNames(context.Background())
	if err != nil {
		t.Fatalf("CharacterNames returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "Aria" || names[1] != "Beo" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestInventoryEscapesCharacterName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/characters/Aria%20Dawn/inventory" {
			t.Errorf("unexpected escaped path %q", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"bags":[{"id":8932,"size":2,"inventory":[{"id":10,"count":3,"binding":"Account"},null]},null]}`))
	})

	inv, err := client.Inventory(context.Background(), "Aria Dawn")
	if err != nil {
		t.Fatalf("Inventory returned error: %v", err)
	}
	slots := inv.Slots()
	if len(slots) != 1 {
		t.Fatalf("expected 1 occupied slot, got %d", len(slots))
	}
	if slots[0].ID != 10 || slots[0].Count != 3 || slots[0].Binding == nil || *slots[0].Binding != "Account" {
		t.Fatalf("unexpected slot: %#v", slots[0])
	}
}

func TestItemsJoinsIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "10,20" {
			t.Errorf("unexpected ids param %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":10,"name":"Copper Ore","type":"CraftingMaterial","level":0,"rarity":"Basic"},{"id":20,"name":"Iron Ore","type":"CraftingMaterial","level":0,"rarity":"Basic"}]`))
	})

	items, err := client.Items(context.Background(), []int64{10, 20})
	if err != nil {
		t.Fatalf("Items returned error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Copper Ore" || items[1].Name != "Iron Ore" {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestItemsRejectsOversizedBatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for oversized batch")
	})
	ids := make([]int64, gw2.MaxBatchSize+1)
	if _, err := client.Items(context.Background(), ids); err == nil {
		t.Fatal("expected error for oversized batch")
	}
}

func TestNonSuccessStatusIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"text":"Invalid access token"}`))
	})

	_, err := client.ItemIDs(context.Background())
	if !errors.Is(err, failures.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected status code in error, got %q", err.Error())
	}
}

func TestMalformedBodyIsDeserializationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := client.ItemIDs(context.Background())
	if !errors.Is(err, failures.ErrDeserialization) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
}

func TestLanguageParameter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("lang"); got != "de" {
			t.Errorf("expected lang=de, got %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := gw2.New("key", server.URL, gw2.WithLanguage("de"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.ItemIDs(context.Background()); err != nil {
		t.Fatalf("ItemIDs returned error: %v", err)
	}
}

func TestTokenInfoPermissions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokeninfo" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"abc","name":"laptop","permissions":["account","characters"]}`))
	})

	info, err := client.TokenInfo(context.Background())
	if err != nil {
		t.Fatalf("TokenInfo returned error: %v", err)
	}
	if info.Name != "laptop" {
		t.Fatalf("unexpected name %q", info.Name)
	}
	if !info.HasPermission("characters") {
		t.Fatal("expected characters permission")
	}
	if info.HasPermission("inventories") {
		t.Fatal("did not expect inventories permission")
	}
}
