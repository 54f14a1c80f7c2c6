package kbart

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegisterProvider(t *testing.T) {
	fields := []string{"package_id", "package_name"}
	if err := RegisterProvider("ebsco", fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	composed, err := Fields(RP2, "ebsco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(composed) != 26+2 {
		t.Fatalf("expected 28 fields, got %d", len(composed))
	}
	if composed[len(composed)-1] != "package_name" {
		t.Fatalf("expected package_name last, got %s", composed[len(composed)-1])
	}

	names := KnownProviders()
	found := false
	for _, name := range names {
		if name == "ebsco" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected ebsco in known providers, got %v", names)
	}
}

func TestRegisterProviderRejectsDuplicate(t *testing.T) {
	if err := RegisterProvider("serials", []string{"serial_id"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterProvider("serials", []string{"serial_id"}); err == nil {
		t.Fatal("expected error registering the same provider twice")
	}
}

func TestRegisterProviderRejectsBuiltin(t *testing.T) {
	if err := RegisterProvider("oclc", []string{"vendor_id"}); err == nil {
		t.Fatal("expected error redefining a built-in provider")
	}
}

func TestRegisterProviderRejectsEmptyName(t *testing.T) {
	if err := RegisterProvider("", []string{"vendor_id"}); err == nil {
		t.Fatal("expected error for empty provider name")
	}
}

func TestRegisterProviderRejectsEmptyFields(t *testing.T) {
	if err := RegisterProvider("hollow", nil); err == nil {
		t.Fatal("expected error for provider with no fields")
	}
}

func TestRegisterProviderCopiesFields(t *testing.T) {
	fields := []string{"platform_id"}
	if err := RegisterProvider("platform", fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields[0] = "mutated"

	registered, err := ProviderFields("platform")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(registered, []string{"platform_id"}) {
		t.Fatalf("expected registered table to be unaffected by caller mutation, got %v", registered)
	}
}

func TestLoadProviders(t *testing.T) {
	document := `
jstor:
  - collection_id
  - collection_name
muse:
  - muse_id
`
	if err := LoadProviders(strings.NewReader(document)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jstor, err := ProviderFields("jstor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(jstor, []string{"collection_id", "collection_name"}) {
		t.Fatalf("unexpected jstor fields: %v", jstor)
	}

	composed, err := Fields(RP1, "muse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(composed) != 15+1 {
		t.Fatalf("expected 16 fields, got %d", len(composed))
	}
}

func TestLoadProvidersBadDocument(t *testing.T) {
	if err := LoadProviders(strings.NewReader("- just\n- a\n- list\n")); err == nil {
		t.Fatal("expected error decoding a non-mapping document")
	}
}

func TestLoadProvidersRejectsBuiltin(t *testing.T) {
	document := "oclc:\n  - vendor_id\n"
	if err := LoadProviders(strings.NewReader(document)); err == nil {
		t.Fatal("expected error redefining a built-in provider")
	}
}
