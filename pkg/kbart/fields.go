package kbart

import "sort"

// Field names reproduce the KBART Recommended Practice tables verbatim,
// historical spellings included. Order is the wire contract with
// downstream knowledge bases and must not change.
var rp1Fields = []string{
	"publication_title",
	"print_identifier",
	"online_identifier",
	"date_first_issue_online",
	"num_first_vol_online",
	"num_first_issue_online",
	"date_last_issue_online",
	"num_last_vol_online",
	"num_last_issue_online",
	"title_url",
	"first_author",
	"title_id",
	"embargo_info",
	"coverage_depth",
	"coverage_notes",
}

var rp2Fields = []string{
	"notes",
	"publisher_name",
	"publication_type",
	"date_monograph_published_print",
	"date_monograph_published_online",
	"monograph_volume",
	"monograph_edition",
	"first_editor",
	"parent_publication_title_id",
	"preceding_publication_title_id",
	"access_type",
}

var builtinProviderFields = map[string][]string{
	"oclc": {
		"publisher_name",
		"location",
		"title_notes",
		"staff_notes",
		"vendor_id",
		"oclc_collection_name",
		"oclc_collection_id",
		"oclc_entry_id",
		"oclc_linkscheme",
		"oclc_number",
		"ACTION",
	},
	"gale": {
		"series_title",
		"series_number",
		"description",
		"audience",
		"frequency",
		"format",
		"referred_peer_re-viewed",
		"country",
		"language",
		"primary_subject",
	},
}

const (
	// RP1 and RP2 are the supported KBART Recommended Practice versions.
	RP1 = 1
	RP2 = 2

	// DefaultRP is assumed when a record is built without an explicit
	// Recommended Practice version. Most organizations publish RP2 lists;
	// some early adopters still exchange RP1.
	DefaultRP = RP2
)

// Fields composes the ordered field-name sequence for one KBART record:
// the RP1 base fields, the RP2 additional fields when rp is 2, and the
// extension fields of the named provider when provider is non-empty.
// The returned slice is a fresh copy and safe to modify.
func Fields(rp int, provider string) ([]string, error) {
	fields := make([]string, 0, len(rp1Fields)+len(rp2Fields))
	fields = append(fields, rp1Fields...)

	switch rp {
	case RP2:
		fields = append(fields, rp2Fields...)
	case RP1:
	default:
		return nil, NewInvalidRPError(rp)
	}

	if provider != "" {
		extension, err := ProviderFields(provider)
		if err != nil {
			return nil, err
		}
		fields = append(fields, extension...)
	}

	return fields, nil
}

// ProviderFields returns the extension field names of a known provider.
// The returned slice is a fresh copy and safe to modify.
func ProviderFields(provider string) ([]string, error) {
	providersMu.RLock()
	defer providersMu.RUnlock()

	extension, ok := providerFields[provider]
	if !ok {
		return nil, NewProviderNotFoundError(provider)
	}
	out := make([]string, len(extension))
	copy(out, extension)
	return out, nil
}

// KnownProviders returns the sorted names of every provider with a field
// extension table, built-in and registered alike.
func KnownProviders() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providerFields))
	for name := range providerFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
