package kbart

import (
	"fmt"
	"strings"
)

// RecordOptions configures NewRecord. The zero value builds an RP2 record
// with no provider extension.
type RecordOptions struct {
	// Provider appends a provider's extension fields after the RP fields.
	// Must be a known provider name (see KnownProviders) or empty.
	Provider string

	// RP selects the Recommended Practice version, 1 or 2. Zero means
	// DefaultRP.
	RP int

	// Fields overrides schema composition entirely, typically with the
	// names read from a title-list header row. When set, Provider and RP
	// are recorded but not validated.
	Fields []string
}

// Record is one KBART title-list row addressed by field name instead of
// position. The field sequence is fixed at construction; values may be
// reassigned by name afterwards.
type Record struct {
	data     []string
	fields   []string
	values   []string
	index    map[string]int
	provider string
	rp       int
}

// NewRecord builds a record by pairing field names with values
// positionally. Values beyond the last field are dropped; fields beyond
// the last value hold the empty string. Construction fails with
// InvalidRPError or ProviderNotFoundError when the schema cannot be
// composed; an explicit options.Fields sequence bypasses composition and
// never fails.
func NewRecord(values []string, options RecordOptions) (*Record, error) {
	rp := options.RP
	if rp == 0 {
		rp = DefaultRP
	}

	fields := options.Fields
	if len(fields) == 0 {
		composed, err := Fields(rp, options.Provider)
		if err != nil {
			return nil, err
		}
		fields = composed
	}

	// Pad or truncate to exactly one value per field.
	mapped := make([]string, len(fields))
	for position := range fields {
		if position < len(values) {
			mapped[position] = values[position]
		}
	}

	// When a provider extension repeats an RP field name (oclc redefines
	// publisher_name), the later position wins name lookups.
	index := make(map[string]int, len(fields))
	for position, name := range fields {
		index[name] = position
	}

	return &Record{
		data:     append([]string(nil), values...),
		fields:   append([]string(nil), fields...),
		values:   mapped,
		index:    index,
		provider: options.Provider,
		rp:       rp,
	}, nil
}

// Get returns the value of the named field. Unknown names fail with
// FieldNotFoundError; use GetFields for a lenient lookup.
func (r *Record) Get(field string) (string, error) {
	position, ok := r.index[field]
	if !ok {
		return "", NewFieldNotFoundError(field)
	}
	return r.values[position], nil
}

// Set overwrites the value of the named field. Unknown names fail with
// FieldNotFoundError and leave the record untouched; the field set never
// grows.
func (r *Record) Set(field, value string) error {
	position, ok := r.index[field]
	if !ok {
		return NewFieldNotFoundError(field)
	}
	r.values[position] = value
	return nil
}

// GetFields returns the values of the named fields in the order requested,
// silently skipping names that are not part of the record. With no
// arguments it returns every value in schema order. The returned slice is
// a fresh copy.
func (r *Record) GetFields(names ...string) []string {
	if len(names) == 0 {
		return append([]string(nil), r.values...)
	}

	values := make([]string, 0, len(names))
	for _, name := range names {
		if position, ok := r.index[name]; ok {
			values = append(values, r.values[position])
		}
	}
	return values
}

// Len returns the number of fields in the record's schema, regardless of
// how many values were supplied at construction.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the record's field-name sequence in schema order. The
// returned slice is a fresh copy.
func (r *Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Provider returns the provider name the record was built with, or the
// empty string.
func (r *Record) Provider() string {
	return r.provider
}

// RP returns the Recommended Practice version the record was built with.
func (r *Record) RP() int {
	return r.rp
}

// String renders the record as a separator line followed by one
// "field: value" line per populated field. Fields holding the empty string
// contribute no text.
func (r *Record) String() string {
	var output strings.Builder
	output.WriteString(" -------\n")
	for position, name := range r.fields {
		output.WriteString(formatString(r.values[position], name+": ", "\n"))
	}
	return output.String()
}

// GoString renders a single-line constructor-shaped form of the record
// with the full input data, provider, RP version, and field sequence. The
// output is exactly reproducible from the same inputs.
func (r *Record) GoString() string {
	return fmt.Sprintf("kbart.Record(data=%q, provider=%q, rp=%d, fields=%q)",
		r.data, r.provider, r.rp, r.fields)
}

// holdingsWidth is the number of values in a holdings range: first and
// last date, volume, and issue.
const holdingsWidth = 6

// holdingsOffset is the position of the first holdings value, directly
// after the title and the two identifier fields.
const holdingsOffset = 3

// Holdings returns the six coverage values of the record: first issue
// date, volume, and issue, then last issue date, volume, and issue.
// Records with fewer fields yield empty strings for the missing positions.
func (r *Record) Holdings() []string {
	holdings := make([]string, holdingsWidth)
	for offset := range holdings {
		if position := holdingsOffset + offset; position < len(r.values) {
			holdings[offset] = r.values[position]
		}
	}
	return holdings
}

// HoldingsPrettyPrint renders the record's coverage range as readable
// text. See HoldingsPrettyPrint for the exact forms.
func (r *Record) HoldingsPrettyPrint() string {
	return HoldingsPrettyPrint(r.Holdings())
}

// Coverage returns the record's coverage length in years. See
// LengthOfCoverage.
func (r *Record) Coverage() (int, error) {
	return LengthOfCoverage(r.Holdings())
}

// CoveragePrettyPrint renders the record's coverage length as readable
// text, e.g. "1 year(s)".
func (r *Record) CoveragePrettyPrint() (string, error) {
	return CoveragePrettyPrint(r.Holdings())
}

// CompareCoverage compares the coverage length of two records. The result
// is positive when the receiver covers more years, negative when other
// does, and zero when they are equal.
func (r *Record) CompareCoverage(other *Record) (int, error) {
	mine, err := r.Coverage()
	if err != nil {
		return 0, err
	}
	theirs, err := other.Coverage()
	if err != nil {
		return 0, err
	}
	return mine - theirs, nil
}

// EmbargoPrettyPrint renders the record's embargo_info code as readable
// text. See EmbargoPrettyPrint.
func (r *Record) EmbargoPrettyPrint() (string, error) {
	embargo, err := r.Get(fieldEmbargoInfo)
	if err != nil {
		return "", err
	}
	return EmbargoPrettyPrint(embargo)
}

// Well-known field names backing the convenience accessors.
const (
	fieldPublicationTitle = "publication_title"
	fieldPrintIdentifier  = "print_identifier"
	fieldOnlineIdentifier = "online_identifier"
	fieldTitleURL         = "title_url"
	fieldEmbargoInfo      = "embargo_info"
	fieldPublisherName    = "publisher_name"
)

// Title returns the publication_title field.
func (r *Record) Title() (string, error) {
	return r.Get(fieldPublicationTitle)
}

// SetTitle overwrites the publication_title field.
func (r *Record) SetTitle(value string) error {
	return r.Set(fieldPublicationTitle, value)
}

// PrintID returns the print_identifier field, e.g. a print ISSN or ISBN.
func (r *Record) PrintID() (string, error) {
	return r.Get(fieldPrintIdentifier)
}

// SetPrintID overwrites the print_identifier field.
func (r *Record) SetPrintID(value string) error {
	return r.Set(fieldPrintIdentifier, value)
}

// OnlineID returns the online_identifier field, e.g. an eISSN or eISBN.
func (r *Record) OnlineID() (string, error) {
	return r.Get(fieldOnlineIdentifier)
}

// SetOnlineID overwrites the online_identifier field.
func (r *Record) SetOnlineID(value string) error {
	return r.Set(fieldOnlineIdentifier, value)
}

// URL returns the title_url field.
func (r *Record) URL() (string, error) {
	return r.Get(fieldTitleURL)
}

// SetURL overwrites the title_url field.
func (r *Record) SetURL(value string) error {
	return r.Set(fieldTitleURL, value)
}

// Publisher returns the publisher_name field.
func (r *Record) Publisher() (string, error) {
	return r.Get(fieldPublisherName)
}

// SetPublisher overwrites the publisher_name field.
func (r *Record) SetPublisher(value string) error {
	return r.Set(fieldPublisherName, value)
}

// Embargo returns the embargo_info field.
func (r *Record) Embargo() (string, error) {
	return r.Get(fieldEmbargoInfo)
}

// SetEmbargo overwrites the embargo_info field after validating the code.
// Values that do not match the embargo pattern fail with
// UnknownEmbargoFormatError and leave the record untouched.
func (r *Record) SetEmbargo(value string) error {
	if !CheckEmbargoFormat(value) {
		return NewUnknownEmbargoFormatError(value)
	}
	return r.Set(fieldEmbargoInfo, value)
}
