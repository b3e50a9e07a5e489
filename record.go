package listlens

// FieldURL is the one field every schema carries. It holds the canonical
// detail-page URL and doubles as the record's primary key within a run.
const FieldURL = "url"

// Schema is the ordered list of field names a site's records carry.
// Field order is significant: extraction and export both follow it.
type Schema []string

// Contains reports whether the schema includes the named field.
func (s Schema) Contains(name string) bool {
	for _, f := range s {
		if f == name {
			return true
		}
	}
	return false
}

// Record maps schema field names to extracted string values.
//
// A record is always fully populated: every schema field is present, and
// fields that could not be extracted hold the empty string rather than being
// absent. This keeps tabular export uniform across records.
type Record map[string]string

// NewRecord returns a record with every schema field set to the empty string
// and the url field set to the given canonical URL.
func NewRecord(schema Schema, url string) Record {
	r := make(Record, len(schema)+1)
	for _, f := range schema {
		r[f] = ""
	}
	r[FieldURL] = url
	return r
}

// Validate returns an error if the record is missing its URL.
func (r Record) Validate() error {
	if r[FieldURL] == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// Clone returns an independent copy of the record. Downstream enrichment
// (e.g., price comparison) operates on copies, never in place.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// SetIfEmpty sets the field to value only when the field is currently empty
// and the value is non-empty. Returns true if the field was set. This is the
// "first non-empty wins" rule shared by all extraction strategies.
func (r Record) SetIfEmpty(field, value string) bool {
	if r[field] != "" || value == "" {
		return false
	}
	r[field] = value
	return true
}
