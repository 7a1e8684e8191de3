package model

// IndividualLinkName is the synthetic record name used when a single
// link is supplied on the command line instead of an input file.
const IndividualLinkName = "Individual Link"

// LinkRecord represents one Rekonise link to resolve.
//
// A record is created by the link-file parser (or by wrapping a single
// CLI-provided link), has its DownloadURL filled in exactly once by the
// resolver, and is then consumed for printing. Records are independent:
// no state is shared between them, so they can be resolved concurrently
// without coordination.
//
// Example:
//
//	rec := model.NewLinkRecord("My Map", "https://rkns.link/abc123")
//	// rec.DownloadURL == "" until the resolver fills it in
type LinkRecord struct {
	// Name identifies the record in the output. Taken from the input
	// file line, or IndividualLinkName in single-link mode.
	Name string

	// URL is the source short link as supplied by the user.
	URL string

	// DownloadURL is the final unlocked URL. Empty until resolved.
	DownloadURL string
}

// NewLinkRecord creates a LinkRecord with an empty DownloadURL.
func NewLinkRecord(name, url string) *LinkRecord {
	return &LinkRecord{
		Name: name,
		URL:  url,
	}
}

// Resolved reports whether the record's download URL has been filled in.
func (r *LinkRecord) Resolved() bool {
	return r.DownloadURL != ""
}
