// Package linkfile parses link list files.
//
// A link list file holds one record per line in the form:
//
//	name: url
//
// The name is a free-form label and the url is a Rekonise short link or
// page URL. Blank lines and lines without a ": " separator are ignored,
// which allows comments and spacing in hand-maintained files.
//
// # Basic Usage
//
//	records, err := linkfile.ParseFile("links.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range records {
//	    fmt.Println(r.Name, r.URL)
//	}
package linkfile
