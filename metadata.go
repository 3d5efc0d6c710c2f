package orsextract

import "regexp"

// NotAvailable marks a metadata field that could not be resolved.
const NotAvailable = "N/A"

// Metadata holds the structural position of a statute section.
// Every field is either a concrete value or NotAvailable, never empty.
type Metadata struct {
	ORS     string `json:"ors"`
	Chapter string `json:"chapter"`
	Title   string `json:"title"`
	Volume  string `json:"volume"`
}

// Filename tokens, e.g. ors_174.010_chapter_174_title_18_volume_4.html.
var (
	filenameORSRe     = regexp.MustCompile(`ors_(\d+[A-Za-z]?\.\d+)`)
	filenameChapterRe = regexp.MustCompile(`chapter_(\d+[A-Za-z]?)`)
	filenameTitleRe   = regexp.MustCompile(`title_(\d+[A-Za-z]?)`)
	filenameVolumeRe  = regexp.MustCompile(`volume_(\d+)`)
)

// Human-readable markers found in page text.
var (
	contentChapterRe = regexp.MustCompile(`Chapter (\d+[A-Za-z]?)`)
	contentTitleRe   = regexp.MustCompile(`Title (\d+)`)
	contentVolumeRe  = regexp.MustCompile(`Volume (\d+)`)
)

// MetadataFromFilename scans a filename for ors_, chapter_, title_ and
// volume_ tokens. Each field takes its first match.
func MetadataFromFilename(filename string) Metadata {
	return Metadata{
		ORS:     firstMatch(filenameORSRe, filename),
		Chapter: firstMatch(filenameChapterRe, filename),
		Title:   firstMatch(filenameTitleRe, filename),
		Volume:  firstMatch(filenameVolumeRe, filename),
	}
}

// MetadataFromContent scans flattened page text for "Chapter N", "Title N"
// and "Volume N" markers. Content never carries a statute number, so ORS is
// always NotAvailable.
func MetadataFromContent(content string) Metadata {
	return Metadata{
		ORS:     NotAvailable,
		Chapter: firstMatch(contentChapterRe, content),
		Title:   firstMatch(contentTitleRe, content),
		Volume:  firstMatch(contentVolumeRe, content),
	}
}

// Merge returns m with every unresolved chapter, title and volume filled in
// from fallback. ORS is never taken from fallback.
func (m Metadata) Merge(fallback Metadata) Metadata {
	return Metadata{
		ORS:     prefer(m.ORS, ""),
		Chapter: prefer(m.Chapter, fallback.Chapter),
		Title:   prefer(m.Title, fallback.Title),
		Volume:  prefer(m.Volume, fallback.Volume),
	}
}

// ResolveMetadata combines filename and content metadata. Filename values
// win; content fills the gaps.
func ResolveMetadata(filename, content string) Metadata {
	return MetadataFromFilename(filename).Merge(MetadataFromContent(content))
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return NotAvailable
	}
	return m[1]
}

func prefer(primary, fallback string) string {
	if primary != NotAvailable && primary != "" {
		return primary
	}
	if fallback == "" {
		return NotAvailable
	}
	return fallback
}
