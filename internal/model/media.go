package model

import "time"

// Media is a stored asset reference. Key is the three-segment
// namespace/owner/asset-name path; the bytes themselves live in external
// object storage reached through the signed-upload collaborator.
type Media struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// MediaExport is the wire shape of an asset reference.
type MediaExport struct {
	ID  string `json:"id"`
	Key string `json:"key"`
	URL string `json:"url"`
}

// Export renders the wire view of an asset.
func (m *Media) Export() MediaExport {
	return MediaExport{ID: m.ID, Key: m.Key, URL: m.URL}
}

// MediaSignRequest asks the upload collaborator to countersign a public id.
type MediaSignRequest struct {
	PublicID string
}

// MediaSignature is the countersigned upload ticket.
type MediaSignature struct {
	Signature string `json:"signature"`
	Timestamp string `json:"timestamp"`
	Folder    string `json:"folder"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
}

// MediaCreateRequest records an uploaded asset.
type MediaCreateRequest struct {
	PublicID string
	URL      string
}

// MediaRemoveRequest removes an asset record.
type MediaRemoveRequest struct {
	ID string
}
