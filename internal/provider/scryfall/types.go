package scryfall

// identifier is one entry of a collection request. Scryfall only accepts a
// collector number together with a set.
type identifier struct {
	Name            string `json:"name,omitempty"`
	Set             string `json:"set,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
}

type collectionRequest struct {
	Identifiers []identifier `json:"identifiers"`
}

type collectionResponse struct {
	NotFound []identifier `json:"not_found"`
	Data     []record     `json:"data"`
}

type searchResponse struct {
	TotalCards int      `json:"total_cards"`
	Data       []record `json:"data"`
}

type errorObject struct {
	Object   string   `json:"object"`
	Code     string   `json:"code"`
	Status   int      `json:"status"`
	Details  string   `json:"details"`
	Warnings []string `json:"warnings"`
}

// record is the subset of a Scryfall card object the enrichment reads.
type record struct {
	Name            string     `json:"name"`
	ManaCost        *string    `json:"mana_cost"`
	TypeLine        string     `json:"type_line"`
	Set             string     `json:"set"`
	CollectorNumber string     `json:"collector_number"`
	ColorIdentity   []string   `json:"color_identity"`
	ImageStatus     string     `json:"image_status"`
	ImageURIs       *imageURIs `json:"image_uris"`
	CardFaces       []face     `json:"card_faces"`
}

type face struct {
	Name      string     `json:"name"`
	ManaCost  string     `json:"mana_cost"`
	ImageURIs *imageURIs `json:"image_uris"`
}

type imageURIs struct {
	Normal  string `json:"normal"`
	ArtCrop string `json:"art_crop"`
}

// ImageStatusMissing marks a printing Scryfall has no scan of.
const ImageStatusMissing = "missing"
