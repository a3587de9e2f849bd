package domain

// Phone is an immutable catalog record. The catalog is loaded once at startup
// and read-only afterwards; name equality (case-insensitive) is the only identity.
type Phone struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Price     *int     `json:"price,omitempty"`
	Camera    string   `json:"camera,omitempty"`
	Battery   string   `json:"battery,omitempty"`
	Display   string   `json:"display,omitempty"`
	Processor string   `json:"processor,omitempty"`
	Storage   *int     `json:"storage,omitempty"`
	RAM       *int     `json:"ram,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// Recommendation pairs a phone with a human-readable rationale and a relevance
// score in [0,1]. The score has no meaning outside the message that produced it.
type Recommendation struct {
	Phone          Phone   `json:"phone"`
	Rationale      string  `json:"rationale"`
	RelevanceScore float64 `json:"relevanceScore"`
}
