package loam

// ClassMetadata is the frontmatter of one class document.
// It uses "mapstructure" tags so Loam can decode Markdown frontmatter, YAML and JSON alike.
type ClassMetadata struct {
	// Name overrides the document ID as the node name.
	Name   string `json:"name" mapstructure:"name"`
	Parent string `json:"parent" mapstructure:"parent"`
	Link   string `json:"link" mapstructure:"link"`
	// Realizes lists interfaces this class realizes without being owned by them.
	Realizes []string `json:"realizes" mapstructure:"realizes"`
}
