package works

// Artwork is one exhibited piece. Year is kept as written (normally four
// digits); Image is a path or URL.
type Artwork struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Medium string `json:"medium" yaml:"medium"`
	Year   string `json:"year" yaml:"year"`
	Image  string `json:"image" yaml:"image"`
}
