package analysis

type ColorPalette struct {
	Dominant  string   `json:"dominant"`
	Accent    []string `json:"accent"`
	Suggested []string `json:"suggested"`
}

type Furniture struct {
	Detected    []string `json:"detected"`
	Suggestions []string `json:"suggestions"`
}

// structured description of a room photo
type RoomAnalysis struct {
	RoomType        string       `json:"roomType"`
	CurrentStyle    string       `json:"currentStyle"`
	ColorPalette    ColorPalette `json:"colorPalette"`
	Furniture       Furniture    `json:"furniture"`
	Lighting        string       `json:"lighting"`
	Recommendations []string     `json:"recommendations"`
}

type Request struct {
	UserID string
	Image  string
}
