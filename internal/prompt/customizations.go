package prompt

// optional overrides from the customization form; every field is free-form
// on the wire and translated through the vocabularies below
type Customizations struct {
	WallColor         string `json:"wallColor,omitempty"`
	WallColorCustom   string `json:"wallColorCustom,omitempty"`
	TrimStyle         string `json:"trimStyle,omitempty"`
	TrimColor         string `json:"trimColor,omitempty"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

const (
	sentinelKeep = "keep"

	wallColorCustom = "custom"
)

var wallColorPhrases = map[string]string{
	"white":       "Paint the walls a classic crisp white.",
	"off-white":   "Paint the walls a warm off-white cream.",
	"light-gray":  "Paint the walls a soft light gray.",
	"greige":      "Paint the walls a warm greige (gray-beige).",
	"navy":        "Paint the walls a deep navy blue.",
	"sage":        "Paint the walls a muted sage green.",
	"terracotta":  "Paint the walls a warm terracotta.",
	"charcoal":    "Paint the walls a dramatic charcoal gray.",
	"blush":       "Paint the walls a soft blush pink.",
	"accent-wall": "Keep most walls neutral and add one bold accent wall that complements the style.",
}

var trimStylePhrases = map[string]string{
	"simple":       "Add simple, clean baseboards.",
	"classic":      "Add classic crown molding where the walls meet the ceiling.",
	"wainscoting":  "Add wainscoting paneling to the lower portion of the walls.",
	"shiplap":      "Add horizontal shiplap paneling to the walls.",
	"board-batten": "Add board and batten paneling to the walls.",
	"picture-rail": "Add a picture rail molding around the upper walls.",
	"coffered":     "Add coffered ceiling trim with recessed panels.",
}

var trimColorPhrases = map[string]string{
	"white":    "Finish all trim in bright white.",
	"match":    "Finish the trim in the same color as the walls.",
	"contrast": "Finish the trim in a contrasting dark color.",
	"wood":     "Finish the trim in natural stained wood.",
	"black":    "Finish the trim in matte black.",
}

// returns the per-field instructions in a fixed order; sentinel and unknown
// enum values contribute nothing
func (c *Customizations) phrases() []string {
	if c == nil {
		return nil
	}

	var out []string

	switch c.WallColor {
	case "", sentinelKeep:
	case wallColorCustom:
		if custom := trimmed(c.WallColorCustom); custom != "" {
			out = append(out, "Paint the walls "+custom+".")
		}
	default:
		if phrase, ok := wallColorPhrases[c.WallColor]; ok {
			out = append(out, phrase)
		}
	}

	// trim color only applies alongside a concrete trim style, so "keep"
	// and "none" suppress both fields
	if phrase, ok := trimStylePhrases[c.TrimStyle]; ok {
		out = append(out, phrase)

		if color, ok := trimColorPhrases[c.TrimColor]; ok {
			out = append(out, color)
		}
	}

	if details := trimmed(c.AdditionalDetails); details != "" {
		out = append(out, details)
	}

	return out
}
