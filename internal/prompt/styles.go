package prompt

// a decorating style the generator can apply
type Style struct {
	ID        string
	Name      string
	Premium   bool
	Paragraph string
}

// order matches the style picker
var styles = []Style{
	{ID: "modern", Name: "Modern", Paragraph: "Transform this room into a sleek modern style with clean lines, neutral colors, minimalist furniture, contemporary art, and high-end finishes. Keep the same room layout and windows."},
	{ID: "modern-spa", Name: "Modern Spa", Premium: true, Paragraph: "Redesign this room as a serene modern spa retreat with zen elements, natural materials like bamboo and stone, soft neutral tones, ambient lighting, plants, and calming water features. Keep the same room structure."},
	{ID: "scandinavian", Name: "Scandinavian", Paragraph: "Redesign this room in Scandinavian style with light wood tones, white walls, cozy textiles, functional furniture, natural light emphasis, and hygge elements. Keep the same room structure."},
	{ID: "industrial", Name: "Industrial", Paragraph: "Convert this room to industrial style with exposed brick, metal accents, raw materials, Edison bulbs, concrete elements, and urban loft aesthetic. Maintain the room's basic layout."},
	{ID: "bohemian", Name: "Bohemian", Paragraph: "Transform this room into bohemian style with rich colors, layered textiles, eclectic patterns, plants, global accents, and artistic décor. Keep the same room dimensions."},
	{ID: "minimalist", Name: "Minimalist", Paragraph: "Redesign this room in minimalist style with only essential furniture, monochromatic palette, clean surfaces, hidden storage, and zen-like simplicity. Preserve the room layout."},
	{ID: "traditional", Name: "Traditional", Paragraph: "Convert this room to traditional style with elegant furniture, classic patterns, rich wood tones, formal arrangements, and timeless décor. Maintain the room structure."},
	{ID: "mid-century", Name: "Mid-Century Modern", Paragraph: "Transform this room into mid-century modern style with organic curves, retro furniture, warm wood tones, iconic design pieces, and 1950s-60s aesthetic. Keep the same room layout."},
	{ID: "coastal", Name: "Coastal", Paragraph: "Redesign this room in coastal style with ocean-inspired blues and whites, natural textures, driftwood accents, nautical elements, and breezy beach house vibes. Maintain the room structure."},
	{ID: "farmhouse", Name: "Farmhouse", Paragraph: "Convert this room to farmhouse style with rustic wood beams, shiplap walls, vintage accents, cozy textiles, warm neutrals, and country charm. Keep the same room dimensions."},
	{ID: "art-deco", Name: "Art Deco", Premium: true, Paragraph: "Transform this room into art deco style with bold geometric patterns, luxurious materials, gold accents, velvet upholstery, and 1920s glamour. Preserve the room layout."},
	{ID: "japanese", Name: "Japanese", Premium: true, Paragraph: "Redesign this room in Japanese style with minimalist zen aesthetic, natural materials, shoji screens, low furniture, tatami elements, and wabi-sabi philosophy. Keep the same room structure."},
	{ID: "mediterranean", Name: "Mediterranean", Premium: true, Paragraph: "Convert this room to Mediterranean style with terracotta tones, wrought iron details, arched doorways, mosaic tiles, and warm sunny European villa aesthetic. Maintain the room layout."},
}

var stylesByID = func() map[string]Style {
	m := make(map[string]Style, len(styles))
	for _, s := range styles {
		m[s.ID] = s
	}
	return m
}()

// returns a copy of the style table
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// returns the identifiers of every premium style
func PremiumStyleIDs() []string {
	var ids []string
	for _, s := range styles {
		if s.Premium {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

func Lookup(id string) (Style, bool) {
	s, ok := stylesByID[id]
	return s, ok
}

func IsValidStyle(id string) bool {
	_, ok := stylesByID[id]
	return ok
}

func IsPremiumStyle(id string) bool {
	s, ok := stylesByID[id]
	return ok && s.Premium
}
