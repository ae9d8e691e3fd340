package analysis

const analysisPrompt = `Analyze this room image and provide a detailed JSON response with the following structure. Be specific and accurate:

{
  "roomType": "living room" | "bedroom" | "kitchen" | "bathroom" | "dining room" | "home office" | "nursery" | "other",
  "currentStyle": "modern" | "traditional" | "industrial" | "bohemian" | "minimalist" | "scandinavian" | "mid-century" | "coastal" | "farmhouse" | "eclectic" | "unknown",
  "colorPalette": {
    "dominant": "the main color you see (e.g., 'warm beige', 'soft gray', 'white')",
    "accent": ["2-3 accent colors present"],
    "suggested": ["3-4 colors that would complement this space"]
  },
  "furniture": {
    "detected": ["list of furniture items you can see in the room"],
    "suggestions": ["4-6 furniture pieces that would enhance this space based on the room type and style"]
  },
  "lighting": "description of lighting quality (e.g., 'natural light from large windows', 'warm artificial lighting', 'dim and needs improvement')",
  "recommendations": ["5-7 specific actionable design recommendations to improve this space"]
}

Respond ONLY with valid JSON, no additional text or markdown formatting.`
