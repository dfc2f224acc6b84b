package generation

import "sort"

// styleFragments maps each named style to the descriptive tokens appended
// after the user prompt. The fragment always comes second because the
// provider weights earlier tokens more heavily.
var styleFragments = map[string]string{
	"realistic":     "photorealistic, ultra detailed, natural lighting, 8k photography",
	"anime":         "anime style, vibrant colors, cel shading, detailed line art",
	"cyberpunk":     "cyberpunk, neon lights, dystopian cityscape, rain-slicked streets",
	"fantasy":       "epic fantasy art, magical atmosphere, intricate details, dramatic lighting",
	"watercolor":    "watercolor painting, soft washes, flowing pigments, textured paper",
	"oil-painting":  "oil painting, visible brushstrokes, rich impasto texture, classical composition",
	"pixel-art":     "pixel art, 16-bit, crisp pixels, retro video game palette",
	"cartoon":       "cartoon style, bold outlines, flat colors, playful exaggeration",
	"comic-book":    "comic book art, halftone shading, dynamic panels, ink outlines",
	"3d-render":     "3d render, octane render, global illumination, physically based materials",
	"steampunk":     "steampunk, brass gears, victorian machinery, sepia tones",
	"surrealism":    "surrealist art, dreamlike imagery, impossible geometry, melting forms",
	"impressionism": "impressionist painting, loose brushwork, dappled light, en plein air",
	"pop-art":       "pop art, bold flat colors, ben-day dots, high contrast",
	"minimalist":    "minimalist, clean composition, negative space, simple geometric shapes",
	"abstract":      "abstract art, non-figurative, bold shapes, expressive color fields",
	"noir":          "film noir, black and white, hard shadows, dramatic chiaroscuro",
	"vaporwave":     "vaporwave aesthetic, pastel gradients, retro futurism, glitch artifacts",
	"sketch":        "pencil sketch, hand drawn, crosshatching, rough graphite lines",
	"low-poly":      "low poly 3d, faceted surfaces, flat shaded polygons, isometric feel",
}

// StyleFragment resolves a style identifier to its prompt fragment.
func StyleFragment(style string) (string, bool) {
	fragment, ok := styleFragments[style]
	return fragment, ok
}

// Styles returns the closed set of style identifiers, sorted.
func Styles() []string {
	names := make([]string, 0, len(styleFragments))
	for name := range styleFragments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
