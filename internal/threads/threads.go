// Package threads provides thread color libraries for common embroidery
// brands and the perceptual color-distance algorithms used to match
// arbitrary RGB colors to the closest physical thread.
package threads

// Brand identifies a supported thread manufacturer line.
type Brand string

const (
	BrandDMC     Brand = "DMC"
	BrandAnchor  Brand = "Anchor"
	BrandKreinik Brand = "Kreinik"
)

// ThreadColor is one entry in a brand's color card.
type ThreadColor struct {
	Code  string   `json:"code"`
	Name  string   `json:"name"`
	RGB   [3]uint8 `json:"rgb"`
	Brand Brand    `json:"brand"`
}

// LibraryInfo describes one available thread library.
type LibraryInfo struct {
	Brand       Brand  `json:"brand"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorCount  int    `json:"color_count"`
}

// ByBrand returns the color card for a brand. Unknown brands yield DMC,
// the industry default.
func ByBrand(b Brand) []ThreadColor {
	switch b {
	case BrandAnchor:
		return anchorThreads
	case BrandKreinik:
		return kreinikThreads
	default:
		return dmcThreads
	}
}

// All returns every thread color from every brand.
func All() []ThreadColor {
	out := make([]ThreadColor, 0, len(dmcThreads)+len(anchorThreads)+len(kreinikThreads))
	out = append(out, dmcThreads...)
	out = append(out, anchorThreads...)
	out = append(out, kreinikThreads...)
	return out
}

// Libraries lists the available thread libraries.
func Libraries() []LibraryInfo {
	return []LibraryInfo{
		{Brand: BrandDMC, Name: "DMC", Description: "DMC Cotton Embroidery Floss - Industry standard", ColorCount: len(dmcThreads)},
		{Brand: BrandAnchor, Name: "Anchor Stranded", Description: "Anchor Stranded Cotton - Popular alternative", ColorCount: len(anchorThreads)},
		{Brand: BrandKreinik, Name: "Kreinik Metallics", Description: "Kreinik Metallic Threads - Premium metallics", ColorCount: len(kreinikThreads)},
	}
}
