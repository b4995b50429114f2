package threads

// kreinikThreads is a working subset of the Kreinik metallic braid range.
// Metallic RGB values are nominal; actual appearance varies with light.
var kreinikThreads = []ThreadColor{
	{Code: "001", Name: "Silver", RGB: [3]uint8{192, 192, 192}, Brand: BrandKreinik},
	{Code: "002", Name: "Gold", RGB: [3]uint8{212, 175, 55}, Brand: BrandKreinik},
	{Code: "003", Name: "Red", RGB: [3]uint8{200, 30, 45}, Brand: BrandKreinik},
	{Code: "005", Name: "Black", RGB: [3]uint8{25, 25, 25}, Brand: BrandKreinik},
	{Code: "006", Name: "Blue", RGB: [3]uint8{40, 70, 160}, Brand: BrandKreinik},
	{Code: "008", Name: "Green", RGB: [3]uint8{30, 120, 70}, Brand: BrandKreinik},
	{Code: "012", Name: "Purple", RGB: [3]uint8{110, 50, 140}, Brand: BrandKreinik},
	{Code: "021", Name: "Copper", RGB: [3]uint8{184, 115, 51}, Brand: BrandKreinik},
	{Code: "024", Name: "Fuchsia", RGB: [3]uint8{215, 55, 135}, Brand: BrandKreinik},
	{Code: "027", Name: "Orange", RGB: [3]uint8{240, 125, 35}, Brand: BrandKreinik},
	{Code: "028", Name: "Citron", RGB: [3]uint8{220, 215, 70}, Brand: BrandKreinik},
	{Code: "032", Name: "Pearl", RGB: [3]uint8{235, 232, 225}, Brand: BrandKreinik},
	{Code: "051HL", Name: "Sapphire Hi Lustre", RGB: [3]uint8{30, 90, 170}, Brand: BrandKreinik},
	{Code: "085", Name: "Peacock", RGB: [3]uint8{35, 140, 150}, Brand: BrandKreinik},
	{Code: "102", Name: "Vatican Gold", RGB: [3]uint8{200, 160, 70}, Brand: BrandKreinik},
	{Code: "3200", Name: "Pearl Blush", RGB: [3]uint8{240, 210, 210}, Brand: BrandKreinik},
}
