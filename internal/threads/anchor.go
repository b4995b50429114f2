package threads

// anchorThreads is a working subset of the Anchor stranded cotton range.
var anchorThreads = []ThreadColor{
	{Code: "1", Name: "White", RGB: [3]uint8{255, 255, 255}, Brand: BrandAnchor},
	{Code: "2", Name: "Natural White", RGB: [3]uint8{246, 240, 230}, Brand: BrandAnchor},
	{Code: "6", Name: "Salmon Light", RGB: [3]uint8{255, 204, 190}, Brand: BrandAnchor},
	{Code: "9", Name: "Coral Light", RGB: [3]uint8{255, 160, 150}, Brand: BrandAnchor},
	{Code: "13", Name: "Salmon Dark", RGB: [3]uint8{227, 55, 55}, Brand: BrandAnchor},
	{Code: "19", Name: "Burgundy Medium", RGB: [3]uint8{150, 10, 40}, Brand: BrandAnchor},
	{Code: "22", Name: "Scarlet Deep", RGB: [3]uint8{120, 10, 30}, Brand: BrandAnchor},
	{Code: "46", Name: "Crimson Red", RGB: [3]uint8{210, 16, 53}, Brand: BrandAnchor},
	{Code: "47", Name: "Carmine Red Dark", RGB: [3]uint8{180, 20, 40}, Brand: BrandAnchor},
	{Code: "54", Name: "Rose Medium", RGB: [3]uint8{235, 110, 155}, Brand: BrandAnchor},
	{Code: "87", Name: "Violet Light", RGB: [3]uint8{215, 130, 190}, Brand: BrandAnchor},
	{Code: "99", Name: "Violet Dark", RGB: [3]uint8{130, 60, 130}, Brand: BrandAnchor},
	{Code: "109", Name: "Lavender Medium", RGB: [3]uint8{165, 150, 200}, Brand: BrandAnchor},
	{Code: "112", Name: "Purple Dark", RGB: [3]uint8{95, 55, 125}, Brand: BrandAnchor},
	{Code: "130", Name: "Cobalt Blue Light", RGB: [3]uint8{150, 180, 225}, Brand: BrandAnchor},
	{Code: "132", Name: "Cobalt Blue", RGB: [3]uint8{55, 85, 160}, Brand: BrandAnchor},
	{Code: "134", Name: "Cobalt Blue Dark", RGB: [3]uint8{25, 50, 110}, Brand: BrandAnchor},
	{Code: "146", Name: "Delft Blue Medium", RGB: [3]uint8{80, 120, 180}, Brand: BrandAnchor},
	{Code: "150", Name: "Navy Blue Dark", RGB: [3]uint8{20, 40, 80}, Brand: BrandAnchor},
	{Code: "167", Name: "Turquoise Medium", RGB: [3]uint8{75, 165, 180}, Brand: BrandAnchor},
	{Code: "170", Name: "Peacock Blue Dark", RGB: [3]uint8{25, 100, 120}, Brand: BrandAnchor},
	{Code: "185", Name: "Seafoam Light", RGB: [3]uint8{150, 215, 205}, Brand: BrandAnchor},
	{Code: "211", Name: "Emerald Dark", RGB: [3]uint8{20, 100, 60}, Brand: BrandAnchor},
	{Code: "226", Name: "Grass Green Medium", RGB: [3]uint8{80, 150, 60}, Brand: BrandAnchor},
	{Code: "230", Name: "Forest Green Dark", RGB: [3]uint8{30, 80, 40}, Brand: BrandAnchor},
	{Code: "238", Name: "Kelly Green", RGB: [3]uint8{70, 165, 50}, Brand: BrandAnchor},
	{Code: "254", Name: "Apple Green Light", RGB: [3]uint8{190, 220, 120}, Brand: BrandAnchor},
	{Code: "268", Name: "Olive Green Dark", RGB: [3]uint8{85, 100, 40}, Brand: BrandAnchor},
	{Code: "290", Name: "Canary Yellow", RGB: [3]uint8{255, 225, 20}, Brand: BrandAnchor},
	{Code: "295", Name: "Lemon Light", RGB: [3]uint8{255, 240, 150}, Brand: BrandAnchor},
	{Code: "303", Name: "Tangerine Medium", RGB: [3]uint8{255, 175, 50}, Brand: BrandAnchor},
	{Code: "316", Name: "Orange Deep", RGB: [3]uint8{250, 120, 30}, Brand: BrandAnchor},
	{Code: "333", Name: "Flame Orange", RGB: [3]uint8{240, 80, 20}, Brand: BrandAnchor},
	{Code: "352", Name: "Chestnut Dark", RGB: [3]uint8{110, 55, 30}, Brand: BrandAnchor},
	{Code: "358", Name: "Coffee Brown", RGB: [3]uint8{100, 65, 40}, Brand: BrandAnchor},
	{Code: "368", Name: "Tan Light", RGB: [3]uint8{225, 180, 130}, Brand: BrandAnchor},
	{Code: "380", Name: "Fudge Dark", RGB: [3]uint8{65, 45, 30}, Brand: BrandAnchor},
	{Code: "398", Name: "Gray Light", RGB: [3]uint8{200, 200, 200}, Brand: BrandAnchor},
	{Code: "400", Name: "Gray Medium", RGB: [3]uint8{130, 130, 130}, Brand: BrandAnchor},
	{Code: "403", Name: "Black", RGB: [3]uint8{0, 0, 0}, Brand: BrandAnchor},
}
