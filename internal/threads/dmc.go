package threads

// dmcThreads is a working subset of the DMC cotton floss color card.
var dmcThreads = []ThreadColor{
	{Code: "B5200", Name: "Snow White", RGB: [3]uint8{255, 255, 255}, Brand: BrandDMC},
	{Code: "White", Name: "White", RGB: [3]uint8{252, 251, 248}, Brand: BrandDMC},
	{Code: "Ecru", Name: "Ecru", RGB: [3]uint8{240, 234, 218}, Brand: BrandDMC},
	{Code: "310", Name: "Black", RGB: [3]uint8{0, 0, 0}, Brand: BrandDMC},
	{Code: "208", Name: "Lavender Very Dark", RGB: [3]uint8{131, 91, 139}, Brand: BrandDMC},
	{Code: "209", Name: "Lavender Dark", RGB: [3]uint8{163, 123, 167}, Brand: BrandDMC},
	{Code: "210", Name: "Lavender Medium", RGB: [3]uint8{195, 159, 195}, Brand: BrandDMC},
	{Code: "211", Name: "Lavender Light", RGB: [3]uint8{227, 203, 227}, Brand: BrandDMC},
	{Code: "221", Name: "Shell Pink Very Dark", RGB: [3]uint8{136, 62, 67}, Brand: BrandDMC},
	{Code: "223", Name: "Shell Pink Light", RGB: [3]uint8{204, 132, 124}, Brand: BrandDMC},
	{Code: "225", Name: "Shell Pink Ultra Very Light", RGB: [3]uint8{255, 223, 213}, Brand: BrandDMC},
	{Code: "300", Name: "Mahogany Very Dark", RGB: [3]uint8{111, 47, 0}, Brand: BrandDMC},
	{Code: "304", Name: "Red Medium", RGB: [3]uint8{183, 31, 51}, Brand: BrandDMC},
	{Code: "307", Name: "Lemon", RGB: [3]uint8{253, 237, 84}, Brand: BrandDMC},
	{Code: "309", Name: "Rose Dark", RGB: [3]uint8{86, 74, 74}, Brand: BrandDMC},
	{Code: "311", Name: "Blue Medium", RGB: [3]uint8{28, 80, 102}, Brand: BrandDMC},
	{Code: "312", Name: "Baby Blue Very Dark", RGB: [3]uint8{53, 102, 139}, Brand: BrandDMC},
	{Code: "315", Name: "Antique Mauve Medium Dark", RGB: [3]uint8{129, 73, 82}, Brand: BrandDMC},
	{Code: "317", Name: "Pewter Gray", RGB: [3]uint8{108, 108, 108}, Brand: BrandDMC},
	{Code: "318", Name: "Steel Gray Light", RGB: [3]uint8{171, 171, 171}, Brand: BrandDMC},
	{Code: "319", Name: "Pistachio Green Very Dark", RGB: [3]uint8{32, 95, 46}, Brand: BrandDMC},
	{Code: "320", Name: "Pistachio Green Medium", RGB: [3]uint8{105, 136, 90}, Brand: BrandDMC},
	{Code: "321", Name: "Red", RGB: [3]uint8{199, 43, 59}, Brand: BrandDMC},
	{Code: "322", Name: "Baby Blue Dark", RGB: [3]uint8{90, 143, 184}, Brand: BrandDMC},
	{Code: "326", Name: "Rose Very Dark", RGB: [3]uint8{179, 59, 75}, Brand: BrandDMC},
	{Code: "333", Name: "Blue Violet Very Dark", RGB: [3]uint8{92, 84, 120}, Brand: BrandDMC},
	{Code: "334", Name: "Baby Blue Medium", RGB: [3]uint8{115, 159, 193}, Brand: BrandDMC},
	{Code: "340", Name: "Blue Violet Medium", RGB: [3]uint8{173, 167, 199}, Brand: BrandDMC},
	{Code: "347", Name: "Salmon Very Dark", RGB: [3]uint8{191, 45, 45}, Brand: BrandDMC},
	{Code: "349", Name: "Coral Dark", RGB: [3]uint8{210, 16, 53}, Brand: BrandDMC},
	{Code: "350", Name: "Coral Medium", RGB: [3]uint8{224, 72, 72}, Brand: BrandDMC},
	{Code: "352", Name: "Coral Light", RGB: [3]uint8{253, 156, 151}, Brand: BrandDMC},
	{Code: "355", Name: "Terra Cotta Dark", RGB: [3]uint8{152, 68, 54}, Brand: BrandDMC},
	{Code: "356", Name: "Terra Cotta Medium", RGB: [3]uint8{197, 106, 91}, Brand: BrandDMC},
	{Code: "367", Name: "Pistachio Green Dark", RGB: [3]uint8{97, 122, 82}, Brand: BrandDMC},
	{Code: "368", Name: "Pistachio Green Light", RGB: [3]uint8{166, 194, 152}, Brand: BrandDMC},
	{Code: "402", Name: "Mahogany Very Light", RGB: [3]uint8{247, 167, 119}, Brand: BrandDMC},
	{Code: "413", Name: "Pewter Gray Dark", RGB: [3]uint8{86, 86, 86}, Brand: BrandDMC},
	{Code: "414", Name: "Steel Gray Dark", RGB: [3]uint8{140, 140, 140}, Brand: BrandDMC},
	{Code: "415", Name: "Pearl Gray", RGB: [3]uint8{211, 211, 214}, Brand: BrandDMC},
	{Code: "420", Name: "Hazelnut Brown Dark", RGB: [3]uint8{160, 112, 66}, Brand: BrandDMC},
	{Code: "433", Name: "Brown Medium", RGB: [3]uint8{122, 69, 31}, Brand: BrandDMC},
	{Code: "434", Name: "Brown Light", RGB: [3]uint8{152, 94, 51}, Brand: BrandDMC},
	{Code: "435", Name: "Brown Very Light", RGB: [3]uint8{184, 119, 72}, Brand: BrandDMC},
	{Code: "436", Name: "Tan", RGB: [3]uint8{203, 144, 81}, Brand: BrandDMC},
	{Code: "444", Name: "Lemon Dark", RGB: [3]uint8{255, 214, 0}, Brand: BrandDMC},
	{Code: "445", Name: "Lemon Light", RGB: [3]uint8{255, 251, 139}, Brand: BrandDMC},
	{Code: "469", Name: "Avocado Green", RGB: [3]uint8{114, 132, 60}, Brand: BrandDMC},
	{Code: "470", Name: "Avocado Green Light", RGB: [3]uint8{148, 171, 79}, Brand: BrandDMC},
	{Code: "498", Name: "Red Dark", RGB: [3]uint8{167, 19, 43}, Brand: BrandDMC},
	{Code: "500", Name: "Blue Green Very Dark", RGB: [3]uint8{4, 77, 51}, Brand: BrandDMC},
	{Code: "517", Name: "Wedgewood Dark", RGB: [3]uint8{59, 118, 143}, Brand: BrandDMC},
	{Code: "518", Name: "Wedgewood Light", RGB: [3]uint8{79, 147, 167}, Brand: BrandDMC},
	{Code: "550", Name: "Violet Very Dark", RGB: [3]uint8{92, 24, 78}, Brand: BrandDMC},
	{Code: "552", Name: "Violet Medium", RGB: [3]uint8{128, 58, 107}, Brand: BrandDMC},
	{Code: "554", Name: "Violet Light", RGB: [3]uint8{219, 179, 203}, Brand: BrandDMC},
	{Code: "561", Name: "Jade Very Dark", RGB: [3]uint8{44, 106, 69}, Brand: BrandDMC},
	{Code: "562", Name: "Jade Medium", RGB: [3]uint8{83, 151, 106}, Brand: BrandDMC},
	{Code: "606", Name: "Orange-Red Bright", RGB: [3]uint8{250, 50, 3}, Brand: BrandDMC},
	{Code: "608", Name: "Burnt Orange Bright", RGB: [3]uint8{253, 93, 53}, Brand: BrandDMC},
	{Code: "610", Name: "Drab Brown Dark", RGB: [3]uint8{121, 96, 71}, Brand: BrandDMC},
	{Code: "632", Name: "Desert Sand Ultra Very Dark", RGB: [3]uint8{135, 85, 57}, Brand: BrandDMC},
	{Code: "666", Name: "Bright Red", RGB: [3]uint8{227, 29, 66}, Brand: BrandDMC},
	{Code: "699", Name: "Green", RGB: [3]uint8{5, 101, 23}, Brand: BrandDMC},
	{Code: "700", Name: "Green Bright", RGB: [3]uint8{7, 115, 27}, Brand: BrandDMC},
	{Code: "702", Name: "Kelly Green", RGB: [3]uint8{71, 167, 47}, Brand: BrandDMC},
	{Code: "703", Name: "Chartreuse", RGB: [3]uint8{123, 181, 71}, Brand: BrandDMC},
	{Code: "712", Name: "Cream", RGB: [3]uint8{255, 251, 239}, Brand: BrandDMC},
	{Code: "720", Name: "Orange Spice Dark", RGB: [3]uint8{229, 92, 31}, Brand: BrandDMC},
	{Code: "722", Name: "Orange Spice Light", RGB: [3]uint8{247, 151, 111}, Brand: BrandDMC},
	{Code: "726", Name: "Topaz Light", RGB: [3]uint8{253, 215, 85}, Brand: BrandDMC},
	{Code: "727", Name: "Topaz Very Light", RGB: [3]uint8{255, 241, 175}, Brand: BrandDMC},
	{Code: "729", Name: "Old Gold Medium", RGB: [3]uint8{208, 165, 62}, Brand: BrandDMC},
	{Code: "738", Name: "Tan Very Light", RGB: [3]uint8{236, 204, 158}, Brand: BrandDMC},
	{Code: "739", Name: "Tan Ultra Very Light", RGB: [3]uint8{248, 228, 200}, Brand: BrandDMC},
	{Code: "740", Name: "Tangerine", RGB: [3]uint8{255, 139, 0}, Brand: BrandDMC},
	{Code: "742", Name: "Tangerine Light", RGB: [3]uint8{255, 191, 87}, Brand: BrandDMC},
	{Code: "743", Name: "Yellow Medium", RGB: [3]uint8{254, 211, 118}, Brand: BrandDMC},
	{Code: "745", Name: "Yellow Pale Light", RGB: [3]uint8{255, 233, 173}, Brand: BrandDMC},
	{Code: "754", Name: "Peach Light", RGB: [3]uint8{247, 203, 191}, Brand: BrandDMC},
	{Code: "758", Name: "Terra Cotta Very Light", RGB: [3]uint8{238, 170, 155}, Brand: BrandDMC},
	{Code: "760", Name: "Salmon", RGB: [3]uint8{245, 173, 173}, Brand: BrandDMC},
	{Code: "761", Name: "Salmon Light", RGB: [3]uint8{255, 201, 201}, Brand: BrandDMC},
	{Code: "775", Name: "Baby Blue Very Light", RGB: [3]uint8{217, 235, 241}, Brand: BrandDMC},
	{Code: "776", Name: "Pink Medium", RGB: [3]uint8{252, 176, 185}, Brand: BrandDMC},
	{Code: "792", Name: "Cornflower Blue Dark", RGB: [3]uint8{85, 91, 123}, Brand: BrandDMC},
	{Code: "796", Name: "Royal Blue Dark", RGB: [3]uint8{17, 65, 109}, Brand: BrandDMC},
	{Code: "797", Name: "Royal Blue", RGB: [3]uint8{19, 71, 125}, Brand: BrandDMC},
	{Code: "798", Name: "Delft Blue Dark", RGB: [3]uint8{70, 106, 142}, Brand: BrandDMC},
	{Code: "800", Name: "Delft Blue Pale", RGB: [3]uint8{192, 204, 222}, Brand: BrandDMC},
	{Code: "801", Name: "Coffee Brown Dark", RGB: [3]uint8{101, 57, 25}, Brand: BrandDMC},
	{Code: "814", Name: "Garnet Dark", RGB: [3]uint8{123, 0, 27}, Brand: BrandDMC},
	{Code: "815", Name: "Garnet Medium", RGB: [3]uint8{135, 7, 31}, Brand: BrandDMC},
	{Code: "817", Name: "Coral Red Very Dark", RGB: [3]uint8{187, 5, 31}, Brand: BrandDMC},
	{Code: "820", Name: "Royal Blue Very Dark", RGB: [3]uint8{14, 54, 92}, Brand: BrandDMC},
	{Code: "824", Name: "Blue Very Dark", RGB: [3]uint8{57, 105, 135}, Brand: BrandDMC},
	{Code: "826", Name: "Blue Medium", RGB: [3]uint8{107, 158, 191}, Brand: BrandDMC},
	{Code: "828", Name: "Blue Ultra Very Light", RGB: [3]uint8{197, 232, 237}, Brand: BrandDMC},
	{Code: "838", Name: "Beige Brown Very Dark", RGB: [3]uint8{89, 73, 55}, Brand: BrandDMC},
	{Code: "840", Name: "Beige Brown Medium", RGB: [3]uint8{154, 124, 92}, Brand: BrandDMC},
	{Code: "844", Name: "Beaver Gray Ultra Dark", RGB: [3]uint8{72, 72, 72}, Brand: BrandDMC},
	{Code: "869", Name: "Hazelnut Brown Very Dark", RGB: [3]uint8{131, 94, 57}, Brand: BrandDMC},
	{Code: "890", Name: "Pistachio Green Ultra Very Dark", RGB: [3]uint8{23, 73, 35}, Brand: BrandDMC},
	{Code: "898", Name: "Coffee Brown Very Dark", RGB: [3]uint8{73, 42, 19}, Brand: BrandDMC},
	{Code: "904", Name: "Parrot Green Very Dark", RGB: [3]uint8{85, 120, 34}, Brand: BrandDMC},
	{Code: "906", Name: "Parrot Green Medium", RGB: [3]uint8{127, 179, 53}, Brand: BrandDMC},
	{Code: "907", Name: "Parrot Green Light", RGB: [3]uint8{199, 230, 102}, Brand: BrandDMC},
	{Code: "909", Name: "Emerald Green Very Dark", RGB: [3]uint8{21, 111, 73}, Brand: BrandDMC},
	{Code: "910", Name: "Emerald Green Dark", RGB: [3]uint8{24, 126, 86}, Brand: BrandDMC},
	{Code: "911", Name: "Emerald Green Medium", RGB: [3]uint8{24, 144, 101}, Brand: BrandDMC},
	{Code: "913", Name: "Nile Green Medium", RGB: [3]uint8{109, 171, 119}, Brand: BrandDMC},
	{Code: "915", Name: "Plum Dark", RGB: [3]uint8{130, 0, 67}, Brand: BrandDMC},
	{Code: "917", Name: "Plum Medium", RGB: [3]uint8{155, 19, 89}, Brand: BrandDMC},
	{Code: "931", Name: "Antique Blue Medium", RGB: [3]uint8{106, 133, 158}, Brand: BrandDMC},
	{Code: "934", Name: "Avocado Green Black", RGB: [3]uint8{49, 57, 25}, Brand: BrandDMC},
	{Code: "938", Name: "Coffee Brown Ultra Dark", RGB: [3]uint8{54, 31, 14}, Brand: BrandDMC},
	{Code: "939", Name: "Navy Blue Very Dark", RGB: [3]uint8{27, 40, 83}, Brand: BrandDMC},
	{Code: "945", Name: "Tawny", RGB: [3]uint8{251, 213, 187}, Brand: BrandDMC},
	{Code: "946", Name: "Burnt Orange Medium", RGB: [3]uint8{235, 99, 7}, Brand: BrandDMC},
	{Code: "947", Name: "Burnt Orange", RGB: [3]uint8{255, 123, 77}, Brand: BrandDMC},
	{Code: "950", Name: "Desert Sand Light", RGB: [3]uint8{238, 211, 196}, Brand: BrandDMC},
	{Code: "954", Name: "Nile Green", RGB: [3]uint8{136, 186, 145}, Brand: BrandDMC},
	{Code: "958", Name: "Seagreen Dark", RGB: [3]uint8{62, 182, 161}, Brand: BrandDMC},
	{Code: "959", Name: "Seagreen Medium", RGB: [3]uint8{89, 199, 180}, Brand: BrandDMC},
	{Code: "964", Name: "Seagreen Light", RGB: [3]uint8{169, 226, 216}, Brand: BrandDMC},
	{Code: "970", Name: "Pumpkin Light", RGB: [3]uint8{247, 139, 19}, Brand: BrandDMC},
	{Code: "972", Name: "Canary Deep", RGB: [3]uint8{255, 181, 21}, Brand: BrandDMC},
	{Code: "973", Name: "Canary Bright", RGB: [3]uint8{255, 227, 0}, Brand: BrandDMC},
	{Code: "975", Name: "Golden Brown Dark", RGB: [3]uint8{145, 79, 18}, Brand: BrandDMC},
	{Code: "976", Name: "Golden Brown Medium", RGB: [3]uint8{194, 129, 66}, Brand: BrandDMC},
	{Code: "986", Name: "Forest Green Very Dark", RGB: [3]uint8{64, 82, 48}, Brand: BrandDMC},
	{Code: "987", Name: "Forest Green Dark", RGB: [3]uint8{88, 113, 65}, Brand: BrandDMC},
	{Code: "989", Name: "Forest Green", RGB: [3]uint8{141, 166, 117}, Brand: BrandDMC},
	{Code: "995", Name: "Electric Blue Dark", RGB: [3]uint8{38, 150, 182}, Brand: BrandDMC},
	{Code: "996", Name: "Electric Blue Medium", RGB: [3]uint8{48, 194, 236}, Brand: BrandDMC},
	{Code: "3031", Name: "Mocha Brown Very Dark", RGB: [3]uint8{75, 60, 42}, Brand: BrandDMC},
	{Code: "3072", Name: "Beaver Gray Very Light", RGB: [3]uint8{230, 232, 232}, Brand: BrandDMC},
	{Code: "3078", Name: "Golden Yellow Very Light", RGB: [3]uint8{253, 249, 205}, Brand: BrandDMC},
	{Code: "3345", Name: "Hunter Green Dark", RGB: [3]uint8{27, 89, 21}, Brand: BrandDMC},
	{Code: "3346", Name: "Hunter Green", RGB: [3]uint8{64, 106, 58}, Brand: BrandDMC},
	{Code: "3347", Name: "Yellow Green Medium", RGB: [3]uint8{113, 147, 92}, Brand: BrandDMC},
	{Code: "3371", Name: "Black Brown", RGB: [3]uint8{30, 17, 8}, Brand: BrandDMC},
	{Code: "3607", Name: "Plum Light", RGB: [3]uint8{197, 73, 137}, Brand: BrandDMC},
	{Code: "3608", Name: "Plum Very Light", RGB: [3]uint8{234, 156, 196}, Brand: BrandDMC},
	{Code: "3685", Name: "Mauve Very Dark", RGB: [3]uint8{136, 21, 49}, Brand: BrandDMC},
	{Code: "3687", Name: "Mauve", RGB: [3]uint8{201, 107, 112}, Brand: BrandDMC},
	{Code: "3705", Name: "Melon Dark", RGB: [3]uint8{255, 85, 91}, Brand: BrandDMC},
	{Code: "3706", Name: "Melon Medium", RGB: [3]uint8{255, 173, 175}, Brand: BrandDMC},
	{Code: "3746", Name: "Blue Violet Dark", RGB: [3]uint8{119, 107, 152}, Brand: BrandDMC},
	{Code: "3750", Name: "Antique Blue Very Dark", RGB: [3]uint8{56, 76, 94}, Brand: BrandDMC},
	{Code: "3761", Name: "Sky Blue Light", RGB: [3]uint8{172, 216, 226}, Brand: BrandDMC},
	{Code: "3765", Name: "Peacock Blue Very Dark", RGB: [3]uint8{52, 127, 140}, Brand: BrandDMC},
	{Code: "3776", Name: "Mahogany Light", RGB: [3]uint8{207, 121, 57}, Brand: BrandDMC},
	{Code: "3799", Name: "Pewter Gray Very Dark", RGB: [3]uint8{66, 66, 66}, Brand: BrandDMC},
	{Code: "3801", Name: "Melon Very Dark", RGB: [3]uint8{231, 73, 103}, Brand: BrandDMC},
	{Code: "3820", Name: "Straw Dark", RGB: [3]uint8{223, 182, 95}, Brand: BrandDMC},
	{Code: "3823", Name: "Yellow Ultra Pale", RGB: [3]uint8{255, 253, 227}, Brand: BrandDMC},
	{Code: "3834", Name: "Grape Dark", RGB: [3]uint8{114, 55, 93}, Brand: BrandDMC},
	{Code: "3846", Name: "Turquoise Bright Light", RGB: [3]uint8{6, 227, 230}, Brand: BrandDMC},
}
