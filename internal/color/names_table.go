package color

// Name is one of the named colors of CSS Color Module Level 4.
type Name uint8

const (
	AliceBlue Name = iota + 1
	AntiqueWhite
	Aqua
	Aquamarine
	Azure
	Beige
	Bisque
	Black
	BlanchedAlmond
	Blue
	BlueViolet
	Brown
	BurlyWood
	CadetBlue
	Chartreuse
	Chocolate
	Coral
	CornflowerBlue
	Cornsilk
	Crimson
	Cyan
	DarkBlue
	DarkCyan
	DarkGoldenRod
	DarkGray
	DarkGrey
	DarkGreen
	DarkKhaki
	DarkMagenta
	DarkOliveGreen
	DarkOrange
	DarkOrchid
	DarkRed
	DarkSalmon
	DarkSeaGreen
	DarkSlateBlue
	DarkSlateGray
	DarkSlateGrey
	DarkTurquoise
	DarkViolet
	DeepPink
	DeepSkyBlue
	DimGray
	DimGrey
	DodgerBlue
	FireBrick
	FloralWhite
	ForestGreen
	Fuchsia
	Gainsboro
	GhostWhite
	Gold
	GoldenRod
	Gray
	Grey
	Green
	GreenYellow
	HoneyDew
	HotPink
	IndianRed
	Indigo
	Ivory
	Khaki
	Lavender
	LavenderBlush
	LawnGreen
	LemonChiffon
	LightBlue
	LightCoral
	LightCyan
	LightGoldenRodYellow
	LightGray
	LightGrey
	LightGreen
	LightPink
	LightSalmon
	LightSeaGreen
	LightSkyBlue
	LightSlateGray
	LightSlateGrey
	LightSteelBlue
	LightYellow
	Lime
	LimeGreen
	Linen
	Magenta
	Maroon
	MediumAquaMarine
	MediumBlue
	MediumOrchid
	MediumPurple
	MediumSeaGreen
	MediumSlateBlue
	MediumSpringGreen
	MediumTurquoise
	MediumVioletRed
	MidnightBlue
	MintCream
	MistyRose
	Moccasin
	NavajoWhite
	Navy
	OldLace
	Olive
	OliveDrab
	Orange
	OrangeRed
	Orchid
	PaleGoldenRod
	PaleGreen
	PaleTurquoise
	PaleVioletRed
	PapayaWhip
	PeachPuff
	Peru
	Pink
	Plum
	PowderBlue
	Purple
	RebeccaPurple
	Red
	RosyBrown
	RoyalBlue
	SaddleBrown
	Salmon
	SandyBrown
	SeaGreen
	SeaShell
	Sienna
	Silver
	SkyBlue
	SlateBlue
	SlateGray
	SlateGrey
	Snow
	SpringGreen
	SteelBlue
	Tan
	Teal
	Thistle
	Tomato
	Turquoise
	Violet
	Wheat
	White
	WhiteSmoke
	Yellow
	YellowGreen
)

var namedColors = [...]struct {
	name string
	rgb  uint32
}{
	AliceBlue:            {"aliceblue", 0xF0F8FF},
	AntiqueWhite:         {"antiquewhite", 0xFAEBD7},
	Aqua:                 {"aqua", 0x00FFFF},
	Aquamarine:           {"aquamarine", 0x7FFFD4},
	Azure:                {"azure", 0xF0FFFF},
	Beige:                {"beige", 0xF5F5DC},
	Bisque:               {"bisque", 0xFFE4C4},
	Black:                {"black", 0x000000},
	BlanchedAlmond:       {"blanchedalmond", 0xFFEBCD},
	Blue:                 {"blue", 0x0000FF},
	BlueViolet:           {"blueviolet", 0x8A2BE2},
	Brown:                {"brown", 0xA52A2A},
	BurlyWood:            {"burlywood", 0xDEB887},
	CadetBlue:            {"cadetblue", 0x5F9EA0},
	Chartreuse:           {"chartreuse", 0x7FFF00},
	Chocolate:            {"chocolate", 0xD2691E},
	Coral:                {"coral", 0xFF7F50},
	CornflowerBlue:       {"cornflowerblue", 0x6495ED},
	Cornsilk:             {"cornsilk", 0xFFF8DC},
	Crimson:              {"crimson", 0xDC143C},
	Cyan:                 {"cyan", 0x00FFFF},
	DarkBlue:             {"darkblue", 0x00008B},
	DarkCyan:             {"darkcyan", 0x008B8B},
	DarkGoldenRod:        {"darkgoldenrod", 0xB8860B},
	DarkGray:             {"darkgray", 0xA9A9A9},
	DarkGrey:             {"darkgrey", 0xA9A9A9},
	DarkGreen:            {"darkgreen", 0x006400},
	DarkKhaki:            {"darkkhaki", 0xBDB76B},
	DarkMagenta:          {"darkmagenta", 0x8B008B},
	DarkOliveGreen:       {"darkolivegreen", 0x556B2F},
	DarkOrange:           {"darkorange", 0xFF8C00},
	DarkOrchid:           {"darkorchid", 0x9932CC},
	DarkRed:              {"darkred", 0x8B0000},
	DarkSalmon:           {"darksalmon", 0xE9967A},
	DarkSeaGreen:         {"darkseagreen", 0x8FBC8F},
	DarkSlateBlue:        {"darkslateblue", 0x483D8B},
	DarkSlateGray:        {"darkslategray", 0x2F4F4F},
	DarkSlateGrey:        {"darkslategrey", 0x2F4F4F},
	DarkTurquoise:        {"darkturquoise", 0x00CED1},
	DarkViolet:           {"darkviolet", 0x9400D3},
	DeepPink:             {"deeppink", 0xFF1493},
	DeepSkyBlue:          {"deepskyblue", 0x00BFFF},
	DimGray:              {"dimgray", 0x696969},
	DimGrey:              {"dimgrey", 0x696969},
	DodgerBlue:           {"dodgerblue", 0x1E90FF},
	FireBrick:            {"firebrick", 0xB22222},
	FloralWhite:          {"floralwhite", 0xFFFAF0},
	ForestGreen:          {"forestgreen", 0x228B22},
	Fuchsia:              {"fuchsia", 0xFF00FF},
	Gainsboro:            {"gainsboro", 0xDCDCDC},
	GhostWhite:           {"ghostwhite", 0xF8F8FF},
	Gold:                 {"gold", 0xFFD700},
	GoldenRod:            {"goldenrod", 0xDAA520},
	Gray:                 {"gray", 0x808080},
	Grey:                 {"grey", 0x808080},
	Green:                {"green", 0x008000},
	GreenYellow:          {"greenyellow", 0xADFF2F},
	HoneyDew:             {"honeydew", 0xF0FFF0},
	HotPink:              {"hotpink", 0xFF69B4},
	IndianRed:            {"indianred", 0xCD5C5C},
	Indigo:               {"indigo", 0x4B0082},
	Ivory:                {"ivory", 0xFFFFF0},
	Khaki:                {"khaki", 0xF0E68C},
	Lavender:             {"lavender", 0xE6E6FA},
	LavenderBlush:        {"lavenderblush", 0xFFF0F5},
	LawnGreen:            {"lawngreen", 0x7CFC00},
	LemonChiffon:         {"lemonchiffon", 0xFFFACD},
	LightBlue:            {"lightblue", 0xADD8E6},
	LightCoral:           {"lightcoral", 0xF08080},
	LightCyan:            {"lightcyan", 0xE0FFFF},
	LightGoldenRodYellow: {"lightgoldenrodyellow", 0xFAFAD2},
	LightGray:            {"lightgray", 0xD3D3D3},
	LightGrey:            {"lightgrey", 0xD3D3D3},
	LightGreen:           {"lightgreen", 0x90EE90},
	LightPink:            {"lightpink", 0xFFB6C1},
	LightSalmon:          {"lightsalmon", 0xFFA07A},
	LightSeaGreen:        {"lightseagreen", 0x20B2AA},
	LightSkyBlue:         {"lightskyblue", 0x87CEFA},
	LightSlateGray:       {"lightslategray", 0x778899},
	LightSlateGrey:       {"lightslategrey", 0x778899},
	LightSteelBlue:       {"lightsteelblue", 0xB0C4DE},
	LightYellow:          {"lightyellow", 0xFFFFE0},
	Lime:                 {"lime", 0x00FF00},
	LimeGreen:            {"limegreen", 0x32CD32},
	Linen:                {"linen", 0xFAF0E6},
	Magenta:              {"magenta", 0xFF00FF},
	Maroon:               {"maroon", 0x800000},
	MediumAquaMarine:     {"mediumaquamarine", 0x66CDAA},
	MediumBlue:           {"mediumblue", 0x0000CD},
	MediumOrchid:         {"mediumorchid", 0xBA55D3},
	MediumPurple:         {"mediumpurple", 0x9370DB},
	MediumSeaGreen:       {"mediumseagreen", 0x3CB371},
	MediumSlateBlue:      {"mediumslateblue", 0x7B68EE},
	MediumSpringGreen:    {"mediumspringgreen", 0x00FA9A},
	MediumTurquoise:      {"mediumturquoise", 0x48D1CC},
	MediumVioletRed:      {"mediumvioletred", 0xC71585},
	MidnightBlue:         {"midnightblue", 0x191970},
	MintCream:            {"mintcream", 0xF5FFFA},
	MistyRose:            {"mistyrose", 0xFFE4E1},
	Moccasin:             {"moccasin", 0xFFE4B5},
	NavajoWhite:          {"navajowhite", 0xFFDEAD},
	Navy:                 {"navy", 0x000080},
	OldLace:              {"oldlace", 0xFDF5E6},
	Olive:                {"olive", 0x808000},
	OliveDrab:            {"olivedrab", 0x6B8E23},
	Orange:               {"orange", 0xFFA500},
	OrangeRed:            {"orangered", 0xFF4500},
	Orchid:               {"orchid", 0xDA70D6},
	PaleGoldenRod:        {"palegoldenrod", 0xEEE8AA},
	PaleGreen:            {"palegreen", 0x98FB98},
	PaleTurquoise:        {"paleturquoise", 0xAFEEEE},
	PaleVioletRed:        {"palevioletred", 0xDB7093},
	PapayaWhip:           {"papayawhip", 0xFFEFD5},
	PeachPuff:            {"peachpuff", 0xFFDAB9},
	Peru:                 {"peru", 0xCD853F},
	Pink:                 {"pink", 0xFFC0CB},
	Plum:                 {"plum", 0xDDA0DD},
	PowderBlue:           {"powderblue", 0xB0E0E6},
	Purple:               {"purple", 0x800080},
	RebeccaPurple:        {"rebeccapurple", 0x663399},
	Red:                  {"red", 0xFF0000},
	RosyBrown:            {"rosybrown", 0xBC8F8F},
	RoyalBlue:            {"royalblue", 0x4169E1},
	SaddleBrown:          {"saddlebrown", 0x8B4513},
	Salmon:               {"salmon", 0xFA8072},
	SandyBrown:           {"sandybrown", 0xF4A460},
	SeaGreen:             {"seagreen", 0x2E8B57},
	SeaShell:             {"seashell", 0xFFF5EE},
	Sienna:               {"sienna", 0xA0522D},
	Silver:               {"silver", 0xC0C0C0},
	SkyBlue:              {"skyblue", 0x87CEEB},
	SlateBlue:            {"slateblue", 0x6A5ACD},
	SlateGray:            {"slategray", 0x708090},
	SlateGrey:            {"slategrey", 0x708090},
	Snow:                 {"snow", 0xFFFAFA},
	SpringGreen:          {"springgreen", 0x00FF7F},
	SteelBlue:            {"steelblue", 0x4682B4},
	Tan:                  {"tan", 0xD2B48C},
	Teal:                 {"teal", 0x008080},
	Thistle:              {"thistle", 0xD8BFD8},
	Tomato:               {"tomato", 0xFF6347},
	Turquoise:            {"turquoise", 0x40E0D0},
	Violet:               {"violet", 0xEE82EE},
	Wheat:                {"wheat", 0xF5DEB3},
	White:                {"white", 0xFFFFFF},
	WhiteSmoke:           {"whitesmoke", 0xF5F5F5},
	Yellow:               {"yellow", 0xFFFF00},
	YellowGreen:          {"yellowgreen", 0x9ACD32},
}
