package color

import "sync"

func (n Name) String() string {
	if n > 0 && int(n) < len(namedColors) {
		return namedColors[n].name
	}
	return ""
}

// RGB returns the packed 0xRRGGBB value of the named color.
func (n Name) RGB() uint32 {
	if n > 0 && int(n) < len(namedColors) {
		return namedColors[n].rgb
	}
	return 0
}

// Color returns the named color as a Color that renders with its name.
func (n Name) Color() *Color {
	rgb := n.RGB()
	c := FromRGBA(float64(rgb>>16&0xff), float64(rgb>>8&0xff), float64(rgb&0xff), 1)
	c.name = n.String()
	return c
}

var (
	indexOnce sync.Once
	byName    map[string]Name
	byRGB     map[uint32]Name
)

func buildIndex() {
	byName = make(map[string]Name, len(namedColors))
	byRGB = make(map[uint32]Name, len(namedColors))
	for i := 1; i < len(namedColors); i++ {
		n := Name(i)
		byName[namedColors[i].name] = n
		// aliases (aqua/cyan, gray/grey) keep the first spelling in table order
		if _, ok := byRGB[namedColors[i].rgb]; !ok {
			byRGB[namedColors[i].rgb] = n
		}
	}
}

// LookupName finds a named color by its lowercase keyword.
func LookupName(keyword string) (Name, bool) {
	indexOnce.Do(buildIndex)
	n, ok := byName[keyword]
	return n, ok
}

// NameFor returns the keyword for an opaque 0xRRGGBB value, if one exists.
func NameFor(rgb uint32) (Name, bool) {
	indexOnce.Do(buildIndex)
	n, ok := byRGB[rgb]
	return n, ok
}

// Names returns every named color in table order.
func Names() []Name {
	names := make([]Name, 0, len(namedColors)-1)
	for i := 1; i < len(namedColors); i++ {
		names = append(names, Name(i))
	}
	return names
}
