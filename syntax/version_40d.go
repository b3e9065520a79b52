package syntax

// Version40d returns the grammar for game-data format 0.28.181.40d.
func Version40d() *Registry {
	r := NewRegistry("0.28.181.40d")

	r.mustObject(NewObjectType("DESCRIPTOR", "COLOR", "SHAPE"))

	r.mustObject(NewObjectType("ITEM",
		"ITEM_AMMO", "ITEM_ARMOR", "ITEM_FOOD", "ITEM_GLOVES",
		"ITEM_HELM", "ITEM_INSTRUMENT", "ITEM_PANTS", "ITEM_SHIELD",
		"ITEM_SHOES", "ITEM_SIEGEAMMO", "ITEM_TOY", "ITEM_TRAPCOMP",
		"ITEM_WEAPON"))

	r.mustObject(NewObjectType("MATGLOSS",
		"MATGLOSS_METAL", "MATGLOSS_PLANT", "MATGLOSS_STONE",
		"MATGLOSS_WOOD"))

	r.mustObject(NewObjectType("LANGUAGE",
		"TRANSLATION", "SYMBOL", "WORD"))

	// BODY records are built of BP (body part) subsections; BODYGLOSS
	// records are flat.
	r.mustObject(NewObjectType("BODY", "BODY", "BODYGLOSS").
		WithSections(NewSection("BP", true)))

	return r
}

var versions = map[string]func() *Registry{
	"40d":          Version40d,
	"0.28.181.40d": Version40d,
}

// ForVersion returns the builtin grammar registered under v.
func ForVersion(v string) (*Registry, bool) {
	mk, ok := versions[v]
	if !ok {
		return nil, false
	}
	return mk(), true
}

// Versions lists the builtin grammar version names.
func Versions() []string {
	res := make([]string, 0, len(versions))
	for v := range versions {
		res = append(res, v)
	}
	return res
}
