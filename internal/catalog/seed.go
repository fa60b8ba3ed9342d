package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// seedCategory describes one product family of the master catalog.
// Every combination of its axes becomes one master entry.
type seedCategory struct {
	category  string
	prefix    string
	unit      string
	brands    []string
	grades    []string
	finishes  []string
	sizes     []string
	varieties []string
	types     []string
}

var (
	structuralBrands = []string{"Patna Iron", "Kamdhenu", "JKSPL", "Sel Tiger", "SAIL", "SUL", "Others"}
	shutterBrands    = []string{"Jagdamba", "Kamdhenu", "Manokaamna", "Others"}
	msGIFinishes     = []string{"MS - Mild Steel (Black)", "GI - Galvanised"}
	heavyLight       = []string{"Heavy", "Light"}
	barSizes         = []string{"8 mm", "10 mm", "12 mm", "16 mm", "20 mm", "25 mm", "32 mm", "40 mm"}
)

var masterCatalog = []seedCategory{
	{
		category: "TMT Rebars",
		prefix:   "TMT",
		unit:     "kg",
		brands:   []string{"TATA Tiscon", "SAIL", "Jindal", "JSW", "Shyam Steel", "Rungta", "Others"},
		grades:   []string{"500 D", "550 D", "600 D"},
		sizes:    []string{"6 mm", "8 mm", "10 mm", "12 mm", "16 mm", "20 mm", "25 mm", "32 mm"},
	},
	{
		category: "Angles",
		prefix:   "Angle",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes: []string{
			"A 20×3", "A 25×3", "A 25×5", "A 30×3", "A 32×3", "A 35×5", "A 35×6",
			"A 40×3", "A 40×5", "A 40×6", "A 50×3", "A 50×5", "A 50×6",
			"A 65×5", "A 65×6", "A 75×5", "A 75×6", "A 75×8", "A 75×10",
		},
	},
	{
		category: "Flats",
		prefix:   "Flat",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes: []string{
			"F 20×3", "F 20×5", "F 20×6", "F 25×3", "F 25×5", "F 25×6", "F 25×10", "F 25×12",
			"F 32×5", "F 32×6", "F 32×8", "F 32×10", "F 40×5", "F 40×6", "F 40×8", "F 40×10", "F 40×12",
			"F 50×5", "F 50×6", "F 50×8", "F 50×10", "F 50×12", "F 65×6", "F 65×8", "F 65×10", "F 65×12",
			"F 75×6", "F 75×8", "F 75×10", "F 75×12", "F 75×16", "F 100×8", "F 100×12",
		},
	},
	{
		category: "Square Bars",
		prefix:   "Square Bar",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes:    barSizes,
	},
	{
		category: "Round Bars",
		prefix:   "Round Bar",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes:    barSizes,
	},
	{
		category: "Channels",
		prefix:   "Channel",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes: []string{
			"ISMC 70×40", "ISMC 75×40 (ULC)", "ISMC 75×40 (LC)", "ISMC 75×40 (MC)", "ISMC 75×40 (H)",
			"ISMC 100×50 (LC)", "ISMC 100×50 (MC)", "ISMC 100×50 (H)",
			"ISMC 125×65", "ISMC 150×75", "ISMC 200×75", "ISMC 250×75",
		},
	},
	{
		category: "Joist / ISMB",
		prefix:   "Joist",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes:    []string{"ISMB 100", "ISMB 125", "ISMB 150", "ISMB 200", "ISMB 250", "ISMB 300", "ISMB 350", "ISMB 400"},
	},
	{
		category: "Z-Angles",
		prefix:   "Z-Angle",
		unit:     "kg",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes:    []string{"Z - Angle (L)", "Z - Angle (H)"},
	},
	{
		category: "Gate Channel",
		prefix:   "Gate Channel",
		unit:     "pcs",
		brands:   structuralBrands,
		finishes: msGIFinishes,
		sizes:    []string{"Gt. Chn. 13 ft", "Gt. Chn. 14 ft", "Gt. Chn. 15 ft", "Gt. Chn. 16 ft", "Gt. Chn. 17 ft", "Gt. Chn. 18 ft"},
	},
	{
		category:  "Tak Sq. / Flat",
		prefix:    "Tak",
		unit:      "pcs",
		brands:    shutterBrands,
		finishes:  msGIFinishes,
		varieties: heavyLight,
		sizes: []string{
			"Tak Sq. 8 mm", "Tak Sq. 10 mm", "Tak Sq. 12 mm", "Tak Flat 20×5", "Tak Flat 25×5",
			"Round Pipe 66", "Square Pipe 66", "Rectangular Pipes 28", "Fancy Pipes 3",
			"Shutter Guide", "Guide 13 ft", "Guide 14 ft", "Guide 15 ft", "Guide 16 ft",
			"Guide 17 ft", "Guide 18 ft", "Guide 19 ft", "Guide 20 ft",
		},
	},
	{
		category:  "Shutter Profiles",
		prefix:    "Shutter Profile",
		unit:      "pcs",
		brands:    shutterBrands,
		finishes:  msGIFinishes,
		varieties: heavyLight,
		sizes: []string{
			"Profile 13 ft", "Profile 14 ft", "Profile 15 ft", "Profile 16 ft", "Profile 17 ft",
			"Profile 18 ft", "Profile 19 ft", "Profile 20 ft", "Profile 21 ft", "Profile 22 ft", "Profile 23 ft",
		},
	},
	{
		category:  "Lock Plates / Bracket",
		prefix:    "Lock Plate",
		unit:      "pcs",
		brands:    shutterBrands,
		finishes:  msGIFinishes,
		varieties: heavyLight,
		sizes:     []string{"Straight Lock Plate 8 ft", "Straight Lock Plate 10 ft", "Lock Plate (Roll Coil)", `Bracket 14"×14"`},
	},
	{
		category: "Plates",
		prefix:   "Plate",
		unit:     "kg",
		brands:   []string{"Patna Iron", "Kamdhenu", "Satyam", "Others", "Tata Structura", "APL Apollo"},
		finishes: msGIFinishes,
		sizes: []string{
			"Chequered Plate", "MS Plate", "2.5 mm - 10×6", "3 mm - 10×6", "3.5 mm - 10×6",
			"4 mm - 10×6", "4.5 mm - 10×6", "5 mm - 10×5", "5 mm - 21×5", "6 mm - 10×5", "6 mm - 21×5",
		},
	},
	{
		category: "HR Sheets",
		prefix:   "HR Sheet",
		unit:     "kg",
		brands:   []string{"TATA Astrum", "SAIL", "Secondary (Other)"},
		sizes: crossSizes(
			[]string{"8 G", "9 G", "10 G", "12 G", "14 G", "16 G"},
			[]string{"6×3", "6×4", "6×Meter", "7×3", "7×4", "7×Meter", "8×3", "8×4", "8×5", "8×Meter", "10×3"},
		),
	},
	{
		category: "GP Sheets",
		prefix:   "GP Sheet",
		unit:     "kg",
		brands:   []string{"TATA", "SAIL", "JSW", "AM/NS INDIA", "Secondary (Other)"},
		finishes: []string{"Galvanised", "Galvannealed"},
		sizes: crossSizes(
			[]string{
				"0.40 mm", "0.50 mm - 26 G", "0.60 mm - 24 G", "22 G - 0.80 mm", "20 G - 1.00 mm",
				"18 G - 1.20 mm", "16 G - 1.60 mm", "14 G - 2 mm", "12 G - 2.50 mm", "10 G - 3.00 mm",
			},
			[]string{"6×3", "6×4", "6×Meter", "7×3", "7×4", "7×Meter", "8×3", "8×4", "8×5", "8×Meter"},
		),
	},
	{
		category: "CR Sheets",
		prefix:   "CR Sheet",
		unit:     "kg",
		brands:   []string{"TATA Steelium Super", "SAIL", "Secondary (Other)"},
		sizes: crossSizes(
			[]string{"14 G", "16 G", "18 G", "20 G", "22 G", "24 G", "26 G", "0.40 mm", "0.35 mm", "0.30 mm"},
			[]string{"6×3", "6×4", "6×Meter", "8×3", "8×4", "8×Meter"},
		),
	},
	{
		category: "Roofing Sheet",
		prefix:   "Roofing Sheet",
		unit:     "pcs",
		brands:   []string{"Tata Shaktee", "Aarti", "5 Star", "Others"},
		sizes: crossSizes(
			[]string{"0.15 mm", "0.18 mm", "0.20 mm", "0.22 mm", "0.25 mm", "0.30 mm", "0.35 mm", "0.40 mm", "0.45 mm", "0.50 mm", "0.60 mm", "0.80 mm"},
			[]string{"6×3", "6×4", "8×3", "8×4", "10×3", "10×4", "12×3", "12×4", "14×3", "14×4", "16×4"},
		),
	},
	{
		category: "Colour Profile Sheet",
		prefix:   "Colour Profile Sheet",
		unit:     "pcs",
		brands:   []string{"TATA Durashine", "TATA Infinia", "JSW Pragati+", "Jindal Sabrang / Rangeen", "Aarti", "Others"},
		sizes: crossSizes(
			[]string{"0.25 mm", "0.30 mm", "0.35 mm", "0.37 mm", "0.40 mm", "0.45 mm", "0.47 mm", "0.50 mm", "0.53 mm"},
			[]string{
				"6×3.5", "7×3.5", "8×3.5", "10×3.5", "12×3.5", "14×3.5", "16×3.5",
				"6×4", "7×4", "8×4", "10×4", "12×4", "14×4", "16×4", "18×4", "20×4",
			},
		),
	},
	{
		category: "Asbestos Sheet",
		prefix:   "Asbestos Sheet",
		unit:     "pcs",
		brands:   []string{"Everest", "Visaka", "Konark", "Charminar (birlanu)", "Ramco", "Others"},
		sizes:    []string{"6 ft (5.75 ft)", "6.5 ft", "8 ft", "10 ft", "12 ft"},
		types:    []string{"Grey", "Colour Coated", "Cooling Sheet"},
	},
}

// crossSizes joins every thickness or gauge with every sheet dimension
func crossSizes(gauges, dims []string) []string {
	sizes := make([]string, 0, len(gauges)*len(dims))
	for _, g := range gauges {
		for _, d := range dims {
			sizes = append(sizes, g+" "+d)
		}
	}
	return sizes
}

// orNone returns a single empty axis value for an axis the category does not use
func orNone(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return values
}

// entries expands the category into master entries
func (c seedCategory) entries() []schema.CatalogEntry {
	zero := decimal.NewNullDecimal(decimal.Zero)

	var out []schema.CatalogEntry
	for _, size := range c.sizes {
		for _, grade := range orNone(c.grades) {
			for _, finish := range orNone(c.finishes) {
				for _, variety := range orNone(c.varieties) {
					for _, typ := range orNone(c.types) {
						for _, brand := range c.brands {
							out = append(out, schema.CatalogEntry{
								Name:      seedName(c.prefix, grade, size, typ),
								Category:  c.category,
								MetalType: domain.DefaultMetalType,
								Brand:     brand,
								Grade:     grade,
								Finish:    finish,
								Size:      size,
								Variety:   variety,
								Type:      typ,
								Price:     zero,
								Quantity:  zero,
								Unit:      c.unit,
								IsMaster:  true,
								Status:    domain.CatalogStatusActive,
							})
						}
					}
				}
			}
		}
	}
	return out
}

// seedName builds "TMT 500 D 12 mm" or "Asbestos Sheet 8 ft Grey"
func seedName(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// MasterCatalog returns the full static master catalog
func MasterCatalog() []schema.CatalogEntry {
	var entries []schema.CatalogEntry
	for _, c := range masterCatalog {
		entries = append(entries, c.entries()...)
	}
	return entries
}
