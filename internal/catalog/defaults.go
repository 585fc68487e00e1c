package catalog

var competitorBrands = map[string]map[string][]string{
	"Electronics": {
		"Cameras":     {"Canon", "Nikon", "Sony", "Fujifilm", "Panasonic", "Olympus", "Leica", "GoPro", "DJI"},
		"Smartphones": {"Apple", "Samsung", "Google", "OnePlus", "Xiaomi", "Motorola", "Nokia", "LG", "Huawei"},
		"Laptops":     {"Apple", "Dell", "HP", "Lenovo", "Asus", "Acer", "Microsoft", "Razer", "MSI"},
		"Headphones":  {"Sony", "Bose", "Apple", "Sennheiser", "Audio-Technica", "JBL", "Beats", "Skullcandy"},
		"Tablets":     {"Apple", "Samsung", "Microsoft", "Amazon", "Lenovo", "Huawei"},
	},
	"Home & Kitchen": {
		"Appliances": {"Instant Pot", "Ninja", "KitchenAid", "Cuisinart", "Breville", "Hamilton Beach", "Black+Decker"},
		"Cookware":   {"All-Clad", "T-fal", "Calphalon", "Lodge", "Le Creuset", "Cuisinart", "GreenPan"},
		"Decor":      {"IKEA", "West Elm", "CB2", "Pottery Barn", "Crate & Barrel", "Wayfair"},
		"Storage":    {"Rubbermaid", "Sterilite", "OXO", "The Container Store", "mDesign", "SimpleHouseware"},
		"Furniture":  {"IKEA", "Herman Miller", "Steelcase", "West Elm", "Ashley", "Wayfair", "CB2"},
	},
	"Fashion": {
		"Watches":     {"Apple", "Garmin", "Fitbit", "Samsung", "Fossil", "Casio", "Timex", "Citizen", "Seiko"},
		"Clothing":    {"Nike", "Adidas", "Lululemon", "Under Armour", "Patagonia", "North Face", "Columbia"},
		"Shoes":       {"Nike", "Adidas", "New Balance", "ASICS", "Puma", "Reebok", "Vans", "Converse", "Allbirds"},
		"Bags":        {"Tumi", "Samsonite", "Herschel", "JanSport", "North Face", "Patagonia", "Coach", "Kate Spade"},
		"Accessories": {"Ray-Ban", "Oakley", "Fossil", "Michael Kors", "Coach", "Kate Spade", "Pandora"},
	},
	"Sports": {
		"Outdoor":       {"North Face", "Patagonia", "Columbia", "Arc'teryx", "Marmot", "Outdoor Research", "REI Co-op"},
		"Team Sports":   {"Nike", "Adidas", "Under Armour", "Wilson", "Spalding", "Rawlings", "Mizuno"},
		"Winter Sports": {"Burton", "Salomon", "K2", "Rossignol", "Volkl", "Atomic", "Head"},
		"Fitness":       {"Bowflex", "Peloton", "NordicTrack", "Life Fitness", "Rogue", "CAP Barbell", "Yes4All"},
		"Water Sports":  {"Speedo", "TYR", "Arena", "O'Neill", "Rip Curl", "Billabong", "Quiksilver"},
	},
	"Beauty": {
		"Haircare":  {"Dyson", "Olaplex", "Moroccanoil", "Redken", "L'Oreal", "Pantene", "Head & Shoulders"},
		"Skincare":  {"La Mer", "Olay", "CeraVe", "Cetaphil", "Neutrogena", "Clinique", "Estee Lauder"},
		"Makeup":    {"Charlotte Tilbury", "Fenty Beauty", "MAC", "Urban Decay", "NARS", "Too Faced", "Maybelline"},
		"Fragrance": {"Chanel", "Dior", "Tom Ford", "Jo Malone", "Marc Jacobs", "Viktor & Rolf", "YSL"},
		"Tools":     {"Dyson", "ghd", "CHI", "Hot Tools", "Conair", "Revlon", "BaByliss"},
	},
}

// Retailers that compete with every category.
var genericCompetitors = []string{"Amazon", "Walmart", "Target", "Costco", "Sephora", "Ulta", "Best Buy"}

var homeAspects = map[string][]string{
	"durability":    {"durability", "durable", "sturdy", "last", "broke", "flimsy"},
	"design":        {"design", "look", "style", "color", "finish"},
	"functionality": {"functionality", "function", "works", "feature", "performance"},
	"assembly":      {"assembly", "assemble", "install", "setup", "instructions"},
	"size":          {"size", "small", "large", "fits", "dimension", "space"},
}

var aspectVocabularies = map[string]map[string][]string{
	"Electronics": {
		"battery":       {"battery", "charge", "charging", "power"},
		"screen":        {"screen", "display", "resolution", "brightness"},
		"performance":   {"performance", "speed", "fast", "slow", "lag"},
		"camera":        {"camera", "photo", "picture", "lens"},
		"build quality": {"build quality", "build", "sturdy", "durable", "plastic"},
	},
	"Fashion": {
		"fit":      {"fit", "fits", "size", "tight", "loose"},
		"material": {"material", "fabric", "cotton", "leather", "stitching"},
		"style":    {"style", "stylish", "look", "design", "fashion"},
		"comfort":  {"comfort", "comfortable", "soft", "itchy"},
		"color":    {"color", "colour", "shade", "faded"},
	},
	"Beauty": {
		"effectiveness": {"effective", "effectiveness", "works", "results", "difference"},
		"texture":       {"texture", "greasy", "creamy", "smooth", "sticky"},
		"scent":         {"scent", "smell", "fragrance", "odor"},
		"packaging":     {"packaging", "bottle", "pump", "jar", "tube"},
		"ingredients":   {"ingredient", "ingredients", "formula", "natural"},
	},
	"Home":           homeAspects,
	"Home & Kitchen": homeAspects,
}

var defaultAspects = map[string][]string{
	"quality":   {"quality", "build", "material", "durable"},
	"price":     {"price", "cost", "expensive", "cheap", "value"},
	"delivery":  {"delivery", "shipping", "arrived", "shipped"},
	"service":   {"service", "support", "customer service", "refund"},
	"packaging": {"packaging", "package", "box", "wrapped"},
}

var comparisonKeywords = []ComparisonKeyword{
	{Keyword: "compared to", Polarity: PolarityNeutral},
	{Keyword: "versus", Polarity: PolarityNeutral},
	{Keyword: "vs", Polarity: PolarityNeutral},
	{Keyword: "better than", Polarity: PolarityCompetitorBetter},
	{Keyword: "worse than", Polarity: PolarityCompetitorWorse},
	{Keyword: "switched from", Polarity: PolarityCompetitorWorse},
	{Keyword: "unlike", Polarity: PolarityCompetitorWorse},
	{Keyword: "alternative to", Polarity: PolarityNeutral},
	{Keyword: "instead of", Polarity: PolarityNeutral},
	{Keyword: "prefer", Polarity: PolarityCompetitorBetter},
	{Keyword: "chose over", Polarity: PolarityCompetitorBetter},
	{Keyword: "replaced", Polarity: PolarityCompetitorBetter},
}
