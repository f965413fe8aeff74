package catalog

// Default returns the built-in disease database covering all classes the
// bundled model predicts. Text is authored in English, the base language.
func Default() *Catalog {
	keys := []string{
		"Corn___Common_Rust",
		"Corn___Gray_Leaf_Spot",
		"Corn___Healthy",
		"Corn___Northern_Leaf_Blight",
		"Jowar___Healthy",
		"Jowar___Rust",
		"Mango___Anthracnose",
		"Mango___Healthy",
		"Mango___Powdery_Mildew",
		"Potato___Early_Blight",
		"Potato___Healthy",
		"Potato___Late_Blight",
		"Rice___Brown_Spot",
		"Rice___Healthy",
		"Rice___Leaf_Blast",
		"Rice___Neck_Blast",
		"Sugarcane_Bacterial Blight",
		"Sugarcane_Healthy",
		"Sugarcane_Red Rot",
		"Wheat___Brown_Rust",
		"Wheat___Healthy",
		"Wheat___Yellow_Rust",
	}

	records := map[string]Record{
		"Corn___Common_Rust": {
			Cause:      "Caused by the fungus Puccinia sorghi, spread by windborne spores in cool, moist conditions.",
			Treatment:  "Apply fungicides (azoxystrobin, propiconazole) at first sign of pustules. Spray every 10-14 days.",
			Prevention: "Plant resistant hybrids. Scout fields regularly from early season.",
			Fertilizer: "Ensure adequate Potassium and balanced NPK to strengthen plant immunity.",
		},
		"Corn___Gray_Leaf_Spot": {
			Cause:      "Caused by Cercospora zeae-maydis fungus; thrives in warm, humid, and cloudy conditions.",
			Treatment:  "Apply foliar fungicides (strobilurin or triazole) when disease appears on lower leaves.",
			Prevention: "Crop rotation with non-host crops. Manage crop residue by tillage.",
			Fertilizer: "Optimize Potassium levels to help plant manage drought and disease stress.",
		},
		"Corn___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular monitoring.",
			Prevention: "Maintain consistent irrigation and pest scouting to keep crop healthy.",
			Fertilizer: "Apply Nitrogen in split applications for sustained growth.",
		},
		"Corn___Northern_Leaf_Blight": {
			Cause:      "Caused by Exserohilum turcicum fungus. Favored by moderate temperatures and leaf wetness.",
			Treatment:  "Apply fungicides if disease appears early on upper leaves. Foliar sprays help reduce spread.",
			Prevention: "Crop rotation and tillage to bury infected residue. Use resistant hybrids.",
			Fertilizer: "Balanced nutrition program improves overall plant health and resistance.",
		},
		"Jowar___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular monitoring.",
			Prevention: "Practice good field sanitation and proper spacing to maintain airflow.",
			Fertilizer: "Apply NPK based on soil test. Phosphorus promotes strong root development.",
		},
		"Jowar___Rust": {
			Cause:      "Caused by Puccinia purpurea fungus; spreads rapidly via wind in warm, humid weather.",
			Treatment:  "Apply contact or systemic fungicides (mancozeb, propiconazole) at early infection stage.",
			Prevention: "Use rust-resistant varieties. Remove infected plant debris after harvest.",
			Fertilizer: "Ensure adequate Potassium to boost natural disease resistance.",
		},
		"Mango___Anthracnose": {
			Cause:      "Caused by Colletotrichum gloeosporioides; infects during wet and humid conditions.",
			Treatment:  "Spray copper-based fungicides or carbendazim. Apply pre- and post-harvest treatment.",
			Prevention: "Prune for better airflow. Avoid overhead irrigation. Collect and destroy fallen fruits.",
			Fertilizer: "Balanced fertilization with adequate Calcium strengthens fruit cell walls.",
		},
		"Mango___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular orchard management.",
			Prevention: "Regular pruning for light penetration and airflow. Monitor for pests.",
			Fertilizer: "Apply balanced NPK fertilizer in spring before flowering.",
		},
		"Mango___Powdery_Mildew": {
			Cause:      "Caused by Oidium mangiferae; favors dry weather with cool nights and warm days.",
			Treatment:  "Apply sulfur dust or systemic fungicides (triadimefon, hexaconazole) on affected parts.",
			Prevention: "Avoid planting in areas with poor air circulation. Prune congested branches.",
			Fertilizer: "Avoid over-fertilizing with Nitrogen, which creates lush susceptible tissue.",
		},
		"Potato___Early_Blight": {
			Cause:      "Caused by Alternaria solani; older leaves infected first during warm, wet periods.",
			Treatment:  "Apply fungicides containing chlorothalonil or mancozeb. Rotate with legumes or grains.",
			Prevention: "Manage irrigation to keep foliage dry. Destroy volunteer potato plants.",
			Fertilizer: "Increase Potassium and Phosphorus if soil test indicates deficiency.",
		},
		"Potato___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular monitoring.",
			Prevention: "Practice 3-year crop rotation. Use certified seed potatoes.",
			Fertilizer: "Sufficient Nitrogen early in growth; moderate Potassium throughout season.",
		},
		"Potato___Late_Blight": {
			Cause:      "Caused by Phytophthora infestans (oomycete); spreads rapidly in cool, wet conditions. Highly destructive.",
			Treatment:  "URGENT: Use systemic fungicides (metalaxyl, cymoxanil). Destroy infected plants immediately.",
			Prevention: "Use certified seed tubers. Avoid cull piles. Apply preventive fungicide sprays.",
			Fertilizer: "Avoid over-fertilizing with Nitrogen late in the season.",
		},
		"Rice___Brown_Spot": {
			Cause:      "Caused by Helminthosporium oryzae; associated with poor soil nutrition and drought stress.",
			Treatment:  "Apply fungicides (tricyclazole, propiconazole). Ensure proper water management.",
			Prevention: "Use disease-free seeds. Treat seeds with fungicide before planting.",
			Fertilizer: "Apply balanced fertilizer. Potassium and Silicon nutrition reduce susceptibility.",
		},
		"Rice___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular field monitoring.",
			Prevention: "Maintain proper water levels and field sanitation throughout the season.",
			Fertilizer: "Split Nitrogen applications to support tillering and grain filling.",
		},
		"Rice___Leaf_Blast": {
			Cause:      "Caused by Magnaporthe oryzae; favored by high humidity, heavy dew, and warm nights.",
			Treatment:  "Apply tricyclazole or isoprothiolane fungicide immediately at first signs.",
			Prevention: "Use resistant varieties. Avoid excessive Nitrogen. Ensure proper plant spacing.",
			Fertilizer: "Reduce Nitrogen application - excess Nitrogen increases blast susceptibility.",
		},
		"Rice___Neck_Blast": {
			Cause:      "Caused by Magnaporthe oryzae attacking the neck node; occurs at panicle emergence stage.",
			Treatment:  "Apply tricyclazole at panicle initiation and heading stage for protection.",
			Prevention: "Time planting to avoid panicle emergence during high-risk periods. Use resistant varieties.",
			Fertilizer: "Balanced NPK; avoid late high-Nitrogen applications which increase severity.",
		},
		"Sugarcane_Bacterial Blight": {
			Cause:      "Caused by Xanthomonas albilineans; spreads through infected cuttings and contaminated tools.",
			Treatment:  "No chemical cure. Rogue out infected stools. Use disease-free planting material.",
			Prevention: "Use certified disease-free seed setts. Disinfect cutting tools with bleach solution.",
			Fertilizer: "Balanced NPK to maintain vigorous growth. Avoid stress conditions.",
		},
		"Sugarcane_Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular monitoring.",
			Prevention: "Practice proper field sanitation and use disease-free planting material.",
			Fertilizer: "Apply Nitrogen in split doses. Ensure adequate Phosphorus and Potassium.",
		},
		"Sugarcane_Red Rot": {
			Cause:      "Caused by Colletotrichum falcatum; enters through wounds; spreads in waterlogged soils.",
			Treatment:  "Remove and destroy affected stools. Treat setts with carbendazim solution before planting.",
			Prevention: "Use resistant varieties. Ensure good field drainage. Avoid waterlogging.",
			Fertilizer: "Maintain soil health with organic matter. Avoid excessive Nitrogen.",
		},
		"Wheat___Brown_Rust": {
			Cause:      "Caused by Puccinia triticina; wind-dispersed spores; favors mild temperatures and moisture.",
			Treatment:  "Apply triazole or strobilurin fungicide at flag leaf stage for best results.",
			Prevention: "Grow resistant varieties. Avoid late sowing to reduce disease risk window.",
			Fertilizer: "Balanced Nitrogen application; avoid over-application which increases susceptibility.",
		},
		"Wheat___Healthy": {
			Cause:      "No disease detected. Plant appears healthy.",
			Treatment:  "No treatment required. Continue regular field monitoring.",
			Prevention: "Use certified seeds, proper crop rotation, and balanced nutrition.",
			Fertilizer: "Apply Nitrogen in 2-3 splits. Ensure adequate Phosphorus at sowing.",
		},
		"Wheat___Yellow_Rust": {
			Cause:      "Caused by Puccinia striiformis; favors cool, moist conditions. Highly contagious via wind.",
			Treatment:  "Apply propiconazole or tebuconazole fungicide immediately at first sign of yellowing stripes.",
			Prevention: "Grow resistant varieties. Avoid late sowing. Monitor fields from tillering stage.",
			Fertilizer: "Ensure adequate Potassium. Avoid excess Nitrogen in the growing season.",
		},
	}

	return New(keys, records)
}
