package translate

import "github.com/agritech/cropscan-api/internal/catalog"

// localTranslations holds reviewed per-disease, per-language text. This tier
// is fully offline and trusted, so it always wins over the remote model.
// Coverage is partial; languages or diseases missing here fall through to the
// remote tier and finally to English.
var localTranslations = map[string]map[string]catalog.Record{
	"Corn___Common_Rust": {
		"hi": {
			Cause:      "पुक्किनिया प्रजातियों के कारण होने वाला कवक संक्रमण, उच्च आर्द्रता और मध्यम तापमान में पनपता है।",
			Treatment:  "संक्रमित पत्तियों को तुरंत हटाएं और नष्ट करें। एज़ोक्सीस्ट्रोबिन या प्रोपिकोनाज़ोल युक्त कवकनाशी लगाएं। यदि संक्रमण बना रहता है तो हर 10-14 दिनों में दोबारा लगाएं।",
			Prevention: "पौधों के बीच हवा के संचलन में सुधार करें। नम परिस्थितियों में ऊपरी सिंचाई से बचें। शीघ्र पता लगाने के लिए नियमित रूप से फसलों की निगरानी करें।",
			Fertilizer: "पौधे की प्रतिरक्षा को मजबूत करने के लिए संतुलित NPK (10-10-10) लगाएं। रोग प्रतिरोधक क्षमता बढ़ाने के लिए पोटेशियम युक्त उर्वरक डालें।",
		},
		"mr": {
			Cause:      "पुक्किनिया प्रजातींमुळे होणारा बुरशीजन्य संसर्ग, उच्च आर्द्रता आणि मध्यम तापमानात वाढतो।",
			Treatment:  "संक्रमित पाने ताबडतोब काढून टाका आणि नष्ट करा. अॅझॉक्सीस्ट्रोबिन किंवा प्रोपिकोनाझोल असलेले बुरशीनाशक लावा. संसर्ग कायम राहिल्यास दर 10-14 दिवसांनी पुन्हा लावा.",
			Prevention: "रोपांमधील हवा परिसंचरण सुधारा. आर्द्र परिस्थितीत वरून पाणी देणे टाळा. लवकर शोधासाठी नियमितपणे पिकांचे निरीक्षण करा.",
			Fertilizer: "वनस्पती प्रतिकारशक्ती मजबूत करण्यासाठी संतुलित NPK (10-10-10) लावा. रोग प्रतिकारशक्ती सुधारण्यासाठी पोटॅशियम समृद्ध खत घाला.",
		},
	},
	"Rice___Leaf_Blast": {
		"hi": {
			Cause:      "मैग्नापोर्थे ओराइज़े कवक के कारण होता है, उच्च नाइट्रोजन स्तर के साथ गीली परिस्थितियों में तेजी से फैलता है।",
			Treatment:  "तुरंत ट्राइसाइक्लाज़ोल या कार्बेन्डाज़िम कवकनाशी लगाएं। प्रसार को रोकने के लिए गंभीर रूप से संक्रमित पौधों को हटा दें।",
			Prevention: "प्रमाणित रोग-मुक्त बीजों का उपयोग करें। अत्यधिक नाइट्रोजन उर्वरक से बचें।",
			Fertilizer: "पौधों को मजबूत करने के लिए पोटेशियम उर्वरक बढ़ाएं। खेतों में उचित जल निकासी सुनिश्चित करें।",
		},
		"mr": {
			Cause:      "मॅग्नापोर्थे ओरायझे बुरशीमुळे होतो, उच्च नायट्रोजन पातळीसह ओल्या परिस्थितीत वेगाने पसरतो.",
			Treatment:  "ताबडतोब ट्रायसायक्लाझोल किंवा कार्बेंडाझिम बुरशीनाशक लावा. प्रसार रोखण्यासाठी गंभीरपणे संक्रमित रोपे काढून टाका.",
			Prevention: "प्रमाणित रोगमुक्त बियाणे वापरा. जास्त नायट्रोजन खत टाळा.",
			Fertilizer: "रोपे मजबूत करण्यासाठी पोटॅशियम खत वाढवा. शेतात योग्य निचरा सुनिश्चित करा.",
		},
	},
	"Wheat___Yellow_Rust": {
		"hi": {
			Cause:      "पुक्किनिया स्ट्राइफॉर्मिस के कारण; ठंडी, नम परिस्थितियों में पनपता है। हवा से अत्यधिक संक्रामक।",
			Treatment:  "पीली धारियों के पहले संकेत पर तुरंत प्रोपिकोनाज़ोल या टेबुकोनाज़ोल कवकनाशी लगाएं।",
			Prevention: "प्रतिरोधी किस्में उगाएं। देर से बुवाई से बचें। कल्ले निकलने की अवस्था से खेतों की निगरानी करें।",
			Fertilizer: "पर्याप्त पोटेशियम सुनिश्चित करें। बढ़ते मौसम में अतिरिक्त नाइट्रोजन से बचें।",
		},
	},
}
