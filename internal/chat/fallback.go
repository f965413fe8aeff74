package chat

import "strings"

const fallbackPrefix = "[Smart Assistant] "

// categories are checked in this fixed order; the first one containing a
// matching keyword wins.
var categories = []struct {
	name     string
	keywords []string
}{
	{"water", []string{"पानी", "पाणी", "water", "irrigation", "सिंचाई", "सिंचन", "dry", "wet"}},
	{"pest", []string{"कीड़े", "कीटक", "pest", "insect", "worm", "कीड", "अळी"}},
	{"disease", []string{"रोग", "आजार", "disease", "sick", "yellow", "spots", "पिवळे", "डाग"}},
	{"crop", []string{"crop", "plant", "sugarcane", "wheat", "rice", "पिक", "फसल"}},
	{"fertilizer", []string{"khad", "fertilizer", "urea", "npk", "खत", "उर्वरक"}},
}

// knowledge holds canned answers per category and language. English is the
// base entry every language falls back to.
var knowledge = map[string]map[string]string{
	"water": {
		"en": "During germination, keep soil moist but not waterlogged. Water every 2-3 days.",
		"hi": "अंकुरण के दौरान मिट्टी को नम रखें लेकिन जलभराव न होने दें। हर 2-3 दिन में पानी दें।",
		"mr": "उगवणीच्या काळात माती ओलसर ठेवा पण पाणी साचू देऊ नका. दर 2-3 दिवसांनी पाणी द्या.",
	},
	"pest": {
		"en": "Check underside of leaves for insects. Neem oil spray is a safe organic solution.",
		"hi": "पत्तियों के नीचे कीड़ों की जांच करें। नीम के तेल का छिड़काव एक सुरक्षित जैविक उपाय है।",
		"mr": "पानांच्या खालच्या बाजूला कीटक तपासा. कडुनिंब तेलाची फवारणी हा सुरक्षित सेंद्रिय उपाय आहे.",
	},
	"disease": {
		"en": "Yellowing often indicates nutrient deficiency or overwatering. Check roots for rot.",
		"hi": "पीलापन अक्सर पोषक तत्वों की कमी या अधिक पानी का संकेत है। जड़ों में सड़न की जांच करें।",
		"mr": "पिवळेपणा बहुधा पोषक तत्वांची कमतरता किंवा जास्त पाण्याचे लक्षण आहे. मुळे कुजली का ते तपासा.",
	},
	"crop": {
		"en": "Ensure your crop gets enough sunlight and protection from direct wind.",
		"hi": "सुनिश्चित करें कि आपकी फसल को पर्याप्त धूप मिले और सीधी हवा से सुरक्षा हो।",
		"mr": "तुमच्या पिकाला पुरेसा सूर्यप्रकाश आणि थेट वाऱ्यापासून संरक्षण मिळेल याची खात्री करा.",
	},
	"fertilizer": {
		"en": "Use soil-test based NPK. Over-fertilizing harms both the crop and the soil.",
		"hi": "मिट्टी परीक्षण के आधार पर NPK का उपयोग करें। अधिक उर्वरक फसल और मिट्टी दोनों को नुकसान पहुंचाता है।",
		"mr": "माती परीक्षणावर आधारित NPK वापरा. जास्त खत पीक आणि माती दोघांनाही हानी पोहोचवते.",
	},
	"general": {
		"en": "I'm here to help. Could you tell me if you noticed spots on leaves or soil color changes?",
		"hi": "मैं मदद के लिए यहां हूं। क्या आपने पत्तियों पर धब्बे या मिट्टी के रंग में बदलाव देखा है?",
		"mr": "मी मदतीसाठी येथे आहे. पानांवर डाग किंवा मातीच्या रंगात बदल दिसला का?",
	},
}

// fallbackReply keyword-matches the message against the fixed categories and
// returns the canned answer, preferring the requested language over English.
func fallbackReply(message, lang string) string {
	match := "general"
	lower := strings.ToLower(message)
	for _, cat := range categories {
		if containsAny(lower, cat.keywords) {
			match = cat.name
			break
		}
	}

	answers := knowledge[match]
	text, ok := answers[lang]
	if !ok {
		text = answers["en"]
	}
	return fallbackPrefix + text
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
