package lexicon

var (
	glyphEntries = []Entry{
		{From: "অ", To: "अ"},
		{From: "আ", To: "आ"},
		{From: "ই", To: "इ"},
		{From: "ঈ", To: "ई"},
		{From: "উ", To: "उ"},
		{From: "ঊ", To: "ऊ"},
		{From: "ঋ", To: "ऋ"},
		{From: "এ", To: "ए"},
		{From: "ঐ", To: "ऐ"},
		{From: "ও", To: "ओ"},
		{From: "ঔ", To: "औ"},
		{From: "ক", To: "क"},
		{From: "খ", To: "ख"},
		{From: "গ", To: "ग"},
		{From: "ঘ", To: "घ"},
		{From: "ঙ", To: "ङ"},
		{From: "চ", To: "च"},
		{From: "ছ", To: "छ"},
		{From: "জ", To: "ज"},
		{From: "ঝ", To: "झ"},
		{From: "ঞ", To: "ञ"},
		{From: "ট", To: "ट"},
		{From: "ঠ", To: "ठ"},
		{From: "ড", To: "ड"},
		{From: "ঢ", To: "ढ"},
		{From: "ণ", To: "ण"},
		{From: "ত", To: "त"},
		{From: "থ", To: "थ"},
		{From: "দ", To: "द"},
		{From: "ধ", To: "ध"},
		{From: "ন", To: "न"},
		{From: "প", To: "प"},
		{From: "ফ", To: "फ"},
		{From: "ব", To: "ब"},
		{From: "ভ", To: "भ"},
		{From: "ম", To: "म"},
		{From: "য", To: "य"},
		{From: "র", To: "र"},
		{From: "ল", To: "ल"},
		{From: "শ", To: "श"},
		{From: "ষ", To: "ष"},
		{From: "স", To: "स"},
		{From: "হ", To: "ह"},
		{From: "ড়", To: "ड़"},
		{From: "ঢ়", To: "ढ़"},
		{From: "য়", To: "य"},
		{From: "ৎ", To: "त्"},
		{From: "ং", To: "ं"},
		{From: "ঃ", To: "ः"},
		{From: "ঁ", To: "ँ"},
		{From: "া", To: "ा"},
		{From: "ি", To: "ि"},
		{From: "ী", To: "ी"},
		{From: "ু", To: "ु"},
		{From: "ূ", To: "ू"},
		{From: "ৃ", To: "ृ"},
		{From: "ে", To: "े"},
		{From: "ৈ", To: "ै"},
		{From: "ো", To: "ो"},
		{From: "ৌ", To: "ौ"},
		{From: "্", To: "्"},
		{From: "০", To: "०"},
		{From: "১", To: "१"},
		{From: "২", To: "२"},
		{From: "৩", To: "३"},
		{From: "৪", To: "४"},
		{From: "৫", To: "५"},
		{From: "৬", To: "६"},
		{From: "৭", To: "७"},
		{From: "৮", To: "८"},
		{From: "৯", To: "९"},
	}

	conjunctEntries = []Entry{
		{From: "ক্ষ", To: "क्ष"},
		{From: "জ্ঞ", To: "ज्ञ"},
		{From: "শ্র", To: "श्र"},
		{From: "ক্ক", To: "क्क"},
		{From: "ত্ত", To: "त्त"},
		{From: "দ্দ", To: "द्द"},
		{From: "দ্ধ", To: "द्ध"},
		{From: "ন্ন", To: "न्न"},
		{From: "ল্ল", To: "ल्ल"},
		{From: "ম্ম", To: "म्म"},
		{From: "চ্চ", To: "च्च"},
		{From: "জ্জ", To: "ज्ज"},
		{From: "ট্ট", To: "ट्ट"},
		{From: "ড্ড", To: "ड्ड"},
		{From: "ণ্ণ", To: "ण्ण"},
		{From: "ত্থ", To: "त्थ"},
		{From: "প্প", To: "प्प"},
		{From: "ব্ব", To: "ब्ब"},
		{From: "ষ্ষ", To: "ष्ष"},
		{From: "স্স", To: "स्स"},
	}

	wordEntries = []Entry{
		{From: "আমি", To: "मैं"},
		{From: "তুমি", To: "तुम"},
		{From: "সে", To: "वह"},
		{From: "আমরা", To: "हम"},
		{From: "তোমরা", To: "तुम लोग"},
		{From: "তারা", To: "वे"},
		{From: "এই", To: "यह"},
		{From: "ওই", To: "वह"},
		{From: "কি", To: "क्या"},
		{From: "কেন", To: "क्यों"},
		{From: "কখন", To: "कब"},
		{From: "কোথায়", To: "कहाँ"},
		{From: "কিভাবে", To: "कैसे"},
		{From: "ধন্যবাদ", To: "धन्यवाद"},
		{From: "নমস্কার", To: "नमस्कार"},
		{From: "শুভ সকাল", To: "शुभ प्रभात"},
		{From: "শুভ রাত্রি", To: "शुभ रात्रि"},
		{From: "ভালোবাসা", To: "प्यार"},
		{From: "বাংলাদেশ", To: "बांग्लादेश"},
		{From: "কলকাতা", To: "कोलकाता"},
		{From: "ঢাকা", To: "ढाका"},
	}

	idiomEntries = []Entry{
		{From: "নাকে কাঁদা", To: "नाक में दम करना"},
		{From: "মাথা খারাপ", To: "सिर खराब होना"},
		{From: "চোখে ধুলো দেওয়া", To: "आँखों में धूल झोंकना"},
		{From: "কানে তুলো দেওয়া", To: "कान में रूई डालना"},
		{From: "পেটে পেটে", To: "पेट में पेट"},
	}

	postpositionEntries = []Entry{
		{From: "এর", To: "का/की/के"},
		{From: "কে", To: "को"},
		{From: "তে", To: "में"},
		{From: "থেকে", To: "से"},
		{From: "জন্য", To: "के लिए"},
		{From: "দ্বারা", To: "द्वारा"},
		{From: "সাথে", To: "के साथ"},
		{From: "পর্যন্ত", To: "तक"},
	}

	verbEntries = []Entry{
		{From: "করছি", To: "कर रहा हूँ"},
		{From: "করছ", To: "कर रहे हो"},
		{From: "করছে", To: "कर रहा है"},
		{From: "করেছি", To: "किया है"},
		{From: "করেছ", To: "किया है"},
		{From: "করেছে", To: "किया है"},
		{From: "করব", To: "करूँगा"},
		{From: "করবে", To: "करेगा"},
	}

	correlativeEntries = []Correlative{
		{Open: "যদি", Close: "তাহলে", HindiOpen: "अगर", HindiClose: "तो"},
		{Open: "যতক্ষণ না", Close: "ততক্ষণ", HindiOpen: "जब तक", HindiClose: "तब तक"},
		{Open: "যেহেতু", Close: "সেহেতু", HindiOpen: "चूंकि", HindiClose: "इसलिए"},
		{Open: "যত", Close: "তত", HindiOpen: "जितना", HindiClose: "उतना"},
	}

	triggerTokens = []string{
		"যদি",
		"যতক্ষণ",
		"যেহেতু",
		"যত",
		"নাকে কাঁদা",
		"মাথা খারাপ",
		"চোখে ধুলো",
		"কানে তুলো",
		"পেটে পেটে",
	}
)
