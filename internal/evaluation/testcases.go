package evaluation

// TestCase is one entry of the fixed accuracy battery: an English source
// text, a human reference translation, and optional terms that must survive
// translation verbatim. The battery is immutable fixture data.
type TestCase struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	English       string   `json:"english"`
	Reference     string   `json:"reference"`
	Difficulty    string   `json:"difficulty"`
	Context       string   `json:"context"`
	ExpectedTerms []string `json:"expected_terms,omitempty"`
}

// Battery returns the fixed test-case battery. Callers receive a fresh
// slice; the case data itself is never mutated.
func Battery() []TestCase {
	cases := make([]TestCase, len(battery))
	copy(cases, battery)
	return cases
}

var battery = []TestCase{
	{
		ID:            "TECH_001",
		Category:      "technical",
		English:       "The application requires a minimum of 8GB RAM and 50GB of free disk space. Please ensure your system meets these requirements before installation.",
		Reference:     "Ang aplikasyon ay nangangailangan ng minimum na 8GB RAM at 50GB ng libreng disk space. Mangyaring tiyakin na ang iyong sistema ay nakakatugon sa mga kinakailangang ito bago ang pag-install.",
		Difficulty:    "medium",
		Context:       "software_installation",
		ExpectedTerms: []string{"8GB RAM", "50GB", "installation"},
	},
	{
		ID:         "LIT_001",
		Category:   "literary",
		English:    "The sun set behind the mountains, painting the sky with brilliant hues of orange and purple. The gentle breeze carried the scent of blooming flowers through the valley.",
		Reference:  "Ang araw ay lumubog sa likod ng mga bundok, nagpipinta sa kalangitan ng makislap na kulay ng kahel at lila. Ang banayad na hangin ay nagdala ng amoy ng namumulaklak na mga bulaklak sa lambak.",
		Difficulty: "easy",
		Context:    "descriptive_narrative",
	},
	{
		ID:         "NEWS_001",
		Category:   "news",
		English:    "The government announced new economic policies today that aim to boost local businesses and create more job opportunities. The measures include tax incentives and streamlined regulations.",
		Reference:  "Inanunsyo ng pamahalaan ang mga bagong patakaran sa ekonomiya ngayon na naglalayong pasiglahin ang mga lokal na negosyo at lumikha ng mas maraming oportunidad sa trabaho. Ang mga hakbang ay kinabibilangan ng mga insentibo sa buwis at pinasimpleng mga regulasyon.",
		Difficulty: "medium",
		Context:    "government_announcement",
	},
	{
		ID:         "CONV_001",
		Category:   "conversational",
		English:    "Hey, do you want to grab lunch together? I heard there's a new restaurant downtown that serves amazing Filipino food. We could try it out!",
		Reference:  "Hoy, gusto mo bang kumain tayo ng tanghalian? Narinig ko na may bagong restaurant sa downtown na naghahain ng masarap na pagkain ng Pilipino. Pwede nating subukan!",
		Difficulty: "easy",
		Context:    "casual_invitation",
	},
	{
		ID:            "MED_001",
		Category:      "medical",
		English:       "Patients should take the medication twice daily with meals. Common side effects include mild nausea and dizziness. Contact your doctor if symptoms persist for more than 48 hours.",
		Reference:     "Ang mga pasyente ay dapat uminom ng gamot dalawang beses sa isang araw kasama ang pagkain. Ang karaniwang mga side effect ay kinabibilangan ng banayad na pagkahilo at pagkahilo. Makipag-ugnayan sa iyong doktor kung ang mga sintomas ay nagpapatuloy ng higit sa 48 oras.",
		Difficulty:    "hard",
		Context:       "medical_instructions",
		ExpectedTerms: []string{"medication", "side effects", "48 hours"},
	},
	{
		ID:         "LEGAL_001",
		Category:   "legal",
		English:    "This agreement constitutes a legally binding contract between the parties. All disputes shall be resolved through arbitration in accordance with the laws of the Philippines.",
		Reference:  "Ang kasunduang ito ay bumubuo ng isang legal na nakatali na kontrata sa pagitan ng mga partido. Ang lahat ng mga hindi pagkakasundo ay dapat malutas sa pamamagitan ng arbitrasyon alinsunod sa mga batas ng Pilipinas.",
		Difficulty: "hard",
		Context:    "legal_contract",
	},
	{
		ID:         "ACAD_001",
		Category:   "academic",
		English:    "The research findings indicate a significant correlation between environmental factors and public health outcomes. Further studies are needed to establish causality.",
		Reference:  "Ang mga natuklasan sa pananaliksik ay nagpapahiwatig ng isang makabuluhang ugnayan sa pagitan ng mga salik sa kapaligiran at mga resulta ng kalusugan ng publiko. Ang karagdagang mga pag-aaral ay kinakailangan upang maitatag ang sanhi at bunga.",
		Difficulty: "hard",
		Context:    "research_findings",
	},
	{
		ID:         "CULT_001",
		Category:   "cultural",
		English:    "The festival celebrates the rich cultural heritage of the Philippines, featuring traditional dances, music, and cuisine from different regions of the country.",
		Reference:  "Ang pista ay nagdiriwang ng mayamang pamana ng kultura ng Pilipinas, na nagtatampok ng mga tradisyonal na sayaw, musika, at lutuin mula sa iba't ibang rehiyon ng bansa.",
		Difficulty: "medium",
		Context:    "cultural_festival",
	},
	{
		ID:            "BUS_001",
		Category:      "business",
		English:       "We are pleased to announce that our quarterly revenue has increased by 15% compared to the previous period. This growth reflects our commitment to innovation and customer satisfaction.",
		Reference:     "Natutuwa kaming i-anunsyo na ang aming quarterly na kita ay tumaas ng 15% kumpara sa nakaraang panahon. Ang paglago na ito ay sumasalamin sa aming pangako sa pagbabago at kasiyahan ng customer.",
		Difficulty:    "medium",
		Context:       "business_announcement",
		ExpectedTerms: []string{"quarterly revenue", "15%", "customer satisfaction"},
	},
	{
		ID:         "GRAM_001",
		Category:   "grammar",
		English:    "If you had known about the meeting earlier, you would have been able to prepare the presentation that the client requested, which might have led to a successful outcome.",
		Reference:  "Kung alam mo sana ang tungkol sa pulong nang mas maaga, sana ay nakapaghanda ka ng presentasyon na hiniling ng client, na maaaring humantong sa isang matagumpay na resulta.",
		Difficulty: "hard",
		Context:    "conditional_statement",
	},
}
