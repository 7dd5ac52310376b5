package config

import "strings"

// Language describes one supported dictation and interface language.
type Language struct {
	Code    string // BCP 47 tag, e.g. "pl-PL"
	Native  string // name in the language itself
	English string // name in English
	Voice   string // default neural voice for synthesis
}

// Supported lists every language the app can dictate and speak in,
// in menu order.
func Supported() []Language {
	return languages
}

var languages = []Language{
	{"pl-PL", "Polski", "Polish", "pl-PL-ZofiaNeural"},
	{"en-US", "English (US)", "English (US)", "en-US-JennyNeural"},
	{"en-GB", "English (UK)", "English (UK)", "en-GB-SoniaNeural"},
	{"de-DE", "Deutsch", "German", "de-DE-KatjaNeural"},
	{"fr-FR", "Français", "French", "fr-FR-DeniseNeural"},
	{"es-ES", "Español", "Spanish", "es-ES-ElviraNeural"},
	{"it-IT", "Italiano", "Italian", "it-IT-ElsaNeural"},
	{"pt-BR", "Português (BR)", "Portuguese (BR)", "pt-BR-FranciscaNeural"},
	{"pt-PT", "Português (PT)", "Portuguese (PT)", "pt-PT-RaquelNeural"},
	{"ru-RU", "Русский", "Russian", "ru-RU-SvetlanaNeural"},
	{"uk-UA", "Українська", "Ukrainian", "uk-UA-PolinaNeural"},
	{"cs-CZ", "Čeština", "Czech", "cs-CZ-VlastaNeural"},
	{"sk-SK", "Slovenčina", "Slovak", "sk-SK-ViktoriaNeural"},
	{"nl-NL", "Nederlands", "Dutch", "nl-NL-ColetteNeural"},
	{"sv-SE", "Svenska", "Swedish", "sv-SE-SofieNeural"},
	{"no-NO", "Norsk", "Norwegian", "nb-NO-PernilleNeural"},
	{"da-DK", "Dansk", "Danish", "da-DK-ChristelNeural"},
	{"fi-FI", "Suomi", "Finnish", "fi-FI-NooraNeural"},
	{"ja-JP", "日本語", "Japanese", "ja-JP-NanamiNeural"},
	{"ko-KR", "한국어", "Korean", "ko-KR-SunHiNeural"},
	{"zh-CN", "中文 (简体)", "Chinese (Simplified)", "zh-CN-XiaoxiaoNeural"},
	{"zh-TW", "中文 (繁體)", "Chinese (Traditional)", "zh-TW-HsiaoChenNeural"},
	{"ar-SA", "العربية", "Arabic", "ar-SA-ZariyahNeural"},
	{"hi-IN", "हिन्दी", "Hindi", "hi-IN-SwaraNeural"},
	{"tr-TR", "Türkçe", "Turkish", "tr-TR-EmelNeural"},
	{"el-GR", "Ελληνικά", "Greek", "el-GR-AthinaNeural"},
	{"he-IL", "עברית", "Hebrew", "he-IL-HilaNeural"},
	{"th-TH", "ไทย", "Thai", "th-TH-PremwadeeNeural"},
	{"vi-VN", "Tiếng Việt", "Vietnamese", "vi-VN-HoaiMyNeural"},
	{"id-ID", "Bahasa Indonesia", "Indonesian", "id-ID-GadisNeural"},
	{"ms-MY", "Bahasa Melayu", "Malay", "ms-MY-YasminNeural"},
	{"ro-RO", "Română", "Romanian", "ro-RO-AlinaNeural"},
	{"hu-HU", "Magyar", "Hungarian", "hu-HU-NoemiNeural"},
	{"bg-BG", "Български", "Bulgarian", "bg-BG-KalinaNeural"},
	{"hr-HR", "Hrvatski", "Croatian", "hr-HR-GabrijelaNeural"},
	{"sl-SI", "Slovenščina", "Slovenian", "sl-SI-PetraNeural"},
	{"et-EE", "Eesti", "Estonian", "et-EE-AnuNeural"},
	{"lv-LV", "Latviešu", "Latvian", "lv-LV-EveritaNeural"},
	{"lt-LT", "Lietuvių", "Lithuanian", "lt-LT-OnaNeural"},
	{"ca-ES", "Català", "Catalan", "ca-ES-JoanaNeural"},
	{"ga-IE", "Gaeilge", "Irish", "ga-IE-OrlaNeural"},
	{"cy-GB", "Cymraeg", "Welsh", "cy-GB-NiaNeural"},
	{"mt-MT", "Malti", "Maltese", "mt-MT-GraceNeural"},
	{"af-ZA", "Afrikaans", "Afrikaans", "af-ZA-AdriNeural"},
	{"sw-KE", "Kiswahili", "Swahili", "sw-KE-ZuriNeural"},
	{"am-ET", "አማርኛ", "Amharic", "am-ET-MekdesNeural"},
	{"bn-IN", "বাংলা", "Bengali", "bn-IN-TanishaaNeural"},
	{"gu-IN", "ગુજરાતી", "Gujarati", "gu-IN-DhwaniNeural"},
	{"kn-IN", "ಕನ್ನಡ", "Kannada", "kn-IN-SapnaNeural"},
	{"ml-IN", "മലയാളം", "Malayalam", "ml-IN-SobhanaNeural"},
	{"mr-IN", "मराठी", "Marathi", "mr-IN-AarohiNeural"},
	{"ta-IN", "தமிழ்", "Tamil", "ta-IN-PallaviNeural"},
	{"te-IN", "తెలుగు", "Telugu", "te-IN-ShrutiNeural"},
	{"ur-PK", "اردو", "Urdu", "ur-PK-UzmaNeural"},
	{"fa-IR", "فارسی", "Persian", "fa-IR-DilaraNeural"},
	{"fil-PH", "Filipino", "Filipino", "fil-PH-BlessicaNeural"},
	{"km-KH", "ភាសាខ្មែរ", "Khmer", "km-KH-SresymoNeural"},
	{"lo-LA", "ລາວ", "Lao", "lo-LA-KeomanyNeural"},
	{"my-MM", "မြန်မာ", "Myanmar", "my-MM-NilarNeural"},
	{"ne-NP", "नेपाली", "Nepali", "ne-NP-HemkalaNeural"},
	{"si-LK", "සිංහල", "Sinhala", "si-LK-ThiliniNeural"},
	{"zu-ZA", "IsiZulu", "Zulu", "zu-ZA-ThandoNeural"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.Code] = l
	}
	return m
}()

// Get returns the language entry for a BCP 47 code.
func Get(code string) (Language, bool) {
	l, ok := byCode[code]
	return l, ok
}

// IsSupported reports whether the code is in the language table.
func IsSupported(code string) bool {
	_, ok := byCode[code]
	return ok
}

// VoiceFor returns the default voice for a language, falling back to
// the en-US voice for unknown codes.
func VoiceFor(code string) string {
	if l, ok := byCode[code]; ok {
		return l.Voice
	}
	return byCode["en-US"].Voice
}

// STTCode converts a BCP 47 tag into the short language hint the
// transcription API expects ("pl-PL" becomes "pl", "fil-PH" "fil").
func STTCode(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return strings.ToLower(code[:i])
	}
	return strings.ToLower(code)
}
