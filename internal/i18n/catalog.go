package i18n

// catalog maps locale tags to their translated interface strings.
// Polish and English are complete; other locales translate the core
// controls and fall back to English for the rest.
var catalog = map[string]map[string]string{
	"pl-PL": {
		"app_title":       "Claude Voice Assistant",
		"dictate":         "Dyktuj",
		"read":            "Czytaj",
		"pause":           "Pauza",
		"resume":          "Wznów",
		"stop":            "Stop",
		"send":            "Wyślij",
		"auto_read":       "Auto-czytaj odpowiedzi",
		"quick_actions":   "Szybkie akcje",
		"add_action":      "Dodaj własną...",
		"settings":        "Ustawienia",
		"language":        "Język",
		"voice":           "Głos",
		"speed":           "Szybkość",
		"recording":       "Nagrywanie...",
		"processing":      "Przetwarzanie...",
		"reading":         "Czytam...",
		"paused":          "Wstrzymano",
		"trial_days_left": "Pozostało dni próbnych",
		"buy_license":     "Kup licencję",
		"enter_license":   "Wprowadź klucz licencji",
		"license_valid":   "Licencja aktywna",
		"license_expired": "Licencja wygasła",
		"placeholder":     "Wpisz polecenie lub użyj dyktowania...",
		"recognized":      "Rozpoznano: %s",
		"sent":            "Wysłano...",
		"new_session":     "Nowa sesja",
		"no_text_to_read": "Brak tekstu do odczytania",
		"offline":         "Tryb offline",
		"stt_error":       "Błąd rozpoznawania: %s",
		"stt_disabled":    "Dyktowanie wyłączone: ustaw GROQ_API_KEY",
		"tts_disabled":    "Czytanie wyłączone: ustaw AZURE_SPEECH_KEY i AZURE_SPEECH_REGION",
		"assistant_error": "Błąd asystenta: %s",
		"assistant_busy":  "Asystent jeszcze odpowiada...",
		"quit":            "Wyjście",
	},
	"en-US": {
		"app_title":       "Claude Voice Assistant",
		"dictate":         "Dictate",
		"read":            "Read",
		"pause":           "Pause",
		"resume":          "Resume",
		"stop":            "Stop",
		"send":            "Send",
		"auto_read":       "Auto-read responses",
		"quick_actions":   "Quick Actions",
		"add_action":      "Add custom...",
		"settings":        "Settings",
		"language":        "Language",
		"voice":           "Voice",
		"speed":           "Speed",
		"recording":       "Recording...",
		"processing":      "Processing...",
		"reading":         "Reading...",
		"paused":          "Paused",
		"trial_days_left": "Trial days left",
		"buy_license":     "Buy license",
		"enter_license":   "Enter license key",
		"license_valid":   "License active",
		"license_expired": "License expired",
		"placeholder":     "Type a command or use dictation...",
		"recognized":      "Recognized: %s",
		"sent":            "Sent...",
		"new_session":     "New session",
		"no_text_to_read": "Nothing to read",
		"offline":         "Offline mode",
		"stt_error":       "Speech recognition error: %s",
		"stt_disabled":    "Dictation disabled: set GROQ_API_KEY",
		"tts_disabled":    "Read-aloud disabled: set AZURE_SPEECH_KEY and AZURE_SPEECH_REGION",
		"assistant_error": "Assistant error: %s",
		"assistant_busy":  "The assistant is still replying...",
		"quit":            "Quit",
	},
	"en-GB": {
		"app_title":     "Claude Voice Assistant",
		"dictate":       "Dictate",
		"read":          "Read",
		"pause":         "Pause",
		"resume":        "Resume",
		"stop":          "Stop",
		"send":          "Send",
		"auto_read":     "Auto-read responses",
		"quick_actions": "Quick Actions",
	},
	"de-DE": {
		"app_title":     "Claude Sprachassistent",
		"dictate":       "Diktieren",
		"read":          "Vorlesen",
		"pause":         "Pause",
		"resume":        "Fortsetzen",
		"stop":          "Stopp",
		"send":          "Senden",
		"auto_read":     "Antworten automatisch vorlesen",
		"quick_actions": "Schnellaktionen",
	},
	"fr-FR": {
		"app_title":     "Assistant Vocal Claude",
		"dictate":       "Dicter",
		"read":          "Lire",
		"pause":         "Pause",
		"resume":        "Reprendre",
		"stop":          "Arrêter",
		"send":          "Envoyer",
		"auto_read":     "Lecture auto des réponses",
		"quick_actions": "Actions rapides",
	},
	"es-ES": {
		"app_title":     "Asistente de Voz Claude",
		"dictate":       "Dictar",
		"read":          "Leer",
		"pause":         "Pausa",
		"resume":        "Reanudar",
		"stop":          "Detener",
		"send":          "Enviar",
		"auto_read":     "Leer respuestas automáticamente",
		"quick_actions": "Acciones rápidas",
	},
	"it-IT": {
		"app_title":     "Assistente Vocale Claude",
		"dictate":       "Dettare",
		"read":          "Leggi",
		"pause":         "Pausa",
		"resume":        "Riprendi",
		"stop":          "Ferma",
		"send":          "Invia",
		"auto_read":     "Leggi risposte automaticamente",
		"quick_actions": "Azioni rapide",
	},
	"ru-RU": {
		"app_title":     "Голосовой ассистент Claude",
		"dictate":       "Диктовать",
		"read":          "Читать",
		"pause":         "Пауза",
		"resume":        "Продолжить",
		"stop":          "Стоп",
		"send":          "Отправить",
		"auto_read":     "Автоматически читать ответы",
		"quick_actions": "Быстрые действия",
	},
	"uk-UA": {
		"app_title":     "Голосовий асистент Claude",
		"dictate":       "Диктувати",
		"read":          "Читати",
		"pause":         "Пауза",
		"resume":        "Продовжити",
		"stop":          "Стоп",
		"send":          "Надіслати",
		"auto_read":     "Автоматично читати відповіді",
		"quick_actions": "Швидкі дії",
	},
	"ja-JP": {
		"app_title":     "Claude音声アシスタント",
		"dictate":       "音声入力",
		"read":          "読み上げ",
		"pause":         "一時停止",
		"resume":        "再開",
		"stop":          "停止",
		"send":          "送信",
		"auto_read":     "自動読み上げ",
		"quick_actions": "クイックアクション",
	},
	"zh-CN": {
		"app_title":     "Claude语音助手",
		"dictate":       "听写",
		"read":          "朗读",
		"pause":         "暂停",
		"resume":        "继续",
		"stop":          "停止",
		"send":          "发送",
		"auto_read":     "自动朗读回复",
		"quick_actions": "快捷操作",
	},
	"ko-KR": {
		"app_title":     "Claude 음성 어시스턴트",
		"dictate":       "받아쓰기",
		"read":          "읽기",
		"pause":         "일시정지",
		"resume":        "계속",
		"stop":          "중지",
		"send":          "보내기",
		"auto_read":     "자동 읽기",
		"quick_actions": "빠른 작업",
	},
	"pt-BR": {
		"app_title":     "Assistente de Voz Claude",
		"dictate":       "Ditar",
		"read":          "Ler",
		"pause":         "Pausar",
		"resume":        "Retomar",
		"stop":          "Parar",
		"send":          "Enviar",
		"auto_read":     "Ler respostas automaticamente",
		"quick_actions": "Ações rápidas",
	},
}
