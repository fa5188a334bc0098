// Package reply holds every user-facing message and the formatting of
// translation results. Status messages are rendered in all four languages at
// once since the user's language is not known up front.
package reply

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/tetraglot/internal/language"
	"codeberg.org/snonux/tetraglot/internal/parser"
)

// quad renders one message in all four supported languages, one per line.
func quad(ru, en, de, hy string) string {
	return fmt.Sprintf("Русский: %s\nEnglish: %s\nDeutsch: %s\nՀայերեն: %s", ru, en, de, hy)
}

var TooLong = quad(
	"Текст слишком длинный. Отправьте до 500 символов.",
	"Text is too long. Please send up to 500 characters.",
	"Der Text ist zu lang. Bitte sende bis zu 500 Zeichen.",
	"Տեքստը չափազանց երկար է։ Ուղարկեք մինչև 500 նիշ։",
)

var InvalidPair = quad(
	"Не распознал пару языков. Формат: ru-en, de-hy и т.д.",
	"Language pair was not recognized. Format: ru-en, de-hy, etc.",
	"Das Sprachpaar wurde nicht erkannt. Format: ru-en, de-hy usw.",
	"Լեզվական զույգը չհաջողվեց ճանաչել։ Ձևաչափը՝ ru-en, de-hy և այլն։",
)

var UnknownLanguage = quad(
	"Не удалось определить язык. Ответьте кодом языка: ru, en, de или hy.",
	"Could not detect the language. Reply with a language code: ru, en, de or hy.",
	"Die Sprache konnte nicht erkannt werden. Antworte mit einem Sprachcode: ru, en, de oder hy.",
	"Չհաջողվեց որոշել լեզուն։ Պատասխանեք լեզվի կոդով՝ ru, en, de կամ hy։",
)

var TranslationError = quad(
	"Не удалось выполнить перевод. Попробуйте позже.",
	"Could not complete translation. Please try again later.",
	"Die Übersetzung konnte nicht ausgeführt werden. Bitte später erneut versuchen.",
	"Չհաջողվեց կատարել թարգմանությունը։ Խնդրում ենք փորձել ավելի ուշ։",
)

var HistoryDisabled = quad(
	"История переводов отключена.",
	"Translation history is disabled.",
	"Der Übersetzungsverlauf ist deaktiviert.",
	"Թարգմանությունների պատմությունը անջատված է։",
)

var HistoryEmpty = quad(
	"История пока пуста.",
	"History is empty.",
	"Der Verlauf ist leer.",
	"Պատմությունը դեռ դատարկ է։",
)

var AutoModeSaved = quad(
	"Режим по умолчанию переключен на Auto.",
	"Default mode switched to Auto.",
	"Standardmodus auf Auto umgestellt.",
	"Լռելյայն ռեժիմը փոխվեց Auto-ի։",
)

var Welcome = quad(
	"Я перевожу между 4 языками: ru, en, de, hy. "+
		"Отправьте текст, и я определю язык автоматически и дам перевод на остальные 3 языка. "+
		"Также поддерживаю явную пару: de-ru: Hallo "+
		"и фиксированный исходный язык: de: Hallo или de Hallo. "+
		"Команды: /help, /lang, /history, /quit.",
	"I translate between 4 languages: ru, en, de, hy. "+
		"Send text and I will detect the language automatically and return translations to the other 3 languages. "+
		"Explicit pair is also supported: de-ru: Hallo, "+
		"and forced source language: de: Hallo or de Hallo. "+
		"Commands: /help, /lang, /history, /quit.",
	"Ich übersetze zwischen 4 Sprachen: ru, en, de, hy. "+
		"Sende Text, ich erkenne die Sprache automatisch und liefere Übersetzungen in die anderen 3 Sprachen. "+
		"Explizites Paar wird auch unterstützt: de-ru: Hallo, "+
		"sowie feste Ausgangssprache: de: Hallo oder de Hallo. "+
		"Befehle: /help, /lang, /history, /quit.",
	"Ես թարգմանում եմ 4 լեզուների միջև՝ ru, en, de, hy։ "+
		"Ուղարկեք տեքստ, և ես ավտոմատ կճանաչեմ լեզուն ու կտամ թարգմանություն մնացած 3 լեզուներով։ "+
		"Աջակցվում է նաև հստակ զույգ՝ de-ru: Hallo, "+
		"և ֆիքսված ելքային լեզու՝ de: Hallo կամ de Hallo։ "+
		"Հրամաններ՝ /help, /lang, /history, /quit։",
)

var Help = quad(
	"Форматы ввода: "+
		"1) авто-режим: Freundschaft; "+
		"2) явная пара: de-ru: Hallo, en-hy: Hello; "+
		"3) только исходный язык (перевод на остальные 3): de: Hallo или de Hallo; "+
		"4) /lang de-en задает двунаправленную активную пару, /lang auto сбрасывает ее. "+
		"Разделители пары: '-', '_', '→', пробел перед ':'. Команды: /start, /help, /lang, /history, /quit.",
	"Input formats: "+
		"1) auto mode: Freundschaft; "+
		"2) explicit pair: de-ru: Hallo, en-hy: Hello; "+
		"3) source-only mode (translate to other 3): de: Hallo or de Hallo; "+
		"4) /lang de-en sets an active bidirectional pair, /lang auto clears it. "+
		"Pair delimiters: '-', '_', '→', or space before ':'. Commands: /start, /help, /lang, /history, /quit.",
	"Eingabeformate: "+
		"1) Auto-Modus: Freundschaft; "+
		"2) explizites Paar: de-ru: Hallo, en-hy: Hello; "+
		"3) nur Ausgangssprache (Übersetzung in die anderen 3): de: Hallo oder de Hallo; "+
		"4) /lang de-en setzt ein aktives bidirektionales Paar, /lang auto hebt es auf. "+
		"Trennzeichen: '-', '_', '→' oder Leerzeichen vor ':'. Befehle: /start, /help, /lang, /history, /quit.",
	"Մուտքի ձևաչափեր՝ "+
		"1) ավտո ռեժիմ՝ Freundschaft; "+
		"2) հստակ զույգ՝ de-ru: Hallo, en-hy: Hello; "+
		"3) միայն ելքային լեզու (թարգմանություն մնացած 3 լեզուներով)՝ de: Hallo կամ de Hallo; "+
		"4) /lang de-en հրամանը սահմանում է ակտիվ երկկողմ զույգ, /lang auto՝ չեղարկում այն։ "+
		"Զույգի բաժանարարներ՝ '-', '_', '→' կամ բացատ ':'-ից առաջ։ Հրամաններ՝ /start, /help, /lang, /history, /quit։",
)

var LangUsage = quad(
	"Смените настройку: /lang de-en или /lang auto.",
	"Change the setting with /lang de-en or /lang auto.",
	"Einstellung ändern mit /lang de-en oder /lang auto.",
	"Փոխեք կարգավորումը՝ /lang de-en կամ /lang auto։",
)

// CurrentPair describes the active default pair for the /lang status line.
func CurrentPair(pair language.Pair) string {
	a, b := language.Label(pair.A), language.Label(pair.B)
	return quad(
		fmt.Sprintf("Текущая активная пара по умолчанию: %s <-> %s", a, b),
		fmt.Sprintf("Current active default pair: %s <-> %s", a, b),
		fmt.Sprintf("Aktives Standardpaar: %s <-> %s", a, b),
		fmt.Sprintf("Ընթացիկ ակտիվ լռելյայն զույգ՝ %s <-> %s", a, b),
	)
}

// CurrentAuto is the /lang status line when no default pair is set.
func CurrentAuto() string {
	return quad(
		"Текущий режим по умолчанию: Auto (перевод на 3 языка).",
		"Current default mode: Auto (translate to 3 languages).",
		"Aktueller Standardmodus: Auto (Übersetzung in 3 Sprachen).",
		"Ընթացիկ լռելյայն ռեժիմ՝ Auto (թարգմանություն 3 լեզվով)։",
	)
}

// PairSaved confirms a newly stored default pair.
func PairSaved(pair language.Pair) string {
	a, b := language.Label(pair.A), language.Label(pair.B)
	return quad(
		fmt.Sprintf("Пара по умолчанию сохранена (двунаправленно): %s <-> %s", a, b),
		fmt.Sprintf("Default pair saved (bidirectional): %s <-> %s", a, b),
		fmt.Sprintf("Standardpaar gespeichert (bidirektional): %s <-> %s", a, b),
		fmt.Sprintf("Լռելյայն զույգը պահպանված է (երկկողմ)՝ %s <-> %s", a, b),
	)
}

// ForRejection maps a parse error to its user message. Empty input gets no
// reply at all, so the empty string means stay silent.
func ForRejection(err error) string {
	switch {
	case errors.Is(err, parser.ErrTooLong):
		return TooLong
	case errors.Is(err, parser.ErrInvalidPair):
		return InvalidPair
	default:
		return ""
	}
}
