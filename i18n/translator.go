package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "found").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.base(code)
	if found := data["found"]; found != "" {
		switch t.lang {
		case "ja":
			msg += " (" + found + ")"
		default:
			msg += " " + found
		}
	}
	if exp := data["expected"]; exp != "" {
		switch t.lang {
		case "ja":
			msg += "、期待値: " + exp
		default:
			msg += ", expected " + exp
		}
	}
	return msg
}

func (t dictTranslator) base(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "incomplete":
			return "入力が不足しています"
		case "unexpected":
			return "予期しない入力です"
		case "trailing_input":
			return "解析後に入力が残っています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "incomplete":
			return "incomplete input"
		case "unexpected":
			return "unexpected input"
		case "trailing_input":
			return "trailing input after parse"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// Lookup returns the built-in Translator for lang without changing the
// current one. Unknown languages fall back to "en".
func Lookup(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
