package i18n

import "strings"

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates embed
// data values via {name} placeholders.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			tmpl = "型が不正です: {want} が必要です"
		case "coerce_error":
			tmpl = "{value} を {want} に変換できません"
		case "required":
			tmpl = "値が必要です"
		case "invalid_enum":
			tmpl = "値 {value} は許可された選択肢に含まれていません"
		case "unknown_key":
			tmpl = "未知の項目 '{key}' です"
		case "too_small":
			tmpl = "値は {min} 以上である必要があります、{value} が指定されました"
		case "too_big":
			tmpl = "値は {max} 以下である必要があります、{value} が指定されました"
		case "too_short":
			tmpl = "長さは {min} 以上である必要があります、{length} が指定されました"
		case "too_long":
			tmpl = "長さは {max} 以下である必要があります、{length} が指定されました"
		case "invalid_format":
			tmpl = "値 {value} はどの形式にも一致しません"
		case "parse_error":
			tmpl = "解析エラー"
		case "schema_error":
			tmpl = "スキーマが不正です"
		case "unknown_type":
			tmpl = "未知の型 '{type}' です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			tmpl = "invalid type: expected {want}"
		case "coerce_error":
			tmpl = "cannot convert {value} to {want}"
		case "required":
			tmpl = "a value is required"
		case "invalid_enum":
			tmpl = "value {value} is not one of the allowed choices"
		case "unknown_key":
			tmpl = "unknown item '{key}'"
		case "too_small":
			tmpl = "value should be at least {min}, got {value}"
		case "too_big":
			tmpl = "value should be at most {max}, got {value}"
		case "too_short":
			tmpl = "length should be at least {min}, got {length}"
		case "too_long":
			tmpl = "length should be at most {max}, got {length}"
		case "invalid_format":
			tmpl = "value {value} does not match any of the expected formats"
		case "parse_error":
			tmpl = "parse error"
		case "schema_error":
			tmpl = "invalid schema"
		case "unknown_type":
			tmpl = "unknown type '{type}'"
		}
	}
	if tmpl == "" {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders; placeholders with no data entry are
// removed so partial data still yields a readable message. Substituted values
// are emitted verbatim and never rescanned, so data containing brace tokens
// (user input echoed into messages) cannot re-expand.
func expand(tmpl string, data map[string]string) string {
	b := &strings.Builder{}
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		b.WriteString(tmpl[:open])
		b.WriteString(data[tmpl[open+1:open+end]])
		tmpl = tmpl[open+end+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
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
