package translator

// Languages lists the form's language choices in display order.
var Languages = []string{"English", "Spanish", "French", "German", "Chinese"}

// DefaultLanguage is preselected on the form.
const DefaultLanguage = "English"

var languageCodes = map[string]string{
	"English": "en",
	"Spanish": "es",
	"French":  "fr",
	"German":  "de",
	"Chinese": "zh-CN",
}

// CodeFor maps a form label to the provider language code.
func CodeFor(label string) (string, bool) {
	code, ok := languageCodes[label]
	return code, ok
}
