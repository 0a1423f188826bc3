package langtag

import "golang.org/x/text/language"

// Normalize returns the canonical BCP 47 form of code ("EN-us" -> "en-US").
// Unparseable input is returned unchanged: the lookup will simply match
// nothing rather than fail.
func Normalize(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
